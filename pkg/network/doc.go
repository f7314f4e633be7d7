// Package network defines the graph model consumed by the plotting pipeline.
//
// A Network is an ordered set of vertices and a list of directed or
// undirected edges between them. Each vertex carries a typed attribute
// store; the pipeline reads caller-named attributes (coordinates, groups,
// weights, labels) through typed getters rather than an untyped bag.
//
// # Building a network
//
//	net := network.New(false)
//	a := network.NewVertex("ORD")
//	a.Attrs.SetNumber("lon", -87.9)
//	a.Attrs.SetNumber("lat", 41.9)
//	net.AddVertex(a)
//	net.AddVertex(network.NewVertex("LHR"))
//	net.AddEdge("ORD", "LHR")
//
// # Interop
//
// Normalize accepts either a *Network or a gonum graph.Directed /
// graph.Undirected and produces a *Network, so callers holding graphs built
// with gonum's simple package can plot them directly.
//
// # Serialization
//
// Networks round-trip through a human-readable JSON format via
// MarshalNetwork/UnmarshalNetwork and the ReadNetworkFile/WriteNetworkFile
// helpers. Attribute values serialize as plain JSON scalars.
package network
