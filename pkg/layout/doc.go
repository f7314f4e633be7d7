// Package layout computes 2-D force-directed placements for networks.
//
// The only input is a dense adjacency matrix (gonum *mat.Dense), so the
// package knows nothing about vertices, attributes, or rendering. It is a
// pure coordinate producer behind the adjacency-to-coordinates contract the
// plotting pipeline delegates to.
//
// FruchtermanReingold implements the classic spring-embedder: vertices
// repel each other, adjacent vertices attract, and a cooling schedule
// limits per-iteration displacement. Runs are deterministic for a fixed
// seed; coordinates land in the unit frame unless WithFrame overrides it.
//
//	adj := net.AdjacencyMatrix()
//	pts := layout.FruchtermanReingold(adj, layout.WithSeed(42))
package layout
