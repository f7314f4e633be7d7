// Package pkg provides the core libraries for network plotting.
//
// # Overview
//
// Netplot turns a graph into chart layers: points for vertices, lines or
// great-circle arcs for edges, and text for labels. The pkg directory is
// organized into five main areas:
//
//  1. [network] - Graph model (vertices, edges, attributes, serialization)
//  2. [layout] - Force-directed placement over adjacency matrices
//  3. [geo] - Great-circle interpolation on the sphere
//  4. [chart] - Chart layer abstraction plus recording and raster backends
//  5. [netplot] - The plotting pipeline tying the above together
//
// # Architecture
//
// The typical data flow:
//
//	*network.Network or gonum graph
//	         ↓
//	    [netplot] package (subset → coordinates → aesthetics → edges)
//	         ↓
//	    [chart] layers (points, lines, text, scales)
//	         ↓
//	    [chart/ggchart] PNG output (or any other Chart backend)
//
// # Quick Start
//
// Plot a network onto a geographic canvas:
//
//	import (
//	    "github.com/elbamos/ggally/pkg/chart/ggchart"
//	    "github.com/elbamos/ggally/pkg/netplot"
//	)
//
//	canvas := ggchart.New(1200, 800)
//	_, err := netplot.Plot(net, netplot.Options{
//	    Chart:        canvas,
//	    GreatCircles: true,
//	    NodeGroup:    netplot.AttrNamed("region"),
//	})
//	if err != nil {
//	    return err
//	}
//	return canvas.SavePNG("flights.png")
//
// Omit Options.Chart to place vertices by force-directed layout instead;
// the layers then accumulate on an in-memory chart.
//
// # Main Packages
//
// [network] - Attributed graph model. Vertices carry typed attribute
// stores; networks support cloning, weight- or degree-based subsetting,
// adjacency matrices, and a JSON file format. Gonum graphs normalize into
// the same model.
//
// [layout] - Deterministic Fruchterman-Reingold placement with seeded
// randomness and a configurable frame.
//
// [geo] - Spherical interpolation used to bend edges into great-circle
// arcs.
//
// [chart] - The Chart interface and layer types shared by all backends,
// plus Memory, a recording backend used as the layout-mode default and as
// the test double.
//
// [chart/ggchart] - Raster backend drawing layers to PNG.
//
// [netplot] - The pipeline: validate options, normalize the graph, subset,
// resolve coordinates, map aesthetics, build edge geometry, and compose
// layers in fixed order.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - No-op hook points for instrumenting the pipeline.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/netplot/...  # Specific package
//	go test -run Example       # Examples only
//
// [network]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/network
// [layout]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/layout
// [geo]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/geo
// [chart]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/chart
// [chart/ggchart]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/chart/ggchart
// [netplot]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/netplot
// [errors]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/errors
// [observability]: https://pkg.go.dev/github.com/elbamos/ggally/pkg/observability
package pkg
