// Package netplot turns a network into chart layers.
//
// The single entry point, Plot, runs a strict linear pipeline: normalize
// the input graph, optionally subset low-weight vertices, resolve one x/y
// position per vertex (geographic attributes when overlaying an existing
// chart, force-directed layout otherwise), map grouping/weight/label
// attributes to aesthetics, project edges into segments or great-circle
// arcs, and append the resulting layers to a Chart.
//
// # Modes
//
// Passing a Chart in Options selects geographic mode: vertex longitude and
// latitude attributes position the nodes over the existing drawing, with
// outlier coordinates suppressed so one miscoded vertex cannot stretch the
// visible extent. Leaving Options.Chart nil selects layout mode: positions
// come from a Fruchterman-Reingold placement and the layers accumulate on
// a fresh in-memory chart.
//
//	net := network.New(false)
//	// ... add vertices and edges ...
//	ch, err := netplot.Plot(net, netplot.Options{
//	    NodeGroup:    netplot.AttrNamed("region"),
//	    WeightMethod: netplot.AttrNamed("traffic"),
//	    GreatCircles: true,
//	})
//
// Plot never saves or shows anything; it returns the chart for further
// composition by the caller.
package netplot
