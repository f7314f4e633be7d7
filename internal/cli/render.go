package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/chart/ggchart"
	"github.com/elbamos/ggally/pkg/errors"
	"github.com/elbamos/ggally/pkg/netplot"
	"github.com/elbamos/ggally/pkg/network"
)

const (
	defaultWidth  = 1200 // default canvas width in pixels
	defaultHeight = 800  // default canvas height in pixels
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output PNG path; derived from input when empty
	theme  string // optional TOML theme file

	geographic   bool    // place nodes by lon/lat attributes instead of layout
	greatCircles bool    // bend edges into great-circle arcs
	arrowSize    float64 // arrowhead size; 0 disables arrows

	weight   string  // numeric attribute driving node size
	quantize bool    // bucket weights into quartiles
	subset   float64 // drop vertices below this weight (or degree)

	group     string // attribute driving fill-color grouping
	ringGroup string // attribute driving outline-color grouping

	lonAttr string // longitude attribute name in geographic mode
	latAttr string // latitude attribute name in geographic mode

	// An explicitly empty attribute flag disables the concern outright,
	// beating any theme default.
	weightNone    bool
	groupNone     bool
	ringGroupNone bool

	nodeColor string  // static fill color
	ringColor string  // static outline color
	edgeColor string  // edge color
	size      float64 // base node size
	alpha     float64 // shared transparency
	edgeAlpha float64 // edge transparency override
	edgeSize  float64 // edge width

	labelAll    bool    // label every node
	labelIDs    string  // comma-separated node ids to label
	labelSize   float64 // label text size
	labelColor  string  // label color
	labelOffset float64 // vertical label offset

	width      int     // canvas width in pixels
	height     int     // canvas height in pixels
	margin     float64 // canvas margin in pixels
	background string  // canvas background color

	iterations int    // force-directed iteration count
	seed       uint64 // force-directed seed
}

// newRenderCmd creates the render command: read a network JSON file, plot
// it, and write a PNG.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		width:  defaultWidth,
		height: defaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a network file to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.weightNone = cmd.Flags().Changed("weight") && opts.weight == ""
			opts.groupNone = cmd.Flags().Changed("group") && opts.group == ""
			opts.ringGroupNone = cmd.Flags().Changed("ring-group") && opts.ringGroup == ""
			if opts.theme != "" {
				th, err := loadTheme(opts.theme)
				if err != nil {
					return err
				}
				applyTheme(cmd, &opts, th)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path (default: input with .png extension)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().BoolVarP(&opts.geographic, "geographic", "g", false, "place nodes by lon/lat attributes")
	cmd.Flags().BoolVar(&opts.greatCircles, "great-circles", false, "bend edges into great-circle arcs")
	cmd.Flags().Float64Var(&opts.arrowSize, "arrow-size", 0, "arrowhead size (0 disables)")
	cmd.Flags().StringVar(&opts.weight, "weight", "", "numeric attribute driving node size")
	cmd.Flags().BoolVar(&opts.quantize, "quantize", false, "bucket weights into quartiles")
	cmd.Flags().Float64Var(&opts.subset, "subset", 0, "drop vertices below this weight or degree")
	cmd.Flags().StringVar(&opts.group, "group", "", "attribute driving fill-color grouping")
	cmd.Flags().StringVar(&opts.ringGroup, "ring-group", "", "attribute driving outline-color grouping")
	cmd.Flags().StringVar(&opts.lonAttr, "lon-attr", "", "longitude attribute name (geographic mode)")
	cmd.Flags().StringVar(&opts.latAttr, "lat-attr", "", "latitude attribute name (geographic mode)")
	cmd.Flags().StringVar(&opts.nodeColor, "node-color", "", "static node fill color")
	cmd.Flags().StringVar(&opts.ringColor, "ring-color", "", "static node outline color")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", "", "edge color")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "base node size")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 0, "shared transparency")
	cmd.Flags().Float64Var(&opts.edgeAlpha, "edge-alpha", 0, "edge transparency override")
	cmd.Flags().Float64Var(&opts.edgeSize, "edge-size", 0, "edge width")
	cmd.Flags().BoolVar(&opts.labelAll, "labels", false, "label every node")
	cmd.Flags().StringVar(&opts.labelIDs, "label-ids", "", "comma-separated node ids to label")
	cmd.Flags().Float64Var(&opts.labelSize, "label-size", 0, "label text size")
	cmd.Flags().StringVar(&opts.labelColor, "label-color", "", "label color")
	cmd.Flags().Float64Var(&opts.labelOffset, "label-offset", 0, "vertical label offset")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "canvas margin in pixels")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas background color")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "force-directed iteration count")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "force-directed layout seed")

	return cmd
}

// applyTheme copies theme values onto opts for every field whose flag was
// not given explicitly. Flags always win over the theme.
func applyTheme(cmd *cobra.Command, o *renderOpts, th *Theme) {
	set := func(name string) bool { return !cmd.Flags().Changed(name) }

	if set("width") && th.Canvas.Width > 0 {
		o.width = th.Canvas.Width
	}
	if set("height") && th.Canvas.Height > 0 {
		o.height = th.Canvas.Height
	}
	if set("margin") && th.Canvas.Margin > 0 {
		o.margin = th.Canvas.Margin
	}
	if set("background") && th.Canvas.Background != "" {
		o.background = th.Canvas.Background
	}

	if set("node-color") && th.Node.Color != "" {
		o.nodeColor = th.Node.Color
	}
	if set("ring-color") && th.Node.RingColor != "" {
		o.ringColor = th.Node.RingColor
	}
	if set("size") && th.Node.Size > 0 {
		o.size = th.Node.Size
	}
	if set("alpha") && th.Node.Alpha > 0 {
		o.alpha = th.Node.Alpha
	}

	if set("edge-color") && th.Edge.Color != "" {
		o.edgeColor = th.Edge.Color
	}
	if set("edge-size") && th.Edge.Size > 0 {
		o.edgeSize = th.Edge.Size
	}
	if set("edge-alpha") && th.Edge.Alpha > 0 {
		o.edgeAlpha = th.Edge.Alpha
	}
	if set("great-circles") && th.Edge.GreatCircles {
		o.greatCircles = true
	}
	if set("arrow-size") && th.Edge.ArrowSize > 0 {
		o.arrowSize = th.Edge.ArrowSize
	}

	if set("label-size") && th.Label.Size > 0 {
		o.labelSize = th.Label.Size
	}
	if set("label-color") && th.Label.Color != "" {
		o.labelColor = th.Label.Color
	}
	if set("label-offset") && th.Label.OffsetY != 0 {
		o.labelOffset = th.Label.OffsetY
	}

	if set("lon-attr") && th.Attrs.Lon != "" {
		o.lonAttr = th.Attrs.Lon
	}
	if set("lat-attr") && th.Attrs.Lat != "" {
		o.latAttr = th.Attrs.Lat
	}
	if set("weight") && th.Attrs.Weight != "" {
		o.weight = th.Attrs.Weight
	}
	if set("group") && th.Attrs.Group != "" {
		o.group = th.Attrs.Group
	}
	if set("ring-group") && th.Attrs.RingGroup != "" {
		o.ringGroup = th.Attrs.RingGroup
	}
}

// buildPlotOptions translates CLI flags into pipeline options. Zero-valued
// flags stay zero so the pipeline's own defaults apply.
func buildPlotOptions(o *renderOpts) netplot.Options {
	popts := netplot.Options{
		Size:             o.size,
		Alpha:            o.alpha,
		NodeColor:        o.nodeColor,
		RingColor:        o.ringColor,
		SegmentColor:     o.edgeColor,
		SegmentSize:      o.edgeSize,
		GreatCircles:     o.greatCircles,
		ArrowSize:        o.arrowSize,
		QuantizeWeights:  o.quantize,
		SubsetThreshold:  o.subset,
		LabelSize:        o.labelSize,
		LayoutIterations: o.iterations,
		LayoutSeed:       o.seed,
	}

	popts.LonAttr = o.lonAttr
	popts.LatAttr = o.latAttr

	if o.edgeAlpha > 0 {
		popts.SegmentAlpha = netplot.Float(o.edgeAlpha)
	}
	switch {
	case o.weight != "":
		popts.WeightMethod = netplot.AttrNamed(o.weight)
	case o.weightNone:
		popts.WeightMethod = netplot.AttrNone
	}
	switch {
	case o.group != "":
		popts.NodeGroup = netplot.AttrNamed(o.group)
	case o.groupNone:
		popts.NodeGroup = netplot.AttrNone
	}
	switch {
	case o.ringGroup != "":
		popts.RingGroup = netplot.AttrNamed(o.ringGroup)
	case o.ringGroupNone:
		popts.RingGroup = netplot.AttrNone
	}

	switch {
	case o.labelAll:
		popts.LabelNodes = netplot.LabelAll
	case o.labelIDs != "":
		popts.LabelNodes = netplot.LabelIDs(strings.Split(o.labelIDs, ",")...)
	}

	labelOpts := make(map[string]any)
	if o.labelColor != "" {
		labelOpts["color"] = o.labelColor
	}
	if o.labelOffset != 0 {
		labelOpts["offset_y"] = o.labelOffset
	}
	if len(labelOpts) > 0 {
		popts.LabelOptions = labelOpts
	}

	return popts
}

// outputPath derives the PNG path from the output flag and the input file.
func outputPath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	if filepath.Ext(output) == "" {
		return output + ".png"
	}
	return output
}

// runRender loads the network, plots it, and writes the PNG.
func runRender(ctx context.Context, input string, o *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	net, err := network.ReadNetworkFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded network: %d nodes, %d edges", net.VertexCount(), net.EdgeCount())

	if !o.geographic && o.greatCircles {
		printWarning("great circles require --geographic; drawing straight edges")
		o.greatCircles = false
	}

	var canvasOpts []ggchart.Option
	if o.margin > 0 {
		canvasOpts = append(canvasOpts, ggchart.WithMargin(o.margin))
	}
	if o.background != "" {
		canvasOpts = append(canvasOpts, ggchart.WithBackground(o.background))
	}
	canvas := ggchart.New(o.width, o.height, canvasOpts...)

	popts := buildPlotOptions(o)
	if o.geographic {
		popts.Chart = canvas
	}

	sp := newSpinnerWithContext(ctx, "Plotting network...")
	sp.Start()
	ch, err := netplot.Plot(net, popts)
	sp.Stop()
	if err != nil {
		return err
	}
	if !o.geographic {
		// Layout mode accumulated into a recording chart; rasterize it now.
		ch.(*chart.Memory).Replay(canvas)
	}

	out := outputPath(o.output, input)
	if err := errors.ValidateOutputPath(out); err != nil {
		return err
	}
	if err := canvas.SavePNG(out); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	printSuccess("Plot written")
	printFile(out)
	printStats(net.VertexCount(), net.EdgeCount())
	return nil
}
