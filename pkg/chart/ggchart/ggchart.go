// Package ggchart rasterizes accumulated chart layers to PNG.
//
// It is the concrete chart backend for callers that want an image rather
// than their own layer sink: layers append exactly as on any other Chart,
// and EncodePNG/SavePNG realize them with fogleman/gg. Data coordinates
// are auto-fitted to the pixel frame; rows with NaN coordinates are
// skipped (the layer keeps them, the raster simply cannot place them).
package ggchart

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/elbamos/ggally/pkg/chart"
)

// pxPerSizeUnit converts the pipeline's abstract size units to pixels.
const pxPerSizeUnit = 3.0

// Chart is a raster chart backend. It records layers like chart.Memory and
// draws them all at encode time, once the data bounds are known.
type Chart struct {
	rec        *chart.Memory
	width      int
	height     int
	margin     float64
	background string
}

// Option configures a raster chart.
type Option func(*Chart)

// WithMargin sets the pixel margin around the fitted data area.
func WithMargin(px float64) Option {
	return func(c *Chart) {
		if px >= 0 {
			c.margin = px
		}
	}
}

// WithBackground sets the background color (hex or named).
func WithBackground(color string) Option {
	return func(c *Chart) { c.background = color }
}

// New creates a raster chart with the given pixel dimensions.
func New(width, height int, opts ...Option) *Chart {
	c := &Chart{
		rec:        chart.NewMemory(),
		width:      width,
		height:     height,
		margin:     40,
		background: "white",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddPointLayer implements chart.Chart.
func (c *Chart) AddPointLayer(layer chart.PointLayer) { c.rec.AddPointLayer(layer) }

// AddLineLayer implements chart.Chart.
func (c *Chart) AddLineLayer(layer chart.LineLayer) { c.rec.AddLineLayer(layer) }

// AddTextLayer implements chart.Chart.
func (c *Chart) AddTextLayer(layer chart.TextLayer) { c.rec.AddTextLayer(layer) }

// AddScale implements chart.Chart.
func (c *Chart) AddScale(scale chart.Scale) { c.rec.AddScale(scale) }

// Layers exposes the recorded layers, mainly for tests.
func (c *Chart) Layers() *chart.Memory { return c.rec }

// =============================================================================
// Rendering
// =============================================================================

// EncodePNG draws all accumulated layers and writes a PNG to w.
func (c *Chart) EncodePNG(w io.Writer) error {
	dc, err := c.draw()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG draws all accumulated layers and writes a PNG file.
func (c *Chart) SavePNG(path string) error {
	dc, err := c.draw()
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func (c *Chart) draw() (*gg.Context, error) {
	dc := gg.NewContext(c.width, c.height)

	bg, err := parseColor(c.background)
	if err != nil {
		return nil, err
	}
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()

	proj := c.fitBounds()

	for _, layer := range c.rec.LineLayers() {
		if err := c.drawLines(dc, proj, layer); err != nil {
			return nil, err
		}
	}
	for _, layer := range c.rec.PointLayers() {
		if err := c.drawPoints(dc, proj, layer); err != nil {
			return nil, err
		}
	}
	for _, layer := range c.rec.TextLayers() {
		if err := c.drawText(dc, proj, layer); err != nil {
			return nil, err
		}
	}
	c.drawLegend(dc)

	return dc, nil
}

// projection maps data coordinates to pixels. Y is flipped so larger data
// values render higher on the image.
type projection struct {
	minX, minY     float64
	scaleX, scaleY float64
	margin         float64
	height         float64
}

func (p projection) apply(x, y float64) (float64, float64) {
	px := p.margin + (x-p.minX)*p.scaleX
	py := p.height - p.margin - (y-p.minY)*p.scaleY
	return px, py
}

// fitBounds scans every finite coordinate across all layers and builds the
// projection into the margin-inset frame.
func (c *Chart) fitBounds() projection {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	observe := func(x, y float64) {
		if math.IsNaN(x) || math.IsNaN(y) {
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for _, layer := range c.rec.PointLayers() {
		for _, r := range layer.Rows {
			observe(r.X, r.Y)
		}
	}
	for _, layer := range c.rec.LineLayers() {
		for _, s := range layer.Segments {
			observe(s.X1, s.Y1)
			observe(s.X2, s.Y2)
		}
		for _, p := range layer.Paths {
			observe(p.X, p.Y)
		}
	}
	for _, layer := range c.rec.TextLayers() {
		for _, r := range layer.Rows {
			observe(r.X, r.Y)
		}
	}

	if math.IsInf(minX, 1) {
		// Nothing finite to draw.
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	return projection{
		minX:   minX,
		minY:   minY,
		scaleX: (float64(c.width) - 2*c.margin) / spanX,
		scaleY: (float64(c.height) - 2*c.margin) / spanY,
		margin: c.margin,
		height: float64(c.height),
	}
}

func (c *Chart) drawLines(dc *gg.Context, proj projection, layer chart.LineLayer) error {
	col, err := parseColor(layer.Color)
	if err != nil {
		return err
	}
	dc.SetRGBA(col.R, col.G, col.B, layer.Alpha)
	dc.SetLineWidth(math.Max(layer.Width*pxPerSizeUnit, 0.5))

	for _, s := range layer.Segments {
		x1, y1 := proj.apply(s.X1, s.Y1)
		x2, y2 := proj.apply(s.X2, s.Y2)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		if layer.Arrow != nil {
			c.drawArrowhead(dc, x1, y1, x2, y2, layer.Arrow.Size)
		}
	}

	for _, pts := range groupPaths(layer.Paths) {
		for i := 1; i < len(pts); i++ {
			x1, y1 := proj.apply(pts[i-1].X, pts[i-1].Y)
			x2, y2 := proj.apply(pts[i].X, pts[i].Y)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
			if layer.Arrow != nil && i == len(pts)-1 {
				c.drawArrowhead(dc, x1, y1, x2, y2, layer.Arrow.Size)
			}
		}
	}
	return nil
}

// groupPaths splits path points into per-group sequences ordered by Seq.
// Group order follows first appearance so rendering is deterministic.
func groupPaths(points []chart.PathPoint) [][]chart.PathPoint {
	var order []string
	byGroup := make(map[string][]chart.PathPoint)
	for _, p := range points {
		if _, seen := byGroup[p.Group]; !seen {
			order = append(order, p.Group)
		}
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}

	out := make([][]chart.PathPoint, 0, len(order))
	for _, g := range order {
		pts := byGroup[g]
		sort.Slice(pts, func(i, j int) bool { return pts[i].Seq < pts[j].Seq })
		out = append(out, pts)
	}
	return out
}

func (c *Chart) drawArrowhead(dc *gg.Context, x1, y1, x2, y2, size float64) {
	dx := x2 - x1
	dy := y2 - y1
	d := math.Hypot(dx, dy)
	if d < 1e-9 {
		return
	}
	ux, uy := dx/d, dy/d
	length := math.Max(size*pxPerSizeUnit*2, 3)
	spread := 0.4 // radians off the shaft

	for _, sign := range []float64{1, -1} {
		angle := math.Atan2(uy, ux) + math.Pi + sign*spread
		dc.DrawLine(x2, y2, x2+math.Cos(angle)*length, y2+math.Sin(angle)*length)
		dc.Stroke()
	}
}

func (c *Chart) drawPoints(dc *gg.Context, proj projection, layer chart.PointLayer) error {
	fill, err := parseColor(layer.Color)
	if err != nil {
		return err
	}
	ring, err := parseColor(defaultString(layer.RingColor, "black"))
	if err != nil {
		return err
	}

	fillGroups := groupColors(groupLabels(layer.Rows, func(r chart.PointRow) string { return r.Fill }))
	ringGroups := groupColors(groupLabels(layer.Rows, func(r chart.PointRow) string { return r.Ring }))

	for _, r := range layer.Rows {
		if math.IsNaN(r.X) || math.IsNaN(r.Y) {
			continue
		}
		x, y := proj.apply(r.X, r.Y)

		size := layer.Size
		if layer.SizeScaled {
			size = r.SizeValue
		}
		radius := math.Max(size*pxPerSizeUnit/2, 1)

		rowFill := fill
		if layer.FillGrouped {
			rowFill = fillGroups[r.Fill]
		}

		dc.SetRGBA(rowFill.R, rowFill.G, rowFill.B, layer.Alpha)
		dc.DrawCircle(x, y, radius)
		if layer.Shape == chart.ShapeRingedCircle {
			dc.FillPreserve()
			rowRing := ring
			if layer.RingGrouped {
				rowRing = ringGroups[r.Ring]
			}
			dc.SetRGBA(rowRing.R, rowRing.G, rowRing.B, layer.Alpha)
			dc.SetLineWidth(math.Max(radius/3, 1))
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}
	return nil
}

func (c *Chart) drawText(dc *gg.Context, proj projection, layer chart.TextLayer) error {
	col := colorful.Color{} // black
	if v, ok := layer.Options["color"].(string); ok {
		parsed, err := parseColor(v)
		if err != nil {
			return err
		}
		col = parsed
	}
	offsetY := 0.0
	if v, ok := layer.Options["offset_y"].(float64); ok {
		offsetY = v
	}

	dc.SetRGB(col.R, col.G, col.B)
	for _, r := range layer.Rows {
		if math.IsNaN(r.X) || math.IsNaN(r.Y) || r.Text == "" {
			continue
		}
		x, y := proj.apply(r.X, r.Y)
		dc.DrawStringAnchored(r.Text, x, y-layer.Size*pxPerSizeUnit-offsetY, 0.5, 0.5)
	}
	return nil
}

// drawLegend stacks scale titles and labels in the top-left corner.
func (c *Chart) drawLegend(dc *gg.Context) {
	scales := c.rec.Scales()
	if len(scales) == 0 {
		return
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	y := 16.0
	for _, s := range scales {
		if s.Title != "" {
			dc.DrawString(s.Title, 8, y)
			y += 14
		}
		for _, label := range s.Labels {
			dc.DrawString("  "+label, 8, y)
			y += 13
		}
	}
}

// =============================================================================
// Colors
// =============================================================================

// namedColors covers the palette names the pipeline defaults use.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"grey":      "#bebebe",
	"gray":      "#bebebe",
	"red":       "#cd5c5c",
	"green":     "#2e8b57",
	"blue":      "#4682b4",
	"steelblue": "#4682b4",
	"orange":    "#e8890c",
	"purple":    "#8e6bae",
	"gold":      "#e4c03f",
	"tomato":    "#ff6347",
}

// groupPalette assigns stable colors to categorical groups.
var groupPalette = []string{
	"#4682b4", "#e8890c", "#2e8b57", "#cd5c5c",
	"#8e6bae", "#e4c03f", "#5f9ea0", "#d87093",
}

func parseColor(name string) (colorful.Color, error) {
	if name == "" {
		name = "black"
	}
	if hex, ok := namedColors[name]; ok {
		name = hex
	}
	col, err := colorful.Hex(name)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", name, err)
	}
	return col, nil
}

// groupLabels collects the distinct non-empty labels in sorted order.
func groupLabels(rows []chart.PointRow, get func(chart.PointRow) string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, r := range rows {
		l := get(r)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// groupColors maps sorted labels onto the palette, cycling when exhausted.
func groupColors(labels []string) map[string]colorful.Color {
	out := make(map[string]colorful.Color, len(labels))
	for i, l := range labels {
		col, _ := colorful.Hex(groupPalette[i%len(groupPalette)])
		out[l] = col
	}
	return out
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
