// Package chart defines the layer-accumulating chart abstraction the
// plotting pipeline renders into.
//
// The pipeline never draws: it appends point, line, and text layers plus
// legend scales to a Chart, and backends decide how to realize them. The
// Memory backend records layers for inspection; ggchart rasterizes them to
// PNG. Callers can pass their own Chart implementation to overlay network
// layers on an existing drawing (the geographic mode of the pipeline).
package chart

// Shape selects the point glyph.
type Shape int

const (
	// ShapeCircle is a solid filled circle.
	ShapeCircle Shape = iota

	// ShapeRingedCircle is a filled circle with a separately colored
	// outline, used when ring grouping is active.
	ShapeRingedCircle
)

// =============================================================================
// Point Layer
// =============================================================================

// PointRow is one plotted vertex.
// X or Y may be NaN for vertices with unknown positions; backends that
// cannot draw them skip the row.
type PointRow struct {
	ID        string
	X, Y      float64
	Fill      string  // fill group label, "" when ungrouped
	Ring      string  // outline group label, "" when ungrouped
	SizeValue float64 // size driver, meaningful when SizeScaled
}

// PointLayer is the node layer: one row per vertex plus uniform fallbacks.
type PointLayer struct {
	Rows []PointRow

	Color       string // uniform fill color when FillGrouped is false
	RingColor   string // uniform outline color when RingGrouped is false
	Alpha       float64
	Size        float64 // uniform size; max size when SizeScaled
	Shape       Shape
	SizeScaled  bool // SizeValue drives per-row size
	FillGrouped bool // Fill carries group labels
	RingGrouped bool // Ring carries group labels
}

// =============================================================================
// Line Layer
// =============================================================================

// Segment is a straight 2-point edge.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// PathPoint is one vertex of a grouped polyline. Points sharing a Group
// are connected in ascending Seq order.
type PathPoint struct {
	Group string
	Seq   int
	X, Y  float64
}

// Arrow requests arrowheads at segment/path ends.
type Arrow struct {
	Size float64
}

// LineLayer is the edge layer. Exactly one of Segments or Paths is
// populated: Segments for straight edges, Paths for great-circle arcs.
// Styling is uniform across the layer.
type LineLayer struct {
	Segments []Segment
	Paths    []PathPoint

	Color string
	Alpha float64
	Width float64
	Arrow *Arrow // nil disables arrowheads
}

// =============================================================================
// Text Layer
// =============================================================================

// TextRow is one rendered label.
type TextRow struct {
	X, Y float64
	Text string
}

// TextLayer is the label layer. Options carries free-form styling passed
// through verbatim to the backend.
type TextLayer struct {
	Rows    []TextRow
	Size    float64
	Options map[string]any
}

// =============================================================================
// Scales
// =============================================================================

// ScaleKind discriminates legend scales.
type ScaleKind int

const (
	// ScaleSize maps the point layer's size driver to visual area.
	ScaleSize ScaleKind = iota

	// ScaleFill maps fill group labels to colors.
	ScaleFill

	// ScaleOutline maps ring group labels to outline colors.
	ScaleOutline
)

// Scale describes one legend scale attached to the point layer.
type Scale struct {
	Kind   ScaleKind
	Title  string
	Labels []string // ordered legend labels, empty for continuous scales

	// MaxSize is the upper bound of the size scale (ScaleSize only).
	MaxSize float64
}

// =============================================================================
// Chart
// =============================================================================

// Chart accumulates layers. Implementations must append layers in call
// order; the pipeline relies on edges rendering beneath points and points
// beneath labels.
type Chart interface {
	AddPointLayer(layer PointLayer)
	AddLineLayer(layer LineLayer)
	AddTextLayer(layer TextLayer)
	AddScale(scale Scale)
}
