package netplot

import (
	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultSize is the base node size (and the maximum when weighting).
	DefaultSize = 3.0

	// DefaultAlpha is the transparency inherited by nodes and edges.
	DefaultAlpha = 0.75

	// DefaultSegmentColor is the uniform edge color.
	DefaultSegmentColor = "grey"

	// DefaultSegmentSize is the uniform edge width.
	DefaultSegmentSize = 0.25

	// DefaultNodeColor is the uniform fill when no grouping or color is set.
	DefaultNodeColor = "black"

	// DefaultLonAttr and DefaultLatAttr name the geographic vertex
	// attributes read in geographic mode.
	DefaultLonAttr = "lon"
	DefaultLatAttr = "lat"

	// DefaultLayoutIterations bounds the force-directed simulation.
	DefaultLayoutIterations = 150

	// DefaultLayoutSeed makes layout-mode runs reproducible.
	DefaultLayoutSeed = uint64(42)
)

// =============================================================================
// Attr - Tri-State Attribute Selector
// =============================================================================

type attrState int

const (
	attrUnset attrState = iota
	attrNone
	attrNamed
)

// Attr selects an optional vertex attribute by name, distinguishing three
// states: unset (the zero value, so defaults may apply), explicitly named,
// and explicitly disabled. The distinction matters to callers layering
// their own defaulting on top: AttrNone suppresses a default an unset Attr
// would accept.
type Attr struct {
	state attrState
	name  string
}

// AttrNone explicitly disables the attribute.
var AttrNone = Attr{state: attrNone}

// AttrNamed selects the vertex attribute with the given name.
func AttrNamed(name string) Attr {
	return Attr{state: attrNamed, name: name}
}

// IsUnset reports whether the selector was never touched.
func (a Attr) IsUnset() bool { return a.state == attrUnset }

// IsNone reports whether the selector was explicitly disabled.
func (a Attr) IsNone() bool { return a.state == attrNone }

// IsNamed reports whether the selector names an attribute.
func (a Attr) IsNamed() bool { return a.state == attrNamed }

// Name returns the selected attribute name, empty unless IsNamed.
func (a Attr) Name() string {
	if a.state != attrNamed {
		return ""
	}
	return a.name
}

// =============================================================================
// OptFloat - Optional Override
// =============================================================================

// OptFloat is an optional float64 that distinguishes "not set" from an
// explicit zero.
type OptFloat struct {
	set   bool
	value float64
}

// Float wraps an explicit value.
func Float(v float64) OptFloat { return OptFloat{set: true, value: v} }

// Or returns the value when set, otherwise fallback.
func (o OptFloat) Or(fallback float64) float64 {
	if o.set {
		return o.value
	}
	return fallback
}

// =============================================================================
// LabelSpec - Node Labeling Selection
// =============================================================================

// LabelSpec selects which vertices receive text labels. The zero value
// labels nothing.
type LabelSpec struct {
	all bool
	ids []string
}

// LabelAll labels every vertex.
var LabelAll = LabelSpec{all: true}

// LabelIDs labels only the vertices with the given identifiers.
func LabelIDs(ids ...string) LabelSpec {
	return LabelSpec{ids: append([]string(nil), ids...)}
}

// enabled reports whether any labeling was requested.
func (l LabelSpec) enabled() bool { return l.all || len(l.ids) > 0 }

// want reports whether the vertex with the given ID should keep its label.
func (l LabelSpec) want(id string) bool {
	if l.all {
		return true
	}
	for _, want := range l.ids {
		if want == id {
			return true
		}
	}
	return false
}

// =============================================================================
// Options
// =============================================================================

// Options configures a single Plot call. The zero value is usable: layout
// mode on a fresh in-memory chart with default styling.
type Options struct {
	// Chart is the chart to extend. Nil selects layout mode on a fresh
	// in-memory chart; non-nil selects geographic mode.
	Chart chart.Chart

	// Size is the base node size, and the maximum when weighting is active.
	Size float64

	// Alpha is the default transparency inherited by nodes and edges.
	Alpha float64

	// WeightMethod names the numeric attribute driving node size (and
	// subsetting, when SubsetThreshold is set). Unset or AttrNone means
	// fixed size and degree-based subsetting.
	WeightMethod Attr

	// NodeGroup names the attribute driving fill-color grouping.
	NodeGroup Attr

	// RingGroup names the attribute driving outline-color grouping.
	// Naming one switches the point shape to a fill+outline glyph.
	RingGroup Attr

	// NodeColor is a static fill color used when NodeGroup is not named.
	NodeColor string

	// RingColor is a static outline color. Setting it without RingGroup
	// still switches to the fill+outline glyph.
	RingColor string

	// NodeAlpha and SegmentAlpha override Alpha per layer.
	NodeAlpha    OptFloat
	SegmentAlpha OptFloat

	// SegmentColor and SegmentSize style the edge layer uniformly.
	SegmentColor string
	SegmentSize  float64

	// GreatCircles bends edges into great-circle arcs (three-point paths)
	// instead of straight segments.
	GreatCircles bool

	// ArrowSize enables directed-edge arrowheads when positive.
	ArrowSize float64

	// LabelNodes selects labeled vertices. Zero value labels none.
	LabelNodes LabelSpec

	// LabelSize is the label text size; zero defaults to Size/2.
	LabelSize float64

	// LabelOptions is forwarded verbatim to the text layer.
	LabelOptions map[string]any

	// QuantizeWeights buckets weights into quartiles instead of scaling
	// them continuously.
	QuantizeWeights bool

	// SubsetThreshold removes vertices whose weight (or degree) is below
	// it, before layout. Zero disables subsetting.
	SubsetThreshold float64

	// LonAttr and LatAttr name the geographic coordinate attributes.
	LonAttr string
	LatAttr string

	// LayoutIterations and LayoutSeed tune layout mode.
	LayoutIterations int
	LayoutSeed       uint64

	validated bool
}

// ValidateAndSetDefaults checks attribute names and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	for _, attr := range []Attr{o.WeightMethod, o.NodeGroup, o.RingGroup} {
		if attr.IsNamed() {
			if err := errors.ValidateAttributeName(attr.Name()); err != nil {
				return err
			}
		}
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	if o.SegmentColor == "" {
		o.SegmentColor = DefaultSegmentColor
	}
	if o.SegmentSize == 0 {
		o.SegmentSize = DefaultSegmentSize
	}
	if o.NodeColor == "" {
		o.NodeColor = DefaultNodeColor
	}
	if o.LabelSize == 0 {
		o.LabelSize = o.Size / 2
	}
	if o.LonAttr == "" {
		o.LonAttr = DefaultLonAttr
	}
	if o.LatAttr == "" {
		o.LatAttr = DefaultLatAttr
	}
	if o.LayoutIterations == 0 {
		o.LayoutIterations = DefaultLayoutIterations
	}
	if o.LayoutSeed == 0 {
		o.LayoutSeed = DefaultLayoutSeed
	}

	o.validated = true
	return nil
}

// geographic reports whether the call overlays an existing chart.
func (o *Options) geographic() bool { return o.Chart != nil }
