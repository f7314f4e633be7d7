package netplot

import (
	"math"
	"reflect"
	"testing"

	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/errors"
	"github.com/elbamos/ggally/pkg/network"
)

// attrNetwork builds an undirected network where each vertex carries a
// "group" string and a "weight" number.
func attrNetwork(t *testing.T, groups []string, weights []float64) *network.Network {
	t.Helper()
	net := network.New(false)
	for i := range groups {
		v := network.NewVertex(string(rune('a' + i)))
		v.Attrs.SetString("group", groups[i])
		v.Attrs.SetNumber("weight", weights[i])
		if err := net.AddVertex(v); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	return net
}

func TestMapAttributesDefaults(t *testing.T) {
	net := attrNetwork(t, []string{"x", "y"}, []float64{1, 2})
	m, err := mapAttributes(net, validated(t, Options{}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if m.fillGrouped || m.ringGrouped || m.sizeScaled {
		t.Errorf("no grouping requested but got fillGrouped=%v ringGrouped=%v sizeScaled=%v",
			m.fillGrouped, m.ringGrouped, m.sizeScaled)
	}
	if m.shape != chart.ShapeCircle {
		t.Errorf("shape = %v, want plain circle", m.shape)
	}
	if len(m.scales) != 0 {
		t.Errorf("got %d scales, want 0", len(m.scales))
	}
	for i, l := range m.labels {
		if l != "" {
			t.Errorf("vertex %d labeled %q without labeling enabled", i, l)
		}
	}
}

func TestMapAttributesLabels(t *testing.T) {
	net := attrNetwork(t, []string{"x", "y", "z"}, []float64{1, 2, 3})

	m, err := mapAttributes(net, validated(t, Options{LabelNodes: LabelAll}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if !reflect.DeepEqual(m.labels, []string{"a", "b", "c"}) {
		t.Errorf("LabelAll labels = %v", m.labels)
	}

	m, err = mapAttributes(net, validated(t, Options{LabelNodes: LabelIDs("b")}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if !reflect.DeepEqual(m.labels, []string{"", "b", ""}) {
		t.Errorf("LabelIDs labels = %v", m.labels)
	}
}

func TestMapAttributesFillGrouping(t *testing.T) {
	net := attrNetwork(t, []string{"beta", "alpha", "beta"}, []float64{1, 2, 3})
	m, err := mapAttributes(net, validated(t, Options{NodeGroup: AttrNamed("group")}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if !m.fillGrouped {
		t.Error("fillGrouped = false")
	}
	if !reflect.DeepEqual(m.fills, []string{"beta", "alpha", "beta"}) {
		t.Errorf("fills = %v", m.fills)
	}
	if len(m.scales) != 1 || m.scales[0].Kind != chart.ScaleFill {
		t.Fatalf("scales = %+v, want one fill scale", m.scales)
	}
	if !reflect.DeepEqual(m.scales[0].Labels, []string{"alpha", "beta"}) {
		t.Errorf("fill scale labels = %v, want sorted distinct groups", m.scales[0].Labels)
	}
}

func TestMapAttributesRingGrouping(t *testing.T) {
	net := attrNetwork(t, []string{"x", "y"}, []float64{1, 2})
	m, err := mapAttributes(net, validated(t, Options{RingGroup: AttrNamed("group")}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if !m.ringGrouped || m.shape != chart.ShapeRingedCircle {
		t.Errorf("ringGrouped=%v shape=%v", m.ringGrouped, m.shape)
	}
	if len(m.scales) != 1 || m.scales[0].Kind != chart.ScaleOutline {
		t.Fatalf("scales = %+v, want one outline scale", m.scales)
	}
}

func TestMapAttributesStaticRingColorSwitchesShape(t *testing.T) {
	net := attrNetwork(t, []string{"x"}, []float64{1})
	m, err := mapAttributes(net, validated(t, Options{RingColor: "gold"}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if m.ringGrouped {
		t.Error("static ring color should not imply grouping")
	}
	if m.shape != chart.ShapeRingedCircle {
		t.Errorf("shape = %v, want ringed circle", m.shape)
	}
}

func TestMapAttributesMissingGroupAttr(t *testing.T) {
	net := attrNetwork(t, []string{"x"}, []float64{1})
	_, err := mapAttributes(net, validated(t, Options{NodeGroup: AttrNamed("region")}))
	if err == nil {
		t.Fatal("expected error for missing group attribute")
	}
	if errors.GetCode(err) != errors.ErrCodeAttributeNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeAttributeNotFound)
	}
}

func TestMapWeightsProportionalArea(t *testing.T) {
	net := attrNetwork(t, []string{"", "", ""}, []float64{1, 4, 0})
	m, err := mapAttributes(net, validated(t, Options{Size: 3, WeightMethod: AttrNamed("weight")}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	if !m.sizeScaled {
		t.Error("sizeScaled = false")
	}

	// Area scales with weight, so the size driver scales with sqrt.
	want := []float64{3 * math.Sqrt(0.25), 3, 0}
	for i, w := range want {
		if math.Abs(m.sizeValues[i]-w) > 1e-12 {
			t.Errorf("sizeValues[%d] = %v, want %v", i, m.sizeValues[i], w)
		}
	}
	if len(m.scales) != 1 || m.scales[0].Kind != chart.ScaleSize || m.scales[0].MaxSize != 3 {
		t.Errorf("scales = %+v", m.scales)
	}
	if m.scales[0].Labels != nil {
		t.Errorf("continuous size scale should carry no bucket labels, got %v", m.scales[0].Labels)
	}
}

func TestQuantizeQuartiles(t *testing.T) {
	buckets, labels, err := quantizeQuartiles([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("quantizeQuartiles: %v", err)
	}
	if !reflect.DeepEqual(buckets, []int{1, 2, 3, 4}) {
		t.Errorf("buckets = %v", buckets)
	}
	want := []string{"[1,1.5]", "(1.5,2.5]", "(2.5,3.5]", "(3.5,4]"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestQuantizeQuartilesNonUnique(t *testing.T) {
	_, _, err := quantizeQuartiles([]float64{5, 5, 5, 5, 5})
	if err == nil {
		t.Fatal("expected error for constant weights")
	}
	if errors.GetCode(err) != errors.ErrCodeNonUniqueQuantization {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeNonUniqueQuantization)
	}
}

func TestMapWeightsQuantized(t *testing.T) {
	net := attrNetwork(t, []string{"", "", "", ""}, []float64{1, 2, 3, 4})
	m, err := mapAttributes(net, validated(t, Options{
		Size:            4,
		WeightMethod:    AttrNamed("weight"),
		QuantizeWeights: true,
	}))
	if err != nil {
		t.Fatalf("mapAttributes: %v", err)
	}
	want := []float64{1, 2, 3, 4}
	if !reflect.DeepEqual(m.sizeValues, want) {
		t.Errorf("sizeValues = %v, want %v", m.sizeValues, want)
	}
	if len(m.scales) != 1 || len(m.scales[0].Labels) != 4 {
		t.Errorf("scales = %+v, want one size scale with 4 bucket labels", m.scales)
	}
}

func TestDistinct(t *testing.T) {
	got := distinct([]string{"b", "", "a", "b", "a"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("distinct = %v", got)
	}
}
