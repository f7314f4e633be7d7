package chart

// LayerKind identifies an accumulated layer in call order.
type LayerKind int

// Layer kinds recorded by Memory.
const (
	LayerLine LayerKind = iota
	LayerPoint
	LayerText
	LayerScale
)

// Memory is an in-memory Chart that records every layer in call order.
// It is the default accumulation target in layout mode and the test double
// for asserting on pipeline output.
type Memory struct {
	order []LayerKind

	points []PointLayer
	lines  []LineLayer
	texts  []TextLayer
	scales []Scale
}

// NewMemory creates an empty recording chart.
func NewMemory() *Memory {
	return &Memory{}
}

// AddPointLayer implements Chart.
func (m *Memory) AddPointLayer(layer PointLayer) {
	m.order = append(m.order, LayerPoint)
	m.points = append(m.points, layer)
}

// AddLineLayer implements Chart.
func (m *Memory) AddLineLayer(layer LineLayer) {
	m.order = append(m.order, LayerLine)
	m.lines = append(m.lines, layer)
}

// AddTextLayer implements Chart.
func (m *Memory) AddTextLayer(layer TextLayer) {
	m.order = append(m.order, LayerText)
	m.texts = append(m.texts, layer)
}

// AddScale implements Chart.
func (m *Memory) AddScale(scale Scale) {
	m.order = append(m.order, LayerScale)
	m.scales = append(m.scales, scale)
}

// Order returns the kinds of accumulated layers in call order.
func (m *Memory) Order() []LayerKind { return m.order }

// PointLayers returns accumulated point layers in call order.
func (m *Memory) PointLayers() []PointLayer { return m.points }

// LineLayers returns accumulated line layers in call order.
func (m *Memory) LineLayers() []LineLayer { return m.lines }

// TextLayers returns accumulated text layers in call order.
func (m *Memory) TextLayers() []TextLayer { return m.texts }

// Scales returns accumulated scales in call order.
func (m *Memory) Scales() []Scale { return m.scales }

// Replay re-issues every recorded layer against dst in the original call
// order. It lets a pipeline accumulate into a Memory first and rasterize
// onto a concrete backend afterwards.
func (m *Memory) Replay(dst Chart) {
	var pi, li, ti, si int
	for _, kind := range m.order {
		switch kind {
		case LayerPoint:
			dst.AddPointLayer(m.points[pi])
			pi++
		case LayerLine:
			dst.AddLineLayer(m.lines[li])
			li++
		case LayerText:
			dst.AddTextLayer(m.texts[ti])
			ti++
		case LayerScale:
			dst.AddScale(m.scales[si])
			si++
		}
	}
}
