package netplot

import (
	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/network"
)

// compose appends the accumulated layers to the chart in fixed order:
// edges beneath points beneath labels, with scales attached after the
// point layer. Returns the label row count for instrumentation.
func compose(ch chart.Chart, net *network.Network, c coordinates, m mappedAttrs, line chart.LineLayer, edgeCount int, opts *Options) int {
	if edgeCount > 0 {
		ch.AddLineLayer(line)
	}

	vertices := net.Vertices()
	points := chart.PointLayer{
		Rows:        make([]chart.PointRow, len(vertices)),
		Color:       opts.NodeColor,
		RingColor:   opts.RingColor,
		Alpha:       opts.NodeAlpha.Or(opts.Alpha),
		Size:        opts.Size,
		Shape:       m.shape,
		SizeScaled:  m.sizeScaled,
		FillGrouped: m.fillGrouped,
		RingGrouped: m.ringGrouped,
	}
	for i, v := range vertices {
		points.Rows[i] = chart.PointRow{
			ID:        v.ID,
			X:         c.xs[i],
			Y:         c.ys[i],
			Fill:      m.fills[i],
			Ring:      m.rings[i],
			SizeValue: m.sizeValues[i],
		}
	}
	ch.AddPointLayer(points)

	for _, s := range m.scales {
		ch.AddScale(s)
	}

	var labels []chart.TextRow
	for i := range vertices {
		if m.labels[i] == "" {
			continue
		}
		labels = append(labels, chart.TextRow{X: c.xs[i], Y: c.ys[i], Text: m.labels[i]})
	}
	if len(labels) > 0 {
		ch.AddTextLayer(chart.TextLayer{
			Rows:    labels,
			Size:    opts.LabelSize,
			Options: opts.LabelOptions,
		})
	}

	return len(labels)
}
