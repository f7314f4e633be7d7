package netplot

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/errors"
	"github.com/elbamos/ggally/pkg/network"
)

// mappedAttrs holds the plot-ready aesthetic columns, indexed like
// net.Vertices().
type mappedAttrs struct {
	labels     []string
	fills      []string
	rings      []string
	sizeValues []float64

	fillGrouped bool
	ringGrouped bool
	sizeScaled  bool
	shape       chart.Shape

	scales []chart.Scale
}

// mapAttributes resolves grouping, weighting, and labeling attributes into
// aesthetic columns. Attribute lookups that fail surface the store's error
// untranslated; quantization failures surface ErrCodeNonUniqueQuantization.
func mapAttributes(net *network.Network, opts *Options) (mappedAttrs, error) {
	vertices := net.Vertices()
	m := mappedAttrs{
		labels:     make([]string, len(vertices)),
		fills:      make([]string, len(vertices)),
		rings:      make([]string, len(vertices)),
		sizeValues: make([]float64, len(vertices)),
		shape:      chart.ShapeCircle,
	}

	// Labels: the vertex identifier, kept only where requested.
	for i, v := range vertices {
		if opts.LabelNodes.want(v.ID) {
			m.labels[i] = v.ID
		}
	}

	// Fill grouping.
	if opts.NodeGroup.IsNamed() {
		m.fillGrouped = true
		for i, v := range vertices {
			group, err := v.Attrs.Text(opts.NodeGroup.Name())
			if err != nil {
				return mappedAttrs{}, err
			}
			m.fills[i] = group
		}
		m.scales = append(m.scales, chart.Scale{
			Kind:   chart.ScaleFill,
			Title:  opts.NodeGroup.Name(),
			Labels: distinct(m.fills),
		})
	}

	// Ring grouping: needs a glyph with separate fill and outline colors.
	if opts.RingGroup.IsNamed() {
		m.ringGrouped = true
		m.shape = chart.ShapeRingedCircle
		for i, v := range vertices {
			group, err := v.Attrs.Text(opts.RingGroup.Name())
			if err != nil {
				return mappedAttrs{}, err
			}
			m.rings[i] = group
		}
		m.scales = append(m.scales, chart.Scale{
			Kind:   chart.ScaleOutline,
			Title:  opts.RingGroup.Name(),
			Labels: distinct(m.rings),
		})
	} else if opts.RingColor != "" {
		m.shape = chart.ShapeRingedCircle
	}

	// Weight → size driver.
	if opts.WeightMethod.IsNamed() {
		if err := mapWeights(vertices, opts, &m); err != nil {
			return mappedAttrs{}, err
		}
	}

	return m, nil
}

// mapWeights reads the weight attribute and fills the size column, either
// quantized into quartile buckets or scaled continuously by area.
func mapWeights(vertices []network.Vertex, opts *Options, m *mappedAttrs) error {
	weights := make([]float64, len(vertices))
	for i, v := range vertices {
		w, err := v.Attrs.Number(opts.WeightMethod.Name())
		if err != nil {
			return err
		}
		weights[i] = w
	}

	m.sizeScaled = true

	if opts.QuantizeWeights {
		buckets, labels, err := quantizeQuartiles(weights)
		if err != nil {
			return err
		}
		for i, b := range buckets {
			m.sizeValues[i] = opts.Size * float64(b) / 4
		}
		m.scales = append(m.scales, chart.Scale{
			Kind:    chart.ScaleSize,
			Title:   opts.WeightMethod.Name(),
			Labels:  labels,
			MaxSize: opts.Size,
		})
		return nil
	}

	// Proportional area: visual area, not radius, scales linearly with
	// weight, so the driver grows with the square root.
	maxW := 0.0
	for _, w := range weights {
		if w > maxW {
			maxW = w
		}
	}
	for i, w := range weights {
		if w <= 0 || maxW <= 0 {
			m.sizeValues[i] = 0
			continue
		}
		m.sizeValues[i] = opts.Size * math.Sqrt(w/maxW)
	}
	m.scales = append(m.scales, chart.Scale{
		Kind:    chart.ScaleSize,
		Title:   opts.WeightMethod.Name(),
		MaxSize: opts.Size,
	})
	return nil
}

// quantizeQuartiles buckets weights into four ordered categories at the
// data's own quartile boundaries; the lowest bucket is closed at the
// minimum. Returns 1-based bucket indices plus legend labels.
func quantizeQuartiles(weights []float64) ([]int, []string, error) {
	q, err := stats.Quartile(stats.Float64Data(weights))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeNonUniqueQuantization, err,
			"cannot compute quartiles over %d weights", len(weights))
	}

	if !(q.Q1 < q.Q2 && q.Q2 < q.Q3) {
		return nil, nil, errors.New(errors.ErrCodeNonUniqueQuantization,
			"quartile boundaries are not unique (q1=%v q2=%v q3=%v)", q.Q1, q.Q2, q.Q3)
	}
	min, _ := stats.Min(stats.Float64Data(weights))
	max, _ := stats.Max(stats.Float64Data(weights))

	buckets := make([]int, len(weights))
	for i, w := range weights {
		switch {
		case w <= q.Q1:
			buckets[i] = 1
		case w <= q.Q2:
			buckets[i] = 2
		case w <= q.Q3:
			buckets[i] = 3
		default:
			buckets[i] = 4
		}
	}

	labels := []string{
		fmt.Sprintf("[%g,%g]", min, q.Q1),
		fmt.Sprintf("(%g,%g]", q.Q1, q.Q2),
		fmt.Sprintf("(%g,%g]", q.Q2, q.Q3),
		fmt.Sprintf("(%g,%g]", q.Q3, max),
	}
	return buckets, labels, nil
}

// distinct returns the sorted distinct non-empty values.
func distinct(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
