package netplot

import (
	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/network"
	"github.com/elbamos/ggally/pkg/observability"
)

// Plot draws a network onto a chart and returns the chart.
//
// The graph may be a *network.Network or a gonum directed/undirected
// graph; anything else fails with ErrCodeInvalidInput. When opts.Chart is
// nil the vertices are placed by force-directed layout and the layers
// accumulate on a fresh chart.Memory; when it is non-nil the vertices are
// positioned by their longitude/latitude attributes and the layers extend
// the supplied chart.
//
// The caller's graph is never mutated: subsetting operates on a clone.
// Plot never saves, shows, or renders; backends decide what accumulated
// layers mean.
func Plot(g any, opts Options) (chart.Chart, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	net, err := network.Normalize(g)
	if err != nil {
		return nil, err
	}

	work := net.Clone()
	if opts.SubsetThreshold > 0 {
		if err := work.SubsetByWeight(opts.WeightMethod.Name(), opts.SubsetThreshold); err != nil {
			return nil, err
		}
	}

	coords := resolveCoordinates(work, &opts)

	attrs, err := mapAttributes(work, &opts)
	if err != nil {
		return nil, err
	}

	line, edgeCount := buildEdges(work, coords, &opts)

	ch := opts.Chart
	if ch == nil {
		ch = chart.NewMemory()
	}
	labelCount := compose(ch, work, coords, attrs, line, edgeCount, &opts)

	observability.Plot().OnComposeComplete(work.VertexCount(), edgeCount, labelCount)

	return ch, nil
}
