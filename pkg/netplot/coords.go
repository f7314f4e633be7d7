package netplot

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/elbamos/ggally/pkg/layout"
	"github.com/elbamos/ggally/pkg/network"
	"github.com/elbamos/ggally/pkg/observability"
)

// outlierPercentile is the cutoff quantile for coordinate suppression.
const outlierPercentile = 0.90

// coordinates holds one x/y pair per vertex, indexed like net.Vertices().
// NaN marks a missing coordinate.
type coordinates struct {
	xs []float64
	ys []float64
}

// resolveCoordinates produces vertex positions for the working network.
// Geographic mode reads lon/lat attributes and suppresses outliers; layout
// mode delegates to the force-directed routine.
func resolveCoordinates(net *network.Network, opts *Options) coordinates {
	if opts.geographic() {
		return geographicCoordinates(net, opts)
	}
	return layoutCoordinates(net, opts)
}

// =============================================================================
// Geographic Mode
// =============================================================================

// geographicCoordinates reads the lon/lat attributes and runs the outlier
// cascade. A vertex whose attribute is absent or non-numeric gets NaN; it
// stays plottable as a node while its edges are dropped later.
func geographicCoordinates(net *network.Network, opts *Options) coordinates {
	vertices := net.Vertices()
	c := coordinates{
		xs: make([]float64, len(vertices)),
		ys: make([]float64, len(vertices)),
	}
	for i, v := range vertices {
		c.xs[i] = numberOrNaN(v.Attrs, opts.LonAttr)
		c.ys[i] = numberOrNaN(v.Attrs, opts.LatAttr)
	}
	suppressOutliers(&c)
	return c
}

func numberOrNaN(attrs *network.Attributes, name string) float64 {
	v, err := attrs.Number(name)
	if err != nil {
		return math.NaN()
	}
	return v
}

// suppressOutliers runs the three-pass missing-value cascade. The passes
// are order-sensitive: each consumes the missingness produced by the
// previous one, so they must not be reordered or fused.
//
//  1. Longitudes beyond the 90th percentile of absolute longitude → NaN.
//  2. Latitudes paired with a now-missing longitude, or beyond the 90th
//     percentile of absolute latitude → NaN.
//  3. Longitudes paired with a missing latitude → NaN.
func suppressOutliers(c *coordinates) {
	lonCut := absQuantile(c.xs, outlierPercentile)
	for i, x := range c.xs {
		if !math.IsNaN(x) && math.Abs(x) > lonCut {
			c.xs[i] = math.NaN()
		}
	}

	latCut := absQuantile(c.ys, outlierPercentile)
	for i, y := range c.ys {
		if math.IsNaN(y) {
			continue
		}
		if math.IsNaN(c.xs[i]) || math.Abs(y) > latCut {
			c.ys[i] = math.NaN()
		}
	}

	for i := range c.xs {
		if math.IsNaN(c.ys[i]) {
			c.xs[i] = math.NaN()
		}
	}
}

// absQuantile returns the q-quantile of |values|, ignoring NaNs, using
// linear interpolation between order statistics. With fewer than two
// present values there is nothing to suppress, so +Inf disables the cut.
func absQuantile(values []float64, q float64) float64 {
	abs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			abs = append(abs, math.Abs(v))
		}
	}
	if len(abs) < 2 {
		return math.Inf(1)
	}
	sort.Float64s(abs)
	return stat.Quantile(q, stat.LinInterp, abs, nil)
}

// =============================================================================
// Layout Mode
// =============================================================================

// layoutCoordinates delegates placement to the force-directed routine over
// the network's adjacency matrix. Coordinates are plot-space values with
// no geographic meaning.
func layoutCoordinates(net *network.Network, opts *Options) coordinates {
	n := net.VertexCount()
	if n == 0 {
		return coordinates{}
	}

	observability.Plot().OnLayoutStart(n)
	start := time.Now()

	pts := layout.FruchtermanReingold(
		net.AdjacencyMatrix(),
		layout.WithIterations(opts.LayoutIterations),
		layout.WithSeed(opts.LayoutSeed),
	)

	observability.Plot().OnLayoutComplete(n, time.Since(start))

	c := coordinates{
		xs: make([]float64, n),
		ys: make([]float64, n),
	}
	for i, p := range pts {
		c.xs[i] = p.X
		c.ys[i] = p.Y
	}
	return c
}
