package netplot

import (
	"math"

	"github.com/google/uuid"

	"github.com/elbamos/ggally/pkg/chart"
	"github.com/elbamos/ggally/pkg/geo"
	"github.com/elbamos/ggally/pkg/network"
)

// edgeGeometry keys edges by their endpoint coordinates so identical
// geometries share one interpolated midpoint.
type edgeGeometry struct {
	lat1, lon1 float64
	lat2, lon2 float64
}

// buildEdges projects the edge list into a line layer using the resolved
// coordinates. Edges with a missing endpoint coordinate are dropped, as are
// degenerate edges.
//
// Degeneracy is decided by latitude equality alone; longitude is never
// compared (see DESIGN.md, "edge degeneracy check"). An edge between two
// distinct vertices at the same latitude is therefore dropped even though
// it is drawable.
func buildEdges(net *network.Network, c coordinates, opts *Options) (chart.LineLayer, int) {
	layer := chart.LineLayer{
		Color: opts.SegmentColor,
		Alpha: opts.SegmentAlpha.Or(opts.Alpha),
		Width: opts.SegmentSize,
	}
	if opts.ArrowSize > 0 {
		layer.Arrow = &chart.Arrow{Size: opts.ArrowSize}
	}

	midpoints := make(map[edgeGeometry]geo.LonLat)
	edgeCount := 0

	for _, e := range net.Edges() {
		i, iOK := net.Index(e.From)
		j, jOK := net.Index(e.To)
		if !iOK || !jOK {
			continue
		}

		x1, y1 := c.xs[i], c.ys[i]
		x2, y2 := c.xs[j], c.ys[j]
		if math.IsNaN(x1) || math.IsNaN(y1) || math.IsNaN(x2) || math.IsNaN(y2) {
			continue
		}
		if y1 == y2 {
			continue
		}

		if !opts.GreatCircles {
			layer.Segments = append(layer.Segments, chart.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
			edgeCount++
			continue
		}

		key := edgeGeometry{lat1: y1, lon1: x1, lat2: y2, lon2: x2}
		mid, ok := midpoints[key]
		if !ok {
			mid = geo.Midpoint(geo.LonLat{Lon: x1, Lat: y1}, geo.LonLat{Lon: x2, Lat: y2})
			midpoints[key] = mid
		}

		group := uuid.NewString()
		layer.Paths = append(layer.Paths,
			chart.PathPoint{Group: group, Seq: 0, X: x1, Y: y1},
			chart.PathPoint{Group: group, Seq: 1, X: mid.Lon, Y: mid.Lat},
			chart.PathPoint{Group: group, Seq: 2, X: x2, Y: y2},
		)
		edgeCount++
	}

	return layer, edgeCount
}
