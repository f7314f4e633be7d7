package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultIterations is the number of simulation steps.
	DefaultIterations = 150

	// DefaultSeed seeds the initial random placement for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultFrameWidth and DefaultFrameHeight bound the placement area.
	DefaultFrameWidth  = 1.0
	DefaultFrameHeight = 1.0
)

// Point is a 2-D coordinate in plot space.
type Point struct {
	X float64
	Y float64
}

// =============================================================================
// Options
// =============================================================================

type config struct {
	iterations int
	seed       uint64
	width      float64
	height     float64
}

// Option configures a layout run.
type Option func(*config)

// WithIterations sets the number of simulation steps.
func WithIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// WithSeed seeds the initial random placement.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithFrame sets the width and height of the placement area.
func WithFrame(width, height float64) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width = width
			c.height = height
		}
	}
}

// =============================================================================
// Fruchterman-Reingold
// =============================================================================

// FruchtermanReingold places one point per adjacency-matrix row using
// force-directed simulation. Entry (i, j) > 0 is treated as an edge between
// i and j; weights beyond presence are ignored.
//
// The run is deterministic for a fixed seed and option set.
func FruchtermanReingold(adj *mat.Dense, opts ...Option) []Point {
	cfg := config{
		iterations: DefaultIterations,
		seed:       DefaultSeed,
		width:      DefaultFrameWidth,
		height:     DefaultFrameHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	n, _ := adj.Dims()
	if n == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(int64(cfg.seed)))
	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{X: rng.Float64() * cfg.width, Y: rng.Float64() * cfg.height}
	}
	if n == 1 {
		pos[0] = Point{X: cfg.width / 2, Y: cfg.height / 2}
		return pos
	}

	area := cfg.width * cfg.height
	k := math.Sqrt(area / float64(n)) // ideal pairwise distance
	temp := cfg.width / 10
	cool := temp / float64(cfg.iterations+1)

	disp := make([]Point, n)
	for iter := 0; iter < cfg.iterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				d := math.Hypot(dx, dy)
				if d < 1e-9 {
					// Coincident points: nudge apart deterministically.
					dx, dy, d = 1e-4, 1e-4, math.Sqrt2*1e-4
				}
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}

		// Attraction along edges.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || adj.At(i, j) <= 0 {
					continue
				}
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				d := math.Hypot(dx, dy)
				if d < 1e-9 {
					continue
				}
				f := d * d / k
				disp[i].X -= dx / d * f
				disp[i].Y -= dy / d * f
			}
		}

		// Displace, capped by temperature, clamped to the frame.
		for i := 0; i < n; i++ {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[i].X = clamp(pos[i].X+disp[i].X/d*step, 0, cfg.width)
			pos[i].Y = clamp(pos[i].Y+disp[i].Y/d*step, 0, cfg.height)
		}

		temp -= cool
		if temp < 0 {
			temp = 0
		}
	}

	return pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
