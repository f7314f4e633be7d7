// Package observability provides hooks for instrumenting the plot pipeline.
//
// The pipeline itself takes no logging or metrics dependency; it emits
// events through a hook interface that defaults to no-ops. Applications
// register an implementation at startup to route events wherever they like
// (structured logs, Prometheus, traces).
//
//	func main() {
//	    observability.SetPlotHooks(&myHooks{})
//	    // ... plot away
//	}
package observability

import (
	"sync"
	"time"
)

// PlotHooks receives events from the plotting pipeline.
type PlotHooks interface {
	// OnLayoutStart fires before force-directed placement begins.
	OnLayoutStart(vertexCount int)

	// OnLayoutComplete fires when placement finishes.
	OnLayoutComplete(vertexCount int, duration time.Duration)

	// OnComposeComplete fires after layers are appended to the chart,
	// with the row counts of the point, edge, and label layers.
	OnComposeComplete(points, edges, labels int)
}

// NoopPlotHooks is a PlotHooks implementation that does nothing.
type NoopPlotHooks struct{}

// OnLayoutStart implements PlotHooks.
func (NoopPlotHooks) OnLayoutStart(int) {}

// OnLayoutComplete implements PlotHooks.
func (NoopPlotHooks) OnLayoutComplete(int, time.Duration) {}

// OnComposeComplete implements PlotHooks.
func (NoopPlotHooks) OnComposeComplete(int, int, int) {}

var (
	mu        sync.RWMutex
	plotHooks PlotHooks = NoopPlotHooks{}
)

// SetPlotHooks registers the hooks used by the pipeline.
// Passing nil restores the no-op default.
func SetPlotHooks(h PlotHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		plotHooks = NoopPlotHooks{}
		return
	}
	plotHooks = h
}

// Plot returns the currently registered hooks.
func Plot() PlotHooks {
	mu.RLock()
	defer mu.RUnlock()
	return plotHooks
}
