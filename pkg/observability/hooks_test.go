package observability

import (
	"testing"
	"time"
)

type recordingHooks struct {
	layoutStarts int
	layoutDone   int
	composed     [3]int
}

func (r *recordingHooks) OnLayoutStart(int)                   { r.layoutStarts++ }
func (r *recordingHooks) OnLayoutComplete(int, time.Duration) { r.layoutDone++ }
func (r *recordingHooks) OnComposeComplete(points, edges, labels int) {
	r.composed = [3]int{points, edges, labels}
}

func TestSetPlotHooks(t *testing.T) {
	t.Cleanup(func() { SetPlotHooks(nil) })

	rec := &recordingHooks{}
	SetPlotHooks(rec)

	Plot().OnLayoutStart(5)
	Plot().OnLayoutComplete(5, time.Millisecond)
	Plot().OnComposeComplete(5, 4, 2)

	if rec.layoutStarts != 1 || rec.layoutDone != 1 {
		t.Errorf("layout events = %d starts, %d completes, want 1, 1", rec.layoutStarts, rec.layoutDone)
	}
	if rec.composed != [3]int{5, 4, 2} {
		t.Errorf("compose event = %v, want [5 4 2]", rec.composed)
	}
}

func TestSetPlotHooksNilRestoresNoop(t *testing.T) {
	SetPlotHooks(nil)
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Errorf("Plot() = %T, want NoopPlotHooks", Plot())
	}
	// No-ops must be safe to call.
	Plot().OnLayoutStart(0)
	Plot().OnComposeComplete(0, 0, 0)
}
