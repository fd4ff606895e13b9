package uibridge

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hubastard/canopy/engine/scratch"
)

// Debug collects per-frame bridge timings and counts for the on-screen
// overlay. Recording happens during Display; the overlay is built during
// the render pass.
type Debug struct {
	enabled atomic.Bool

	buildDur  time.Duration
	updateDur time.Duration
	drawDur   time.Duration
	events    int
	messages  int
	prims     int
}

func (d *Debug) SetEnabled(on bool) { d.enabled.Store(on) }
func (d *Debug) Toggle()            { d.enabled.Store(!d.enabled.Load()) }
func (d *Debug) Enabled() bool      { return d.enabled.Load() }

func (d *Debug) buildDone(dur time.Duration) { d.buildDur = dur }

func (d *Debug) updateDone(dur time.Duration, events, messages int) {
	d.updateDur = dur
	d.events = events
	d.messages = messages
}

func (d *Debug) drawDone(dur time.Duration, prims int) {
	d.drawDur = dur
	d.prims = prims
}

// Overlay formats the last recorded frame through the scratch buffer.
func (d *Debug) Overlay() []string {
	if !d.enabled.Load() {
		return nil
	}
	ms := func(dur time.Duration) float64 { return float64(dur) / float64(time.Millisecond) }
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return []string{
		scratch.Sprintf("ui build  %.2f ms", ms(d.buildDur)),
		scratch.Sprintf("ui update %.2f ms", ms(d.updateDur)),
		scratch.Sprintf("ui draw   %.2f ms", ms(d.drawDur)),
		scratch.Sprintf("events %d  messages %d  prims %d", d.events, d.messages, d.prims),
		scratch.Sprintf("heap %.1f MB  goroutines %d", float64(mem.HeapAlloc)/(1<<20), runtime.NumGoroutine()),
	}
}
