package widgets

import (
	"fmt"
	"time"
)

// Slider bounds.
const (
	ProgressMin = 0
	ProgressMax = 100
)

// DefaultProgressInterval is the automatic step period.
const DefaultProgressInterval = 100 * time.Millisecond

// ProgressSurface mirrors a value to the numeric display and the fill bar.
type ProgressSurface interface {
	ShowProgress(value int)
}

// Progress is a slider with an automatic, wrapping advance.
type Progress struct {
	value    int
	task     Task
	interval time.Duration
	sched    Scheduler
	surface  ProgressSurface
	log      Recorder
}

// NewProgress creates a slider at zero. A non-positive interval uses
// DefaultProgressInterval.
func NewProgress(surface ProgressSurface, log Recorder, sched Scheduler, interval time.Duration) *Progress {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &Progress{surface: surface, log: log, sched: sched, interval: interval}
}

// Value returns the slider value.
func (p *Progress) Value() int { return p.value }

// Running reports whether the automatic advance is active.
func (p *Progress) Running() bool { return p.task != nil }

// Slide sets the value from a manual slider move, clamped to the slider range.
func (p *Progress) Slide(v int) {
	if p.surface == nil {
		return
	}
	v = max(ProgressMin, min(ProgressMax, v))
	p.value = v
	p.surface.ShowProgress(v)
	p.log.Append("Slider changed", fmt.Sprintf("value: %d%%", v))
}

// Start begins the automatic advance. Starting while running does nothing.
func (p *Progress) Start() {
	if p.surface == nil || p.sched == nil || p.task != nil {
		return
	}
	p.log.Append("Auto-progress started", "")
	p.task = p.sched.Every(p.interval, p.step)
}

// Stop cancels the automatic advance. Stopping while idle does nothing.
func (p *Progress) Stop() {
	if p.task == nil {
		return
	}
	p.task.Cancel()
	p.task = nil
	p.log.Append("Auto-progress stopped", "")
}

// step advances by one, wrapping past the maximum back to the minimum.
func (p *Progress) step() {
	v := p.value + 1
	if v > ProgressMax {
		v = ProgressMin
	}
	p.value = v
	p.surface.ShowProgress(v)
}
