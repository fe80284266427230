// Package render coalesces state changes into at most one frame per tick.
package render

import (
	"time"

	"github.com/atomicstack/mineral/internal/logging/events"
)

// DefaultInterval is roughly 30 frames per second.
const DefaultInterval = 33 * time.Millisecond

// Scheduler holds the dirty flag. It is owned by the main loop.
type Scheduler struct {
	interval time.Duration
	dirty    bool
	throttle *throttle
	draw     func() int
	frames   int
}

// NewScheduler starts dirty so the first tick draws. draw renders one frame
// and returns its line count for tracing.
func NewScheduler(interval time.Duration, draw func() int) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	// ticker jitter can deliver two ticks slightly closer than interval
	return &Scheduler{
		interval: interval,
		dirty:    true,
		throttle: newThrottle(interval / 2),
		draw:     draw,
	}
}

// Interval is the tick period the main loop should use.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// MarkDirty requests a redraw on the next tick.
func (s *Scheduler) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether a redraw is pending.
func (s *Scheduler) Dirty() bool {
	return s.dirty
}

// Frames counts completed draws.
func (s *Scheduler) Frames() int {
	return s.frames
}

// Tick draws if dirty and the previous draw is old enough, clearing the flag.
// It reports whether a frame was drawn.
func (s *Scheduler) Tick(now time.Time) bool {
	if !s.dirty || !s.throttle.allow(now) {
		return false
	}
	s.dirty = false
	lines := 0
	if s.draw != nil {
		lines = s.draw()
	}
	s.frames++
	events.Render.Frame(s.frames, lines)
	return true
}
