package app

import (
	"time"

	"github.com/atomicstack/mineral/internal/event"
)

// Harness drives a Loop programmatically for integration tests, with a
// controllable clock.
type Harness struct {
	loop  *Loop
	clock time.Time
}

// NewHarness wraps loop and replaces its clock.
func NewHarness(loop *Loop) *Harness {
	h := &Harness{loop: loop, clock: time.Unix(0, 0)}
	loop.now = func() time.Time { return h.clock }
	return h
}

// Send handles ev and every event it caused, reporting whether Exit was seen.
func (h *Harness) Send(ev event.AppEvent) bool {
	if h.loop.Handle(ev) {
		return true
	}
	return h.loop.drain()
}

// Tick advances the clock by d and delivers one render tick.
func (h *Harness) Tick(d time.Duration) bool {
	h.clock = h.clock.Add(d)
	return h.loop.scheduler.Tick(h.clock)
}

// Frames reports how many frames were drawn.
func (h *Harness) Frames() int {
	return h.loop.scheduler.Frames()
}
