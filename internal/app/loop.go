package app

import (
	"context"
	"time"

	"github.com/atomicstack/mineral/internal/dispatch"
	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/reducer"
	"github.com/atomicstack/mineral/internal/render"
	"github.com/atomicstack/mineral/internal/state"
)

// Source is the receive side of the event bus.
type Source interface {
	Ready() <-chan struct{}
	Next() (event.AppEvent, bool)
}

// Loop is the single consumer of the bus. It owns the state, the reducer, the
// dirty flag and (through the draw function) the cover cache.
type Loop struct {
	events     Source
	state      *state.App
	dispatcher dispatch.Dispatcher
	reducer    *reducer.Reducer
	scheduler  *render.Scheduler
	now        func() time.Time
}

// LoopOptions wires a Loop.
type LoopOptions struct {
	Events     Source
	State      *state.App
	Dispatcher dispatch.Dispatcher
	Reducer    *reducer.Reducer
	Scheduler  *render.Scheduler
}

func NewLoop(opts LoopOptions) *Loop {
	return &Loop{
		events:     opts.Events,
		state:      opts.State,
		dispatcher: opts.Dispatcher,
		reducer:    opts.Reducer,
		scheduler:  opts.Scheduler,
		now:        time.Now,
	}
}

// Run consumes events and ticks until Exit arrives or ctx ends.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.scheduler.Interval())
	defer ticker.Stop()
	l.scheduler.Tick(l.now())
	for {
		select {
		case <-ctx.Done():
			events.App.Stop("cancelled")
			return nil
		case now := <-ticker.C:
			l.scheduler.Tick(now)
		case <-l.events.Ready():
			if l.drain() {
				events.App.Stop("exit")
				return nil
			}
		}
	}
}

// drain handles every pending event and reports whether Exit was seen.
func (l *Loop) drain() bool {
	for {
		ev, ok := l.events.Next()
		if !ok {
			return false
		}
		if l.Handle(ev) {
			return true
		}
	}
}

// Handle processes one event and reports whether the loop should stop.
func (l *Loop) Handle(ev event.AppEvent) bool {
	switch ev := ev.(type) {
	case event.Exit:
		return true
	case event.KeyInput:
		if a, ok := l.dispatcher.Dispatch(l.state.Popup(), l.state.Page(), ev.Key); ok {
			l.apply(a)
		}
	case event.Resize:
		if l.reducer.Resize(ev.Cols, ev.Rows) {
			l.scheduler.MarkDirty()
		}
	case event.ActionEvent:
		l.apply(ev.Action)
	case event.RenderTick:
		l.scheduler.Tick(l.now())
	case event.MarkDirty:
		l.scheduler.MarkDirty()
	}
	return false
}

func (l *Loop) apply(a event.Action) {
	if l.reducer.Handle(a) {
		l.scheduler.MarkDirty()
	}
}
