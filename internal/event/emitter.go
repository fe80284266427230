package event

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/mineral/internal/logging"
	"github.com/atomicstack/mineral/internal/logging/events"
)

// ErrNotInitialised is logged when Emit is called before Init.
var ErrNotInitialised = errors.New("event: emit called before the emitter was initialised")

// Sink is the receiving end behind the emitter. Send must not block.
type Sink interface {
	Send(AppEvent) error
}

// Emitter publishes events onto the bus.
type Emitter interface {
	Emit(AppEvent)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(AppEvent)

func (f EmitterFunc) Emit(ev AppEvent) { f(ev) }

type slot struct {
	sink Sink
}

var global atomic.Pointer[slot]

// Init installs the process-wide sink. It may be called once; a second call
// is a programming error and panics.
func Init(sink Sink) {
	if sink == nil {
		panic("event: Init called with a nil sink")
	}
	if !global.CompareAndSwap(nil, &slot{sink: sink}) {
		panic("event: emitter already initialised; Init must be called exactly once")
	}
}

// Emit sends ev through the global sink. Before Init, or once the sink has
// been closed, the event is logged and dropped.
func Emit(ev AppEvent) {
	s := global.Load()
	if s == nil {
		events.Bus.Dropped(fmt.Sprintf("%T", ev), "uninitialised")
		logging.Error(fmt.Errorf("%w (%T)", ErrNotInitialised, ev))
		return
	}
	Send(s.sink, ev)
}

// Send delivers ev to sink, logging and dropping it when the sink refuses.
func Send(sink Sink, ev AppEvent) {
	if err := sink.Send(ev); err != nil {
		events.Bus.Dropped(fmt.Sprintf("%T", ev), err.Error())
		logging.Warn("event dropped", "event", fmt.Sprintf("%T", ev), "err", err)
	}
}

// Global returns an Emitter backed by the process-wide sink.
func Global() Emitter {
	return EmitterFunc(Emit)
}
