package events

import "github.com/atomicstack/mineral/internal/logging"

type BusTracer struct{}

var Bus = BusTracer{}

func (BusTracer) Emit(event string) {
	logging.Trace("bus.emit", map[string]interface{}{"event": event})
}

func (BusTracer) Dropped(event, reason string) {
	logging.Trace("bus.dropped", map[string]interface{}{"event": event, "reason": reason})
}

func (BusTracer) InputDropped(msg string) {
	logging.Trace("bus.input.dropped", map[string]interface{}{"msg": msg})
}

func (BusTracer) InputStopped(reason string) {
	logging.Trace("bus.input.stop", map[string]interface{}{"reason": reason})
}

func (BusTracer) Signal(name string) {
	logging.Trace("bus.signal", map[string]interface{}{"signal": name})
}
