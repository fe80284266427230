package bus

import (
	"os"
	"os/signal"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging"
	"github.com/atomicstack/mineral/internal/logging/events"
)

// runSignals turns the first termination signal into a single Exit.
func (b *Bus) runSignals(signals []os.Signal) {
	defer b.wg.Done()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	defer signal.Stop(ch)

	select {
	case <-b.ctx.Done():
	case sig := <-ch:
		events.Bus.Signal(sig.String())
		logging.Info("received signal, exiting", "signal", sig.String())
		b.emit.Emit(event.Exit{})
	}
}
