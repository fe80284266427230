package bus

import (
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/terminal"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *Bus) runInput(input <-chan tea.Msg) {
	defer b.wg.Done()
	for {
		select {
		case <-b.stopInput:
			traceInputStop("stopped")
			return
		case <-b.ctx.Done():
			traceInputStop("cancelled")
			return
		case msg, ok := <-input:
			if !ok {
				traceInputStop("closed")
				return
			}
			if ev, ok := terminal.Translate(msg); ok {
				b.emit.Emit(ev)
			}
		}
	}
}

func traceInputStop(reason string) {
	events.Bus.InputStopped(reason)
}
