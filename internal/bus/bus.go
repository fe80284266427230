// Package bus merges terminal input, OS signals and application events into
// the single ordered stream the main loop consumes.
package bus

import (
	"context"
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/mailbox"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultSignals are the termination signals that end the program.
var DefaultSignals = []os.Signal{syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

// Options configures Start.
type Options struct {
	// Input is the driver's raw message stream. A nil channel disables the
	// terminal-input task.
	Input <-chan tea.Msg
	// Signals overrides DefaultSignals. An empty, non-nil slice disables the
	// signal task.
	Signals []os.Signal
	// InitGlobal installs the inbound mailbox as the process-wide emitter.
	// The input and signal tasks then publish through event.Emit.
	InitGlobal bool
}

// Bus owns the inbound mailbox and the background producer tasks.
type Bus struct {
	inbox *mailbox.Mailbox[event.AppEvent]
	// emit is what the producer tasks publish through.
	emit event.Emitter

	ctx    context.Context
	cancel context.CancelFunc

	stopInput chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// Start creates the bus and spawns its tasks.
func Start(ctx context.Context, opts Options) *Bus {
	ctx, cancel := context.WithCancel(ctx)
	b := &Bus{
		inbox:     mailbox.New[event.AppEvent](),
		ctx:       ctx,
		cancel:    cancel,
		stopInput: make(chan struct{}),
	}
	b.emit = b
	if opts.InitGlobal {
		event.Init(b.inbox)
		b.emit = event.Global()
	}
	if opts.Input != nil {
		b.wg.Add(1)
		go b.runInput(opts.Input)
	}
	signals := opts.Signals
	if signals == nil {
		signals = DefaultSignals
	}
	if len(signals) > 0 {
		b.wg.Add(1)
		go b.runSignals(signals)
	}
	return b
}

// Emit enqueues ev. After Close the event is logged and dropped.
func (b *Bus) Emit(ev event.AppEvent) {
	events.Bus.Emit(fmt.Sprintf("%T", ev))
	event.Send(b.inbox, ev)
}

// Ready wakes the consumer after new events arrive.
func (b *Bus) Ready() <-chan struct{} {
	return b.inbox.Ready()
}

// Next pops the oldest pending event without blocking.
func (b *Bus) Next() (event.AppEvent, bool) {
	return b.inbox.TryRecv()
}

// StopInput ends the terminal-input task without emitting Exit. It is safe to
// call more than once.
func (b *Bus) StopInput() {
	b.stopOnce.Do(func() {
		close(b.stopInput)
	})
}

// Close stops both tasks, closes the mailbox and waits for the tasks to
// return.
func (b *Bus) Close() {
	b.StopInput()
	b.cancel()
	b.inbox.Close()
	b.wg.Wait()
}
