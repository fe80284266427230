// Package mailbox provides an unbounded FIFO queue with channel wake-ups, so
// producers never block and a single consumer can select on arrival.
package mailbox

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send after Close, and by Recv once a closed
// mailbox has been drained.
var ErrClosed = errors.New("mailbox closed")

// Mailbox is safe for any number of senders and one receiver.
type Mailbox[T any] struct {
	mu     sync.Mutex
	queue  []T
	closed bool

	ready chan struct{}
	done  chan struct{}
}

// New returns an empty, open mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Send appends v. It never blocks.
func (m *Mailbox[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.queue = append(m.queue, v)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return nil
}

// Ready is signalled after a send. A wake-up may be spurious; drain with
// TryRecv until it reports false.
func (m *Mailbox[T]) Ready() <-chan struct{} {
	return m.ready
}

// Done is closed by Close.
func (m *Mailbox[T]) Done() <-chan struct{} {
	return m.done
}

// TryRecv pops the oldest value without blocking.
func (m *Mailbox[T]) TryRecv() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if len(m.queue) == 0 {
		return zero, false
	}
	v := m.queue[0]
	m.queue[0] = zero
	m.queue = m.queue[1:]
	if len(m.queue) == 0 {
		m.queue = nil
	}
	return v, true
}

// Recv blocks until a value arrives, ctx ends, or the mailbox is closed and
// empty.
func (m *Mailbox[T]) Recv(ctx context.Context) (T, error) {
	for {
		if v, ok := m.TryRecv(); ok {
			return v, nil
		}
		select {
		case <-m.ready:
		case <-m.done:
			if v, ok := m.TryRecv(); ok {
				return v, nil
			}
			var zero T
			return zero, ErrClosed
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Len reports the number of queued values.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Close rejects further sends. Queued values remain receivable. Close is
// idempotent.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
}
