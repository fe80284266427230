package mailbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSendTryRecvPreservesOrder(t *testing.T) {
	m := New[int]()
	for i := 0; i < 100; i++ {
		if err := m.Send(i); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	if m.Len() != 100 {
		t.Fatalf("expected 100 queued, got %d", m.Len())
	}
	for i := 0; i < 100; i++ {
		v, ok := m.TryRecv()
		if !ok || v != i {
			t.Fatalf("expected %d, got %d (ok=%v)", i, v, ok)
		}
	}
	if _, ok := m.TryRecv(); ok {
		t.Fatalf("expected empty mailbox")
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	m := New[string]()
	if err := m.Send("a"); err != nil {
		t.Fatalf("send: %v", err)
	}
	m.Close()
	m.Close()
	if err := m.Send("b"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	v, err := m.Recv(context.Background())
	if err != nil || v != "a" {
		t.Fatalf("expected queued value a after close, got %q (%v)", v, err)
	}
	if _, err := m.Recv(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed once drained, got %v", err)
	}
}

func TestRecvWakesOnSend(t *testing.T) {
	m := New[int]()
	got := make(chan int, 1)
	go func() {
		v, err := m.Recv(context.Background())
		if err != nil {
			t.Errorf("recv: %v", err)
		}
		got <- v
	}()
	time.Sleep(10 * time.Millisecond)
	_ = m.Send(42)
	select {
	case v := <-got:
		if v != 42 {
			t.Fatalf("expected 42, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("receiver was not woken")
	}
}

func TestRecvHonoursContext(t *testing.T) {
	m := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := m.Recv(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestConcurrentSendersLoseNothing(t *testing.T) {
	m := New[int]()
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = m.Send(i)
			}
		}()
	}
	wg.Wait()
	count := 0
	for {
		if _, ok := m.TryRecv(); !ok {
			break
		}
		count++
	}
	if count != 8*500 {
		t.Fatalf("expected %d values, got %d", 8*500, count)
	}
}
