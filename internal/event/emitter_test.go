package event

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/mineral/internal/logging"
)

type recordingSink struct {
	got []AppEvent
	err error
}

func (s *recordingSink) Send(ev AppEvent) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, ev)
	return nil
}

func resetGlobal(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mineral.log")
	logging.Configure(path)
	global.Store(nil)
	t.Cleanup(func() {
		global.Store(nil)
		logging.Configure("")
	})
	return path
}

func TestEmitBeforeInitIsDropped(t *testing.T) {
	path := resetGlobal(t)
	Emit(Exit{})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected the drop to be logged: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, ErrNotInitialised.Error()) || !strings.Contains(text, "event.Exit") {
		t.Fatalf("expected uninitialised drop of event.Exit in log, got:\n%s", text)
	}
}

func TestInitTwicePanics(t *testing.T) {
	resetGlobal(t)
	Init(&recordingSink{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected second Init to panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "already initialised") {
			t.Fatalf("expected descriptive panic, got %v", r)
		}
	}()
	Init(&recordingSink{})
}

func TestEmitDeliversInOrder(t *testing.T) {
	resetGlobal(t)
	sink := &recordingSink{}
	Init(sink)
	Emit(KeyInput{Key: Char('j')})
	Global().Emit(Resize{Cols: 80, Rows: 24})
	if len(sink.got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.got))
	}
	if _, ok := sink.got[0].(KeyInput); !ok {
		t.Fatalf("expected KeyInput first, got %T", sink.got[0])
	}
	if r, ok := sink.got[1].(Resize); !ok || r.Cols != 80 || r.Rows != 24 {
		t.Fatalf("expected Resize{80 24}, got %#v", sink.got[1])
	}
}

func TestEmitToClosedSinkIsDropped(t *testing.T) {
	resetGlobal(t)
	sink := &recordingSink{err: errors.New("closed")}
	Init(sink)
	Emit(Exit{})
	if len(sink.got) != 0 {
		t.Fatalf("expected no delivered events, got %d", len(sink.got))
	}
}
