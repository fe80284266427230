// Package playback hands tracks to an external player process.
package playback

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/atomicstack/mineral/internal/logging"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/model"
	"github.com/google/uuid"
)

// DefaultCommand is used when no player is configured.
var DefaultCommand = []string{"mpv", "--no-video", "--really-quiet"}

var (
	ErrNoPlayer = errors.New("no player command configured")
	ErrNoPath   = errors.New("track has no local file")
)

// Exec runs Command with the track path appended. Starting a new track stops
// the previous one.
type Exec struct {
	Command []string

	mu      sync.Mutex
	current *session
}

type session struct {
	id   string
	cmd  *exec.Cmd
	done chan struct{}
}

func NewExec(command []string) *Exec {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &Exec{Command: command}
}

// Play starts the player and returns without waiting for it. Only failures
// to start are returned; the exit status is logged.
func (e *Exec) Play(ctx context.Context, t model.Track) error {
	if len(e.Command) == 0 {
		return ErrNoPlayer
	}
	if t.Path == "" {
		return fmt.Errorf("%w: %s", ErrNoPath, t.Name)
	}
	args := append(append([]string(nil), e.Command[1:]...), t.Path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.Command[0], err)
	}
	s := &session{id: uuid.NewString(), cmd: cmd, done: make(chan struct{})}
	events.Playback.Start(s.id, t.Name, t.Path)
	logging.Info("playback started", "id", s.id, "track", t.Name)

	e.mu.Lock()
	prev := e.current
	e.current = s
	e.mu.Unlock()
	if prev != nil {
		prev.stop()
	}

	go func() {
		defer close(s.done)
		err := cmd.Wait()
		events.Playback.Finish(s.id, err)
		if err != nil && ctx.Err() == nil {
			logging.Warn("player exited", "id", s.id, "err", err)
		}
	}()
	return nil
}

// Stop kills the running player, if any, and waits for it to exit.
func (e *Exec) Stop() {
	e.mu.Lock()
	s := e.current
	e.current = nil
	e.mu.Unlock()
	if s != nil {
		s.stop()
	}
}

func (s *session) stop() {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	<-s.done
}
