// Package reducer applies actions to the application state. It is the only
// code that mutates state.App.
package reducer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/model"
	"github.com/atomicstack/mineral/internal/state"
)

// Library scans configured locations into playlists.
type Library interface {
	Scan(locations []string) ([]model.Collection, []error)
}

// Player starts playback without blocking.
type Player interface {
	Play(ctx context.Context, t model.Track) error
}

// Options wires the reducer's collaborators.
type Options struct {
	Library   Library
	Player    Player
	Locations []string
}

// Reducer owns the mutation rules.
type Reducer struct {
	ctx       context.Context
	state     *state.App
	emit      event.Emitter
	library   Library
	player    Player
	locations []string
}

// New builds a reducer over st. Events it raises (Exit, PlayTrack) go to emit.
func New(ctx context.Context, st *state.App, emit event.Emitter, opts Options) *Reducer {
	return &Reducer{
		ctx:       ctx,
		state:     st,
		emit:      emit,
		library:   opts.Library,
		player:    opts.Player,
		locations: opts.Locations,
	}
}

// Handle applies a and reports whether anything visible changed. The
// notification invariant is checked afterwards.
func (r *Reducer) Handle(a event.Action) bool {
	changed := r.apply(a)
	events.Reducer.Action(event.Name(a), changed)
	r.state.CheckInvariants()
	return changed
}

// Resize records the terminal size and reports whether it changed.
func (r *Reducer) Resize(cols, rows int) bool {
	if !r.state.Resize(cols, rows) {
		return false
	}
	events.Render.Resize(cols, rows)
	return true
}

func (r *Reducer) apply(a event.Action) bool {
	switch a := a.(type) {
	case event.Quit:
		return r.state.ConfirmExit()
	case event.Help:
		r.state.ShowHelp = !r.state.ShowHelp
		return true
	case event.Notify:
		r.notify(state.NotificationFromAction(a))
		return true
	case event.Page:
		return r.page(a.Action)
	case event.PopupResponse:
		return r.popup(a.Response)
	case event.LoadLibrary:
		return r.loadLibrary()
	case event.PlayTrack:
		return r.play(a.Track)
	}
	logging.Warn("unhandled action", "action", fmt.Sprintf("%T", a))
	return false
}

func (r *Reducer) notify(n state.Notification) {
	r.state.Notify(n)
	events.Reducer.Popup(r.state.Popup().String(), r.state.PendingNotifications())
}

func (r *Reducer) page(a event.PageAction) bool {
	res := r.state.Main.Apply(a)
	if res.Play != nil {
		r.emit.Emit(event.ActionEvent{Action: event.PlayTrack{Track: *res.Play}})
	}
	if res.Unimplemented != "" {
		logging.Warn("unimplemented page action", "action", fmt.Sprintf("%T", a))
		r.notify(state.Notification{Title: "Not implemented", Body: res.Unimplemented, Urgency: event.Warning})
		return true
	}
	if res.Changed {
		r.traceCursor()
	}
	return res.Changed
}

func (r *Reducer) traceCursor() {
	main := r.state.Main
	if tracks := main.Tracks(); tracks != nil {
		events.Reducer.Cursor("tracks", tracks.Cursor)
		return
	}
	events.Reducer.Cursor(strings.ToLower(main.Section().String()), main.Collections().Cursor)
}

func (r *Reducer) popup(resp event.Response) bool {
	switch resp := resp.(type) {
	case event.ConfirmExit:
		if r.state.Popup() != state.PopupConfirmExit {
			return false
		}
		if resp.Accepted {
			r.emit.Emit(event.Exit{})
			return false
		}
		return r.state.DeclineExit()
	case event.ClosePopup:
		changed := r.state.CloseNotification()
		events.Reducer.Popup(r.state.Popup().String(), r.state.PendingNotifications())
		return changed
	}
	return false
}

func (r *Reducer) loadLibrary() bool {
	if r.library == nil {
		return false
	}
	collections, errs := r.library.Scan(r.locations)
	r.state.Main.SetCollections(state.SectionPlaylists, collections)
	if len(errs) > 0 {
		for _, err := range errs {
			logging.Warn("library location skipped", "err", err)
		}
		r.notify(state.Notification{
			Title:   "Library",
			Body:    summarise(errs),
			Urgency: event.Warning,
		})
	}
	return true
}

func summarise(errs []error) string {
	if len(errs) == 1 {
		return fmt.Sprintf("skipped 1 location: %v", errs[0])
	}
	return fmt.Sprintf("skipped %d locations: %v", len(errs), errors.Join(errs...))
}

func (r *Reducer) play(t model.Track) bool {
	if r.player == nil {
		return false
	}
	if err := r.player.Play(r.ctx, t); err != nil {
		logging.Error(fmt.Errorf("play %q: %w", t.Name, err))
		r.notify(state.Notification{Title: "Playback", Body: err.Error(), Urgency: event.Error})
		return true
	}
	return false
}
