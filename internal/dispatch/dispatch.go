// Package dispatch maps key presses to actions. Dispatch is pure: the result
// depends only on the popup, the page and the key.
package dispatch

import (
	"fmt"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/state"
	"github.com/charmbracelet/bubbles/key"
)

// Dispatcher holds the key table. The zero value has no bindings; use New.
type Dispatcher struct {
	keys KeyMap
}

// New builds a dispatcher. The debug notification key is active when debug
// is set or the binary was built with the debug tag.
func New(debug bool) Dispatcher {
	return Dispatcher{keys: DefaultKeyMap(debug || DebugBuild)}
}

// Keys exposes the bindings for help rendering.
func (d Dispatcher) Keys() KeyMap {
	return d.keys
}

// Dispatch resolves k. Popups take precedence over global keys, which take
// precedence over page keys. Only presses dispatch.
func (d Dispatcher) Dispatch(popup state.Popup, page state.Page, k event.Key) (event.Action, bool) {
	action, ok := d.resolve(popup, page, k)
	events.Dispatch.Key(k.String(), popup.String(), page.String(), event.Name(action))
	return action, ok
}

func (d Dispatcher) resolve(popup state.Popup, page state.Page, k event.Key) (event.Action, bool) {
	if k.Kind != event.KeyPress {
		return nil, false
	}
	switch popup {
	case state.PopupConfirmExit:
		return d.confirmExit(k)
	case state.PopupNotification:
		if key.Matches(k, d.keys.Close) {
			return event.PopupResponse{Response: event.ClosePopup{}}, true
		}
		return nil, false
	}

	switch {
	case key.Matches(k, d.keys.Quit):
		return event.Quit{}, true
	case key.Matches(k, d.keys.Help):
		return event.Help{}, true
	case key.Matches(k, d.keys.DebugNotify):
		return event.Notify{
			Title:   "Debug",
			Body:    fmt.Sprintf("test notification from key %q", k.String()),
			Urgency: event.Debug,
		}, true
	}

	if page == state.PageMain {
		return d.mainPage(k)
	}
	return nil, false
}

func (d Dispatcher) confirmExit(k event.Key) (event.Action, bool) {
	switch {
	case key.Matches(k, d.keys.Accept):
		return event.PopupResponse{Response: event.ConfirmExit{Accepted: true}}, true
	case key.Matches(k, d.keys.Decline):
		return event.PopupResponse{Response: event.ConfirmExit{Accepted: false}}, true
	}
	return nil, false
}

func (d Dispatcher) mainPage(k event.Key) (event.Action, bool) {
	var a event.PageAction
	switch {
	case key.Matches(k, d.keys.Up):
		a = event.NavUp{N: 1}
	case key.Matches(k, d.keys.Down):
		a = event.NavDown{N: 1}
	case key.Matches(k, d.keys.PageUp):
		a = event.NavUp{N: PageStep}
	case key.Matches(k, d.keys.PageDown):
		a = event.NavDown{N: PageStep}
	case key.Matches(k, d.keys.Forward):
		a = event.NavForward{}
	case key.Matches(k, d.keys.Back):
		a = event.NavBack{}
	case key.Matches(k, d.keys.PrevSection):
		a = event.PrevSection{}
	case key.Matches(k, d.keys.NextSection):
		a = event.NextSection{}
	default:
		return nil, false
	}
	return event.Page{Action: a}, true
}
