package event

import (
	"fmt"

	"github.com/atomicstack/mineral/internal/model"
)

// Action is a semantic command handled by the reducer.
type Action interface {
	action()
}

type Quit struct{}

type Help struct{}

// Notify enqueues a notification popup.
type Notify struct {
	Title   string
	Body    string
	Urgency Urgency
}

// Page routes a navigation action to the active page.
type Page struct {
	Action PageAction
}

// PopupResponse answers the popup currently on screen.
type PopupResponse struct {
	Response Response
}

// LoadLibrary rescans the configured library locations.
type LoadLibrary struct{}

// PlayTrack hands a track to the playback collaborator.
type PlayTrack struct {
	Track model.Track
}

func (Quit) action()          {}
func (Help) action()          {}
func (Notify) action()        {}
func (Page) action()          {}
func (PopupResponse) action() {}
func (LoadLibrary) action()   {}
func (PlayTrack) action()     {}

// PageAction is a navigation command for the main page.
type PageAction interface {
	pageAction()
}

type NavUp struct{ N int }

type NavDown struct{ N int }

type NavBack struct{}

type NavForward struct{}

type NextSection struct{}

type PrevSection struct{}

func (NavUp) pageAction()       {}
func (NavDown) pageAction()     {}
func (NavBack) pageAction()     {}
func (NavForward) pageAction()  {}
func (NextSection) pageAction() {}
func (PrevSection) pageAction() {}

// Response is a popup answer.
type Response interface {
	response()
}

// ConfirmExit answers the exit confirmation popup.
type ConfirmExit struct {
	Accepted bool
}

// ClosePopup dismisses the notification at the head of the queue.
type ClosePopup struct{}

func (ConfirmExit) response() {}
func (ClosePopup) response()  {}

// Urgency grades notifications.
type Urgency int

const (
	Debug Urgency = iota
	Info
	Warning
	Error
)

func (u Urgency) String() string {
	switch u {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("urgency(%d)", int(u))
	}
}

// Name returns a short label for an action, used in traces.
func Name(a Action) string {
	switch a := a.(type) {
	case nil:
		return "none"
	case Page:
		return fmt.Sprintf("page.%T", a.Action)
	case PopupResponse:
		return fmt.Sprintf("popup.%T", a.Response)
	default:
		return fmt.Sprintf("%T", a)
	}
}
