package state

import (
	"fmt"

	"github.com/atomicstack/mineral/internal/event"
)

// Page identifies the active page.
type Page int

const (
	PageMain Page = iota
)

func (p Page) String() string {
	if p == PageMain {
		return "main"
	}
	return "unknown"
}

// App is the whole UI state. Only the reducer mutates it.
type App struct {
	popup         Popup
	notifications Notifications
	page          Page

	Main     *MainPage
	ShowHelp bool
	Width    int
	Height   int
}

// New returns the initial state: main page, no popup.
func New() *App {
	return &App{Main: NewMainPage(), page: PageMain}
}

func (a *App) Popup() Popup {
	return a.popup
}

func (a *App) Page() Page {
	return a.page
}

// Notification returns the notification on screen.
func (a *App) Notification() (Notification, bool) {
	return a.notifications.Head()
}

// PendingNotifications counts queued notifications including the visible one.
func (a *App) PendingNotifications() int {
	return a.notifications.Len()
}

// Notify queues n and shows the notification popup. A pending exit prompt
// is replaced.
func (a *App) Notify(n Notification) {
	a.notifications.Push(n)
	a.popup = PopupNotification
}

// CloseNotification drops the visible notification.
func (a *App) CloseNotification() bool {
	if a.popup != PopupNotification || !a.notifications.Pop() {
		return false
	}
	if a.notifications.Len() == 0 {
		a.popup = PopupNone
	}
	return true
}

// ConfirmExit shows the exit prompt.
func (a *App) ConfirmExit() bool {
	if a.popup == PopupConfirmExit {
		return false
	}
	a.popup = PopupConfirmExit
	return true
}

// DeclineExit closes the exit prompt, returning to any queued notification.
func (a *App) DeclineExit() bool {
	if a.popup != PopupConfirmExit {
		return false
	}
	a.popup = PopupNone
	if a.notifications.Len() > 0 {
		a.popup = PopupNotification
	}
	return true
}

// Resize records the terminal size.
func (a *App) Resize(cols, rows int) bool {
	if a.Width == cols && a.Height == rows {
		return false
	}
	a.Width, a.Height = cols, rows
	return true
}

// CheckInvariants panics when the popup state disagrees with the
// notification queue. An exit prompt may sit above queued notifications.
func (a *App) CheckInvariants() {
	queued := a.notifications.Len()
	if a.popup == PopupNotification && queued == 0 {
		panic("state: notification popup shown with an empty queue")
	}
	if a.popup == PopupNone && queued > 0 {
		panic(fmt.Sprintf("state: %d notification(s) queued but no popup shown", queued))
	}
}

// NotificationFromAction converts a Notify action.
func NotificationFromAction(n event.Notify) Notification {
	return Notification{Title: n.Title, Body: n.Body, Urgency: n.Urgency}
}
