package state

import "github.com/atomicstack/mineral/internal/event"

// Popup is the modal overlay currently shown.
type Popup int

const (
	PopupNone Popup = iota
	PopupConfirmExit
	PopupNotification
)

func (p Popup) String() string {
	switch p {
	case PopupNone:
		return "none"
	case PopupConfirmExit:
		return "confirm-exit"
	case PopupNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Notification is one queued message for the user.
type Notification struct {
	Title   string
	Body    string
	Urgency event.Urgency
}

// Notifications is a FIFO queue; the head is the one on screen.
type Notifications struct {
	items []Notification
}

func (q *Notifications) Push(n Notification) {
	q.items = append(q.items, n)
}

// Pop removes the head and reports whether one was removed.
func (q *Notifications) Pop() bool {
	if len(q.items) == 0 {
		return false
	}
	q.items[0] = Notification{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return true
}

func (q *Notifications) Head() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[0], true
}

func (q *Notifications) Len() int {
	return len(q.items)
}
