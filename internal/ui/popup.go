package ui

import (
	"fmt"

	"github.com/atomicstack/mineral/internal/state"
	"github.com/charmbracelet/lipgloss"
)

func (v *View) confirmExitPopup() string {
	return v.styles.Popup.Render(lipgloss.JoinVertical(lipgloss.Left,
		v.styles.PopupTitle.Render("Quit mineral?"),
		"",
		v.styles.PopupHint.Render("y/q exit · n stay"),
	))
}

func (v *View) notificationPopup(st *state.App) string {
	n, ok := st.Notification()
	if !ok {
		return ""
	}
	title := n.Title
	if title == "" {
		title = n.Urgency.String()
	}
	hint := "q/esc dismiss"
	if pending := st.PendingNotifications(); pending > 1 {
		hint = fmt.Sprintf("%s · %d more", hint, pending-1)
	}
	return v.styles.Popup.Render(lipgloss.JoinVertical(lipgloss.Left,
		v.styles.ForUrgency(n.Urgency).Render(fmt.Sprintf("[%s] %s", n.Urgency, title)),
		"",
		v.styles.PanelBody.Render(n.Body),
		"",
		v.styles.PopupHint.Render(hint),
	))
}

func (v *View) placePopup(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
