package dispatch

import "github.com/charmbracelet/bubbles/key"

// PageStep is how far K and J move the cursor.
const PageStep = 5

// KeyMap holds every binding the dispatcher matches. It doubles as the
// help.KeyMap for the help panel.
type KeyMap struct {
	// exit prompt
	Accept  key.Binding
	Decline key.Binding
	// notification popup
	Close key.Binding
	// global
	Quit        key.Binding
	Help        key.Binding
	DebugNotify key.Binding
	// main page
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Forward     key.Binding
	Back        key.Binding
	PrevSection key.Binding
	NextSection key.Binding
}

// DefaultKeyMap returns the standard bindings. The debug notification key is
// disabled unless debug is set.
func DefaultKeyMap(debug bool) KeyMap {
	km := KeyMap{
		Accept:      key.NewBinding(key.WithKeys("y", "q"), key.WithHelp("y/q", "exit")),
		Decline:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "stay")),
		Close:       key.NewBinding(key.WithKeys("q", "Q", "esc"), key.WithHelp("q/esc", "dismiss")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		DebugNotify: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "test notification")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "up 5")),
		PageDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "down 5")),
		Forward:     key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter/l", "open/play")),
		Back:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "back")),
		PrevSection: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "prev section")),
		NextSection: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "next section")),
	}
	km.DebugNotify.SetEnabled(debug)
	return km
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Forward, k.Back, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Forward, k.Back, k.PrevSection, k.NextSection},
		{k.Help, k.Quit, k.DebugNotify},
	}
}
