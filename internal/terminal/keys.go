package terminal

import (
	"github.com/atomicstack/mineral/internal/event"
	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[tea.KeyType]event.KeyCode{
	tea.KeyEnter:     event.KeyEnter,
	tea.KeyEsc:       event.KeyEsc,
	tea.KeyUp:        event.KeyUp,
	tea.KeyDown:      event.KeyDown,
	tea.KeyLeft:      event.KeyLeft,
	tea.KeyRight:     event.KeyRight,
	tea.KeyTab:       event.KeyTab,
	tea.KeyBackspace: event.KeyBackspace,
	tea.KeyHome:      event.KeyHome,
	tea.KeyEnd:       event.KeyEnd,
	tea.KeyPgUp:      event.KeyPgUp,
	tea.KeyPgDown:    event.KeyPgDown,
}

// Translate maps a Bubble Tea input message to an application event.
func Translate(msg tea.Msg) (event.AppEvent, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k, ok := KeyFromTea(msg)
		if !ok {
			return nil, false
		}
		return event.KeyInput{Key: k}, true
	case tea.WindowSizeMsg:
		return event.Resize{Cols: msg.Width, Rows: msg.Height}, true
	}
	return nil, false
}

// KeyFromTea normalises a key message. Pastes and unmapped keys report false.
// Bubble Tea only reports presses, so every key is a KeyPress.
func KeyFromTea(msg tea.KeyMsg) (event.Key, bool) {
	k := event.Key{Kind: event.KeyPress, Alt: msg.Alt}
	if msg.Paste {
		return event.Key{}, false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return event.Key{}, false
		}
		k.Code = event.KeyRune
		k.Rune = msg.Runes[0]
		return k, true
	case tea.KeySpace:
		k.Code = event.KeyRune
		k.Rune = ' '
		return k, true
	}
	if code, ok := specialKeys[msg.Type]; ok {
		k.Code = code
		return k, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		k.Code = event.KeyRune
		k.Ctrl = true
		k.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
		return k, true
	}
	return event.Key{}, false
}
