package event

import "strings"

// KeyCode identifies the key that produced a KeyInput.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
)

// KeyKind distinguishes presses from releases and repeats. Only presses are
// dispatched.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
	KeyRepeat
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
}

// Key is a terminal-independent key event.
type Key struct {
	Code KeyCode
	Rune rune
	Kind KeyKind
	Alt  bool
	Ctrl bool
}

// Char builds a plain key press for r.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Special builds a key press for a non-printing key.
func Special(code KeyCode) Key {
	return Key{Code: code}
}

// String renders the key using the names key bindings match against, e.g.
// "j", "J", "up", "enter", "ctrl+c", "alt+x".
func (k Key) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Code == KeyRune {
		b.WriteRune(k.Rune)
		return b.String()
	}
	if name, ok := keyNames[k.Code]; ok {
		b.WriteString(name)
		return b.String()
	}
	b.WriteString("unknown")
	return b.String()
}
