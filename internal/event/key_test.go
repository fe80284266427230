package event

import "testing"

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{Char('j'), "j"},
		{Char('J'), "J"},
		{Char('?'), "?"},
		{Char(' '), " "},
		{Special(KeyUp), "up"},
		{Special(KeyEnter), "enter"},
		{Special(KeyEsc), "esc"},
		{Key{Code: KeyRune, Rune: 'c', Ctrl: true}, "ctrl+c"},
		{Key{Code: KeyRune, Rune: 'x', Alt: true}, "alt+x"},
		{Key{Code: KeyCode(99)}, "unknown"},
	}
	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestActionName(t *testing.T) {
	if got := Name(Page{Action: NavUp{N: 1}}); got != "page.event.NavUp" {
		t.Fatalf("expected page.event.NavUp, got %q", got)
	}
	if got := Name(PopupResponse{Response: ClosePopup{}}); got != "popup.event.ClosePopup" {
		t.Fatalf("expected popup.event.ClosePopup, got %q", got)
	}
	if got := Name(Quit{}); got != "event.Quit" {
		t.Fatalf("expected event.Quit, got %q", got)
	}
	if got := Name(nil); got != "none" {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestUrgencyString(t *testing.T) {
	if Warning.String() != "warning" || Error.String() != "error" {
		t.Fatalf("unexpected urgency names %q %q", Warning, Error)
	}
	if got := Urgency(9).String(); got != "urgency(9)" {
		t.Fatalf("expected urgency(9), got %q", got)
	}
}
