package state

import "testing"

func TestNewListSelectsFirst(t *testing.T) {
	l := NewList([]string{"a", "b"})
	if got, ok := l.Selected(); !ok || got != "a" {
		t.Fatalf("expected a selected, got %q (ok=%v)", got, ok)
	}
	empty := NewList[string](nil)
	if _, ok := empty.Selected(); ok {
		t.Fatalf("expected no selection for empty list")
	}
	if empty.Cursor != -1 {
		t.Fatalf("expected cursor -1, got %d", empty.Cursor)
	}
}

func TestMoveClampsWithoutWrapping(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e"})
	if l.MoveUp(1) {
		t.Fatalf("expected no movement above first item")
	}
	if !l.MoveDown(5) {
		t.Fatalf("expected movement on page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor clamped to 4, got %d", l.Cursor)
	}
	if l.MoveDown(1) {
		t.Fatalf("expected no movement past last item")
	}
	if !l.MoveUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	empty := NewList[int](nil)
	if empty.MoveDown(1) {
		t.Fatalf("expected no movement for empty list")
	}
}

func TestSetItemsKeepsCursorInRange(t *testing.T) {
	l := NewList([]int{1, 2, 3, 4})
	l.MoveDown(3)
	l.SetItems([]int{1, 2})
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	l.SetItems(nil)
	if l.Cursor != -1 {
		t.Fatalf("expected cursor -1, got %d", l.Cursor)
	}
	l.SetItems([]int{9})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := NewList([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	l.MoveDown(7)
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", l.ViewportOffset)
	}
	visible := l.Visible(3)
	if len(visible) != 3 || visible[0] != 5 || visible[2] != 7 {
		t.Fatalf("unexpected visible window %v", visible)
	}
	l.MoveUp(7)
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset for unlimited height, got %d", l.ViewportOffset)
	}
}
