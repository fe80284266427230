package state

// List is an ordered selection with a clamped cursor and a scroll offset.
// An empty list has no selection (cursor -1).
type List[T any] struct {
	Items          []T
	Cursor         int
	ViewportOffset int
}

// NewList selects the first item when there is one.
func NewList[T any](items []T) *List[T] {
	l := &List[T]{}
	l.SetItems(items)
	return l
}

// SetItems replaces the contents, keeping the cursor in range.
func (l *List[T]) SetItems(items []T) {
	l.Items = items
	switch {
	case len(items) == 0:
		l.Cursor = -1
		l.ViewportOffset = 0
	case l.Cursor < 0:
		l.Cursor = 0
	case l.Cursor >= len(items):
		l.Cursor = len(items) - 1
	}
	if l.ViewportOffset > l.Cursor && l.Cursor >= 0 {
		l.ViewportOffset = l.Cursor
	}
}

// Len reports the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Selected returns the item under the cursor.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return zero, false
	}
	return l.Items[l.Cursor], true
}

// MoveUp moves the cursor towards the first item, stopping there.
func (l *List[T]) MoveUp(n int) bool {
	return l.moveCursorBy(-n)
}

// MoveDown moves the cursor towards the last item, stopping there.
func (l *List[T]) MoveDown(n int) bool {
	return l.moveCursorBy(n)
}

func (l *List[T]) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List[T]) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = -1
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

// Visible returns the window of items starting at the viewport offset.
func (l *List[T]) Visible(maxVisible int) []T {
	if l == nil || len(l.Items) == 0 {
		return nil
	}
	start := l.ViewportOffset
	if start < 0 || start >= len(l.Items) {
		start = 0
	}
	end := len(l.Items)
	if maxVisible > 0 && start+maxVisible < end {
		end = start + maxVisible
	}
	return l.Items[start:end]
}
