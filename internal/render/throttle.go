package render

import "time"

// throttle enforces a minimum interval between successive operations.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// allow reports whether an operation may run at now, and if so reserves the
// slot.
func (t *throttle) allow(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
