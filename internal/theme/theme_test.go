package theme

import (
	"testing"

	"github.com/atomicstack/mineral/internal/event"
)

func TestForUrgencyFallsBackToInfo(t *testing.T) {
	s := Default()
	for _, u := range []event.Urgency{event.Debug, event.Info, event.Warning, event.Error} {
		if s.ForUrgency(u) == nil {
			t.Fatalf("expected a style for %s", u)
		}
	}
	if s.ForUrgency(event.Urgency(42)) != s.Info {
		t.Fatalf("expected unknown urgency to use the info style")
	}
}
