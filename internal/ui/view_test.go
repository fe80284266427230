package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/mineral/internal/cache"
	"github.com/atomicstack/mineral/internal/dispatch"
	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/model"
	"github.com/atomicstack/mineral/internal/state"
	"github.com/charmbracelet/lipgloss"
)

type fakeCovers struct {
	states map[cache.Key]cache.ImageState
	gets   []cache.Key
}

func (f *fakeCovers) Get(kind cache.Kind, id uint64) cache.ImageState {
	key := cache.Key{Kind: kind, ID: id}
	f.gets = append(f.gets, key)
	if st, ok := f.states[key]; ok {
		return st
	}
	return cache.ImageState{Status: cache.StatusLoading}
}

func (f *fakeCovers) NotRequested() cache.ImageState {
	return cache.ImageState{Status: cache.StatusNotRequested}
}

func newState(width, height int) *state.App {
	st := state.New()
	st.Resize(width, height)
	st.Main.SetCollections(state.SectionPlaylists, []model.Collection{
		{ID: 1, Name: "Focus", Description: "/music/Focus", Tracks: []model.Track{{ID: 10, Name: "Intro"}, {ID: 11, Name: "Outro"}}},
		{ID: 2, Name: "Run"},
	})
	return st
}

func TestRenderMainPageRequestsSelectedCover(t *testing.T) {
	st := newState(100, 20)
	covers := &fakeCovers{}
	frame := New(dispatch.DefaultKeyMap(false)).Render(st, covers)

	for _, want := range []string{"mineral › Playlists", "Focus", "2 tracks", "Run", "Loading cover…"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected %q in frame:\n%s", want, frame)
		}
	}
	if len(covers.gets) != 1 || covers.gets[0] != (cache.Key{Kind: cache.KindPlaylist, ID: 1}) {
		t.Fatalf("expected one request for playlist 1, got %v", covers.gets)
	}
	if h := lipgloss.Height(frame); h != 20 {
		t.Fatalf("expected frame height 20, got %d", h)
	}
}

func TestRenderShowsLoadedAndFailedCovers(t *testing.T) {
	st := newState(100, 20)
	covers := &fakeCovers{states: map[cache.Key]cache.ImageState{
		{Kind: cache.KindPlaylist, ID: 1}: {Status: cache.StatusLoaded, Image: &cache.Image{Lines: []string{"COVERART"}, Cols: 8, Rows: 1}},
		{Kind: cache.KindPlaylist, ID: 2}: {Status: cache.StatusFailed, Err: "unimplemented: network cover fetch"},
	}}
	v := New(dispatch.DefaultKeyMap(false))
	if frame := v.Render(st, covers); !strings.Contains(frame, "COVERART") {
		t.Fatalf("expected cover lines in frame:\n%s", frame)
	}
	st.Main.Apply(event.NavDown{N: 1})
	if frame := v.Render(st, covers); !strings.Contains(frame, "Cover unavailable") {
		t.Fatalf("expected failure text in frame:\n%s", frame)
	}
}

func TestRenderTrackListBreadcrumb(t *testing.T) {
	st := newState(100, 20)
	st.Main.Apply(event.NavForward{})
	frame := New(dispatch.DefaultKeyMap(false)).Render(st, &fakeCovers{})
	for _, want := range []string{"Playlists › Focus", "Intro", "Outro", "--:--", "▶ 1/2 Intro"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected %q in frame:\n%s", want, frame)
		}
	}
}

func TestRenderPopups(t *testing.T) {
	st := newState(80, 20)
	v := New(dispatch.DefaultKeyMap(false))
	st.ConfirmExit()
	if frame := v.Render(st, &fakeCovers{}); !strings.Contains(frame, "Quit mineral?") {
		t.Fatalf("expected exit prompt:\n%s", frame)
	}
	st.Notify(state.Notification{Title: "Library", Body: "skipped 1 location", Urgency: event.Warning})
	st.Notify(state.Notification{Title: "Second"})
	frame := v.Render(st, &fakeCovers{})
	for _, want := range []string{"[warning] Library", "skipped 1 location", "1 more"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected %q in notification:\n%s", want, frame)
		}
	}
}

func TestRenderNarrowHidesPanelAndEmptyList(t *testing.T) {
	st := state.New()
	st.Resize(40, 10)
	covers := &fakeCovers{}
	frame := New(dispatch.DefaultKeyMap(false)).Render(st, covers)
	if strings.Contains(frame, "Cover") {
		t.Fatalf("expected no cover panel at 40 columns:\n%s", frame)
	}
	if !strings.Contains(frame, "(no playlists)") {
		t.Fatalf("expected empty placeholder:\n%s", frame)
	}
	if len(covers.gets) != 0 {
		t.Fatalf("expected no cover requests without a panel")
	}
}

func TestRenderHelpToggle(t *testing.T) {
	st := newState(100, 20)
	v := New(dispatch.DefaultKeyMap(false))
	short := v.Render(st, &fakeCovers{})
	if strings.Contains(short, "next section") {
		t.Fatalf("expected short help only:\n%s", short)
	}
	st.ShowHelp = true
	full := v.Render(st, &fakeCovers{})
	if !strings.Contains(full, "next section") {
		t.Fatalf("expected full help:\n%s", full)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("abc", 1); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestTruncateTextCountsCells(t *testing.T) {
	got := truncateText("日本語の曲", 5)
	if got != "日本…" {
		t.Fatalf("expected 日本…, got %q", got)
	}
	if w := lipgloss.Width(got); w != 5 {
		t.Fatalf("expected width 5, got %d", w)
	}
	if got := truncateText("日本", 4); got != "日本" {
		t.Fatalf("expected untouched wide text, got %q", got)
	}
}

func TestFitWidthIncludesPrefix(t *testing.T) {
	lines := fitWidth([]styledLine{{prefix: "▌", text: " 東京の夜"}}, 6)
	if got := lines[0].prefix + lines[0].text; lipgloss.Width(got) > 6 {
		t.Fatalf("expected at most 6 cells, got %d (%q)", lipgloss.Width(got), got)
	}
	if !strings.HasSuffix(lines[0].text, "…") {
		t.Fatalf("expected a truncation mark, got %q", lines[0].text)
	}
}

func TestPadRows(t *testing.T) {
	out := padRows("ab\nabcdefgh", 5)
	rows := strings.Split(out, "\n")
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 5 {
			t.Fatalf("row %d: expected width 5, got %d (%q)", i, w, row)
		}
	}
}
