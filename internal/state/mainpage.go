package state

import (
	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/model"
)

// Section is one of the main page's collection lists.
type Section int

const (
	SectionPlaylists Section = iota
	SectionAlbums
	SectionArtists
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionPlaylists:
		return "Playlists"
	case SectionAlbums:
		return "Albums"
	case SectionArtists:
		return "Artists"
	default:
		return "Unknown"
	}
}

// ErrSectionSwitching is the notification body raised for section switching.
const ErrSectionSwitching = "section switching is not implemented yet"

// PageResult describes the outcome of a page action.
type PageResult struct {
	Changed bool
	// Play is set when the action selected a track for playback.
	Play *model.Track
	// Unimplemented names a feature the action asked for that does not exist.
	Unimplemented string
}

// MainPage shows one section's collections, or the tracks of the collection
// the user drilled into.
type MainPage struct {
	section  Section
	sections [sectionCount]*List[model.Collection]
	tracks   *List[model.Track]
}

// NewMainPage starts on the playlists section with empty lists.
func NewMainPage() *MainPage {
	p := &MainPage{section: SectionPlaylists}
	for i := range p.sections {
		p.sections[i] = NewList[model.Collection](nil)
	}
	return p
}

func (p *MainPage) Section() Section {
	return p.section
}

// Viewing reports whether a collection's track list is open.
func (p *MainPage) Viewing() bool {
	return p.tracks != nil
}

// Collections is the active section's list.
func (p *MainPage) Collections() *List[model.Collection] {
	return p.sections[p.section]
}

// Tracks is the open track list, nil when none is open.
func (p *MainPage) Tracks() *List[model.Track] {
	return p.tracks
}

// SetCollections replaces a section's contents. An open track list belonging
// to the replaced section is closed.
func (p *MainPage) SetCollections(s Section, items []model.Collection) {
	if s < 0 || s >= sectionCount {
		return
	}
	p.sections[s].SetItems(items)
	if s == p.section {
		p.tracks = nil
	}
}

// SelectedCollection returns the collection under the section cursor.
func (p *MainPage) SelectedCollection() (model.Collection, bool) {
	return p.Collections().Selected()
}

// Apply runs a navigation action.
func (p *MainPage) Apply(action event.PageAction) PageResult {
	switch a := action.(type) {
	case event.NavUp:
		if p.tracks != nil {
			return PageResult{Changed: p.tracks.MoveUp(a.N)}
		}
		return PageResult{Changed: p.Collections().MoveUp(a.N)}
	case event.NavDown:
		if p.tracks != nil {
			return PageResult{Changed: p.tracks.MoveDown(a.N)}
		}
		return PageResult{Changed: p.Collections().MoveDown(a.N)}
	case event.NavForward:
		return p.forward()
	case event.NavBack:
		if p.tracks == nil {
			return PageResult{}
		}
		p.tracks = nil
		return PageResult{Changed: true}
	case event.NextSection, event.PrevSection:
		return PageResult{Unimplemented: ErrSectionSwitching}
	}
	return PageResult{}
}

func (p *MainPage) forward() PageResult {
	if p.tracks != nil {
		track, ok := p.tracks.Selected()
		if !ok {
			return PageResult{}
		}
		return PageResult{Play: &track}
	}
	collection, ok := p.SelectedCollection()
	if !ok {
		return PageResult{}
	}
	p.tracks = NewList(collection.Tracks)
	return PageResult{Changed: true}
}
