package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/mineral/internal/cache"
	"github.com/atomicstack/mineral/internal/model"
	"github.com/atomicstack/mineral/internal/state"
	"github.com/charmbracelet/lipgloss"
)

var sectionKinds = map[state.Section]cache.Kind{
	state.SectionPlaylists: cache.KindPlaylist,
	state.SectionAlbums:    cache.KindAlbum,
	state.SectionArtists:   cache.KindArtist,
}

// coverState asks the cache for the selected collection's cover.
func coverState(page *state.MainPage, covers Covers) cache.ImageState {
	if covers == nil {
		return cache.ImageState{Status: cache.StatusNotRequested}
	}
	c, ok := page.SelectedCollection()
	if !ok {
		return covers.NotRequested()
	}
	return covers.Get(sectionKinds[page.Section()], c.ID)
}

func (v *View) coverPanel(page *state.MainPage, covers Covers, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var content []styledLine
	img := coverState(page, covers)
	switch img.Status {
	case cache.StatusLoaded:
		for _, line := range img.Image.Lines {
			content = append(content, styledLine{text: line, raw: true})
		}
	case cache.StatusLoading:
		content = append(content, styledLine{text: "Loading cover…", style: v.styles.Loading})
	case cache.StatusFailed:
		content = append(content, styledLine{text: "Cover unavailable: " + img.Err, style: v.styles.PanelError})
	default:
		content = append(content, styledLine{text: "(nothing selected)", style: v.styles.Info})
	}
	content = append(content, styledLine{})
	for _, line := range v.details(page) {
		content = append(content, styledLine{text: line, style: v.styles.PanelBody})
	}
	content = fitWidth(capRows(content, innerH), innerW)

	border := v.styles.PanelBorder
	rows := make([]string, 0, height)
	rows = append(rows, v.panelTop("Cover", innerW))
	body := strings.Split(joinLines(content), "\n")
	for i := 0; i < innerH; i++ {
		row := ""
		if i < len(body) {
			row = body[i]
		}
		rows = append(rows, border.Render("│")+padRight(row, innerW)+border.Render("│"))
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return strings.Join(rows, "\n")
}

// panelTop draws ╭─ title ───╮ across innerW+2 cells.
func (v *View) panelTop(title string, innerW int) string {
	seg := " " + title + " "
	dashes := innerW - 1 - lipgloss.Width(seg)
	if dashes < 0 {
		seg = ""
		dashes = innerW - 1
	}
	if dashes < 0 {
		dashes = 0
	}
	border := v.styles.PanelBorder
	return border.Render("╭─") + v.styles.PanelTitle.Render(seg) + border.Render(strings.Repeat("─", dashes)+"╮")
}

func (v *View) details(page *state.MainPage) []string {
	c, ok := page.SelectedCollection()
	if !ok {
		return nil
	}
	lines := []string{c.Name, fmt.Sprintf("%d tracks", len(c.Tracks))}
	if tracks := page.Tracks(); tracks != nil {
		if t, ok := tracks.Selected(); ok {
			lines = append(lines, "", fmt.Sprintf("▶ %d/%d %s", tracks.Cursor+1, tracks.Len(), t.Name))
			if t.Artist != "" {
				lines = append(lines, t.Artist)
			}
			lines = append(lines, model.FormatDuration(t.Duration))
		}
		return lines
	}
	if c.Description != "" {
		lines = append(lines, c.Description)
	}
	return lines
}
