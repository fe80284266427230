package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/mineral/internal/cache"
	"github.com/atomicstack/mineral/internal/dispatch"
	"github.com/atomicstack/mineral/internal/format/table"
	"github.com/atomicstack/mineral/internal/model"
	"github.com/atomicstack/mineral/internal/state"
	"github.com/atomicstack/mineral/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	panelMinTotalWidth = 60  // below this the cover panel is hidden
	panelFraction      = 0.4 // share of the width given to the cover panel

	headerSeparator = " › "
)

// Covers is the cover cache as seen by the view.
type Covers interface {
	Get(kind cache.Kind, id uint64) cache.ImageState
	NotRequested() cache.ImageState
}

// View renders frames. It keeps no per-frame state.
type View struct {
	styles *theme.Styles
	keys   dispatch.KeyMap
	help   help.Model
}

func New(keys dispatch.KeyMap) *View {
	return &View{styles: theme.Default(), keys: keys, help: help.New()}
}

// Render draws the whole screen for st.
func (v *View) Render(st *state.App, covers Covers) string {
	width, height := st.Width, st.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := joinLines(fitWidth([]styledLine{{text: v.header(st), style: v.styles.Header}}, width))
	footer := v.footer(st, width)
	bodyHeight := height - 1 - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch st.Popup() {
	case state.PopupConfirmExit:
		body = v.placePopup(v.confirmExitPopup(), width, bodyHeight)
	case state.PopupNotification:
		body = v.placePopup(v.notificationPopup(st), width, bodyHeight)
	default:
		body = v.mainPage(st, covers, width, bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (v *View) header(st *state.App) string {
	segments := []string{"mineral", st.Main.Section().String()}
	if st.Main.Viewing() {
		if c, ok := st.Main.SelectedCollection(); ok {
			segments = append(segments, c.Name)
		}
	}
	return strings.Join(segments, headerSeparator)
}

func (v *View) footer(st *state.App, width int) string {
	h := v.help
	h.Width = width
	h.ShowAll = st.ShowHelp
	return h.View(v.keys)
}

func (v *View) mainPage(st *state.App, covers Covers, width, height int) string {
	panelW := panelWidth(width)
	listW := width - panelW
	left := padRows(v.listColumn(st.Main, listW, height), listW)
	if panelW == 0 {
		return left
	}
	right := v.coverPanel(st.Main, covers, panelW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func panelWidth(width int) int {
	if width < panelMinTotalWidth {
		return 0
	}
	return int(float64(width) * panelFraction)
}

func (v *View) listColumn(page *state.MainPage, width, height int) string {
	var (
		labels []string
		cursor int
		offset int
		empty  string
	)
	if tracks := page.Tracks(); tracks != nil {
		window := *tracks
		window.EnsureCursorVisible(height)
		labels = trackLabels(window.Visible(height))
		cursor, offset = window.Cursor, window.ViewportOffset
		empty = "(no tracks)"
	} else {
		window := *page.Collections()
		window.EnsureCursorVisible(height)
		labels = collectionLabels(window.Visible(height))
		cursor, offset = window.Cursor, window.ViewportOffset
		empty = fmt.Sprintf("(no %s)", strings.ToLower(page.Section().String()))
	}

	lines := make([]styledLine, 0, height)
	if len(labels) == 0 {
		lines = append(lines, styledLine{text: empty, style: v.styles.Info})
	}
	for i, label := range labels {
		lines = append(lines, v.buildItemLine(label, offset+i == cursor, width))
	}
	lines = fitWidth(capRows(lines, height), width)
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	return joinLines(lines)
}

func collectionLabels(items []model.Collection) []string {
	rows := make([][]string, len(items))
	for i, c := range items {
		rows[i] = []string{c.Name, fmt.Sprintf("%d tracks", len(c.Tracks))}
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

func trackLabels(items []model.Track) []string {
	rows := make([][]string, len(items))
	for i, t := range items {
		rows[i] = []string{t.Name, model.FormatDuration(t.Duration)}
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

// buildItemLine pads the row so the selected item's background spans the
// column.
func (v *View) buildItemLine(label string, selected bool, width int) styledLine {
	lineStyle := v.styles.Item
	indicatorStyle := v.styles.ItemIndicator
	if selected {
		indicatorStyle = v.styles.SelectedItemIndicator
		lineStyle = v.styles.SelectedItem
	}
	const indicator = "▌"
	return styledLine{
		prefix:      indicator,
		text:        padRight(" "+label, width-ansi.StringWidth(indicator)),
		prefixStyle: indicatorStyle,
		style:       lineStyle,
	}
}
