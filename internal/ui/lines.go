package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// styledLine is one row of a column. prefix and text are styled separately;
// raw text already carries its own escapes and is never restyled.
type styledLine struct {
	prefix      string
	text        string
	prefixStyle *lipgloss.Style
	style       *lipgloss.Style
	raw         bool
}

// capRows keeps at most height lines, ending with an ellipsis row when some
// were cut.
func capRows(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	kept := append([]styledLine(nil), lines[:height-1]...)
	return append(kept, styledLine{text: "…"})
}

// fitWidth truncates every line to width display cells, prefix included.
func fitWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	fitted := make([]styledLine, len(lines))
	for i, line := range lines {
		line.prefix = truncateText(line.prefix, width)
		line.text = truncateText(line.text, width-ansi.StringWidth(line.prefix))
		fitted[i] = line
	}
	return fitted
}

func joinLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw {
			text = paint(line.style, text)
		}
		out[i] = paint(line.prefixStyle, line.prefix) + text
	}
	return strings.Join(out, "\n")
}

func paint(style *lipgloss.Style, s string) string {
	if style == nil || s == "" {
		return s
	}
	return style.Render(s)
}

// truncateText cuts a possibly styled string to width display cells, marking
// the cut with an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// padRows makes every row of block exactly width cells wide.
func padRows(block string, width int) string {
	rows := strings.Split(block, "\n")
	for i, row := range rows {
		rows[i] = padRight(truncateText(row, width), width)
	}
	return strings.Join(rows, "\n")
}

func padRight(row string, width int) string {
	if w := ansi.StringWidth(row); w < width {
		return row + strings.Repeat(" ", width-w)
	}
	return row
}
