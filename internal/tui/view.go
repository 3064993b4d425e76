package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/theme"
)

const (
	thumbRune    = "█"
	trackRune    = "│"
	ellipsis     = "…"
	popupPadding = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderPage()
	if m.contentsVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderContents())
	}
	if m.popup != nil {
		body = overlay(body, m.renderPopup(), m.width)
	}

	return body + "\n" + m.renderStatus()
}

// renderPage draws the visible lines followed by the scrollbar column.
func (m *Model) renderPage() string {
	doc := m.page.Document()
	vp := m.page.Viewport()
	sel := m.page.Selection()
	th := m.opts.Layout.Theme

	opts := pretty.LineOptions{
		Color:     true,
		Selected:  sel.Contains,
		Selection: th.Selection,
	}
	thumb := scrollbar(vp.Height, doc.LineCount(), vp.Y)
	width := m.pageWidth()

	rows := make([]string, vp.Height)
	for i := range rows {
		var text string
		if y := vp.Y + i; y < doc.LineCount() {
			text = pretty.RenderLine(doc.Lines[y], opts)
		}
		bar := th.ScrollbarTrack.Render(trackRune)
		if thumb[i] {
			bar = th.ScrollbarThumb.Render(thumbRune)
		}
		rows[i] = pad(ansi.Truncate(text, width, ""), width) + bar
	}
	return strings.Join(rows, "\n")
}

// scrollbar marks the rows of a height-row track covered by the thumb.
func scrollbar(height, lines, y int) []bool {
	thumb := make([]bool, max(height, 0))
	if height <= 0 {
		return thumb
	}
	if lines <= height {
		for i := range thumb {
			thumb[i] = true
		}
		return thumb
	}

	size := max(height*height/lines, 1)
	maxY := lines - height
	start := (height - size) * min(max(y, 0), maxY) / maxY
	for i := start; i < start+size; i++ {
		thumb[i] = true
	}
	return thumb
}

// renderContents draws the contents sidebar with the cursor in view.
func (m *Model) renderContents() string {
	th := m.opts.Layout.Theme
	width := m.contentsWidth()
	inner := max(width-2, 1)
	height := max(m.bodyHeight()-2, 1)

	border := th.Border
	if m.focus == focusContents {
		border = th.BorderHighlight
	}

	entries := m.page.Contents().Entries()
	rows := []string{th.Title.Render(fit("Contents", inner))}
	if len(entries) == 0 {
		rows = append(rows, fit("No contents available", inner))
	}

	visible := height - 1
	offset := max(m.cursor.Selected()-visible+1, 0)
	for i := offset; i < len(entries) && i < offset+visible; i++ {
		e := entries[i]
		label := e.Title
		if e.Number != "" {
			label = e.Number + " " + e.Title
		}
		label = fit(label, inner)
		if i == m.cursor.Selected() && m.focus == focusContents {
			label = th.Selection.Patch(theme.Style{Italic: true}).Render(pad(label, inner))
		} else {
			label = th.Text.Render(label)
		}
		rows = append(rows, label)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(inner).
		Height(height)
	if border.Foreground != "" {
		box = box.BorderForeground(lipgloss.Color(border.Foreground))
	}
	return box.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderPopup() string {
	th := m.opts.Layout.Theme
	width := max(min(m.width*2/3, 60), 10)

	message := wordwrap.String(m.popup.message, width)
	hint := "enter/esc to close"
	if m.popup.confirm != nil {
		hint = "enter/y to open, esc/n to cancel"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render(m.popup.title),
		"",
		message,
		"",
		th.Debug.Render(hint),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, popupPadding)
	if th.BorderHighlight.Foreground != "" {
		box = box.BorderForeground(lipgloss.Color(th.BorderHighlight.Foreground))
	}
	if th.Popup.Background != "" {
		box = box.Background(lipgloss.Color(th.Popup.Background))
	}
	return box.Render(content)
}

func (m *Model) renderStatus() string {
	doc := m.page.Document()
	vp := m.page.Viewport()

	position := "empty"
	if lines := doc.LineCount(); lines > 0 {
		position = fmt.Sprintf("%d/%d", min(vp.Y+1, lines), lines)
	}

	parts := []string{" docnav", m.title(), m.page.Mode().String(), position}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	line := fit(strings.Join(parts, " | "), m.width)
	return m.opts.Layout.Theme.StatusBar.Render(pad(line, m.width))
}

// overlay draws box centred on top of background.
func overlay(background, box string, width int) string {
	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")

	boxWidth := 0
	for _, line := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}

	top := max((len(bgLines)-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)

	for i, line := range boxLines {
		row := top + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		prefix := pad(ansi.Truncate(bg, left, ""), left)
		suffix := ansi.TruncateLeft(bg, left+ansi.StringWidth(line), "")
		bgLines[row] = prefix + ansi.ResetStyle + line + ansi.ResetStyle + suffix
	}

	return strings.Join(bgLines, "\n")
}

// pad right-pads s with spaces to width cells. padding.String leaves an
// empty string unpadded.
func pad(s string, width int) string {
	if s == "" {
		return strings.Repeat(" ", max(width, 0))
	}
	return padding.String(s, uint(max(width, 0)))
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(max(width, 0)), ellipsis)
}
