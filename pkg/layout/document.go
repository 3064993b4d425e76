package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/docnav/pkg/theme"
)

// Word is the smallest unit of layout: a run of text drawn in one style,
// followed by WhitespaceWidth cells of blank space.
type Word struct {
	Content         string
	WhitespaceWidth int
	Style           theme.Style
	// Node is the index of the tree node the word was produced from.
	Node int
}

// Width returns the cell width of the word content.
func (w Word) Width() int {
	return runewidth.StringWidth(w.Content)
}

// Line is one display row.
type Line struct {
	Indent int
	Words  []Word
}

// Empty reports whether the line holds no words.
func (l Line) Empty() bool {
	return len(l.Words) == 0
}

// Width returns the number of cells the line occupies.
func (l Line) Width() int {
	width := l.Indent
	for i, w := range l.Words {
		width += w.Width()
		if i < len(l.Words)-1 {
			width += w.WhitespaceWidth
		}
	}
	return width
}

// Text returns the unstyled content of the line.
func (l Line) Text() string {
	if l.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.Indent))
	for i, w := range l.Words {
		b.WriteString(w.Content)
		if i < len(l.Words)-1 {
			b.WriteString(strings.Repeat(" ", w.WhitespaceWidth))
		}
	}
	return b.String()
}

// LinkLine records the line on which a link node first appears.
type LinkLine struct {
	Line int
	Node int
}

// Document is the layout of a tree at one width.
type Document struct {
	Width int
	Mode  Mode
	Lines []Line
	// Links holds one entry per rendered link node, ordered by line and node.
	Links []LinkLine
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// FindLine returns the first line holding a word produced by a node with an
// index in [first, last].
func (d *Document) FindLine(first, last int) (int, bool) {
	if d == nil {
		return 0, false
	}
	for i, line := range d.Lines {
		for _, w := range line.Words {
			if w.Node > last {
				return 0, false
			}
			if w.Node >= first {
				return i, true
			}
		}
	}
	return 0, false
}

// LinkLine returns the line of the link node idx.
func (d *Document) LinkLine(idx int) (int, bool) {
	if d == nil {
		return 0, false
	}
	for _, l := range d.Links {
		if l.Node == idx {
			return l.Line, true
		}
	}
	return 0, false
}

// Text returns the unstyled document, one line per row.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line.Text())
		b.WriteByte('\n')
	}
	return b.String()
}
