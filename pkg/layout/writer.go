package layout

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/docnav/pkg/theme"
)

// writer accumulates words into lines wrapped at a fixed width.
type writer struct {
	width int
	lines []Line
	cur   Line
	// used is the width taken by the current line, including the trailing
	// whitespace of its last word.
	used int
	// indent applies to the next line started.
	indent int

	links   []LinkLine
	pending []int
}

func newWriter(width int) *writer {
	return &writer{width: max(width, 1)}
}

func (w *writer) available() int {
	return max(w.width-w.cur.Indent, 1)
}

// startLine applies the indent to an empty current line, leaving at least
// one cell for content.
func (w *writer) startLine() {
	w.cur.Indent = min(w.indent, w.width-1)
}

// flush ends the current line if it holds any words.
func (w *writer) flush() {
	if w.cur.Empty() {
		return
	}
	w.cur.Words[len(w.cur.Words)-1].WhitespaceWidth = 0
	w.lines = append(w.lines, w.cur)
	w.cur = Line{}
	w.used = 0
}

// newline ends the current line, or emits an empty line if there is none.
func (w *writer) newline() {
	if w.cur.Empty() {
		w.lines = append(w.lines, Line{})
		return
	}
	w.flush()
}

// blank ensures the output ends with exactly one empty line.
func (w *writer) blank() {
	w.flush()
	if len(w.lines) == 0 || !w.lines[len(w.lines)-1].Empty() {
		w.lines = append(w.lines, Line{})
	}
}

// space widens the gap after the last word of the current line.
func (w *writer) space() {
	if w.cur.Empty() {
		return
	}
	last := &w.cur.Words[len(w.cur.Words)-1]
	if last.WhitespaceWidth == 0 {
		last.WhitespaceWidth = 1
		w.used++
	}
}

// markLink registers a link whose line is fixed by the next word written.
func (w *writer) markLink(node int) {
	w.pending = append(w.pending, node)
}

// unmarkLink drops a link that produced no words.
func (w *writer) unmarkLink(node int) {
	for i, n := range w.pending {
		if n == node {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}

// word places one unbreakable run, wrapping first if it does not fit and
// hard-breaking it if it is wider than a whole line.
func (w *writer) word(content string, ws int, style theme.Style, node int) {
	if content == "" {
		return
	}
	width := runewidth.StringWidth(content)

	if !w.cur.Empty() && w.used+width > w.available() {
		w.flush()
	}
	if w.cur.Empty() {
		w.startLine()
	}

	if width > w.available() {
		chunks := breakWord(content, w.available())
		for _, chunk := range chunks[:len(chunks)-1] {
			w.append(Word{Content: chunk, Style: style, Node: node}, runewidth.StringWidth(chunk))
			w.flush()
			w.startLine()
		}
		content = chunks[len(chunks)-1]
		width = runewidth.StringWidth(content)
	}

	w.append(Word{Content: content, WhitespaceWidth: ws, Style: style, Node: node}, width)
}

func (w *writer) append(word Word, width int) {
	if len(w.pending) > 0 {
		line := len(w.lines)
		for _, n := range w.pending {
			w.links = append(w.links, LinkLine{Line: line, Node: n})
		}
		w.pending = w.pending[:0]
	}
	w.cur.Words = append(w.cur.Words, word)
	w.used += width + word.WhitespaceWidth
}

// text splits content on whitespace and places each word. Runs of
// whitespace collapse to a single cell.
func (w *writer) text(content string, style theme.Style, node int) {
	runes := []rune(content)
	i := 0

	if i < len(runes) && unicode.IsSpace(runes[i]) {
		w.space()
	}

	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		if start == i {
			break
		}
		ws := 0
		if i < len(runes) {
			ws = 1
		}
		w.word(string(runes[start:i]), ws, style, node)
	}
}

// finish flushes pending output and drops trailing empty lines.
func (w *writer) finish() ([]Line, []LinkLine) {
	w.flush()
	for len(w.lines) > 0 && w.lines[len(w.lines)-1].Empty() {
		w.lines = w.lines[:len(w.lines)-1]
	}
	return w.lines, w.links
}

// breakWord splits word into chunks no wider than maxWidth cells. A rune
// wider than maxWidth gets a chunk of its own.
func breakWord(word string, maxWidth int) []string {
	var result []string
	runes := []rune(word)

	for len(runes) > 0 {
		lineWidth := 0
		n := 0
		for n < len(runes) {
			rw := runewidth.RuneWidth(runes[n])
			if lineWidth+rw > maxWidth {
				break
			}
			lineWidth += rw
			n++
		}
		if n == 0 {
			n = 1
		}
		result = append(result, string(runes[:n]))
		runes = runes[n:]
	}

	return result
}
