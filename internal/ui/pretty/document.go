package pretty

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/theme"
)

// LineOptions controls how a layout line is drawn.
type LineOptions struct {
	// Color draws words in their theme styles.
	Color bool

	// Selected reports whether the word produced from a node is part of
	// the selection. Nil selects nothing.
	Selected func(node int) bool

	// Selection is patched onto selected words.
	Selection theme.Style
}

// RenderLine draws one layout line.
func RenderLine(line layout.Line, opts LineOptions) string {
	if line.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", line.Indent))

	for i, w := range line.Words {
		style := w.Style
		selected := opts.Selected != nil && opts.Selected(w.Node)
		if selected {
			style = style.Patch(opts.Selection)
		}

		switch {
		case opts.Color:
			b.WriteString(style.Render(w.Content))
		case selected:
			b.WriteString("[" + w.Content + "]")
		default:
			b.WriteString(w.Content)
		}

		if i < len(line.Words)-1 {
			b.WriteString(strings.Repeat(" ", w.WhitespaceWidth))
		}
	}

	return b.String()
}

// WriteDocument prints every line of doc.
func WriteDocument(w io.Writer, doc *layout.Document, opts LineOptions) error {
	bw := bufio.NewWriter(w)
	for _, line := range doc.Lines {
		if _, err := fmt.Fprintln(bw, RenderLine(line, opts)); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
