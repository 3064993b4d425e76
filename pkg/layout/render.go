// Package layout turns a document tree into wrapped, styled lines for a
// fixed-width display and records where each link ended up.
package layout

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/theme"
)

// DefaultIndent is the number of cells each list level is indented by.
const DefaultIndent = 2

// Options control rendering. They are passed explicitly so that a render is
// a pure function of tree, width and options.
type Options struct {
	Mode   Mode
	Theme  theme.Theme
	Indent int
}

// DefaultOptions returns options using the default theme.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeDefault,
		Theme:  theme.Default(),
		Indent: DefaultIndent,
	}
}

// Render lays out tree at the given width. Widths below one are treated as
// one. The result depends only on the arguments.
func Render(tree *doctree.Tree, width int, opts Options) *Document {
	if opts.Indent <= 0 {
		opts.Indent = DefaultIndent
	}
	width = max(width, 1)

	doc := &Document{Width: width, Mode: opts.Mode}
	if tree.Len() == 0 {
		return doc
	}

	switch opts.Mode {
	case ModeTreeData, ModeTreeRaw, ModeNodeRaw:
		doc.Lines, doc.Links = renderDebug(tree, width, opts)
	default:
		doc.Lines, doc.Links = renderDocument(tree, width, opts)
	}

	return doc
}

type listState struct {
	ordered bool
	next    int
}

type renderer struct {
	*writer

	opts   Options
	styles []theme.Style
	lists  []listState
	// indents holds the indent in effect before each open list item.
	indents []int
}

func renderDocument(tree *doctree.Tree, width int, opts Options) ([]Line, []LinkLine) {
	r := &renderer{
		writer: newWriter(width),
		opts:   opts,
		styles: []theme.Style{opts.Theme.Text},
	}

	//nolint:errcheck,revive // enter and leave never fail
	doctree.WalkWithContext(tree.Root(), r.enter, r.leave)

	return r.finish()
}

func (r *renderer) style() theme.Style {
	return r.styles[len(r.styles)-1]
}

func (r *renderer) push(patch theme.Style) {
	r.styles = append(r.styles, r.style().Patch(patch))
}

func (r *renderer) pop() {
	if len(r.styles) > 1 {
		r.styles = r.styles[:len(r.styles)-1]
	}
}

func (r *renderer) enter(n doctree.Node) error {
	idx := n.Index()

	switch data := n.Data().(type) {
	case doctree.Header:
		r.blank()
		r.push(r.opts.Theme.HeaderStyle(data.Level))
		if !n.HasChildren() {
			r.text(data.Text, r.style(), idx)
		}

	case doctree.Paragraph:
		// The first paragraph of a list item continues the marker line.
		if n.Parent().Kind() != doctree.KindListItem || n.PrevSibling().Valid() {
			r.flush()
		}

	case doctree.Text:
		r.text(data.Content, r.style(), idx)

	case doctree.Emphasis:
		r.push(r.opts.Theme.EffectStyle(data.Effect))

	case doctree.Link:
		r.push(r.opts.Theme.LinkStyle(data.Target))
		r.markLink(idx)
		if !n.HasChildren() {
			label := data.Title
			if label == "" && data.Target != nil {
				label = data.Target.String()
			}
			r.text(label, r.style(), idx)
		}

	case doctree.List:
		r.flush()
		start := data.Start
		if start == 0 {
			start = 1
		}
		r.lists = append(r.lists, listState{ordered: data.Ordered, next: start})

	case doctree.ListItem:
		r.flush()
		r.indents = append(r.indents, r.indent)
		r.indent = min(r.opts.Indent*max(len(r.lists), 1), r.width-1)

		marker := "-"
		if len(r.lists) > 0 {
			list := &r.lists[len(r.lists)-1]
			if list.ordered {
				marker = strconv.Itoa(list.next) + "."
				list.next++
			}
		}
		r.word(marker, 1, r.style().Patch(r.opts.Theme.ListMarker), idx)
		r.indent = min(r.indent+runewidth.StringWidth(marker)+1, r.width-1)

	case doctree.CodeBlock:
		r.flush()
		style := r.style().Patch(r.opts.Theme.Code)
		for _, line := range strings.Split(strings.TrimRight(data.Content, "\n"), "\n") {
			line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", r.opts.Indent*2))
			trimmed := strings.TrimLeft(line, " ")
			if trimmed == "" {
				r.newline()
				continue
			}
			// Leading spaces are kept as part of the word.
			r.word(line, 0, style, idx)
			r.flush()
		}
		r.blank()

	case doctree.Rule:
		r.flush()
		r.word(strings.Repeat("─", max(r.width-r.indent, 1)), 0, r.style().Patch(r.opts.Theme.Rule), idx)
		r.blank()

	case doctree.Newline:
		r.newline()
	}

	return nil
}

func (r *renderer) leave(n doctree.Node) error {
	switch n.Data().(type) {
	case doctree.Header:
		r.pop()
		r.blank()

	case doctree.Paragraph:
		r.blank()

	case doctree.Emphasis:
		r.pop()

	case doctree.Link:
		r.pop()
		r.unmarkLink(n.Index())

	case doctree.List:
		r.flush()
		r.lists = r.lists[:len(r.lists)-1]
		if len(r.lists) == 0 {
			r.blank()
		}

	case doctree.ListItem:
		r.flush()
		r.indent = r.indents[len(r.indents)-1]
		r.indents = r.indents[:len(r.indents)-1]
	}

	return nil
}
