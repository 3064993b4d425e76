package page

import (
	"fmt"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
)

// Selection is an inclusive range of node indices, or empty.
type Selection struct {
	First int
	Last  int
	set   bool
}

// Range returns the selection [first, last].
func Range(first, last int) Selection {
	return Selection{First: first, Last: max(first, last), set: true}
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return !s.set
}

// Contains reports whether idx lies in the selection.
func (s Selection) Contains(idx int) bool {
	return s.set && idx >= s.First && idx <= s.Last
}

func (s Selection) String() string {
	if !s.set {
		return "none"
	}
	return fmt.Sprintf("[%d, %d]", s.First, s.Last)
}

// end returns the index navigation continues after.
func (s Selection) end() int {
	if !s.set {
		return -1
	}
	return s.Last
}

// start returns the index navigation continues before.
func (s Selection) start() int {
	if !s.set {
		return 0
	}
	return s.First
}

// SelectFirst selects the first link of the document.
func (p *Page) SelectFirst() {
	for n := range p.tree.Links() {
		p.SelectIndex(n.Index())
		return
	}
	p.logger.Debug("no links to select")
}

// SelectLast selects the last link after the current selection. With an
// empty selection this is the last link of the document.
func (p *Page) SelectLast() {
	last := -1
	for n := range p.tree.Links() {
		if n.Index() > p.selection.end() {
			last = n.Index()
		}
	}
	if last < 0 {
		p.logger.Debug("no link after selection", logging.FieldSelection, p.selection)
		return
	}
	p.SelectIndex(last)
}

// SelectNext selects the first link after the selection.
func (p *Page) SelectNext() {
	for n := range p.tree.Links() {
		if n.Index() > p.selection.end() {
			p.SelectIndex(n.Index())
			return
		}
	}
	p.logger.Debug("no next link", logging.FieldSelection, p.selection)
}

// SelectPrev selects the last link before the selection.
func (p *Page) SelectPrev() {
	prev := -1
	for n := range p.tree.Links() {
		if n.Index() >= p.selection.start() {
			break
		}
		prev = n.Index()
	}
	if prev < 0 {
		p.logger.Debug("no previous link", logging.FieldSelection, p.selection)
		return
	}
	p.SelectIndex(prev)
}

// SelectIndex selects node idx with all of its descendants and scrolls the
// selection into view.
func (p *Page) SelectIndex(idx int) {
	if _, ok := p.tree.Node(idx); !ok {
		p.logger.Warn("select: node out of range", logging.FieldNode, idx, logging.FieldNodes, p.tree.Len())
		return
	}
	p.selection = Range(idx, p.tree.LastDescendant(idx))
	p.scrollToSelection(p.Document())
}

// SelectAnchor scrolls the header carrying anchor to the top of the viewport.
// TopAnchor scrolls to the first line without looking up a node.
func (p *Page) SelectAnchor(anchor string) {
	if anchor == TopAnchor {
		p.ScrollToLine(0)
		return
	}

	node, ok := p.contents.Resolve(anchor)
	if !ok {
		p.logger.Warn("select: unknown anchor", logging.FieldAnchor, anchor)
		return
	}

	line, ok := p.Document().FindLine(node, p.tree.LastDescendant(node))
	if !ok {
		p.logger.Warn("select: header not rendered", logging.FieldAnchor, anchor, logging.FieldNode, node)
		return
	}
	p.ScrollToLine(line)
}

// SelectTopLink selects the first link visible in the viewport.
func (p *Page) SelectTopLink() {
	doc := p.Document()
	top, bottom := p.viewport.Y, p.viewport.Bottom()
	for _, l := range doc.Links {
		if l.Line >= top && l.Line < bottom {
			p.selectQuiet(l.Node)
			return
		}
	}
	p.logger.Debug("no visible link")
}

// SelectBottomLink selects the last link visible in the viewport.
func (p *Page) SelectBottomLink() {
	doc := p.Document()
	top, bottom := p.viewport.Y, p.viewport.Bottom()
	for i := len(doc.Links) - 1; i >= 0; i-- {
		l := doc.Links[i]
		if l.Line >= top && l.Line < bottom {
			p.selectQuiet(l.Node)
			return
		}
	}
	p.logger.Debug("no visible link")
}

// SelectedLink returns the link node at the start of the selection.
func (p *Page) SelectedLink() (doctree.Node, doctree.Link, bool) {
	if p.selection.Empty() {
		return doctree.Node{}, doctree.Link{}, false
	}
	n, ok := p.tree.Node(p.selection.First)
	if !ok {
		return doctree.Node{}, doctree.Link{}, false
	}
	link, ok := n.Data().(doctree.Link)
	return n, link, ok
}

// selectQuiet changes the selection without scrolling.
func (p *Page) selectQuiet(idx int) {
	p.selection = Range(idx, p.tree.LastDescendant(idx))
}
