package page

import (
	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/layout"
)

// The two directions below never call each other: selection commands scroll
// once, scroll commands reselect once.

// scrollToSelection scrolls the minimum amount that brings the first line of
// the selection into view.
func (p *Page) scrollToSelection(doc *layout.Document) {
	if p.selection.Empty() {
		return
	}

	line, ok := doc.FindLine(p.selection.First, p.selection.Last)
	if !ok {
		p.logger.Debug("selection not rendered", logging.FieldSelection, p.selection)
		return
	}

	switch {
	case line < p.viewport.Y:
		p.setY(line, doc)
	case line >= p.viewport.Bottom():
		p.setY(line-p.viewport.Height+1, doc)
	}
}

// reconcileSelection moves a selection that scrolled out of view onto the
// nearest visible link: the first one when the selection is above the
// viewport, the last one when it is below. Without a visible link the
// selection is kept.
func (p *Page) reconcileSelection(doc *layout.Document) {
	if p.selection.Empty() {
		return
	}

	line, ok := doc.FindLine(p.selection.First, p.selection.Last)
	if !ok || p.viewport.Contains(line) {
		return
	}

	if line < p.viewport.Y {
		for _, l := range doc.Links {
			if p.viewport.Contains(l.Line) {
				p.selectQuiet(l.Node)
				return
			}
		}
		return
	}

	for i := len(doc.Links) - 1; i >= 0; i-- {
		if p.viewport.Contains(doc.Links[i].Line) {
			p.selectQuiet(doc.Links[i].Node)
			return
		}
	}
}
