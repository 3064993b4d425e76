package page

import (
	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/layout"
)

// Viewport is the visible window onto the rendered lines. X is always zero.
type Viewport struct {
	Y      int
	Width  int
	Height int
}

// Bottom returns the first line below the viewport.
func (v Viewport) Bottom() int {
	return v.Y + v.Height
}

// Contains reports whether line is visible.
func (v Viewport) Contains(line int) bool {
	return line >= v.Y && line < v.Bottom()
}

// MaxY returns the largest scroll offset for a document of lines rows.
func (v Viewport) MaxY(lines int) int {
	return max(lines-v.Height, 0)
}

// ScrollBy moves the viewport delta lines down, or up when delta is negative.
func (p *Page) ScrollBy(delta int) {
	p.ScrollToLine(p.Viewport().Y + delta)
}

// ScrollToLine makes y the first visible line, clamped so the viewport
// never runs past the content.
func (p *Page) ScrollToLine(y int) {
	doc := p.Document()
	p.setY(y, doc)
	p.reconcileSelection(doc)
}

// ScrollToTop scrolls to the first line.
func (p *Page) ScrollToTop() {
	p.ScrollToLine(0)
}

// ScrollToBottom scrolls so the last line is at the bottom of the viewport.
func (p *Page) ScrollToBottom() {
	doc := p.Document()
	p.ScrollToLine(doc.LineCount())
}

// ScrollHalfPage scrolls half a viewport down for positive direction and up
// for negative direction.
func (p *Page) ScrollHalfPage(direction int) {
	step := max(p.Viewport().Height/2, 1)
	switch {
	case direction > 0:
		p.ScrollBy(step)
	case direction < 0:
		p.ScrollBy(-step)
	}
}

// Resize changes the viewport dimensions. The layout for the new width is
// produced on the next access; other widths stay cached.
func (p *Page) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == p.viewport.Width && height == p.viewport.Height {
		return
	}
	p.viewport.Width = width
	p.viewport.Height = height
	p.resized = true
	p.logger.Debug("viewport resized", logging.FieldWidth, width, logging.FieldHeight, height)
}

// setY stores a clamped scroll offset without touching the selection.
func (p *Page) setY(y int, doc *layout.Document) {
	p.viewport.Y = min(max(y, 0), p.viewport.MaxY(doc.LineCount()))
}
