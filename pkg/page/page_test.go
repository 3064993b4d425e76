package page_test

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/page"
)

// linesTree builds a document that renders to exactly n lines, with a link
// on each of linkLines. It returns the link node index per line.
func linesTree(n int, linkLines ...int) (*doctree.Tree, map[int]int) {
	b := doctree.NewBuilder(doctree.Root{})
	links := make(map[int]int)

	for i := range n {
		if slices.Contains(linkLines, i) {
			links[i] = b.Open(doctree.Link{Target: doctree.InternalTarget{Page: fmt.Sprintf("Page %d", i)}})
			b.Leaf(doctree.Text{Content: fmt.Sprintf("link %d", i)})
			b.Close()
		} else {
			b.Leaf(doctree.Text{Content: fmt.Sprintf("line %d", i)})
		}
		b.Leaf(doctree.Newline{})
	}

	return b.Build(), links
}

func newPage(tree *doctree.Tree, width, height int, options ...page.Option) *page.Page {
	options = append([]page.Option{page.WithLogger(logging.Discard())}, options...)
	return page.New(tree, width, height, layout.DefaultOptions(), options...)
}

func TestLinesTree_RendersOneLinePerRow(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	doc := p.Document()
	require.Equal(t, 25, doc.LineCount())
	assert.Equal(t, []layout.LinkLine{
		{Line: 2, Node: links[2]},
		{Line: 10, Node: links[10]},
		{Line: 20, Node: links[20]},
	}, doc.Links)
}

func TestSelectNext_ScrollsMinimally(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectNext()
	assert.Equal(t, links[2], p.Selection().First)
	assert.Equal(t, 0, p.Viewport().Y, "visible selection does not scroll")

	p.SelectNext()
	assert.Equal(t, links[10], p.Selection().First)
	assert.Equal(t, 6, p.Viewport().Y)

	p.SelectNext()
	assert.Equal(t, links[20], p.Selection().First)
	assert.Equal(t, 16, p.Viewport().Y)

	// Nothing after the last link.
	p.SelectNext()
	assert.Equal(t, links[20], p.Selection().First)
	assert.Equal(t, 16, p.Viewport().Y)
}

func TestSelectPrev_ScrollsUp(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectLast()
	require.Equal(t, links[20], p.Selection().First)
	require.Equal(t, 16, p.Viewport().Y)

	p.SelectPrev()
	assert.Equal(t, links[10], p.Selection().First)
	assert.Equal(t, 10, p.Viewport().Y, "selection above the viewport becomes the top line")

	p.SelectPrev()
	p.SelectPrev()
	assert.Equal(t, links[2], p.Selection().First)
	assert.Equal(t, 2, p.Viewport().Y)
}

func TestSelectPrev_EmptySelectionIsNoop(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	var buf bytes.Buffer
	p := page.New(tree, 80, 5, layout.DefaultOptions(), page.WithLogger(logging.NewWriter(&buf, "debug")))

	p.SelectPrev()
	assert.True(t, p.Selection().Empty())
	assert.Contains(t, buf.String(), "no previous link")
}

func TestSelectFirstAndLast(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectLast()
	assert.Equal(t, links[20], p.Selection().First)

	p.SelectFirst()
	assert.Equal(t, links[2], p.Selection().First)
	assert.Equal(t, 2, p.Viewport().Y)

	p.SelectLast()
	assert.Equal(t, links[20], p.Selection().First)
}

func TestSelectLast_IsRelativeToSelectionEnd(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectLast()
	require.Equal(t, links[20], p.Selection().First)

	// No link lies after the last one, so the selection stays.
	p.SelectLast()
	assert.Equal(t, links[20], p.Selection().First)
}

func TestSelectIndex_SpansDescendants(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectIndex(links[10])
	sel := p.Selection()
	assert.Equal(t, page.Range(links[10], links[10]+1), sel)
	assert.LessOrEqual(t, sel.First, sel.Last)
	assert.True(t, sel.Contains(links[10]+1))
	assert.Equal(t, 6, p.Viewport().Y)

	p.SelectIndex(tree.Len())
	assert.Equal(t, sel, p.Selection(), "out of range index is ignored")

	p.SelectIndex(0)
	assert.Equal(t, page.Range(0, tree.Len()-1), p.Selection())
}

func TestSelection_NoLinks(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(10)
	p := newPage(tree, 80, 5)

	p.SelectFirst()
	p.SelectLast()
	p.SelectNext()
	p.SelectPrev()
	p.SelectTopLink()
	p.SelectBottomLink()
	assert.True(t, p.Selection().Empty())
	assert.Equal(t, "none", p.Selection().String())
}

func TestScrollToLine_Clamps(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(50)
	p := newPage(tree, 80, 10)

	p.ScrollToLine(1000)
	assert.Equal(t, 40, p.Viewport().Y)

	p.ScrollToLine(-3)
	assert.Equal(t, 0, p.Viewport().Y)

	p.ScrollToBottom()
	assert.Equal(t, 40, p.Viewport().Y)

	p.ScrollToTop()
	assert.Equal(t, 0, p.Viewport().Y)

	p.ScrollBy(7)
	p.ScrollBy(-2)
	assert.Equal(t, 5, p.Viewport().Y)

	p.ScrollHalfPage(1)
	assert.Equal(t, 10, p.Viewport().Y)
	p.ScrollHalfPage(-1)
	p.ScrollHalfPage(-1)
	assert.Equal(t, 0, p.Viewport().Y)
}

func TestScrollHalfPage_UsesResizedHeight(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(100)
	p := newPage(tree, 80, 10)

	p.Resize(40, 30)
	p.ScrollHalfPage(1)
	assert.Equal(t, 15, p.Viewport().Y)

	p.Resize(40, 4)
	p.ScrollHalfPage(-1)
	assert.Equal(t, 13, p.Viewport().Y)
}

func TestScrollToLine_ShortDocument(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(3)
	p := newPage(tree, 80, 10)

	p.ScrollToBottom()
	assert.Equal(t, 0, p.Viewport().Y)
	p.ScrollBy(5)
	assert.Equal(t, 0, p.Viewport().Y)
}

func TestScroll_ReselectsVisibleLink(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectFirst()
	require.Equal(t, links[2], p.Selection().First)

	p.ScrollToLine(8)
	assert.Equal(t, links[10], p.Selection().First, "forward search from above the viewport")
	assert.Equal(t, 8, p.Viewport().Y, "reselection does not scroll")

	p.ScrollToLine(0)
	assert.Equal(t, links[2], p.Selection().First, "backward search from below the viewport")

	p.ScrollToLine(14)
	assert.Equal(t, links[2], p.Selection().First, "no visible link keeps the selection")
}

func TestScroll_Idempotent(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectNext()
	p.ScrollToLine(9)
	sel, vp := p.Selection(), p.Viewport()

	p.ScrollToLine(9)
	assert.Equal(t, sel, p.Selection())
	assert.Equal(t, vp, p.Viewport())
}

func TestScroll_EmptySelectionStaysEmpty(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.ScrollToLine(8)
	assert.True(t, p.Selection().Empty())
}

func TestSelectTopAndBottomLink(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 25)

	p.SelectBottomLink()
	assert.Equal(t, links[20], p.Selection().First)
	p.SelectTopLink()
	assert.Equal(t, links[2], p.Selection().First)

	p.Resize(80, 5)
	p.ScrollToLine(6)
	p.SelectTopLink()
	assert.Equal(t, links[10], p.Selection().First)
	p.SelectBottomLink()
	assert.Equal(t, links[10], p.Selection().First)
	assert.Equal(t, 6, p.Viewport().Y)
}

func TestResize_RendersNewWidthLazily(t *testing.T) {
	t.Parallel()

	var widths []int
	render := func(tree *doctree.Tree, width int, opts layout.Options) *layout.Document {
		widths = append(widths, width)
		return layout.Render(tree, width, opts)
	}

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5, page.WithRenderFunc(render))

	p.Document()
	assert.Equal(t, []int{80}, widths)

	p.Resize(40, 5)
	assert.Equal(t, []int{80}, widths, "resize does not render")

	doc := p.Document()
	assert.Equal(t, 40, doc.Width)
	assert.Equal(t, []int{80, 40}, widths)
	assert.True(t, p.Cache().Has(80))

	p.Resize(80, 5)
	p.Document()
	assert.Equal(t, []int{80, 40}, widths, "width 80 is served from the cache")
}

func TestResize_ClampsAndKeepsSelectionVisible(t *testing.T) {
	t.Parallel()

	tree, links := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectLast()
	require.Equal(t, 16, p.Viewport().Y)

	p.Resize(80, 20)
	assert.Equal(t, 5, p.Viewport().Y, "offset clamps to the taller viewport")
	assert.Equal(t, links[20], p.Selection().First)

	p.Resize(80, 3)
	vp := p.Viewport()
	assert.True(t, vp.Contains(20), "selection kept in view, got %+v", vp)
}

func TestSelectAnchor(t *testing.T) {
	t.Parallel()

	b := doctree.NewBuilder(doctree.Root{})
	for i := range 30 {
		b.Leaf(doctree.Text{Content: fmt.Sprintf("before %d", i)})
		b.Leaf(doctree.Newline{})
	}
	b.Open(doctree.Header{Level: 2, Text: "Later", Anchor: "later"})
	b.Leaf(doctree.Text{Content: "Later"})
	b.Close()
	for i := range 30 {
		b.Leaf(doctree.Text{Content: fmt.Sprintf("after %d", i)})
		b.Leaf(doctree.Newline{})
	}
	tree := b.Build()

	var buf bytes.Buffer
	p := page.New(tree, 80, 10, layout.DefaultOptions(), page.WithLogger(logging.NewWriter(&buf, "debug")))
	require.Equal(t, 63, p.Document().LineCount())

	p.SelectAnchor("later")
	assert.Equal(t, 31, p.Viewport().Y)

	p.SelectAnchor("missing")
	assert.Equal(t, 31, p.Viewport().Y)
	assert.Contains(t, buf.String(), "unknown anchor")

	p.SelectAnchor(page.TopAnchor)
	assert.Equal(t, 0, p.Viewport().Y)
}

func TestSelectAnchor_TopWithoutHeaders(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(50)
	p := newPage(tree, 80, 10)
	p.ScrollToLine(30)
	require.Equal(t, 30, p.Viewport().Y)

	p.SelectAnchor("top")
	assert.Equal(t, 0, p.Viewport().Y)
}

func TestSetMode_ClearsSelection(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectNext()
	require.False(t, p.Selection().Empty())

	assert.Equal(t, layout.ModeTreeData, p.NextMode())
	assert.True(t, p.Selection().Empty())
	assert.Equal(t, layout.ModeTreeData, p.Document().Mode)

	p.SelectNext()
	p.SetMode(layout.ModeTreeData)
	assert.False(t, p.Selection().Empty(), "setting the same mode keeps state")
}

func TestInvalidateAll(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)

	p.SelectNext()
	p.Document()
	p.InvalidateAll()

	assert.True(t, p.Selection().Empty())
	assert.Equal(t, 0, p.Cache().Len())
}

func TestLoad_SwapsEverything(t *testing.T) {
	t.Parallel()

	tree, _ := linesTree(25, 2, 10, 20)
	p := newPage(tree, 80, 5)
	p.SelectLast()
	require.Equal(t, 16, p.Viewport().Y)

	b := doctree.NewBuilder(doctree.Root{})
	b.Open(doctree.Header{Level: 1, Text: "New", Anchor: "new"})
	b.Leaf(doctree.Text{Content: "New"})
	b.Close()
	replacement := b.Build()

	p.Load(replacement)
	assert.Same(t, replacement, p.Tree())
	assert.True(t, p.Selection().Empty())
	assert.Equal(t, 0, p.Viewport().Y)
	assert.Equal(t, 1, p.Contents().Len())
	assert.Equal(t, []string{"", "New"}, []string{p.Document().Lines[0].Text(), p.Document().Lines[1].Text()})
}
