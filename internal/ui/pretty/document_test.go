package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/toc"
)

// linkedTree builds "# Intro" followed by a paragraph with two links and a
// second-level "Usage" section.
func linkedTree() *doctree.Tree {
	b := doctree.NewBuilder(doctree.Root{Title: "Intro"})
	b.Open(doctree.Header{Level: 1, Text: "Intro", Anchor: "intro"})
	b.Leaf(doctree.Text{Content: "Intro"})
	b.Close()
	b.Open(doctree.Paragraph{})
	b.Leaf(doctree.Text{Content: "See "})
	b.Open(doctree.Link{Target: doctree.InternalTarget{Page: "Gopher", Anchor: "diet"}})
	b.Leaf(doctree.Text{Content: "the gopher"})
	b.Close()
	b.Leaf(doctree.Text{Content: " or "})
	b.Open(doctree.Link{Target: doctree.ExternalTarget{URL: "https://go.dev"}})
	b.Leaf(doctree.Text{Content: "go.dev"})
	b.Close()
	b.Close()
	b.Open(doctree.Header{Level: 2, Text: "Usage", Anchor: "usage"})
	b.Leaf(doctree.Text{Content: "Usage"})
	b.Close()
	return b.Build()
}

func TestRenderLine_Plain(t *testing.T) {
	doc := layout.Render(linkedTree(), 80, layout.DefaultOptions())
	line, ok := doc.LinkLine(5)
	require.True(t, ok)

	got := pretty.RenderLine(doc.Lines[line], pretty.LineOptions{})
	assert.Equal(t, "See the gopher or go.dev", got)
}

func TestRenderLine_MarksSelectionWithoutColor(t *testing.T) {
	doc := layout.Render(linkedTree(), 80, layout.DefaultOptions())
	line, ok := doc.LinkLine(8)
	require.True(t, ok)

	got := pretty.RenderLine(doc.Lines[line], pretty.LineOptions{
		Selected: func(node int) bool { return node >= 8 && node <= 9 },
	})
	assert.Equal(t, "See the gopher or [go.dev]", got)
}

func TestRenderLine_Empty(t *testing.T) {
	assert.Empty(t, pretty.RenderLine(layout.Line{Indent: 4}, pretty.LineOptions{}))
}

func TestWriteDocument(t *testing.T) {
	doc := layout.Render(linkedTree(), 80, layout.DefaultOptions())

	var buf bytes.Buffer
	require.NoError(t, pretty.WriteDocument(&buf, doc, pretty.LineOptions{}))
	assert.Equal(t, doc.Text(), buf.String())
}

func TestFormatContents(t *testing.T) {
	styles := pretty.NewStyles(false)
	index := toc.Build(linkedTree(), toc.Options{IncludeTop: true})

	got := styles.FormatContents(index)
	assert.Equal(t, strings.Join([]string{
		"(Top)  #top",
		"1 Intro  #intro",
		"  1.1 Usage  #usage",
		"",
	}, "\n"), got)
}
