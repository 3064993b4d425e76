package wikihtml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/pkg/doctree"
)

const article = `<!DOCTYPE html>
<html>
<head><title>Gopher - Wiki</title></head>
<body>
<h1 id="firstHeading">Gopher</h1>
<div class="mw-parser-output">
<p>The <b>gopher</b> is the <a href="/wiki/Go_(programming_language)" title="Go (programming language)">Go</a> mascot.<sup class="reference"><a href="#cite-1">[1]</a></sup></p>
<h2><span class="mw-headline" id="History">History</span><span class="mw-editsection">[edit]</span></h2>
<p>Drawn by <a href="/w/index.php?title=Renee_French&amp;action=edit&amp;redlink=1" class="new" title="Renee French (page does not exist)">Renee</a>.</p>
<ul>
<li><a href="#History">Back</a></li>
<li><a class="external text" href="https://go.dev">Site</a></li>
<li><a href="https://en.wiktionary.org/wiki/gopher" class="extiw" title="wikt:gopher">gopher</a></li>
<li><a href="/wiki/File:Gopher.png" class="mw-file-description">image</a></li>
</ul>
<div class="mw-heading mw-heading2"><h2 id="Code">Code</h2></div>
<div class="mw-highlight mw-highlight-lang-go"><pre>package main</pre></div>
<script>alert(1)</script>
</div>
</body>
</html>`

func parseArticle(t *testing.T) *doctree.Tree {
	t.Helper()
	tree, err := New().Parse(context.Background(), "gopher.html", []byte(article))
	require.NoError(t, err)
	return tree
}

func TestParse_Title(t *testing.T) {
	t.Parallel()

	tree := parseArticle(t)
	assert.Equal(t, "Gopher", tree.Title())

	first := tree.Root().FirstChild()
	require.Equal(t, doctree.KindHeader, first.Kind())
	header, ok := first.Data().(doctree.Header)
	require.True(t, ok)
	assert.Equal(t, 1, header.Level)
	assert.Equal(t, "gopher", header.Anchor)
}

func TestParse_Headers(t *testing.T) {
	t.Parallel()

	tree := parseArticle(t)

	var anchors, texts []string
	for _, n := range doctree.FindByKind(tree.Root(), doctree.KindHeader) {
		h, ok := n.Data().(doctree.Header)
		require.True(t, ok)
		anchors = append(anchors, h.Anchor)
		texts = append(texts, n.TextContent())
	}

	assert.Equal(t, []string{"gopher", "History", "Code"}, anchors)
	assert.Equal(t, []string{"Gopher", "History", "Code"}, texts)
}

func TestParse_Links(t *testing.T) {
	t.Parallel()

	tree := parseArticle(t)

	var targets []doctree.LinkTarget
	for n := range tree.Links() {
		link, ok := n.Data().(doctree.Link)
		require.True(t, ok)
		targets = append(targets, link.Target)
	}

	assert.Equal(t, []doctree.LinkTarget{
		doctree.InternalTarget{Page: "Go (programming language)"},
		doctree.RedTarget{Page: "Renee French"},
		doctree.AnchorTarget{Anchor: "History"},
		doctree.ExternalTarget{URL: "https://go.dev"},
		doctree.InterwikiTarget{Prefix: "wikt", Page: "gopher", URL: "https://en.wiktionary.org/wiki/gopher"},
		doctree.MediaTarget{Href: "/wiki/File:Gopher.png"},
	}, targets)
}

func TestParse_StripsFurniture(t *testing.T) {
	t.Parallel()

	tree := parseArticle(t)
	text := tree.Root().TextContent()

	assert.NotContains(t, text, "[edit]")
	assert.NotContains(t, text, "[1]")
	assert.NotContains(t, text, "alert")
}

func TestParse_Blocks(t *testing.T) {
	t.Parallel()

	tree := parseArticle(t)

	bold := doctree.FindFirst(tree.Root(), func(n doctree.Node) bool {
		e, ok := n.Data().(doctree.Emphasis)
		return ok && e.Effect == doctree.EffectBold
	})
	require.True(t, bold.Valid())
	assert.Equal(t, "gopher", bold.TextContent())

	lists := doctree.FindByKind(tree.Root(), doctree.KindList)
	require.Len(t, lists, 1)
	assert.Len(t, doctree.FindByKind(lists[0], doctree.KindListItem), 4)

	code := doctree.FindByKind(tree.Root(), doctree.KindCodeBlock)
	require.Len(t, code, 1)
	block, ok := code[0].Data().(doctree.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, "package main", block.Content)
}

func TestParse_FallsBackToBody(t *testing.T) {
	t.Parallel()

	tree, err := New(WithoutTitle()).Parse(context.Background(), "plain.html",
		[]byte(`<html><body><p>Hello <i>there</i></p><hr><p>x<br>y</p></body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "plain.html", tree.Title())
	assert.Equal(t, doctree.KindParagraph, tree.Root().FirstChild().Kind())
	assert.Len(t, doctree.FindByKind(tree.Root(), doctree.KindRule), 1)
	assert.Len(t, doctree.FindByKind(tree.Root(), doctree.KindNewline), 1)
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, "x.html", []byte("<p>x</p>"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassify_InternalAnchor(t *testing.T) {
	t.Parallel()

	tree, err := New(WithoutTitle()).Parse(context.Background(), "a.html",
		[]byte(`<p><a href="/wiki/Caf%C3%A9#Menu_items">cafe</a></p>`))
	require.NoError(t, err)

	var got doctree.LinkTarget
	for n := range tree.Links() {
		got = n.Data().(doctree.Link).Target
	}
	assert.Equal(t, doctree.InternalTarget{Page: "Café", Anchor: "Menu_items"}, got)
}
