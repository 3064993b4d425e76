package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
	"github.com/yaklabco/docnav/pkg/page"
)

func TestLinkRows(t *testing.T) {
	tree := linkedTree()
	doc := layout.Render(tree, 80, layout.DefaultOptions())

	rows := pretty.LinkRows(tree, doc)
	require.Len(t, rows, 2)

	assert.Equal(t, page.ActivateInternal, rows[0].Kind)
	assert.Equal(t, "the gopher", rows[0].Text)
	assert.Equal(t, "Gopher#diet", rows[0].Target)

	assert.Equal(t, page.ActivateExternal, rows[1].Kind)
	assert.Equal(t, "https://go.dev", rows[1].Target)
	assert.Equal(t, rows[0].Line, rows[1].Line)
}

func TestTableFormatter_FormatLinks(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 100)
	out := formatter.FormatLinks([]pretty.LinkRow{
		{Line: 2, Kind: page.ActivateRedLink, Text: "Missing", Target: "Missing page"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "LINE")
	assert.Contains(t, lines[0], "TARGET")
	assert.True(t, strings.HasPrefix(lines[1], "===="))
	assert.Contains(t, lines[2], "   3  red-link")
	assert.True(t, strings.HasSuffix(lines[2], "Missing page"))
}

func TestTableFormatter_TruncatesToWidth(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 60)
	long := "https://example.com/" + strings.Repeat("a", 80)
	out := formatter.FormatLinks([]pretty.LinkRow{
		{Line: 0, Kind: page.ActivateExternal, Text: "x", Target: long},
	})

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long)
}

func TestTableFormatter_NoRows(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, formatter.FormatLinks(nil))
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "1 document, 2 links\n",
		styles.FormatSummaryOneLine(loader.Stats{Loaded: 1, Links: 2}))
	assert.Equal(t, "2 documents, 1 link, 1 failed\n",
		styles.FormatSummaryOneLine(loader.Stats{Loaded: 2, Links: 1, Errored: 1}))
}
