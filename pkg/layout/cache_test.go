package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
)

type renderCounter struct {
	widths []int
}

func (c *renderCounter) render(tree *doctree.Tree, width int, opts layout.Options) *layout.Document {
	c.widths = append(c.widths, width)
	return layout.Render(tree, width, opts)
}

func TestCache_MemoizesByWidth(t *testing.T) {
	t.Parallel()

	counter := &renderCounter{}
	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions(), layout.WithRenderFunc(counter.render))

	first := cache.Get(80)
	second := cache.Get(80)
	assert.Same(t, first, second)
	assert.Equal(t, []int{80}, counter.widths)

	narrow := cache.Get(40)
	assert.Equal(t, 40, narrow.Width)
	assert.Equal(t, []int{80, 40}, counter.widths)
	assert.True(t, cache.Has(80), "other widths stay cached")
	assert.Equal(t, 2, cache.Len())
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	counter := &renderCounter{}
	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions(), layout.WithRenderFunc(counter.render))

	cache.Get(80)
	cache.Get(40)
	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())
	assert.False(t, cache.Has(80))

	cache.Get(80)
	assert.Equal(t, []int{80, 40, 80}, counter.widths)
}

func TestCache_LRUBound(t *testing.T) {
	t.Parallel()

	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions(), layout.WithMaxEntries(2))

	cache.Get(10)
	cache.Get(20)
	cache.Get(10)
	cache.Get(30)

	assert.Equal(t, 2, cache.Len())
	assert.True(t, cache.Has(10))
	assert.False(t, cache.Has(20), "least recently used width is evicted")
	assert.True(t, cache.Has(30))
}

func TestCache_SetMode(t *testing.T) {
	t.Parallel()

	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions())
	cache.Get(80)

	assert.False(t, cache.SetMode(layout.ModeDefault))
	assert.Equal(t, 1, cache.Len())

	assert.True(t, cache.SetMode(layout.ModeTreeRaw))
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, layout.ModeTreeRaw, cache.Get(80).Mode)
	assert.Equal(t, layout.ModeTreeRaw, cache.Options().Mode)
}

func TestCache_SetTree(t *testing.T) {
	t.Parallel()

	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions())
	cache.Get(80)

	replacement := doctree.NewBuilder(doctree.Root{}).Build()
	cache.SetTree(replacement)
	assert.Equal(t, 0, cache.Len())
	assert.Same(t, replacement, cache.Tree())
	assert.Empty(t, cache.Get(80).Lines)
}

func TestCache_ClampsWidth(t *testing.T) {
	t.Parallel()

	cache := layout.NewCache(headerAndParagraph(), layout.DefaultOptions())
	doc := cache.Get(-5)
	require.NotNil(t, doc)
	assert.Equal(t, 1, doc.Width)
	assert.True(t, cache.Has(0))
}
