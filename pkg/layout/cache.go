package layout

import (
	"slices"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// RenderFunc produces the layout for one width.
type RenderFunc func(tree *doctree.Tree, width int, opts Options) *Document

// Cache memoizes layouts of a single tree by width.
//
// Documents returned by Get are shared; callers must not modify them.
// Cache is not safe for concurrent use.
type Cache struct {
	tree   *doctree.Tree
	opts   Options
	render RenderFunc

	// maxEntries bounds the cache; zero means unbounded.
	maxEntries int
	entries    map[int]*Document
	// recent lists cached widths, least recently used first.
	recent []int
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMaxEntries bounds the number of cached widths, evicting the least
// recently used width first. Zero or less means unbounded.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		c.maxEntries = max(n, 0)
	}
}

// WithRenderFunc replaces Render, typically to observe renders in tests.
func WithRenderFunc(fn RenderFunc) CacheOption {
	return func(c *Cache) {
		if fn != nil {
			c.render = fn
		}
	}
}

// NewCache creates an empty cache for tree.
func NewCache(tree *doctree.Tree, opts Options, options ...CacheOption) *Cache {
	c := &Cache{
		tree:    tree,
		opts:    opts,
		render:  Render,
		entries: make(map[int]*Document),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get returns the layout for width, rendering it on a miss.
func (c *Cache) Get(width int) *Document {
	width = max(width, 1)

	if doc, ok := c.entries[width]; ok {
		c.touch(width)
		return doc
	}

	doc := c.render(c.tree, width, c.opts)
	c.entries[width] = doc
	c.recent = append(c.recent, width)
	c.evict()

	return doc
}

// Has reports whether width is cached.
func (c *Cache) Has(width int) bool {
	_, ok := c.entries[max(width, 1)]
	return ok
}

// Len returns the number of cached widths.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Invalidate drops every cached layout.
func (c *Cache) Invalidate() {
	clear(c.entries)
	c.recent = c.recent[:0]
}

// Tree returns the cached tree.
func (c *Cache) Tree() *doctree.Tree {
	return c.tree
}

// Options returns the render options.
func (c *Cache) Options() Options {
	return c.opts
}

// SetTree replaces the tree and invalidates the cache.
func (c *Cache) SetTree(tree *doctree.Tree) {
	c.tree = tree
	c.Invalidate()
}

// SetOptions replaces the render options and invalidates the cache.
func (c *Cache) SetOptions(opts Options) {
	c.opts = opts
	c.Invalidate()
}

// SetMode switches the render mode, invalidating the cache if it changed.
// It reports whether the mode changed.
func (c *Cache) SetMode(mode Mode) bool {
	if c.opts.Mode == mode {
		return false
	}
	c.opts.Mode = mode
	c.Invalidate()
	return true
}

func (c *Cache) touch(width int) {
	if i := slices.Index(c.recent, width); i >= 0 {
		c.recent = append(c.recent[:i], c.recent[i+1:]...)
	}
	c.recent = append(c.recent, width)
}

func (c *Cache) evict() {
	if c.maxEntries == 0 {
		return
	}
	for len(c.recent) > c.maxEntries {
		delete(c.entries, c.recent[0])
		c.recent = c.recent[1:]
	}
}
