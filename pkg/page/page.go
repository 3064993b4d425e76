// Package page is the navigation session over one document: it owns the
// render cache, the link selection and the viewport, and keeps the last two
// consistent with each other.
package page

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/toc"
)

// TopAnchor selects the start of the document in SelectAnchor.
const TopAnchor = toc.TopAnchor

// Page is a document together with its navigation state.
//
// A Page is not safe for concurrent use; every method runs to completion on
// the caller's goroutine.
type Page struct {
	tree      *doctree.Tree
	cache     *layout.Cache
	contents  *toc.Index
	tocOpts   toc.Options
	selection Selection
	viewport  Viewport
	// resized is set until the first access after Resize.
	resized bool
	logger  *log.Logger
}

// Option configures a Page.
type Option func(*pageConfig)

type pageConfig struct {
	logger       *log.Logger
	cacheOptions []layout.CacheOption
	tocOptions   toc.Options
}

// WithLogger sets the logger used for notices about failed navigation.
func WithLogger(logger *log.Logger) Option {
	return func(c *pageConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCacheSize bounds the number of cached widths. Zero means unbounded.
func WithCacheSize(n int) Option {
	return func(c *pageConfig) {
		c.cacheOptions = append(c.cacheOptions, layout.WithMaxEntries(n))
	}
}

// WithRenderFunc replaces the layout function, typically in tests.
func WithRenderFunc(fn layout.RenderFunc) Option {
	return func(c *pageConfig) {
		c.cacheOptions = append(c.cacheOptions, layout.WithRenderFunc(fn))
	}
}

// WithContents sets the options used to build the table of contents.
func WithContents(opts toc.Options) Option {
	return func(c *pageConfig) {
		c.tocOptions = opts
	}
}

// New creates a page for tree shown in a width by height viewport.
func New(tree *doctree.Tree, width, height int, opts layout.Options, options ...Option) *Page {
	cfg := pageConfig{logger: logging.Default()}
	for _, opt := range options {
		opt(&cfg)
	}

	return &Page{
		tree:      tree,
		cache:     layout.NewCache(tree, opts, cfg.cacheOptions...),
		contents:  toc.Build(tree, cfg.tocOptions),
		tocOpts:   cfg.tocOptions,
		selection: Selection{},
		viewport:  Viewport{Width: max(width, 1), Height: max(height, 1)},
		logger:    cfg.logger,
	}
}

// Tree returns the current document tree.
func (p *Page) Tree() *doctree.Tree {
	return p.tree
}

// Contents returns the table of contents of the current tree.
func (p *Page) Contents() *toc.Index {
	return p.contents
}

// Document returns the layout for the current viewport width.
func (p *Page) Document() *layout.Document {
	doc := p.cache.Get(p.viewport.Width)
	if p.resized {
		p.resized = false
		p.setY(p.viewport.Y, doc)
		p.scrollToSelection(doc)
	}
	return doc
}

// Cache exposes the render cache.
func (p *Page) Cache() *layout.Cache {
	return p.cache
}

// Selection returns the selected range.
func (p *Page) Selection() Selection {
	return p.selection
}

// Viewport returns the viewport after applying any pending resize.
func (p *Page) Viewport() Viewport {
	if p.resized {
		p.Document()
	}
	return p.viewport
}

// Mode returns the render mode.
func (p *Page) Mode() layout.Mode {
	return p.cache.Options().Mode
}

// SetMode switches the render mode. Changing the mode drops every cached
// layout and clears the selection.
func (p *Page) SetMode(mode layout.Mode) {
	if p.cache.SetMode(mode) {
		p.selection = Selection{}
		p.resized = true
		p.logger.Debug("render mode changed", logging.FieldMode, mode)
	}
}

// NextMode cycles to the next render mode and returns it.
func (p *Page) NextMode() layout.Mode {
	p.SetMode(p.Mode().Next())
	return p.Mode()
}

// SetOptions replaces the render options, such as the theme.
func (p *Page) SetOptions(opts layout.Options) {
	p.cache.SetOptions(opts)
	p.selection = Selection{}
	p.resized = true
}

// InvalidateAll drops every cached layout and clears the selection.
func (p *Page) InvalidateAll() {
	p.cache.Invalidate()
	p.selection = Selection{}
	p.resized = true
}

// Load replaces the document. Layouts, selection, scroll offset and table of
// contents derived from the previous tree are discarded together.
func (p *Page) Load(tree *doctree.Tree) {
	p.tree = tree
	p.cache.SetTree(tree)
	p.contents = toc.Build(tree, p.tocOpts)
	p.selection = Selection{}
	p.viewport.Y = 0
	p.resized = false
	p.logger.Debug("document loaded", logging.FieldNodes, tree.Len())
}
