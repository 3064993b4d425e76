// Package tui is the interactive document viewer. It wraps a page.Page in a
// Bubble Tea model and draws it with a contents sidebar, a scrollbar and a
// status bar.
package tui

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
)

// Minimum sidebar width in cells, borders included.
const minContentsWidth = 12

// Options configures the viewer.
type Options struct {
	// Path is the file being viewed. Internal links resolve relative to it.
	Path string

	// Loader is used to parse the file again on reload and to open linked
	// pages.
	Loader loader.Options

	// Layout holds the render mode and theme.
	Layout layout.Options

	// CacheSize bounds the number of widths kept rendered.
	CacheSize int

	// ScrollAmount is the number of lines a single scroll moves.
	ScrollAmount int

	// ShowContents keeps the contents sidebar open.
	ShowContents bool

	// IncludeTop adds an entry for the top of the document to the contents.
	IncludeTop bool

	// ContentsWidthPercent is the share of the screen the sidebar takes.
	ContentsWidthPercent int

	// Watch reloads the document when the file changes on disk.
	Watch bool

	// Logger receives debug output. The terminal belongs to the viewer, so
	// this normally writes to a file.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.ScrollAmount <= 0 {
		o.ScrollAmount = config.DefaultScrollAmount
	}
	if o.ContentsWidthPercent <= 0 {
		o.ContentsWidthPercent = config.DefaultContentsWidth
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Layout.Indent <= 0 {
		o.Layout.Indent = layout.DefaultIndent
	}
	return o
}
