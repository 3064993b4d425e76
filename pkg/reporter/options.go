package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/toc"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// View selects contents or links.
	View View

	// Color enables styled text output.
	Color bool

	// ShowSummary appends document and link totals.
	ShowSummary bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string

	// Width is the render width used to place links on lines.
	Width int

	// Layout configures rendering for ViewLinks.
	Layout layout.Options

	// Contents configures the table of contents for ViewContents.
	Contents toc.Options
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:   os.Stdout,
		Format:   FormatText,
		Width:    80,
		Layout:   layout.DefaultOptions(),
		Contents: toc.Options{IncludeTop: true},
	}
}
