// Package reporter writes what docnav found in a set of documents: their
// tables of contents or their links, as styled text or JSON.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
	"github.com/yaklabco/docnav/pkg/toc"
)

// Reporter formats and writes load results.
type Reporter interface {
	// Report writes output for every document of result that loaded.
	Report(ctx context.Context, result *loader.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// documentReport is what both formats show for one document.
type documentReport struct {
	path     string
	title    string
	contents *toc.Index
	links    []pretty.LinkRow
	err      error
}

// collect builds the per-document reports in result order.
func collect(ctx context.Context, result *loader.Result, opts Options) ([]documentReport, error) {
	reports := make([]documentReport, 0, len(result.Docs))
	for _, doc := range result.Docs {
		if err := ctx.Err(); err != nil {
			return reports, fmt.Errorf("report: %w", err)
		}

		report := documentReport{path: displayPath(doc.Path, opts.WorkingDir), err: doc.Err}
		if doc.Err == nil && doc.Tree != nil {
			report.title = doc.Tree.Title()
			switch opts.View {
			case ViewContents:
				report.contents = toc.Build(doc.Tree, opts.Contents)
			case ViewLinks:
				rendered := layout.Render(doc.Tree, opts.Width, opts.Layout)
				report.links = pretty.LinkRows(doc.Tree, rendered)
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// displayPath makes path relative to workingDir when it lies beneath it.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
