package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/loader"
)

// TextReporter writes the styled listings shown on a terminal.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(opts.Color),
	}
}

// Report implements Reporter. Documents that failed to load are skipped;
// their errors are the caller's to report. A file header precedes each
// document when there are several.
func (r *TextReporter) Report(ctx context.Context, result *loader.Result) (err error) {
	reports, err := collect(ctx, result, r.opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	table := pretty.NewTableFormatter(r.styles, r.opts.Width)
	multi := len(result.Docs) > 1
	printed := 0

	for _, report := range reports {
		if report.err != nil {
			continue
		}

		var body string
		switch r.opts.View {
		case ViewContents:
			body = r.styles.FormatContents(report.contents)
		case ViewLinks:
			body = table.FormatLinks(report.links)
		}
		if body == "" && r.opts.View == ViewLinks {
			continue
		}

		if printed > 0 {
			fmt.Fprintln(bw)
		}
		if multi {
			fmt.Fprintln(bw, r.styles.FormatFileHeader(report.path))
		}
		fmt.Fprint(bw, body)
		printed++
	}

	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}
