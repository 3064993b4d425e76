package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/docnav/pkg/loader"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string         `json:"version"`
	View      string         `json:"view"`
	Documents []JSONDocument `json:"documents"`
	Summary   JSONSummary    `json:"summary"`
}

// JSONDocument represents a single document's results.
type JSONDocument struct {
	Path     string      `json:"path"`
	Title    string      `json:"title,omitempty"`
	Contents []JSONEntry `json:"contents,omitempty"`
	Links    []JSONLink  `json:"links,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// JSONEntry is one section of a table of contents.
type JSONEntry struct {
	Number string `json:"number,omitempty"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Level  int    `json:"level"`
}

// JSONLink is one link with the one-based line it is rendered on.
type JSONLink struct {
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Target string `json:"target"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Discovered int `json:"discovered"`
	Loaded     int `json:"loaded"`
	Errored    int `json:"errored"`
	Links      int `json:"links"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter. Failed documents are included with their
// error.
func (r *JSONReporter) Report(ctx context.Context, result *loader.Result) (err error) {
	reports, err := collect(ctx, result, r.opts)
	if err != nil {
		return err
	}

	out := JSONOutput{
		Version:   jsonVersion,
		View:      r.opts.View.String(),
		Documents: make([]JSONDocument, 0, len(reports)),
		Summary: JSONSummary{
			Discovered: result.Stats.Discovered,
			Loaded:     result.Stats.Loaded,
			Errored:    result.Stats.Errored,
			Links:      result.Stats.Links,
		},
	}

	for _, report := range reports {
		doc := JSONDocument{Path: report.path, Title: report.title}
		if report.err != nil {
			doc.Error = report.err.Error()
		}
		if report.contents != nil {
			for _, e := range report.contents.Entries() {
				doc.Contents = append(doc.Contents, JSONEntry{
					Number: e.Number,
					Title:  e.Title,
					Anchor: e.Anchor,
					Level:  e.Level,
				})
			}
		}
		for _, row := range report.links {
			doc.Links = append(doc.Links, JSONLink{
				Line:   row.Line + 1,
				Kind:   row.Kind.String(),
				Text:   row.Text,
				Target: row.Target,
			})
		}
		out.Documents = append(out.Documents, doc)
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
