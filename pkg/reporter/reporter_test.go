package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
	"github.com/yaklabco/docnav/pkg/reporter"
	"github.com/yaklabco/docnav/pkg/toc"
)

func guide() *doctree.Tree {
	b := doctree.NewBuilder(doctree.Root{Title: "Guide"})
	b.Open(doctree.Header{Level: 1, Text: "Intro", Anchor: "intro"})
	b.Leaf(doctree.Text{Content: "Intro"})
	b.Close()
	b.Open(doctree.Paragraph{})
	b.Leaf(doctree.Text{Content: "see "})
	b.Open(doctree.Link{Target: doctree.ExternalTarget{URL: "https://go.dev"}})
	b.Leaf(doctree.Text{Content: "Go"})
	b.Close()
	b.Close()
	return b.Build()
}

func sampleResult(dir string) *loader.Result {
	return &loader.Result{
		Docs: []loader.Outcome{
			{Path: filepath.Join(dir, "guide.md"), Tree: guide()},
			{Path: filepath.Join(dir, "broken.md"), Err: errors.New("boom")},
		},
		Stats: loader.Stats{Discovered: 2, Loaded: 1, Errored: 1, Links: 1},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]reporter.Format{"": reporter.FormatText, "text": reporter.FormatText, "json": reporter.FormatJSON} {
		got, err := reporter.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.True(t, got.IsValid())
	}

	_, err := reporter.ParseFormat("sarif")
	require.Error(t, err)
	assert.False(t, reporter.Format("sarif").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter_Contents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		View:       reporter.ViewContents,
		WorkingDir: dir,
		Contents:   toc.Options{IncludeTop: true},
	})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), sampleResult(dir)))

	assert.Equal(t, "guide.md\n(Top)  #top\n1 Intro  #intro\n", buf.String())
}

func TestTextReporter_LinksWithSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		View:        reporter.ViewLinks,
		ShowSummary: true,
		Width:       60,
		Layout:      layout.DefaultOptions(),
	})
	require.NoError(t, err)

	result := sampleResult(t.TempDir())
	result.Docs = result.Docs[:1]
	result.Stats = loader.Stats{Discovered: 1, Loaded: 1, Links: 1}
	require.NoError(t, rep.Report(context.Background(), result))

	out := buf.String()
	assert.Contains(t, out, "external")
	assert.Contains(t, out, "https://go.dev")
	assert.Contains(t, out, "1 document, 1 link\n")
	assert.NotContains(t, out, "guide.md", "no header for a single document")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatJSON,
		View:       reporter.ViewLinks,
		WorkingDir: dir,
		Width:      60,
		Layout:     layout.DefaultOptions(),
	})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), sampleResult(dir)))

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "1", got.Version)
	assert.Equal(t, "links", got.View)
	require.Len(t, got.Documents, 2)

	assert.Equal(t, "guide.md", got.Documents[0].Path)
	assert.Equal(t, "Guide", got.Documents[0].Title)
	assert.Equal(t, []reporter.JSONLink{{Line: 4, Kind: "external", Text: "Go", Target: "https://go.dev"}},
		got.Documents[0].Links)
	assert.Empty(t, got.Documents[0].Contents)

	assert.Equal(t, "broken.md", got.Documents[1].Path)
	assert.Equal(t, "boom", got.Documents[1].Error)

	assert.Equal(t, reporter.JSONSummary{Discovered: 2, Loaded: 1, Errored: 1, Links: 1}, got.Summary)
}

func TestReport_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON})
	require.NoError(t, err)
	require.ErrorIs(t, rep.Report(ctx, sampleResult(t.TempDir())), context.Canceled)
	assert.Empty(t, buf.String())
}
