package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/fsutil"
	"github.com/yaklabco/docnav/pkg/loader"
)

// reloadDelay collapses the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// documentLoadedMsg delivers a parsed document.
type documentLoadedMsg struct {
	path   string
	tree   *doctree.Tree
	anchor   string
	reload   bool
	snapshot fsutil.Snapshot
}

// loadFailedMsg reports a document that could not be read or parsed.
type loadFailedMsg struct {
	path string
	err  error
}

// fileChangedMsg reports a change to the watched file.
type fileChangedMsg struct {
	path string
}

// unchangedMsg reports a reload that found the file content unchanged.
type unchangedMsg struct{}

// reloadMsg fires once the file has been quiet for reloadDelay.
type reloadMsg struct {
	seq int
}

// watchErrMsg reports a watcher failure.
type watchErrMsg struct {
	err error
}

// loadCmd parses path off the update loop.
func loadCmd(ctx context.Context, path, anchor string, reload bool, opts loader.Options) tea.Cmd {
	return func() tea.Msg {
		tree, err := loader.Load(ctx, path, opts)
		if err != nil {
			return loadFailedMsg{path: path, err: err}
		}
		// A failed snapshot only means the next reload cannot be skipped.
		snap, _ := fsutil.Take(ctx, path)
		return documentLoadedMsg{path: path, tree: tree, anchor: anchor, reload: reload, snapshot: snap}
	}
}

// reloadCmd re-parses the file behind prev unless its content is unchanged.
func reloadCmd(ctx context.Context, path string, prev fsutil.Snapshot, opts loader.Options) tea.Cmd {
	load := loadCmd(ctx, path, "", true, opts)
	return func() tea.Msg {
		if prev.Path == path {
			if changed, err := fsutil.Changed(ctx, prev); err == nil && !changed {
				return unchangedMsg{}
			}
		}
		return load()
	}
}

func reloadAfter(seq int) tea.Cmd {
	return tea.Tick(reloadDelay, func(time.Time) tea.Msg {
		return reloadMsg{seq: seq}
	})
}
