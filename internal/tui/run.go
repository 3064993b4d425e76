package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
)

// Run shows tree until the user quits or ctx is cancelled.
func Run(ctx context.Context, tree *doctree.Tree, opts Options) error {
	model := New(ctx, tree, opts)

	if model.opts.Watch && model.path != "" {
		watcher, err := NewWatcher(model.path)
		if err != nil {
			model.logger.Warn("file watching disabled", logging.FieldPath, model.path, logging.FieldError, err)
		} else {
			model.watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
