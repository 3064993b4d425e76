package tui

import (
	"fmt"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watcher reports changes to a single file. It watches the parent directory
// so that editors replacing the file are noticed too.
type Watcher struct {
	fs *fsnotify.Watcher

	mu   sync.Mutex
	path string
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{fs: fsw}
	if err := w.Watch(path); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Watch switches the watcher to path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path != "" && filepath.Dir(w.path) == filepath.Dir(abs) {
		w.path = abs
		return nil
	}
	if w.path != "" {
		_ = w.fs.Remove(filepath.Dir(w.path))
	}
	if err := w.fs.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w.path = abs
	return nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops watching. Pending waits return nil.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&watchOps == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.Path()
}

// wait blocks until the watched file changes. The model issues it again
// after every change it receives.
func (w *Watcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if w.matches(event) {
					return fileChangedMsg{path: event.Name}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
