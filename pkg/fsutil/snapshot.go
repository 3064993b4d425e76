// Package fsutil holds the file helpers docnav needs outside the parsers:
// atomic writes for generated config and content snapshots that let the
// viewer tell a real edit from a touch.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ErrIsDirectory is returned when a snapshot is requested for a directory.
var ErrIsDirectory = errors.New("path is a directory")

// Snapshot records the state of a file at one point in time.
type Snapshot struct {
	Path    string
	ModTime time.Time
	Size    int64
	Hash    [sha256.Size]byte
}

// Valid reports whether s was taken from an existing file.
func (s Snapshot) Valid() bool {
	return s.Path != ""
}

// Take reads path and records its metadata and content hash.
func Take(ctx context.Context, path string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("stat: %w", err)
	}
	if stat.IsDir() {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read: %w", err)
	}

	return Snapshot{
		Path:    path,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file behind s differs from the snapshot. An
// invalid snapshot always counts as changed, and so does a removed file.
// Metadata that matches is confirmed against the content hash, since editors
// may rewrite a file within the same mtime tick.
func Changed(ctx context.Context, s Snapshot) (bool, error) {
	if !s.Valid() {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check %s: %w", s.Path, err)
	}

	stat, err := os.Stat(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat: %w", err)
	}
	if !stat.ModTime().Equal(s.ModTime) || stat.Size() != s.Size {
		return true, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read: %w", err)
	}
	return sha256.Sum256(content) != s.Hash, nil
}
