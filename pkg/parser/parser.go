// Package parser defines the upstream adapters that turn source documents
// into document trees, and picks one by file name.
package parser

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// ErrUnsupportedFormat is returned when no parser handles a source.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Parser converts raw source into an immutable document tree.
type Parser interface {
	Parse(ctx context.Context, name string, content []byte) (*doctree.Tree, error)
}

// Format names a source format.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return FormatMarkdown, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// PageExists reports whether an internal link target exists. Links to
// missing pages become red links.
type PageExists func(page string) bool
