package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/parser"
	"github.com/yaklabco/docnav/pkg/parser/goldmark"
	"github.com/yaklabco/docnav/pkg/parser/wikihtml"
)

// ParserFor picks the parser for a file by its extension.
func ParserFor(path string, opts Options) (parser.Parser, error) {
	format, err := parser.FormatForPath(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case parser.FormatMarkdown:
		var mdOpts []goldmark.Option
		if opts.RedLinks {
			mdOpts = append(mdOpts, goldmark.WithPageExists(SiblingExists(filepath.Dir(path))))
		}
		return goldmark.New(opts.Flavor, mdOpts...), nil
	case parser.FormatHTML:
		return wikihtml.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", parser.ErrUnsupportedFormat, format)
	}
}

// Load reads and parses a single document.
func Load(ctx context.Context, path string, opts Options) (*doctree.Tree, error) {
	p, err := ParserFor(path, opts)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := p.Parse(ctx, filepath.Base(path), content)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// SiblingExists reports pages as existing when a file of that name exists
// relative to dir. Pages without an extension also match a Markdown file.
func SiblingExists(dir string) parser.PageExists {
	return func(page string) bool {
		_, ok := ResolvePage(dir, page)
		return ok
	}
}

// ResolvePage finds the file a page reference names, relative to dir. A
// reference without an extension also matches a file with any supported
// document extension.
func ResolvePage(dir, page string) (string, bool) {
	target := filepath.FromSlash(page)
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return target, true
	}
	if filepath.Ext(target) != "" {
		return "", false
	}
	for _, ext := range DefaultExtensions() {
		if info, err := os.Stat(target + ext); err == nil && !info.IsDir() {
			return target + ext, true
		}
	}
	return "", false
}

// IsDocument reports whether path has one of the given extensions.
func IsDocument(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
