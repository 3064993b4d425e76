package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/loader"
	"github.com/yaklabco/docnav/pkg/parser"
)

func TestParserFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.md", "b.markdown", "c.html", "d.HTM"} {
		p, err := loader.ParserFor(name, loader.Options{})
		require.NoError(t, err, name)
		assert.NotNil(t, p, name)
	}

	_, err := loader.ParserFor("notes.txt", loader.Options{})
	require.ErrorIs(t, err, parser.ErrUnsupportedFormat)
}

func TestLoad_Markdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.md": "# Index\n\nSee [guide](guide.md) and [missing](missing.md).\n",
		"guide.md": "# Guide\n",
	})

	tree, err := loader.Load(context.Background(), filepath.Join(dir, "index.md"),
		loader.Options{RedLinks: true})
	require.NoError(t, err)
	assert.Equal(t, "Index", tree.Title())

	var targets []doctree.LinkTarget
	for n := range tree.Links() {
		targets = append(targets, n.Data().(doctree.Link).Target)
	}
	assert.Equal(t, []doctree.LinkTarget{
		doctree.InternalTarget{Page: "guide.md"},
		doctree.RedTarget{Page: "missing.md"},
	}, targets)
}

func TestLoad_HTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"page.html": `<html><head><title>Page</title></head><body><p>hi</p></body></html>`,
	})

	tree, err := loader.Load(context.Background(), filepath.Join(dir, "page.html"), loader.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Page", tree.Title())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "gone.md"), loader.Options{})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(context.Background(), "notes.txt", loader.Options{})
	require.ErrorIs(t, err, parser.ErrUnsupportedFormat)
}

func TestSiblingExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"guide.md": "x", "sub/page.md": "x"})

	exists := loader.SiblingExists(dir)
	assert.True(t, exists("guide.md"))
	assert.True(t, exists("guide"))
	assert.True(t, exists("sub/page.md"))
	assert.False(t, exists("other.md"))
}

func TestResolvePage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Gopher.html": "x", "notes.md": "x"})

	path, ok := loader.ResolvePage(dir, "Gopher")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Gopher.html"), path)

	path, ok = loader.ResolvePage(dir, "notes.md")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "notes.md"), path)

	_, ok = loader.ResolvePage(dir, "notes.txt")
	assert.False(t, ok)
	_, ok = loader.ResolvePage(dir, ".")
	assert.False(t, ok, "directories are not pages")
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":      "# A\n\n[b](b.md)\n",
		"b.md":      "# B\n",
		"c.html":    `<p><a href="/wiki/X">x</a></p>`,
		"skip.txt":  "x",
		"docs/d.md": "[one](https://one.example) [two](#top)\n",
	})

	result, err := loader.LoadAll(context.Background(), loader.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)
	require.NoError(t, result.Err())

	require.Len(t, result.Docs, 4)
	assert.Equal(t, filepath.Join(dir, "a.md"), result.Docs[0].Path)
	assert.Equal(t, filepath.Join(dir, "docs/d.md"), result.Docs[3].Path)

	assert.Equal(t, 4, result.Stats.Discovered)
	assert.Equal(t, 4, result.Stats.Loaded)
	assert.Equal(t, 0, result.Stats.Errored)
	assert.Equal(t, 4, result.Stats.Links)
}

func TestLoadAll_RecordsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# A\n", "notes.txt": "x"})

	result, err := loader.LoadAll(context.Background(), loader.Options{
		Paths:      []string{"a.md", "notes.txt"},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Loaded)
	assert.Equal(t, 1, result.Stats.Errored)
	require.Error(t, result.Err())
	assert.True(t, errors.Is(result.Err(), parser.ErrUnsupportedFormat))
}

func TestLoadAll_Empty(t *testing.T) {
	t.Parallel()

	result, err := loader.LoadAll(context.Background(), loader.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Docs)
	assert.NoError(t, result.Err())
}
