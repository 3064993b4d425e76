// Package toc derives the table of contents of a document tree.
package toc

import (
	"strconv"
	"strings"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// TopAnchor is the anchor that always refers to the start of the document.
// It never resolves to a node.
const TopAnchor = "top"

// DefaultTopTitle is the title of the synthetic entry for TopAnchor.
const DefaultTopTitle = "(Top)"

// Entry is one section of the document.
type Entry struct {
	// Number is the hierarchical section number, such as "2.1". It is empty
	// for the synthetic top entry.
	Number string
	Title  string
	Anchor string
	Level  int
	// Node is the header node index, or -1 for the synthetic top entry.
	Node int
}

// IsTop reports whether the entry is the synthetic top entry.
func (e Entry) IsTop() bool {
	return e.Node < 0
}

// Options control which entries Build produces.
type Options struct {
	// IncludeTop prepends an entry for TopAnchor.
	IncludeTop bool
	// TopTitle overrides DefaultTopTitle.
	TopTitle string
	// MaxLevel drops headers deeper than the given level. Zero keeps all.
	MaxLevel int
}

// Index is the table of contents of one tree. It does not depend on the
// render width.
type Index struct {
	entries []Entry
	anchors map[string]int
}

type section struct {
	level int
	count int
}

// Build collects the Header nodes of tree in document order.
func Build(tree *doctree.Tree, opts Options) *Index {
	idx := &Index{anchors: make(map[string]int)}

	if opts.IncludeTop {
		title := opts.TopTitle
		if title == "" {
			title = DefaultTopTitle
		}
		idx.entries = append(idx.entries, Entry{Title: title, Anchor: TopAnchor, Node: -1})
	}

	var stack []section
	for n := range tree.All() {
		header, ok := n.Data().(doctree.Header)
		if !ok {
			continue
		}

		// Later headers with the same anchor win, as in the source documents.
		if header.Anchor != "" {
			idx.anchors[header.Anchor] = n.Index()
		}

		if opts.MaxLevel > 0 && header.Level > opts.MaxLevel {
			continue
		}

		// A header shallower than the sections it closes takes over the
		// position of the outermost one and continues its count.
		popped := 0
		for len(stack) > 0 && stack[len(stack)-1].level > header.Level {
			popped = stack[len(stack)-1].count
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 && stack[len(stack)-1].level == header.Level {
			stack[len(stack)-1].count++
		} else {
			stack = append(stack, section{level: header.Level, count: popped + 1})
		}

		title := header.Text
		if title == "" {
			title = strings.TrimSpace(n.TextContent())
		}

		idx.entries = append(idx.entries, Entry{
			Number: number(stack),
			Title:  title,
			Anchor: header.Anchor,
			Level:  header.Level,
			Node:   n.Index(),
		})
	}

	return idx
}

func number(stack []section) string {
	parts := make([]string, len(stack))
	for i, s := range stack {
		parts[i] = strconv.Itoa(s.count)
	}
	return strings.Join(parts, ".")
}

// Len returns the number of entries, used as the modulus for wrap-around
// cursors.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Entries returns the entries in document order. The slice is shared and
// must not be modified.
func (ix *Index) Entries() []Entry {
	if ix == nil {
		return nil
	}
	return ix.entries
}

// At returns the entry at position i.
func (ix *Index) At(i int) (Entry, bool) {
	if i < 0 || i >= ix.Len() {
		return Entry{}, false
	}
	return ix.entries[i], true
}

// Resolve returns the header node carrying anchor. TopAnchor never resolves.
func (ix *Index) Resolve(anchor string) (int, bool) {
	if ix == nil {
		return 0, false
	}
	node, ok := ix.anchors[anchor]
	return node, ok
}
