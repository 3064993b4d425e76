// Package doctree holds the immutable, index-addressed document tree that the
// layout engine renders and the page session navigates.
package doctree

import "iter"

const none = -1

type entry struct {
	data           Data
	parent         int
	firstChild     int
	lastChild      int
	prev           int
	next           int
	lastDescendant int
}

// Tree is an immutable document tree. Node indices are dense, start at zero
// with the root, and follow pre-order traversal. Trees are built with a
// Builder and never change afterwards.
type Tree struct {
	nodes []entry
}

// Len returns the number of nodes, including the root.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns node 0.
func (t *Tree) Root() Node {
	return Node{tree: t, index: 0}
}

// Node returns the node at idx, or false if idx is out of range.
func (t *Tree) Node(idx int) (Node, bool) {
	if t == nil || idx < 0 || idx >= len(t.nodes) {
		return Node{}, false
	}
	return Node{tree: t, index: idx}, true
}

// Data returns the payload of the node at idx, or nil if idx is out of range.
func (t *Tree) Data(idx int) Data {
	if t == nil || idx < 0 || idx >= len(t.nodes) {
		return nil
	}
	return t.nodes[idx].data
}

// LastDescendant returns the deepest last descendant of idx, or idx itself
// when it is a leaf or out of range.
func (t *Tree) LastDescendant(idx int) int {
	if t == nil || idx < 0 || idx >= len(t.nodes) {
		return idx
	}
	return t.nodes[idx].lastDescendant
}

// Title returns the document title carried by the root, if any.
func (t *Tree) Title() string {
	if t.Len() == 0 {
		return ""
	}
	if r, ok := t.nodes[0].data.(Root); ok {
		return r.Title
	}
	return ""
}

// All iterates over every node in index order, starting with the root.
func (t *Tree) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if t.Len() == 0 {
			return
		}
		root := t.Root()
		if !yield(root) {
			return
		}
		for n := range root.Descendants() {
			if !yield(n) {
				return
			}
		}
	}
}

// Links iterates over the Link nodes in document order.
func (t *Tree) Links() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n := range t.All() {
			if n.Kind() == KindLink && !yield(n) {
				return
			}
		}
	}
}

func (t *Tree) handle(idx int) Node {
	if idx == none {
		return Node{}
	}
	return Node{tree: t, index: idx}
}
