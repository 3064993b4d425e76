package doctree

import (
	"iter"
	"strconv"
)

// Kind classifies the payload of a node.
type Kind uint8

// Node kinds.
const (
	KindRoot Kind = iota

	// Block-level nodes.
	KindHeader
	KindParagraph
	KindList
	KindListItem
	KindCodeBlock
	KindRule

	// Inline-level nodes.
	KindText
	KindEmphasis
	KindLink
	KindNewline

	// Fallback for unmapped content.
	KindUnsupported
)

var kindNames = [...]string{
	KindRoot:        "Root",
	KindHeader:      "Header",
	KindParagraph:   "Paragraph",
	KindList:        "List",
	KindListItem:    "ListItem",
	KindCodeBlock:   "CodeBlock",
	KindRule:        "Rule",
	KindText:        "Text",
	KindEmphasis:    "Emphasis",
	KindLink:        "Link",
	KindNewline:     "Newline",
	KindUnsupported: "Unsupported",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsBlock returns true if nodes of this kind start on a fresh line.
func (k Kind) IsBlock() bool {
	switch k {
	case KindRoot, KindHeader, KindParagraph, KindList, KindListItem, KindCodeBlock, KindRule:
		return true
	default:
		return false
	}
}

// Node is a lightweight handle to a node of a Tree. The zero Node is invalid.
type Node struct {
	tree  *Tree
	index int
}

// Valid reports whether the handle refers to a node.
func (n Node) Valid() bool {
	return n.tree != nil
}

// Index returns the pre-order index of the node.
func (n Node) Index() int {
	return n.index
}

// Tree returns the tree the node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// Data returns the node payload.
func (n Node) Data() Data {
	return n.tree.nodes[n.index].data
}

// Kind returns the kind of the node payload.
func (n Node) Kind() Kind {
	return n.Data().Kind()
}

// Parent returns the parent node, or an invalid Node for the root.
func (n Node) Parent() Node {
	return n.tree.handle(n.tree.nodes[n.index].parent)
}

// FirstChild returns the first child, or an invalid Node.
func (n Node) FirstChild() Node {
	return n.tree.handle(n.tree.nodes[n.index].firstChild)
}

// LastChild returns the last child, or an invalid Node.
func (n Node) LastChild() Node {
	return n.tree.handle(n.tree.nodes[n.index].lastChild)
}

// NextSibling returns the following sibling, or an invalid Node.
func (n Node) NextSibling() Node {
	return n.tree.handle(n.tree.nodes[n.index].next)
}

// PrevSibling returns the preceding sibling, or an invalid Node.
func (n Node) PrevSibling() Node {
	return n.tree.handle(n.tree.nodes[n.index].prev)
}

// HasChildren returns true if this node has any children.
func (n Node) HasChildren() bool {
	return n.tree.nodes[n.index].firstChild != none
}

// LastDescendant returns the index of the deepest last descendant, which is
// the node's own index for leaves.
func (n Node) LastDescendant() int {
	return n.tree.nodes[n.index].lastDescendant
}

// Depth returns the number of ancestors of the node.
func (n Node) Depth() int {
	depth := 0
	for p := n.tree.nodes[n.index].parent; p != none; p = n.tree.nodes[p].parent {
		depth++
	}
	return depth
}

// Children iterates over the direct children in order.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := n.tree.nodes[n.index].firstChild; c != none; c = n.tree.nodes[c].next {
			if !yield(Node{tree: n.tree, index: c}) {
				return
			}
		}
	}
}

// Descendants iterates depth-first over every node below n, in index order.
// The node itself is not included. Each call returns a fresh iterator.
func (n Node) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		nodes := n.tree.nodes
		var stack []int
		if first := nodes[n.index].firstChild; first != none {
			stack = append(stack, first)
		}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(Node{tree: n.tree, index: top}) {
				return
			}

			if next := nodes[top].next; next != none {
				stack = append(stack, next)
			}
			if child := nodes[top].firstChild; child != none {
				stack = append(stack, child)
			}
		}
	}
}

// Ancestors iterates from the parent up to the root.
func (n Node) Ancestors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.tree.nodes[n.index].parent; p != none; p = n.tree.nodes[p].parent {
			if !yield(Node{tree: n.tree, index: p}) {
				return
			}
		}
	}
}

// Contains reports whether idx is n or one of its descendants.
func (n Node) Contains(idx int) bool {
	return idx >= n.index && idx <= n.LastDescendant()
}

// TextContent concatenates the Text payloads below n.
func (n Node) TextContent() string {
	var out []byte
	if t, ok := n.Data().(Text); ok {
		out = append(out, t.Content...)
	}
	for d := range n.Descendants() {
		if t, ok := d.Data().(Text); ok {
			out = append(out, t.Content...)
		}
	}
	return string(out)
}
