package doctree

// Builder assembles a Tree. Nodes receive their index when they are opened,
// so indices follow pre-order as long as children are added between Open and
// Close of their parent.
type Builder struct {
	nodes []entry
	open  []int
}

// NewBuilder creates a builder whose root carries the given payload.
func NewBuilder(root Root) *Builder {
	b := &Builder{}
	b.nodes = append(b.nodes, entry{
		data:       root,
		parent:     none,
		firstChild: none,
		lastChild:  none,
		prev:       none,
		next:       none,
	})
	b.open = append(b.open, 0)
	return b
}

// Open appends a node as the last child of the innermost open node and makes
// it the new innermost open node. It returns the node index.
func (b *Builder) Open(data Data) int {
	idx := b.append(data)
	b.open = append(b.open, idx)
	return idx
}

// Close finishes the innermost open node. The root cannot be closed.
func (b *Builder) Close() {
	if len(b.open) <= 1 {
		return
	}
	idx := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	b.nodes[idx].lastDescendant = len(b.nodes) - 1
}

// Leaf appends a childless node and returns its index.
func (b *Builder) Leaf(data Data) int {
	idx := b.append(data)
	b.nodes[idx].lastDescendant = idx
	return idx
}

// Set replaces the payload of an existing node. Parsers use it to fill in
// values only known after the children were added, such as heading text.
func (b *Builder) Set(idx int, data Data) {
	if idx < 0 || idx >= len(b.nodes) {
		return
	}
	b.nodes[idx].data = data
}

// Current returns the index of the innermost open node.
func (b *Builder) Current() int {
	return b.open[len(b.open)-1]
}

// Depth returns the number of open nodes below the root.
func (b *Builder) Depth() int {
	return len(b.open) - 1
}

// Len returns the number of nodes added so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Build closes all open nodes and returns the finished tree. The builder must
// not be used afterwards.
func (b *Builder) Build() *Tree {
	for len(b.open) > 1 {
		b.Close()
	}
	b.nodes[0].lastDescendant = len(b.nodes) - 1
	tree := &Tree{nodes: b.nodes}
	b.nodes = nil
	b.open = nil
	return tree
}

func (b *Builder) append(data Data) int {
	parent := b.open[len(b.open)-1]
	idx := len(b.nodes)
	b.nodes = append(b.nodes, entry{
		data:           data,
		parent:         parent,
		firstChild:     none,
		lastChild:      none,
		prev:           b.nodes[parent].lastChild,
		next:           none,
		lastDescendant: idx,
	})

	if last := b.nodes[parent].lastChild; last != none {
		b.nodes[last].next = idx
	} else {
		b.nodes[parent].firstChild = idx
	}
	b.nodes[parent].lastChild = idx

	return idx
}
