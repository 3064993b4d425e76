package toc

// Cursor is a position in an Index that wraps around at both ends.
type Cursor struct {
	index *Index
	pos   int
}

// NewCursor creates a cursor on the first entry of index.
func NewCursor(index *Index) *Cursor {
	return &Cursor{index: index}
}

// Next moves to the following entry, wrapping to the first.
func (c *Cursor) Next() {
	if n := c.index.Len(); n > 0 {
		c.pos = (c.pos + 1) % n
	}
}

// Prev moves to the preceding entry, wrapping to the last.
func (c *Cursor) Prev() {
	if n := c.index.Len(); n > 0 {
		c.pos = (c.pos - 1 + n) % n
	}
}

// Set moves to position i if it is in range.
func (c *Cursor) Set(i int) {
	if i >= 0 && i < c.index.Len() {
		c.pos = i
	}
}

// Selected returns the cursor position.
func (c *Cursor) Selected() int {
	return c.pos
}

// Entry returns the entry under the cursor.
func (c *Cursor) Entry() (Entry, bool) {
	return c.index.At(c.pos)
}

// Anchor returns the anchor under the cursor, or "" for an empty index.
func (c *Cursor) Anchor() string {
	e, ok := c.Entry()
	if !ok {
		return ""
	}
	return e.Anchor
}

// Reset points the cursor at a new index and moves it to the first entry.
func (c *Cursor) Reset(index *Index) {
	c.index = index
	c.pos = 0
}
