package doctree

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal starting at root.
// If walkFunc returns a non-nil error, the walk stops and returns that error.
func Walk(root Node, walkFunc WalkFunc) error {
	if !root.Valid() {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}
	for n := range root.Descendants() {
		if err := walkFunc(n); err != nil {
			return err
		}
	}

	return nil
}

// WalkContextFunc is the function signature for WalkWithContext callbacks.
type WalkContextFunc func(n Node) error

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkContextFunc) error {
	if !root.Valid() {
		return nil
	}

	// Nodes still waiting for their leave callback.
	var pending []Node

	flush := func(upTo int) error {
		for len(pending) > 0 && pending[len(pending)-1].LastDescendant() < upTo {
			n := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if leave != nil {
				if err := leave(n); err != nil {
					return err
				}
			}
		}
		return nil
	}

	visit := func(n Node) error {
		if err := flush(n.Index()); err != nil {
			return err
		}
		if enter != nil {
			if err := enter(n); err != nil {
				return err
			}
		}
		pending = append(pending, n)
		return nil
	}

	if err := visit(root); err != nil {
		return err
	}
	for n := range root.Descendants() {
		if err := visit(n); err != nil {
			return err
		}
	}

	return flush(root.LastDescendant() + 1)
}

// FindAll returns all nodes below and including root matching the predicate.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or an invalid Node.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root Node, kind Kind) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
