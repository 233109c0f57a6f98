package move

import "github.com/1broseidon/arbortile/internal/tree"

// descendInto relocates w into the sibling container target, landing at the
// innermost insertion point appropriate for the move orientation.
func descendInto(w *tree.Window, target *tree.Container, dir tree.Direction) {
	dest := findInsertionTarget(target, dir.Orientation())
	tree.Unbind(w)
	switch t := dest.(type) {
	case *tree.Container:
		tree.Bind(w, t, 0, tree.DefaultWeight)
	case *tree.Window:
		tree.Bind(w, t.Parent(), tree.IndexOf(t)+1, tree.DefaultWeight)
	}
}

// findInsertionTarget resolves where inside c a window moving along the given
// orientation should land. A container whose orientation matches is itself
// the target (the window becomes its first child). Otherwise the search
// recurses into the most-recently-active child: a window there means "insert
// adjacent, just after"; a container keeps descending.
//
// Empty containers must never exist mid-traversal; normalization removes them
// after every mutation, so meeting one here is corruption.
func findInsertionTarget(c *tree.Container, o tree.Orientation) tree.Node {
	if c.Orientation == o {
		return c
	}
	recent := c.LastActiveChild()
	if recent == nil {
		tree.Invariant("empty container reached during deep descent")
	}
	switch child := recent.(type) {
	case *tree.Window:
		return child
	case *tree.Container:
		return findInsertionTarget(child, o)
	}
	return nil
}
