package move

import "github.com/1broseidon/arbortile/internal/tree"

// moveOut relocates w one level toward the nearest ancestor container whose
// axis matches the move direction, synthesizing a new implicit root container
// when no such ancestor exists.
//
// The walk climbs the ancestor chain starting at w's parent. The first
// container whose own parent is a tiling container on the matching axis marks
// the insertion level: w is rebound into that parent next to the ancestor,
// before or after it per the direction's insertion offset. Reaching the
// workspace root without a match wraps the whole workspace instead: a fresh
// container of the move orientation becomes the new root, the previous root
// its first child, and w its other child on the side the direction demands.
func moveOut(w *tree.Window, dir tree.Direction) error {
	ws := w.Workspace()

	for ancestor := w.Parent(); ; {
		parent := ancestor.Parent()
		if parent == nil {
			if tree.Node(ancestor) != tree.Node(ws.Root()) {
				tree.Invariant("move-out walk escaped the workspace tree")
			}
			wrapRoot(ws, w, dir)
			return nil
		}
		switch parent.Kind {
		case tree.KindTiling:
		case tree.KindMinimized, tree.KindFullscreen, tree.KindHiddenApps:
			return ErrSpecialContainer
		default:
			tree.Invariant("%s container encountered on the move-out walk", parent.Kind)
		}
		if parent.Orientation == dir.Orientation() {
			idx := tree.IndexOf(ancestor) + dir.InsertionOffset()
			tree.Unbind(w)
			tree.Bind(w, parent, idx, tree.DefaultWeight)
			return nil
		}
		ancestor = parent
	}
}

// wrapRoot synthesizes the implicit container: the previous root is demoted
// to the first child of a new root oriented along dir, and w binds beside it.
func wrapRoot(ws *tree.Workspace, w *tree.Window, dir tree.Direction) {
	oldRoot := ws.Root()
	tree.Unbind(w)

	newRoot := tree.NewContainer(dir.Orientation())
	ws.SetRoot(newRoot)
	tree.Bind(oldRoot, newRoot, 0, tree.DefaultWeight)
	tree.Bind(w, newRoot, dir.InsertionOffset(), tree.DefaultWeight)
}
