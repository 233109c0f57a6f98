package tree

// IsOnWorkspaceBoundary reports whether n is flush against its workspace's
// outer edge in the given direction.
//
// The walk climbs from n to the workspace root. A container whose orientation
// differs from the direction's axis never constrains boundary-ness and defers
// the question upward. A container on the matching axis requires n's subtree
// to occupy the extreme index (first for left/up, last for right/down);
// anything interior settles the question immediately. Reaching the root
// without a disqualifying position means the node is on the boundary.
//
// Detached nodes, floating windows and workspaces without a root are never on
// a boundary.
func IsOnWorkspaceBoundary(n Node, dir Direction) bool {
	ws := n.Workspace()
	if ws == nil || ws.root == nil {
		return false
	}

	node := n
	for {
		parent := node.Parent()
		if parent == nil {
			// Walked past the top: only the workspace root qualifies.
			return node == Node(ws.root)
		}
		if parent.Kind != KindTiling {
			// Special containers sit outside the tiling tree; their members
			// have no tiling boundary.
			return false
		}
		if parent.Orientation == dir.Orientation() {
			idx := IndexOf(node)
			if dir.FocusOffset() < 0 {
				if idx != 0 {
					return false
				}
			} else if idx != parent.Len()-1 {
				return false
			}
		}
		node = parent
	}
}
