package wm

import (
	"github.com/1broseidon/arbortile/internal/tree"
)

// SnapshotNode is a serializable view of one tree node.
type SnapshotNode struct {
	Type        string         `json:"type"` // "window" or "container"
	ID          uint32         `json:"id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Orientation string         `json:"orientation,omitempty"`
	Weight      float64        `json:"weight"`
	Focused     bool           `json:"focused,omitempty"`
	Children    []SnapshotNode `json:"children,omitempty"`
}

// WorkspaceSnapshot is a serializable view of one workspace.
type WorkspaceSnapshot struct {
	Name      string         `json:"name"`
	Monitor   int            `json:"monitor"`
	Root      SnapshotNode   `json:"root"`
	Minimized []SnapshotNode `json:"minimized,omitempty"`
	Floating  []SnapshotNode `json:"floating,omitempty"`
}

// Snapshot captures every workspace tree for IPC and TUI consumers.
func (m *Manager) Snapshot() []WorkspaceSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]WorkspaceSnapshot, 0, len(m.workspaces))
	for _, ws := range m.workspaces {
		snap := WorkspaceSnapshot{
			Name:    ws.Name,
			Monitor: ws.Monitor,
			Root:    snapshotNode(ws.Root(), ws.Focused()),
		}
		for _, child := range ws.Minimized().Children() {
			snap.Minimized = append(snap.Minimized, snapshotNode(child, ws.Focused()))
		}
		for _, f := range ws.Floating() {
			snap.Floating = append(snap.Floating, snapshotNode(f, ws.Focused()))
		}
		out = append(out, snap)
	}
	return out
}

func snapshotNode(n tree.Node, focused *tree.Window) SnapshotNode {
	switch v := n.(type) {
	case *tree.Window:
		return SnapshotNode{
			Type:    "window",
			ID:      v.ID,
			Title:   v.Title,
			Weight:  v.Weight(),
			Focused: v == focused,
		}
	case *tree.Container:
		node := SnapshotNode{
			Type:        "container",
			Orientation: v.Orientation.String(),
			Weight:      v.Weight(),
		}
		for _, child := range v.Children() {
			node.Children = append(node.Children, snapshotNode(child, focused))
		}
		return node
	}
	tree.Invariant("unknown node type in snapshot")
	return SnapshotNode{}
}
