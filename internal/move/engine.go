// Package move implements directional relocation of a window within its
// workspace's tiling tree: sibling swaps, deep descent into neighbouring
// containers, move-out past mismatched ancestors, and boundary resolution
// including the cross-monitor handoff.
package move

import (
	"errors"

	"github.com/1broseidon/arbortile/internal/tree"
)

// Boundaries selects which edge stops a directional move.
type Boundaries string

const (
	// BoundariesWorkspace treats the workspace edge as the outer boundary.
	BoundariesWorkspace Boundaries = "workspace"
	// BoundariesAllMonitors lets moves cross into adjacent displays; only the
	// outer edge of the union of all monitors is a boundary.
	BoundariesAllMonitors Boundaries = "all-monitors"
)

// BoundaryAction decides what happens when a move hits the outer boundary.
type BoundaryAction string

const (
	// ActionStop reports success without changing the tree.
	ActionStop BoundaryAction = "stop"
	// ActionFail reports an ordinary failure.
	ActionFail BoundaryAction = "fail"
	// ActionCreateContainer wraps the workspace in a new implicit container
	// of the move orientation and relocates the window into it.
	ActionCreateContainer BoundaryAction = "create-container"
)

// Policy is the two-axis boundary configuration plus the focus behaviour
// forwarded to cross-monitor relocation.
type Policy struct {
	Boundaries         Boundaries
	OnBoundary         BoundaryAction
	FocusFollowsWindow bool
}

// MonitorTopology answers adjacency queries over the physical displays.
// Implementations must always be able to locate the window's own monitor;
// failing that is model corruption, not a recoverable error.
type MonitorTopology interface {
	// AdjacentMonitor returns the id of the monitor next to w's monitor in
	// the given direction. ok is false when w's monitor is already at the
	// outer edge of all monitors.
	AdjacentMonitor(w *tree.Window, dir tree.Direction) (monitor int, ok bool)
}

// CrossMonitorMover relocates a window onto another monitor's workspace. The
// engine delegates to it verbatim when a monitor-crossing boundary case
// applies; its internal algorithm is outside this package.
type CrossMonitorMover interface {
	MoveToMonitor(w *tree.Window, monitor int, dir tree.Direction, focusFollows bool) error
}

var (
	// ErrNoWindow is reported when no window is focused or the target window
	// is not part of any workspace.
	ErrNoWindow = errors.New("no focused window")
	// ErrFloating is reported for windows tiled directly under the workspace
	// rather than a tiling container.
	ErrFloating = errors.New("moving floating windows is not supported")
	// ErrSpecialContainer is reported for windows parked in the minimized,
	// fullscreen or hidden-apps containers.
	ErrSpecialContainer = errors.New("moving minimized, fullscreen or hidden-app windows is not supported, subject to change")
	// ErrOnBoundary is the policy-directed failure when on_boundary is
	// configured to fail.
	ErrOnBoundary = errors.New("window is already at the edge")
)

// Engine relocates windows within and across workspaces according to its
// policy. It mutates only the logical tree; applying the new shape to screen
// geometry is the caller's layout pass.
//
// The engine is not safe for concurrent use: all tree mutation must be
// serialized by the owner (see wm.Manager).
type Engine struct {
	Policy   Policy
	Topology MonitorTopology
	Mover    CrossMonitorMover
}

// Move relocates w one step in the given direction. A nil error covers both a
// changed tree and the policy-directed no-op; callers that need to
// distinguish can snapshot the tree. All recoverable failures are returned as
// errors; detected tree corruption terminates via tree.Invariant.
func (e *Engine) Move(w *tree.Window, dir tree.Direction) error {
	if w == nil || w.Workspace() == nil {
		return ErrNoWindow
	}
	ws := w.Workspace()

	parent := w.Parent()
	if parent == nil {
		if ws.IsFloating(w) {
			return ErrFloating
		}
		return ErrNoWindow
	}

	switch parent.Kind {
	case tree.KindTiling:
		// The normal case, handled below.
	case tree.KindMinimized, tree.KindFullscreen, tree.KindHiddenApps:
		return ErrSpecialContainer
	case tree.KindPopup:
		tree.Invariant("window %d has a popup container parent", w.ID)
	default:
		tree.Invariant("window %d has a container parent of unknown kind %s", w.ID, parent.Kind)
	}

	if parent.Orientation == dir.Orientation() {
		siblingIdx := tree.IndexOf(w) + dir.FocusOffset()
		if siblingIdx >= 0 && siblingIdx < parent.Len() {
			switch sibling := parent.ChildAt(siblingIdx).(type) {
			case *tree.Window:
				swap(w, parent, siblingIdx)
			case *tree.Container:
				if sibling.Kind != tree.KindTiling {
					tree.Invariant("%s container nested inside a tiling container", sibling.Kind)
				}
				descendInto(w, sibling, dir)
			}
			ws.Normalize()
			return nil
		}
	}

	if tree.IsOnWorkspaceBoundary(w, dir) {
		return e.resolveBoundary(w, dir)
	}
	if err := moveOut(w, dir); err != nil {
		return err
	}
	ws.Normalize()
	return nil
}

// swap exchanges w with the leaf sibling at siblingIdx by rebinding w at the
// sibling's position. The sibling itself is untouched; removing and
// reinserting w realizes the positional swap. w's weight is preserved.
func swap(w *tree.Window, parent *tree.Container, siblingIdx int) {
	_, weight := tree.Unbind(w)
	tree.Bind(w, parent, siblingIdx, weight)
}

// resolveBoundary applies the boundary policy for a window sitting on its
// workspace's outer edge in dir.
func (e *Engine) resolveBoundary(w *tree.Window, dir tree.Direction) error {
	if e.Policy.Boundaries == BoundariesAllMonitors && e.Topology != nil && e.Mover != nil {
		if monitor, ok := e.Topology.AdjacentMonitor(w, dir); ok {
			return e.Mover.MoveToMonitor(w, monitor, dir, e.Policy.FocusFollowsWindow)
		}
		// Outer edge of all monitors: fall through to the three-way action.
	}

	switch e.Policy.OnBoundary {
	case ActionStop:
		return nil
	case ActionFail:
		return ErrOnBoundary
	case ActionCreateContainer:
		if err := moveOut(w, dir); err != nil {
			return err
		}
		w.Workspace().Normalize()
		return nil
	default:
		return ErrOnBoundary
	}
}
