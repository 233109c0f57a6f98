// Package wm owns the per-monitor workspaces and coordinates the move engine,
// layout pass and platform backend. All mutation is serialized behind the
// manager's lock; IPC handlers and the daemon's sync loop call into it
// concurrently.
package wm

import (
	"fmt"
	"log"
	"sync"

	"github.com/1broseidon/arbortile/internal/config"
	"github.com/1broseidon/arbortile/internal/layout"
	"github.com/1broseidon/arbortile/internal/move"
	"github.com/1broseidon/arbortile/internal/platform"
	"github.com/1broseidon/arbortile/internal/tree"
)

// Manager tracks every managed window in exactly one workspace per display.
type Manager struct {
	mu      sync.Mutex
	backend platform.Backend
	cfg     *config.Config
	engine  *move.Engine

	displays   []platform.Display
	workspaces []*tree.Workspace
	windows    map[platform.WindowID]*tree.Window
}

var _ move.MonitorTopology = (*Manager)(nil)
var _ move.CrossMonitorMover = (*Manager)(nil)

// NewManager enumerates displays and creates one empty workspace per display.
func NewManager(backend platform.Backend, cfg *config.Config) (*Manager, error) {
	displays, err := backend.Displays()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate displays: %w", err)
	}
	if len(displays) == 0 {
		return nil, fmt.Errorf("no displays found")
	}

	m := &Manager{
		backend:  backend,
		cfg:      cfg,
		displays: displays,
		windows:  make(map[platform.WindowID]*tree.Window),
	}
	for i, d := range displays {
		ws := tree.NewWorkspace(d.Name, cfg.Orientation())
		ws.Monitor = i
		m.workspaces = append(m.workspaces, ws)
	}
	m.engine = &move.Engine{Policy: cfg.Policy(), Topology: m, Mover: m}
	return m, nil
}

// Reload swaps in a new configuration. Existing trees are kept; only the
// policy, gap and orientation for future workspaces change.
func (m *Manager) Reload(cfg *config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.engine.Policy = cfg.Policy()
}

// Sync reconciles the workspaces with the backend's window list: new windows
// are adopted onto their display's workspace, vanished windows are unbound,
// and the focused window is refreshed.
func (m *Manager) Sync() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	listed, err := m.backend.ListWindows()
	if err != nil {
		return fmt.Errorf("failed to list windows: %w", err)
	}

	present := make(map[platform.WindowID]bool, len(listed))
	for _, pw := range listed {
		present[pw.ID] = true
		if _, ok := m.windows[pw.ID]; ok {
			continue
		}
		m.adopt(pw)
	}

	for id, w := range m.windows {
		if present[id] {
			continue
		}
		if w.Parent() != nil {
			tree.Unbind(w)
		}
		if ws := w.Workspace(); ws != nil {
			ws.Normalize()
			if ws.Focused() == w {
				ws.SetFocused(nil)
			}
		}
		delete(m.windows, id)
	}

	if active, err := m.backend.ActiveWindow(); err == nil {
		if w, ok := m.windows[active]; ok && w.Workspace() != nil {
			w.Workspace().SetFocused(w)
		}
	}
	return nil
}

func (m *Manager) adopt(pw platform.Window) {
	display := pw.Display
	if display < 0 || display >= len(m.workspaces) {
		display = 0
	}
	ws := m.workspaces[display]

	w := tree.NewWindow(uint32(pw.ID), pw.Title)
	if pw.Popup {
		tree.Bind(w, ws.Popups(), ws.Popups().Len(), tree.DefaultWeight)
	} else {
		tree.Bind(w, ws.Root(), ws.Root().Len(), tree.DefaultWeight)
	}
	m.windows[pw.ID] = w
	log.Printf("wm: adopted window 0x%x (%q) on display %d", uint32(pw.ID), pw.Title, display)
}

// MoveFocused relocates the focused window one step in dir and reapplies the
// layout.
func (m *Manager) MoveFocused(dir tree.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.focusedLocked()
	if w == nil {
		return move.ErrNoWindow
	}
	return m.moveLocked(w, dir)
}

// MoveWindow relocates a specific window one step in dir.
func (m *Manager) MoveWindow(id platform.WindowID, dir tree.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok {
		return move.ErrNoWindow
	}
	return m.moveLocked(w, dir)
}

func (m *Manager) moveLocked(w *tree.Window, dir tree.Direction) error {
	// A popup named over IPC is a bad request; only an untracked popup
	// reaching the engine's focused path would indicate corruption.
	if p := w.Parent(); p != nil && p.Kind == tree.KindPopup {
		return move.ErrSpecialContainer
	}
	if err := m.engine.Move(w, dir); err != nil {
		return err
	}
	return m.applyLayoutLocked()
}

func (m *Manager) focusedLocked() *tree.Window {
	if active, err := m.backend.ActiveWindow(); err == nil {
		if w, ok := m.windows[active]; ok {
			if ws := w.Workspace(); ws != nil {
				ws.SetFocused(w)
			}
			return w
		}
	}
	for _, ws := range m.workspaces {
		if f := ws.Focused(); f != nil {
			return f
		}
	}
	return nil
}

// ApplyLayout recomputes and applies geometry for every workspace.
func (m *Manager) ApplyLayout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyLayoutLocked()
}

func (m *Manager) applyLayoutLocked() error {
	for i, ws := range m.workspaces {
		usable := m.displays[i].Usable
		area := layout.Rect{X: usable.X, Y: usable.Y, Width: usable.Width, Height: usable.Height}
		placements, err := layout.Apply(ws, area, m.cfg.Gap)
		if err != nil {
			return fmt.Errorf("layout for display %d: %w", i, err)
		}
		for _, p := range placements {
			bounds := platform.Rect{X: p.Rect.X, Y: p.Rect.Y, Width: p.Rect.Width, Height: p.Rect.Height}
			if err := m.backend.MoveResize(platform.WindowID(p.Window.ID), bounds); err != nil {
				log.Printf("wm: move-resize 0x%x failed: %v", p.Window.ID, err)
			}
		}
	}
	return nil
}

// AdjacentMonitor implements move.MonitorTopology over the display geometry.
func (m *Manager) AdjacentMonitor(w *tree.Window, dir tree.Direction) (int, bool) {
	ws := w.Workspace()
	if ws == nil {
		tree.Invariant("adjacency query for a window outside any workspace")
	}
	return platform.AdjacentDisplay(m.displays, ws.Monitor, dir)
}

// MoveToMonitor implements move.CrossMonitorMover: the window leaves its
// workspace and enters the target workspace at the edge it crosses.
func (m *Manager) MoveToMonitor(w *tree.Window, monitor int, dir tree.Direction, focusFollows bool) error {
	if monitor < 0 || monitor >= len(m.workspaces) {
		return fmt.Errorf("no workspace for monitor %d", monitor)
	}
	src := w.Workspace()
	dst := m.workspaces[monitor]

	tree.Unbind(w)
	if src != nil {
		src.Normalize()
		if src.Focused() == w {
			src.SetFocused(nil)
		}
	}

	root := dst.Root()
	idx := root.Len()
	if root.Orientation == dir.Orientation() && dir.FocusOffset() > 0 {
		// Entering from the near edge: first position.
		idx = 0
	}
	tree.Bind(w, root, idx, tree.DefaultWeight)
	dst.Normalize()

	if focusFollows {
		dst.SetFocused(w)
		if err := m.backend.Focus(platform.WindowID(w.ID)); err != nil {
			log.Printf("wm: focus 0x%x failed: %v", w.ID, err)
		}
	}
	return nil
}

// Displays returns the display inventory.
func (m *Manager) Displays() []platform.Display {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]platform.Display, len(m.displays))
	copy(out, m.displays)
	return out
}

// WindowCount returns the number of managed windows.
func (m *Manager) WindowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}
