package wm

import (
	"errors"
	"testing"

	"github.com/1broseidon/arbortile/internal/config"
	"github.com/1broseidon/arbortile/internal/move"
	"github.com/1broseidon/arbortile/internal/platform"
	"github.com/1broseidon/arbortile/internal/tree"
)

type fakeBackend struct {
	displays []platform.Display
	windows  []platform.Window
	active   platform.WindowID

	moved   map[platform.WindowID]platform.Rect
	focused []platform.WindowID
}

func newFakeBackend(displays ...platform.Display) *fakeBackend {
	return &fakeBackend{
		displays: displays,
		moved:    make(map[platform.WindowID]platform.Rect),
	}
}

func (f *fakeBackend) Displays() ([]platform.Display, error)    { return f.displays, nil }
func (f *fakeBackend) ActiveWindow() (platform.WindowID, error) { return f.active, nil }
func (f *fakeBackend) ListWindows() ([]platform.Window, error)  { return f.windows, nil }

func (f *fakeBackend) MoveResize(id platform.WindowID, bounds platform.Rect) error {
	f.moved[id] = bounds
	return nil
}

func (f *fakeBackend) Focus(id platform.WindowID) error {
	f.focused = append(f.focused, id)
	return nil
}

func singleDisplay() platform.Display {
	return platform.Display{
		ID:     0,
		Name:   "DP-1",
		Bounds: platform.Rect{Width: 1920, Height: 1080},
		Usable: platform.Rect{Width: 1920, Height: 1080},
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Gap = 0
	return cfg
}

func TestSync_AdoptsAndRemovesWindows(t *testing.T) {
	backend := newFakeBackend(singleDisplay())
	backend.windows = []platform.Window{
		{ID: 1, Title: "editor"},
		{ID: 2, Title: "terminal"},
	}
	backend.active = 1

	m, err := NewManager(backend, testConfig())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if m.WindowCount() != 2 {
		t.Fatalf("expected 2 managed windows, got %d", m.WindowCount())
	}

	snap := m.Snapshot()
	if len(snap) != 1 || len(snap[0].Root.Children) != 2 {
		t.Fatalf("expected both windows under the root, got %+v", snap)
	}
	if !snap[0].Root.Children[0].Focused {
		t.Fatalf("expected the active window to be marked focused")
	}

	// Window 1 goes away.
	backend.windows = backend.windows[1:]
	backend.active = 2
	if err := m.Sync(); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if m.WindowCount() != 1 {
		t.Fatalf("expected 1 managed window after removal, got %d", m.WindowCount())
	}
}

func TestSync_RoutesPopupsToSpecialContainer(t *testing.T) {
	backend := newFakeBackend(singleDisplay())
	backend.windows = []platform.Window{
		{ID: 1, Title: "editor"},
		{ID: 2, Title: "open file", Popup: true},
	}

	m, err := NewManager(backend, testConfig())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	snap := m.Snapshot()[0]
	if len(snap.Root.Children) != 1 {
		t.Fatalf("expected only the normal window tiled, got %d", len(snap.Root.Children))
	}

	// A popup must reject moves rather than shuffle the tiling tree.
	if err := m.MoveWindow(2, tree.DirLeft); !errors.Is(err, move.ErrSpecialContainer) {
		t.Fatalf("expected ErrSpecialContainer for a popup, got %v", err)
	}
}

func TestMoveFocused_SwapsAndRetiles(t *testing.T) {
	backend := newFakeBackend(singleDisplay())
	backend.windows = []platform.Window{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	}
	backend.active = 1

	m, err := NewManager(backend, testConfig())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if err := m.MoveFocused(tree.DirRight); err != nil {
		t.Fatalf("move: %v", err)
	}

	snap := m.Snapshot()[0]
	if snap.Root.Children[0].ID != 2 || snap.Root.Children[1].ID != 1 {
		t.Fatalf("expected swapped order, got %+v", snap.Root.Children)
	}

	// Both windows re-tiled: window 1 now occupies the right half.
	r1 := backend.moved[1]
	r2 := backend.moved[2]
	if r1.X <= r2.X {
		t.Fatalf("expected window 1 right of window 2: %+v vs %+v", r1, r2)
	}
	if r1.Width != 960 || r2.Width != 960 {
		t.Fatalf("expected equal halves, got %d and %d", r1.Width, r2.Width)
	}
}

func TestMoveFocused_NoFocusedWindow(t *testing.T) {
	backend := newFakeBackend(singleDisplay())

	m, err := NewManager(backend, testConfig())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.MoveFocused(tree.DirLeft); !errors.Is(err, move.ErrNoWindow) {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
}

func TestMove_CrossMonitorTransfersWindow(t *testing.T) {
	left := singleDisplay()
	right := platform.Display{
		ID:     1,
		Name:   "DP-2",
		Bounds: platform.Rect{X: 1920, Width: 1920, Height: 1080},
		Usable: platform.Rect{X: 1920, Width: 1920, Height: 1080},
	}
	backend := newFakeBackend(left, right)
	backend.windows = []platform.Window{
		{ID: 1, Title: "a", Display: 0},
		{ID: 2, Title: "b", Display: 1},
	}
	backend.active = 1

	cfg := testConfig()
	cfg.Boundaries = string(move.BoundariesAllMonitors)
	cfg.OnBoundary = string(move.ActionFail)

	m, err := NewManager(backend, cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	// Window 1 is alone on the left display: moving right crosses over.
	if err := m.MoveFocused(tree.DirRight); err != nil {
		t.Fatalf("cross-monitor move: %v", err)
	}

	snaps := m.Snapshot()
	if len(snaps[0].Root.Children) != 0 {
		t.Fatalf("expected the left workspace to be empty")
	}
	if len(snaps[1].Root.Children) != 2 {
		t.Fatalf("expected both windows on the right workspace")
	}
	// Entering from the left edge: first position.
	if snaps[1].Root.Children[0].ID != 1 {
		t.Fatalf("expected the crossing window first, got %+v", snaps[1].Root.Children)
	}
	if len(backend.focused) == 0 || backend.focused[len(backend.focused)-1] != 1 {
		t.Fatalf("expected focus to follow the window")
	}

	// The window now tiles within the right display's bounds.
	r := backend.moved[1]
	if r.X < 1920 {
		t.Fatalf("expected window 1 on the right display, got %+v", r)
	}
}

func TestMove_WorkspaceBoundaryStopsWithinDisplay(t *testing.T) {
	backend := newFakeBackend(singleDisplay())
	backend.windows = []platform.Window{{ID: 1, Title: "a"}}
	backend.active = 1

	cfg := testConfig()
	cfg.OnBoundary = string(move.ActionStop)

	m, err := NewManager(backend, cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if err := m.MoveFocused(tree.DirRight); err != nil {
		t.Fatalf("expected stop policy to succeed, got %v", err)
	}
	snap := m.Snapshot()[0]
	if len(snap.Root.Children) != 1 {
		t.Fatalf("tree changed under stop policy: %+v", snap)
	}
}

func TestReload_SwapsPolicy(t *testing.T) {
	backend := newFakeBackend(singleDisplay())
	backend.windows = []platform.Window{{ID: 1, Title: "a"}}
	backend.active = 1

	cfg := testConfig()
	cfg.OnBoundary = string(move.ActionStop)
	m, err := NewManager(backend, cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	next := testConfig()
	next.OnBoundary = string(move.ActionFail)
	m.Reload(next)

	if err := m.MoveFocused(tree.DirRight); !errors.Is(err, move.ErrOnBoundary) {
		t.Fatalf("expected ErrOnBoundary after reload, got %v", err)
	}
}
