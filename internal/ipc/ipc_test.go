package ipc

import (
	"strings"
	"testing"

	"github.com/1broseidon/arbortile/internal/config"
	"github.com/1broseidon/arbortile/internal/platform"
	"github.com/1broseidon/arbortile/internal/tree"
	"github.com/1broseidon/arbortile/internal/wm"
)

type fakeBackend struct {
	displays []platform.Display
	windows  []platform.Window
	active   platform.WindowID
}

func (f *fakeBackend) Displays() ([]platform.Display, error)    { return f.displays, nil }
func (f *fakeBackend) ActiveWindow() (platform.WindowID, error) { return f.active, nil }
func (f *fakeBackend) ListWindows() ([]platform.Window, error)  { return f.windows, nil }
func (f *fakeBackend) MoveResize(platform.WindowID, platform.Rect) error {
	return nil
}
func (f *fakeBackend) Focus(platform.WindowID) error { return nil }

func startTestServer(t *testing.T) (*Client, *fakeBackend) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	backend := &fakeBackend{
		displays: []platform.Display{{
			ID:     0,
			Name:   "DP-1",
			Bounds: platform.Rect{Width: 1920, Height: 1080},
			Usable: platform.Rect{Width: 1920, Height: 1080},
		}},
		windows: []platform.Window{
			{ID: 1, Title: "editor"},
			{ID: 2, Title: "terminal"},
		},
		active: 1,
	}

	cfg := config.Default()
	manager, err := wm.NewManager(backend, cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := manager.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	server, err := NewServer(cfg, manager, make(chan struct{}, 1))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := server.Start(); err != nil {
		t.Fatalf("server start: %v", err)
	}
	t.Cleanup(server.Stop)

	return NewClient(), backend
}

func TestMoveRoundTrip(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.Move(tree.DirRight); err != nil {
		t.Fatalf("move: %v", err)
	}

	data, err := client.GetTree()
	if err != nil {
		t.Fatalf("get tree: %v", err)
	}
	children := data.Workspaces[0].Root.Children
	if len(children) != 2 || children[0].ID != 2 || children[1].ID != 1 {
		t.Fatalf("expected swapped order after move, got %+v", children)
	}
}

func TestMoveWindowByID(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.MoveWindow(2, tree.DirLeft); err != nil {
		t.Fatalf("move window: %v", err)
	}

	data, err := client.GetTree()
	if err != nil {
		t.Fatalf("get tree: %v", err)
	}
	children := data.Workspaces[0].Root.Children
	if children[0].ID != 2 {
		t.Fatalf("expected window 2 first, got %+v", children)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	client, _ := startTestServer(t)

	err := client.MoveWindow(1, tree.Direction(99))
	if err == nil || !strings.Contains(err.Error(), "daemon error") {
		t.Fatalf("expected daemon error for invalid direction, got %v", err)
	}
}

func TestGetMonitors(t *testing.T) {
	client, _ := startTestServer(t)

	data, err := client.GetMonitors()
	if err != nil {
		t.Fatalf("get monitors: %v", err)
	}
	if len(data.Monitors) != 1 {
		t.Fatalf("expected 1 monitor, got %d", len(data.Monitors))
	}
	mon := data.Monitors[0]
	if mon.Name != "DP-1" || mon.Width != 1920 || mon.Height != 1080 {
		t.Fatalf("monitor = %+v", mon)
	}
}

func TestGetStatus(t *testing.T) {
	client, _ := startTestServer(t)

	status, err := client.GetStatus()
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if !status.DaemonRunning {
		t.Fatalf("expected daemon_running true")
	}
	if status.WindowCount != 2 || status.MonitorCount != 1 {
		t.Fatalf("status = %+v", status)
	}
	if status.Boundaries != "workspace" || status.OnBoundary != "stop" {
		t.Fatalf("expected default policy in status, got %+v", status)
	}
}
