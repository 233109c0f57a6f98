package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/arbortile/internal/ipc"
	"github.com/1broseidon/arbortile/internal/wm"
)

func sampleTree() wm.SnapshotNode {
	return wm.SnapshotNode{
		Type:        "container",
		Orientation: "horizontal",
		Weight:      1,
		Children: []wm.SnapshotNode{
			{Type: "window", ID: 0x2a, Title: "editor", Weight: 1, Focused: true},
			{
				Type:        "container",
				Orientation: "vertical",
				Weight:      1,
				Children: []wm.SnapshotNode{
					{Type: "window", ID: 0x2b, Title: "terminal", Weight: 1},
					{Type: "window", ID: 0x2c, Title: "browser", Weight: 1},
				},
			},
		},
	}
}

func TestRenderTree_NestsContainers(t *testing.T) {
	out := RenderTree(sampleTree(), "")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "horizontal [2]") {
		t.Fatalf("expected root container header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "0x2a editor") {
		t.Fatalf("expected first window, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "vertical [2]") {
		t.Fatalf("expected nested container, got %q", lines[2])
	}
	// Nested windows indent one level deeper than the nested container.
	if !strings.HasPrefix(stripANSI(lines[3]), "    ") {
		t.Fatalf("expected deeper indent for nested window, got %q", lines[3])
	}
}

func TestRenderView_ShowsWorkspacesAndError(t *testing.T) {
	data := &ipc.TreeData{
		Workspaces: []wm.WorkspaceSnapshot{
			{Name: "DP-1", Monitor: 0, Root: sampleTree()},
		},
	}

	out := renderView(data, "window is already at the edge", 80)
	if !strings.Contains(out, "workspace DP-1 (monitor 0)") {
		t.Fatalf("expected workspace header in view:\n%s", out)
	}
	if !strings.Contains(out, "window is already at the edge") {
		t.Fatalf("expected error line in view:\n%s", out)
	}
	if !strings.Contains(out, "q quit") {
		t.Fatalf("expected footer in view:\n%s", out)
	}
}

func TestRenderView_NilData(t *testing.T) {
	out := renderView(nil, "", 80)
	if !strings.Contains(out, "loading tree") {
		t.Fatalf("expected loading placeholder:\n%s", out)
	}
}

// stripANSI removes escape sequences so indent assertions see raw spacing.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
