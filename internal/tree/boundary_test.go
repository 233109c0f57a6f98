package tree

import "testing"

func TestIsOnWorkspaceBoundary_RootContainer(t *testing.T) {
	// Horizontal root [a, b]: a touches the left edge, b the right, both
	// touch top and bottom (the vertical axis never constrains them here).
	ws := NewWorkspace("1", Horizontal)
	a := NewWindow(1, "a")
	b := NewWindow(2, "b")
	Bind(a, ws.Root(), 0, DefaultWeight)
	Bind(b, ws.Root(), 1, DefaultWeight)

	tests := []struct {
		name string
		node Node
		dir  Direction
		want bool
	}{
		{"a left", a, DirLeft, true},
		{"a right", a, DirRight, false},
		{"a up", a, DirUp, true},
		{"a down", a, DirDown, true},
		{"b left", b, DirLeft, false},
		{"b right", b, DirRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOnWorkspaceBoundary(tt.node, tt.dir); got != tt.want {
				t.Fatalf("IsOnWorkspaceBoundary(%s, %v) = %v, want %v", tt.name, tt.dir, got, tt.want)
			}
		})
	}
}

func TestIsOnWorkspaceBoundary_CrossAxisContainersDefer(t *testing.T) {
	// Horizontal root [inner(V)[a, b], c]: a and b are both against the left
	// edge because the vertical container defers the horizontal question to
	// the root, where inner sits at index 0.
	ws := NewWorkspace("1", Horizontal)
	inner := NewContainer(Vertical)
	a := NewWindow(1, "a")
	b := NewWindow(2, "b")
	c := NewWindow(3, "c")
	Bind(inner, ws.Root(), 0, DefaultWeight)
	Bind(a, inner, 0, DefaultWeight)
	Bind(b, inner, 1, DefaultWeight)
	Bind(c, ws.Root(), 1, DefaultWeight)

	if !IsOnWorkspaceBoundary(a, DirLeft) {
		t.Fatalf("a at index 0 of a mismatched container should stay on the left boundary")
	}
	if !IsOnWorkspaceBoundary(b, DirLeft) {
		t.Fatalf("b at index 1 of a mismatched container should stay on the left boundary")
	}
	if IsOnWorkspaceBoundary(b, DirUp) {
		t.Fatalf("b is below a, not on the top boundary")
	}
	if !IsOnWorkspaceBoundary(b, DirDown) {
		t.Fatalf("b is the last vertical child, so it is on the bottom boundary")
	}
	if IsOnWorkspaceBoundary(a, DirRight) {
		t.Fatalf("a is left of c, not on the right boundary")
	}
}

func TestIsOnWorkspaceBoundary_InteriorIndexDisqualifies(t *testing.T) {
	// Moving a from index 0 to index 1 of a matching-orientation container
	// takes it off the left boundary.
	ws := NewWorkspace("1", Horizontal)
	a := NewWindow(1, "a")
	b := NewWindow(2, "b")
	Bind(b, ws.Root(), 0, DefaultWeight)
	Bind(a, ws.Root(), 1, DefaultWeight)

	if IsOnWorkspaceBoundary(a, DirLeft) {
		t.Fatalf("a at index 1 of the horizontal root is interior")
	}
}

func TestIsOnWorkspaceBoundary_DetachedNodes(t *testing.T) {
	w := NewWindow(1, "w")
	if IsOnWorkspaceBoundary(w, DirLeft) {
		t.Fatalf("a detached window is never on a boundary")
	}

	ws := NewWorkspace("1", Horizontal)
	f := NewWindow(2, "f")
	ws.AddFloating(f)
	if IsOnWorkspaceBoundary(f, DirRight) {
		t.Fatalf("a floating window is never on a boundary")
	}
}

func TestIsOnWorkspaceBoundary_SpecialContainerMembers(t *testing.T) {
	ws := NewWorkspace("1", Horizontal)
	m := NewWindow(9, "m")
	Bind(m, ws.Minimized(), 0, DefaultWeight)

	if IsOnWorkspaceBoundary(m, DirLeft) {
		t.Fatalf("minimized windows sit outside the tiling tree")
	}
}
