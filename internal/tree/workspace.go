package tree

// Workspace is one virtual desktop: a named collection of windows with
// exactly one root tiling container, plus the special containers holding
// windows excluded from tiling and a list of floating windows.
type Workspace struct {
	Name string
	// Monitor is the physical display this workspace is shown on.
	Monitor int

	root       *Container
	minimized  *Container
	fullscreen *Container
	hiddenApps *Container
	popups     *Container
	floating   []*Window
	focused    *Window
}

// NewWorkspace creates a workspace with an empty root container of the given
// orientation and its special containers.
func NewWorkspace(name string, o Orientation) *Workspace {
	ws := &Workspace{
		Name:       name,
		minimized:  newSpecialContainer(KindMinimized),
		fullscreen: newSpecialContainer(KindFullscreen),
		hiddenApps: newSpecialContainer(KindHiddenApps),
		popups:     newSpecialContainer(KindPopup),
	}
	ws.SetRoot(NewContainer(o))
	ws.minimized.setWorkspace(ws)
	ws.fullscreen.setWorkspace(ws)
	ws.hiddenApps.setWorkspace(ws)
	ws.popups.setWorkspace(ws)
	return ws
}

// Root returns the workspace's root tiling container.
func (ws *Workspace) Root() *Container { return ws.root }

// SetRoot installs c as the workspace root. The previous root, if any, is
// left detached; move-out root synthesis rebinds it under the new root.
func (ws *Workspace) SetRoot(c *Container) {
	if c.Kind != KindTiling {
		Invariant("workspace root must be a tiling container, got %s", c.Kind)
	}
	ws.root = c
	c.setParent(nil)
	setWorkspaceDeep(c, ws)
}

// Minimized returns the special container for minimized windows.
func (ws *Workspace) Minimized() *Container { return ws.minimized }

// Fullscreen returns the special container for full-screen windows.
func (ws *Workspace) Fullscreen() *Container { return ws.fullscreen }

// HiddenApps returns the special container for windows of hidden applications.
func (ws *Workspace) HiddenApps() *Container { return ws.hiddenApps }

// Popups returns the transient popup container.
func (ws *Workspace) Popups() *Container { return ws.popups }

// Focused returns the workspace's focused window, or nil.
func (ws *Workspace) Focused() *Window { return ws.focused }

// SetFocused records w as focused and marks the most-recently-active child on
// every container along w's ancestor chain. Deep-descent targeting depends on
// this trail.
func (ws *Workspace) SetFocused(w *Window) {
	ws.focused = w
	if w == nil {
		return
	}
	var node Node = w
	for p := node.Parent(); p != nil; p = node.Parent() {
		p.MarkActive(node)
		node = p
	}
}

// AddFloating attaches w to the workspace as a floating (non-tiled) window.
func (ws *Workspace) AddFloating(w *Window) {
	if w.Parent() != nil {
		Invariant("floating window still bound to a container")
	}
	w.setWorkspace(ws)
	ws.floating = append(ws.floating, w)
}

// Floating returns the floating windows, in attach order.
func (ws *Workspace) Floating() []*Window { return ws.floating }

// IsFloating reports whether w is one of this workspace's floating windows.
func (ws *Workspace) IsFloating(w *Window) bool {
	for _, f := range ws.floating {
		if f == w {
			return true
		}
	}
	return false
}

// Windows returns the tiled windows reachable from the root, leftmost-deepest
// first.
func (ws *Workspace) Windows() []*Window {
	var out []*Window
	collectWindows(ws.root, &out)
	return out
}

func collectWindows(n Node, out *[]*Window) {
	switch v := n.(type) {
	case *Window:
		*out = append(*out, v)
	case *Container:
		for _, child := range v.children {
			collectWindows(child, out)
		}
	}
}

// FindWindow returns the tiled window with the given X11 id, or nil.
func (ws *Workspace) FindWindow(id uint32) *Window {
	for _, w := range ws.Windows() {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Normalize restores the structural invariants a move can temporarily break:
// tiling containers emptied by a relocation are detached, and a non-root
// tiling container left with a single child is replaced by that child
// (keeping the container's position and weight). It must run after every
// structural mutation, before the tree is read again.
func (ws *Workspace) Normalize() {
	// Iterate until stable: removing an empty container can leave its parent
	// with one child, and lifting a child can expose another empty container.
	for normalizeOnce(ws.root) {
	}
}

func normalizeOnce(c *Container) bool {
	for _, child := range c.children {
		if sub, ok := child.(*Container); ok {
			if normalizeOnce(sub) {
				return true
			}
		}
	}
	for _, child := range c.children {
		sub, ok := child.(*Container)
		if !ok || sub.Kind != KindTiling {
			continue
		}
		if sub.Len() == 0 {
			Unbind(sub)
			return true
		}
		if sub.Len() == 1 {
			idx, weight := Unbind(sub)
			only := sub.children[0]
			Unbind(only)
			Bind(only, c, idx, weight)
			return true
		}
	}
	return false
}
