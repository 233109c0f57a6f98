package tree

import "fmt"

// Orientation is the axis along which a container arranges its children.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ContainerKind discriminates tiling containers from the special workspace
// containers that hold windows excluded from normal tiling moves.
type ContainerKind int

const (
	KindTiling ContainerKind = iota
	KindMinimized
	KindFullscreen
	KindHiddenApps
	KindPopup
)

func (k ContainerKind) String() string {
	switch k {
	case KindTiling:
		return "tiling"
	case KindMinimized:
		return "minimized"
	case KindFullscreen:
		return "fullscreen"
	case KindHiddenApps:
		return "hidden-apps"
	case KindPopup:
		return "popup"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DefaultWeight is the adaptive weight assigned to a child when no prior
// weight is being preserved.
const DefaultWeight = 1.0

// Node is either a *Window or a *Container. Consumers type-switch on the
// concrete type; there are no other implementations.
type Node interface {
	// Parent returns the containing container, or nil for a workspace root,
	// a floating window, or a detached node.
	Parent() *Container
	// Workspace returns the workspace this node belongs to, or nil if the
	// node is not part of any workspace tree.
	Workspace() *Workspace
	// Weight is the node's adaptive share of its parent's space.
	Weight() float64

	setParent(*Container)
	setWorkspace(*Workspace)
	setWeight(float64)
}

// base holds the non-owning back-references shared by windows and containers.
// Ownership flows strictly parent -> children; these links are lookups only.
type base struct {
	parent *Container
	ws     *Workspace
	weight float64
}

func (b *base) Parent() *Container      { return b.parent }
func (b *base) Workspace() *Workspace   { return b.ws }
func (b *base) Weight() float64         { return b.weight }
func (b *base) setParent(p *Container)  { b.parent = p }
func (b *base) setWorkspace(w *Workspace) { b.ws = w }
func (b *base) setWeight(w float64)     { b.weight = w }

// Window is a leaf node: one managed X11 window.
type Window struct {
	base

	// ID is the X11 window identifier.
	ID uint32
	// Title is the last-seen window title, used for tree dumps.
	Title string
}

// NewWindow creates a detached window leaf.
func NewWindow(id uint32, title string) *Window {
	return &Window{ID: id, Title: title, base: base{weight: DefaultWeight}}
}

// Container is an internal node holding an ordered, weighted child sequence.
type Container struct {
	base

	Kind        ContainerKind
	Orientation Orientation

	children   []Node
	lastActive Node
}

// NewContainer creates a detached tiling container.
func NewContainer(o Orientation) *Container {
	return &Container{Kind: KindTiling, Orientation: o, base: base{weight: DefaultWeight}}
}

func newSpecialContainer(k ContainerKind) *Container {
	return &Container{Kind: k, base: base{weight: DefaultWeight}}
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// ChildAt returns the child at index i.
func (c *Container) ChildAt(i int) Node {
	if i < 0 || i >= len(c.children) {
		Invariant("child index %d out of range [0,%d) in %s container", i, len(c.children), c.Kind)
	}
	return c.children[i]
}

// Children returns the child sequence. The returned slice must not be mutated.
func (c *Container) Children() []Node { return c.children }

// LastActiveChild returns the most-recently-active child, or nil if none has
// been marked yet.
func (c *Container) LastActiveChild() Node { return c.lastActive }

// MarkActive records child as the container's most-recently-active child.
func (c *Container) MarkActive(child Node) {
	if child != nil && child.Parent() != c {
		Invariant("cannot mark node active: not a child of this container")
	}
	c.lastActive = child
}

// IsRoot reports whether this container is a workspace's root tiling container.
func (c *Container) IsRoot() bool {
	return c.parent == nil && c.ws != nil && c.ws.root == c
}

// IndexOf returns n's position in its parent's child sequence. It panics when
// n has no parent; callers check Parent() first.
func IndexOf(n Node) int {
	p := n.Parent()
	if p == nil {
		Invariant("IndexOf on a node with no parent")
	}
	for i, child := range p.children {
		if child == n {
			return i
		}
	}
	Invariant("node missing from its parent's child list")
	return -1
}

// Bind inserts n as parent's child at index with the given weight and updates
// n's back-references. It is the single insertion primitive: every relocation
// is an Unbind followed by a Bind.
func Bind(n Node, parent *Container, index int, weight float64) {
	if n.Parent() != nil {
		Invariant("bind of a node that is still bound")
	}
	if index < 0 || index > len(parent.children) {
		Invariant("bind index %d out of range [0,%d]", index, len(parent.children))
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = n
	n.setParent(parent)
	n.setWeight(weight)
	if parent.lastActive == nil {
		parent.lastActive = n
	}
	setWorkspaceDeep(n, parent.ws)
}

// Unbind removes n from its parent's child list, clears the parent
// back-reference and returns the index and weight it held. The weight lets
// callers preserve a window's share across a swap.
func Unbind(n Node) (index int, weight float64) {
	p := n.Parent()
	if p == nil {
		Invariant("unbind of a node that is not bound")
	}
	index = IndexOf(n)
	weight = n.Weight()
	p.children = append(p.children[:index], p.children[index+1:]...)
	if p.lastActive == n {
		// Keep the most-recently-active pointer valid: fall back to the
		// neighbour that slid into the vacated position. It is nil only when
		// the container emptied, which normalization resolves.
		p.lastActive = nil
		if len(p.children) > 0 {
			i := index
			if i >= len(p.children) {
				i = len(p.children) - 1
			}
			p.lastActive = p.children[i]
		}
	}
	n.setParent(nil)
	return index, weight
}

// setWorkspaceDeep updates the workspace back-reference of n and, for
// containers, of every descendant. Needed when a subtree crosses workspaces.
func setWorkspaceDeep(n Node, ws *Workspace) {
	n.setWorkspace(ws)
	if c, ok := n.(*Container); ok {
		for _, child := range c.children {
			setWorkspaceDeep(child, ws)
		}
	}
}

// Invariant terminates the process on detected tree corruption. Recoverable
// conditions are returned as errors; this is reserved for states the tree's
// own invariants should make unreachable, where continuing would operate on a
// corrupt model.
func Invariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("tree invariant violated: "+format, args...))
}
