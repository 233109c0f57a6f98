// Package platform abstracts window-system operations behind a neutral
// interface so the manager and its tests do not depend on a live X server.
package platform

import "github.com/1broseidon/arbortile/internal/tree"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes a physical display and its usable work area.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
	Usable Rect
}

// Window contains metadata for a top-level window.
type Window struct {
	ID      WindowID
	Title   string
	Display int
	Popup   bool
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	ListWindows() ([]Window, error)
	MoveResize(windowID WindowID, bounds Rect) error
	Focus(windowID WindowID) error
}

// AdjacentDisplay returns the index of the display next to displays[from] in
// the given direction, judged by center points: the nearest display whose
// center lies strictly beyond from's center along the direction axis. ok is
// false when no display lies that way.
func AdjacentDisplay(displays []Display, from int, dir tree.Direction) (int, bool) {
	if from < 0 || from >= len(displays) {
		return 0, false
	}
	src := displays[from].Bounds
	srcCX := src.X + src.Width/2
	srcCY := src.Y + src.Height/2

	best := -1
	bestDist := 0
	for i := range displays {
		if i == from {
			continue
		}
		b := displays[i].Bounds
		cx := b.X + b.Width/2
		cy := b.Y + b.Height/2

		var along, across int
		switch dir {
		case tree.DirLeft:
			along, across = srcCX-cx, cy-srcCY
		case tree.DirRight:
			along, across = cx-srcCX, cy-srcCY
		case tree.DirUp:
			along, across = srcCY-cy, cx-srcCX
		case tree.DirDown:
			along, across = cy-srcCY, cx-srcCX
		}
		if along <= 0 {
			continue
		}
		if across < 0 {
			across = -across
		}
		dist := along + across
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
