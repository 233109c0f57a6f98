// Package layout turns a workspace's tiling tree into concrete screen
// rectangles. It is a pure pass over the tree: the caller feeds the
// resulting placements to the window backend.
package layout

import (
	"fmt"

	"github.com/1broseidon/arbortile/internal/tree"
)

// Rect represents a window position and size
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Placement pairs a window with its computed geometry.
type Placement struct {
	Window *tree.Window
	Rect   Rect
}

// Apply computes geometry for every tiled window of ws. The workspace root
// fills monitor minus the outer gap; each container splits its area along its
// orientation in proportion to child weights, with gapSize between children.
func Apply(ws *tree.Workspace, monitor Rect, gapSize int) ([]Placement, error) {
	root := ws.Root()
	if root == nil || root.Len() == 0 {
		return nil, nil
	}

	area := Rect{
		X:      monitor.X + gapSize,
		Y:      monitor.Y + gapSize,
		Width:  monitor.Width - 2*gapSize,
		Height: monitor.Height - 2*gapSize,
	}
	if area.Width <= 0 || area.Height <= 0 {
		return nil, fmt.Errorf(
			"insufficient space for layout: monitor=%dx%d gap=%d",
			monitor.Width, monitor.Height, gapSize,
		)
	}

	var placements []Placement
	if err := splitContainer(root, area, gapSize, &placements); err != nil {
		return nil, err
	}
	return placements, nil
}

func splitContainer(c *tree.Container, area Rect, gapSize int, out *[]Placement) error {
	n := c.Len()
	if n == 0 {
		return nil
	}

	var total float64
	for _, child := range c.Children() {
		total += child.Weight()
	}
	if total <= 0 {
		return fmt.Errorf("container has non-positive total weight %v", total)
	}

	// Space left after the gaps between children, shared by weight. Rounding
	// remainders accumulate into the last child so the container edge is
	// always flush.
	var available int
	if c.Orientation == tree.Horizontal {
		available = area.Width - (n-1)*gapSize
	} else {
		available = area.Height - (n-1)*gapSize
	}
	if available < n {
		return fmt.Errorf(
			"insufficient space for %d children in %dx%d area with gap %d",
			n, area.Width, area.Height, gapSize,
		)
	}

	offset := 0
	for i, child := range c.Children() {
		span := int(float64(available) * child.Weight() / total)
		if i == n-1 {
			span = available - offset
		}

		childArea := area
		if c.Orientation == tree.Horizontal {
			childArea.X = area.X + offset + i*gapSize
			childArea.Width = span
		} else {
			childArea.Y = area.Y + offset + i*gapSize
			childArea.Height = span
		}
		offset += span

		switch v := child.(type) {
		case *tree.Window:
			*out = append(*out, Placement{Window: v, Rect: childArea})
		case *tree.Container:
			if err := splitContainer(v, childArea, gapSize, out); err != nil {
				return err
			}
		}
	}
	return nil
}
