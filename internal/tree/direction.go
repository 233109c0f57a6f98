package tree

import "fmt"

// Direction is a cardinal move/focus direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Orientation returns the container axis a direction travels along.
func (d Direction) Orientation() Orientation {
	switch d {
	case DirLeft, DirRight:
		return Horizontal
	default:
		return Vertical
	}
}

// FocusOffset is the child-index delta used to locate the adjacent sibling:
// -1 for left/up, +1 for right/down.
func (d Direction) FocusOffset() int {
	switch d {
	case DirLeft, DirUp:
		return -1
	default:
		return 1
	}
}

// InsertionOffset is added to a reference node's index when inserting next to
// it after a move-out: 0 inserts before (left/up), 1 inserts after
// (right/down).
func (d Direction) InsertionOffset() int {
	switch d {
	case DirLeft, DirUp:
		return 0
	default:
		return 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name as used on the CLI and IPC protocol.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want left, right, up or down)", s)
	}
}
