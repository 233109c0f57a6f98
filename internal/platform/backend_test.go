package platform

import (
	"testing"

	"github.com/1broseidon/arbortile/internal/tree"
)

func TestAdjacentDisplay(t *testing.T) {
	row := []Display{
		{ID: 0, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 1, Bounds: Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
		{ID: 2, Bounds: Rect{X: 3840, Y: 0, Width: 1920, Height: 1080}},
	}

	tests := []struct {
		name   string
		from   int
		dir    tree.Direction
		want   int
		wantOK bool
	}{
		{"middle to right", 1, tree.DirRight, 2, true},
		{"middle to left", 1, tree.DirLeft, 0, true},
		{"nearest wins", 0, tree.DirRight, 1, true},
		{"left outer edge", 0, tree.DirLeft, 0, false},
		{"right outer edge", 2, tree.DirRight, 0, false},
		{"no vertical neighbour", 1, tree.DirUp, 0, false},
		{"out of range source", 9, tree.DirLeft, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AdjacentDisplay(row, tt.from, tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("display = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdjacentDisplay_Stacked(t *testing.T) {
	stacked := []Display{
		{ID: 0, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{ID: 1, Bounds: Rect{X: 0, Y: 1080, Width: 1920, Height: 1080}},
	}
	if got, ok := AdjacentDisplay(stacked, 0, tree.DirDown); !ok || got != 1 {
		t.Fatalf("expected lower display, got %d ok=%v", got, ok)
	}
	if got, ok := AdjacentDisplay(stacked, 1, tree.DirUp); !ok || got != 0 {
		t.Fatalf("expected upper display, got %d ok=%v", got, ok)
	}
}
