package x11

import "testing"

var sideBySide = []Monitor{
	{ID: 0, Name: "DP-1", X: 0, Y: 0, Width: 1920, Height: 1080},
	{ID: 1, Name: "DP-2", X: 1920, Y: 0, Width: 1920, Height: 1080},
}

func TestMonitorAt(t *testing.T) {
	if got := MonitorAt(sideBySide, 10, 10); got != 0 {
		t.Fatalf("MonitorAt(10,10) = %d, want 0", got)
	}
	if got := MonitorAt(sideBySide, 2000, 500); got != 1 {
		t.Fatalf("MonitorAt(2000,500) = %d, want 1", got)
	}
	if got := MonitorAt(sideBySide, -5, 0); got != -1 {
		t.Fatalf("MonitorAt(-5,0) = %d, want -1", got)
	}
	// Right edge is exclusive.
	if got := MonitorAt(sideBySide, 3840, 500); got != -1 {
		t.Fatalf("MonitorAt(3840,500) = %d, want -1", got)
	}
}
