package mcp

import (
	"github.com/1broseidon/arbortile/internal/wm"
)

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Direction string `json:"direction" jsonschema:"required,Move direction: left, right, up or down"`
	WindowID  uint32 `json:"window_id,omitempty" jsonschema:"Window id to move (default: the focused window)"`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Moved     bool   `json:"moved"`
	Direction string `json:"direction"`
}

// GetTreeInput is the input for the get_tree tool.
type GetTreeInput struct{}

// GetTreeOutput is the output for the get_tree tool.
type GetTreeOutput struct {
	Workspaces []wm.WorkspaceSnapshot `json:"workspaces"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorEntry describes one physical monitor.
type MonitorEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorEntry `json:"monitors"`
}
