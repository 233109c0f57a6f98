package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/arbortile/internal/tree"
)

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	dir, err := tree.ParseDirection(args.Direction)
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	if err := s.client.MoveWindow(args.WindowID, dir); err != nil {
		return nil, MoveWindowOutput{}, fmt.Errorf("move failed: %w", err)
	}

	return nil, MoveWindowOutput{Moved: true, Direction: dir.String()}, nil
}

func (s *Server) handleGetTree(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetTreeInput) (*mcpsdk.CallToolResult, GetTreeOutput, error) {
	data, err := s.client.GetTree()
	if err != nil {
		return nil, GetTreeOutput{}, err
	}
	return nil, GetTreeOutput{Workspaces: data.Workspaces}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	monitors := make([]MonitorEntry, len(data.Monitors))
	for i, m := range data.Monitors {
		monitors[i] = MonitorEntry{
			ID:     m.ID,
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	return nil, ListMonitorsOutput{Monitors: monitors}, nil
}
