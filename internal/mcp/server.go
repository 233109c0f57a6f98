// Package mcp exposes window relocation and tree inspection as MCP tools on
// stdio, letting AI assistants drive the daemon through the same IPC surface
// the CLI uses.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/arbortile/internal/ipc"
)

const (
	ServerName    = "arbortile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server bridging tools to the daemon's IPC socket.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server talking to the local daemon.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move the focused window (or a specific window by id) one step left, right, up or down within its tiling tree. Swaps with an adjacent window, descends into an adjacent container next to its most recently active window, or pops out of nested containers; behaviour at the workspace edge follows the daemon's boundary policy.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_tree",
		Description: "Return every workspace's tiling tree: nested containers with orientation and weights, window ids and titles, the focused window, plus minimized and floating windows.",
	}, s.handleGetTree)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the physical monitors with their geometry. Monitor ids match the workspace monitor field in get_tree.",
	}, s.handleListMonitors)
}
