package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/arbortile/internal/mcp"
)

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

func printMCPUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: arbortile mcp serve")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Start an MCP server over stdio exposing window movement tools.")
	fmt.Fprintln(w, "The arbortile daemon must be running.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Register with Claude Code:")
	fmt.Fprintln(w, "  claude mcp add arbortile -- arbortile mcp serve")
}

func runMCPServe(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "mcp serve takes no arguments")
		return 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	server := mcp.NewServer()
	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("MCP server error: %v", err)
		return 1
	}
	return 0
}
