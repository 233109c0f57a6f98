package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/arbortile/internal/config"
	"github.com/1broseidon/arbortile/internal/ipc"
	"github.com/1broseidon/arbortile/internal/platform"
	"github.com/1broseidon/arbortile/internal/tree"
	"github.com/1broseidon/arbortile/internal/tui"
	"github.com/1broseidon/arbortile/internal/wm"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: arbortile daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: arbortile daemon")
			os.Exit(2)
		}
		runDaemon()
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "tree":
		os.Exit(runTree(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: arbortile <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the arbortile daemon (foreground)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  move <direction>    Move the focused window left, right, up or down")
	fmt.Fprintln(w, "  tree                Print the workspace trees")
	fmt.Fprintln(w, "  monitors            List monitors")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  reload              Reload the daemon configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config init         Write a default configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open interactive move mode")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'arbortile <command> --help' for command-specific options.")
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	windowID := fs.Uint("window", 0, "window id to move (default: the focused window)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arbortile move <left|right|up|down> [--window ID]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move a window one step in the given direction via the daemon.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	dir, err := tree.ParseDirection(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	client := ipc.NewClient()
	if err := client.MoveWindow(uint32(*windowID), dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runTree(args []string) int {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "print the raw JSON tree")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arbortile tree [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print every workspace's tiling tree.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetTree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	for _, ws := range data.Workspaces {
		fmt.Printf("workspace %s (monitor %d)\n", ws.Name, ws.Monitor)
		fmt.Print(tui.RenderTree(ws.Root, "  "))
		if len(ws.Minimized) > 0 {
			fmt.Printf("  minimized: %d window(s)\n", len(ws.Minimized))
		}
		if len(ws.Floating) > 0 {
			fmt.Printf("  floating: %d window(s)\n", len(ws.Floating))
		}
	}
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arbortile monitors")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetMonitors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, m := range data.Monitors {
		fmt.Printf("%d: %s %dx%d+%d+%d\n", m.ID, m.Name, m.Width, m.Height, m.X, m.Y)
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arbortile status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Daemon not running: %v\n", err)
		return 1
	}

	fmt.Printf("Daemon running: %v\n", status.DaemonRunning)
	fmt.Printf("Windows:        %d\n", status.WindowCount)
	fmt.Printf("Monitors:       %d\n", status.MonitorCount)
	fmt.Printf("Boundaries:     %s\n", status.Boundaries)
	fmt.Printf("On boundary:    %s\n", status.OnBoundary)
	fmt.Printf("Uptime:         %ds\n", status.UptimeSeconds)
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arbortile reload")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Configuration reloaded")
	return 0
}

func runTUI(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: arbortile tui")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Open the interactive move mode: arrow keys relocate the focused window.")
		return 0
	}

	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (boundaries: %s, on_boundary: %s, gap: %dpx)",
		cfg.Boundaries, cfg.OnBoundary, cfg.Gap)

	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	manager, err := wm.NewManager(backend, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize window manager: %v", err)
	}
	if err := manager.Sync(); err != nil {
		log.Fatalf("Initial window sync failed: %v", err)
	}
	if err := manager.ApplyLayout(); err != nil {
		log.Printf("Initial layout failed: %v", err)
	}
	log.Println("arbortile daemon started successfully")

	reloadChan := make(chan struct{}, 1)

	ipcServer, err := ipc.NewServer(cfg, manager, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reconcile with the window system periodically; new and closed windows
	// are picked up here and retiled.
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := manager.Sync(); err != nil {
					log.Printf("Window sync failed: %v", err)
					continue
				}
				if err := manager.ApplyLayout(); err != nil {
					log.Printf("Layout failed: %v", err)
				}
			case <-reloadChan:
				if err := manager.ApplyLayout(); err != nil {
					log.Printf("Layout after reload failed: %v", err)
				}
			}
		}
	}()

	for sig := range sigCh {
		switch sig {
		case syscall.SIGHUP:
			log.Println("Received SIGHUP, reloading config...")
			newCfg, err := config.Load()
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			manager.Reload(newCfg)
			if err := manager.ApplyLayout(); err != nil {
				log.Printf("Layout after reload failed: %v", err)
			}
			log.Println("Config reloaded successfully")

		case os.Interrupt, syscall.SIGTERM:
			log.Println("Shutting down arbortile daemon...")
			cancel()
			ipcServer.Stop()
			return
		}
	}
}
