// Package tui implements the interactive move mode: a live view of the
// tiling trees where arrow keys relocate the focused window through the
// daemon.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/arbortile/internal/ipc"
)

// Run starts the move-mode TUI, blocking until the user quits.
func Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	client := ipc.NewClient()
	if err := client.Ping(); err != nil {
		return fmt.Errorf("daemon not reachable: %w", err)
	}

	p := tea.NewProgram(newModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
