package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/arbortile/internal/ipc"
	"github.com/1broseidon/arbortile/internal/wm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	workspaceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	containerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func renderView(data *ipc.TreeData, lastError string, width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("arbortile move mode"))
	sb.WriteString("\n\n")

	if data == nil {
		sb.WriteString(containerStyle.Render("loading tree..."))
		sb.WriteString("\n")
	} else {
		for _, ws := range data.Workspaces {
			sb.WriteString(workspaceStyle.Render(fmt.Sprintf("workspace %s (monitor %d)", ws.Name, ws.Monitor)))
			sb.WriteString("\n")
			sb.WriteString(RenderTree(ws.Root, "  "))
			if len(ws.Minimized) > 0 {
				sb.WriteString(containerStyle.Render(fmt.Sprintf("  minimized: %d window(s)", len(ws.Minimized))))
				sb.WriteString("\n")
			}
			if len(ws.Floating) > 0 {
				sb.WriteString(containerStyle.Render(fmt.Sprintf("  floating: %d window(s)", len(ws.Floating))))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}

	if lastError != "" {
		sb.WriteString(errorStyle.Render("error: " + lastError))
		sb.WriteString("\n\n")
	}

	sb.WriteString(footerStyle.Render("arrows/hjkl move focused window · r refresh · q quit"))
	sb.WriteString("\n")

	return sb.String()
}

// RenderTree renders one snapshot subtree as an indented outline. Containers
// show their orientation and child count; the focused window is highlighted.
func RenderTree(node wm.SnapshotNode, indent string) string {
	var sb strings.Builder
	renderNode(&sb, node, indent)
	return sb.String()
}

func renderNode(sb *strings.Builder, node wm.SnapshotNode, indent string) {
	switch node.Type {
	case "container":
		sb.WriteString(indent)
		sb.WriteString(containerStyle.Render(fmt.Sprintf("%s [%d]", node.Orientation, len(node.Children))))
		sb.WriteString("\n")
		for _, child := range node.Children {
			renderNode(sb, child, indent+"  ")
		}
	case "window":
		label := fmt.Sprintf("0x%x %s", node.ID, node.Title)
		sb.WriteString(indent)
		if node.Focused {
			sb.WriteString(focusedStyle.Render(label))
		} else {
			sb.WriteString(label)
		}
		sb.WriteString("\n")
	}
}
