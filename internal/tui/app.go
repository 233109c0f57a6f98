package tui

import (
	"github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/arbortile/internal/ipc"
	"github.com/1broseidon/arbortile/internal/tree"
)

// model is the root bubbletea model for move mode.
type model struct {
	client *ipc.Client

	data      *ipc.TreeData
	lastError string

	width  int
	height int
}

type treeMsg struct {
	data *ipc.TreeData
}

type moveResultMsg struct {
	err error
}

func newModel(client *ipc.Client) model {
	return model{client: client}
}

func (m model) fetchTree() tea.Cmd {
	return func() tea.Msg {
		data, err := m.client.GetTree()
		if err != nil {
			return moveResultMsg{err: err}
		}
		return treeMsg{data: data}
	}
}

func (m model) sendMove(dir tree.Direction) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Move(dir); err != nil {
			return moveResultMsg{err: err}
		}
		data, err := m.client.GetTree()
		if err != nil {
			return moveResultMsg{err: err}
		}
		return treeMsg{data: data}
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return m.fetchTree()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			return m, m.sendMove(tree.DirLeft)
		case "right", "l":
			return m, m.sendMove(tree.DirRight)
		case "up", "k":
			return m, m.sendMove(tree.DirUp)
		case "down", "j":
			return m, m.sendMove(tree.DirDown)
		case "r":
			return m, m.fetchTree()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case treeMsg:
		m.data = msg.data
		m.lastError = ""

	case moveResultMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	return renderView(m.data, m.lastError, m.width)
}
