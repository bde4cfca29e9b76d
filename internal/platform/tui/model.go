// Package tui provides the Bubble Tea backend for the snake game.
// Each key message is one turn: the controller handles the key and the
// resulting scene is drawn into a screen buffer that View displays.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Model is the Bubble Tea model wrapping a game controller.
type Model struct {
	ctrl      *game.Controller
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	quitting  bool
}

// NewModel creates a model and draws the controller's first scene.
func NewModel(ctrl *game.Controller) Model {
	w, h := ctrl.ScreenSize()
	m := Model{
		ctrl:      ctrl,
		screen:    core.NewScreen(w, h),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	ctrl.Draw(m.screen)
	return m
}

// Init implements tea.Model. The game is turn based, so there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey runs one turn for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.HandleKey(m.keyMapper.MapKey(msg)) == game.SceneExited {
		m.quitting = true
		return m, tea.Quit
	}
	m.ctrl.Draw(m.screen)
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := RenderScreen(m.screen)
	if m.ctrl.Scene() == game.ScenePlaying {
		view += "\n" + m.help.View(m.ctrl.Keys())
	}
	return view
}

// Quitting reports whether the player has quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the controller. The terminal is
// restored when the program returns, whichever scene the player quit from.
func Run(ctrl *game.Controller) error {
	p := tea.NewProgram(
		NewModel(ctrl),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
