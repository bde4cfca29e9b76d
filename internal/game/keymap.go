package game

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Command is a semantic action, abstracted from physical key presses.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
	CommandRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandQuit:
		return "Quit"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a steering command.
func (c Command) Direction() (core.Direction, bool) {
	switch c {
	case CommandUp:
		return core.DirUp, true
	case CommandDown:
		return core.DirDown, true
	case CommandLeft:
		return core.DirLeft, true
	case CommandRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// KeyMap defines the key bindings. Keys are single case-sensitive
// characters.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
	Restart key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.Up, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the wasd and vim-style hjkl bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "k"),
			key.WithHelp("w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "j"),
			key.WithHelp("s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "h"),
			key.WithHelp("a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "l"),
			key.WithHelp("d/l", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
	}
}

// keyName adapts a raw key string to the key.Matches API.
type keyName string

func (k keyName) String() string {
	return string(k)
}

// Command translates a key to a command. Unbound keys map to CommandNone.
func (k KeyMap) Command(pressed string) Command {
	name := keyName(pressed)
	switch {
	case key.Matches(name, k.Quit):
		return CommandQuit
	case key.Matches(name, k.Left):
		return CommandLeft
	case key.Matches(name, k.Down):
		return CommandDown
	case key.Matches(name, k.Up):
		return CommandUp
	case key.Matches(name, k.Right):
		return CommandRight
	case key.Matches(name, k.Restart):
		return CommandRestart
	}
	return CommandNone
}
