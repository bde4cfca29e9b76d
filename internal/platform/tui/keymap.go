package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to the raw key names the
// game controller understands.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the key name for a message. Printable keys map to
// themselves; ctrl+c is treated as the quit key so the terminal is never
// left without a way out.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) string {
	key := msg.String()
	if key == "ctrl+c" {
		return "q"
	}
	return key
}
