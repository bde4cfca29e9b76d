// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Display backends.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Smallest board that fits the starting snake, the wall and a free center.
const (
	MinBoardWidth  = 8
	MinBoardHeight = 5
)

// Config contains all configuration for a game run.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Apples  AppleConfig   `yaml:"apples"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the grid size. It stays fixed for every session.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AppleConfig defines apple placement parameters.
type AppleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// DisplayConfig selects the terminal backend.
type DisplayConfig struct {
	Backend string `yaml:"backend"`
	Color   bool   `yaml:"color"`
}

// LogConfig defines where diagnostics go.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards log output
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("config: board width %d is below minimum %d", c.Board.Width, MinBoardWidth)
	}
	if c.Board.Height < MinBoardHeight {
		return fmt.Errorf("config: board height %d is below minimum %d", c.Board.Height, MinBoardHeight)
	}
	if c.Apples.MaxAttempts < 1 {
		return fmt.Errorf("config: apples.max_attempts must be positive, got %d", c.Apples.MaxAttempts)
	}
	switch c.Display.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("config: unknown display backend %q", c.Display.Backend)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}
