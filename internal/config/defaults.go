package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 30x20 board drawn with the
// Bubble Tea backend and logging disabled.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  30,
			Height: 20,
		},
		Apples: AppleConfig{
			MaxAttempts: 64,
		},
		Display: DisplayConfig{
			Backend: BackendTea,
			Color:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
