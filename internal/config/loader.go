package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// With an empty customPath the embedded defaults are used and no file is
// read. Keys missing from a custom file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	if customPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// embeddedDefault parses the embedded YAML, falling back to Default.
func embeddedDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}
