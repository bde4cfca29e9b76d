// snake is a turn-based snake game for the terminal.
//
// Usage:
//
//	snake              - Play
//	snake config       - Print the effective configuration as YAML
//	snake keys         - List key bindings
//
// Global flags:
//
//	--config <path>    - Load a YAML config over the built-in defaults
//	--width, --height  - Board size
//	--backend <name>   - Display backend: tea or tcell
//	--seed <value>     - RNG seed for reproducible apples (0 = time based)
//	--log-file <path>  - Write diagnostics to a file
//	--log-level <lvl>  - debug, info, warn or error
//	--no-color         - Draw without colors
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options holds the values of the global flags.
type options struct {
	configPath string
	width      int
	height     int
	backend    string
	seed       int64
	logFile    string
	logLevel   string
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "snake",
		Short: "TUI Snake - Play snake in your terminal",
		Long: `TUI Snake is a turn-based snake game: the snake moves one cell for
every key you press.

Controls:
  w/k  a/h  s/j  d/l  - Move up, left, down, right
  r                   - Restart (after losing)
  q/Ctrl+C            - Quit

Examples:
  snake
  snake --width 40 --height 25
  snake --backend tcell --seed 42
  snake --config ./my-snake.yaml
  snake config > my-snake.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to custom config YAML")
	flags.IntVar(&opts.width, "width", 0, "Board width in cells")
	flags.IntVar(&opts.height, "height", 0, "Board height in cells")
	flags.StringVar(&opts.backend, "backend", "", "Display backend: tea or tcell")
	flags.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newKeysCmd())
	return rootCmd
}
