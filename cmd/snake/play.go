package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl := game.New(cfg, game.WithLogger(logger), game.WithSeed(opts.seed))

	// Not a terminal: leave the error to the backend
	width, height := ctrl.ScreenSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if err := fitsTerminal(w, h, width, height); err != nil {
			return err
		}
	}

	logger.Info("starting", "backend", cfg.Display.Backend, "seed", opts.seed)

	switch cfg.Display.Backend {
	case config.BackendTcell:
		err = console.Run(ctrl)
	default:
		err = tui.Run(ctrl)
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveConfig loads the config file, if any, and applies flags that were
// set explicitly on the command line.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = opts.height
	}
	if flags.Changed("backend") {
		cfg.Display.Backend = opts.backend
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noColor {
		cfg.Display.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the game logger. The terminal belongs to the game, so
// without a log file the output is discarded.
func newLogger(cfg config.LogConfig) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", cfg.File, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fitsTerminal reports an error when a termW x termH terminal cannot show
// a needW x needH game.
func fitsTerminal(termW, termH, needW, needH int) error {
	if termW < needW || termH < needH {
		return fmt.Errorf("terminal is %dx%d, the game needs at least %dx%d; shrink the board with --width/--height",
			termW, termH, needW, needH)
	}
	return nil
}
