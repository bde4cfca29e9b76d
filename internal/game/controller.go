// Package game drives the snake board through its scenes: a help screen,
// the play loop and the lost prompt, turning raw key presses into board
// updates one at a time.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Scene is a state of the controller.
type Scene int

const (
	SceneHelp Scene = iota
	ScenePlaying
	SceneLost
	SceneExited
)

// String returns a human-readable name for the scene.
func (s Scene) String() string {
	switch s {
	case SceneHelp:
		return "help"
	case ScenePlaying:
		return "playing"
	case SceneLost:
		return "lost"
	case SceneExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Texts shown outside of the board.
const (
	HelpText = "Welcome to TUI Snake.\nUse wasd or hjkl to move.\nPress `q` to exit.\nTap any key to continue."
	LostText = "You lost. Press `q` to quit or `r` to restart"
)

// KeySource supplies key presses, blocking until one is available.
type KeySource interface {
	ReadKey() (string, error)
}

// Controller owns the board and the scene state machine. It is not safe for
// concurrent use; a single loop feeds it one key at a time.
type Controller struct {
	cfg      config.Config
	renderer snake.Renderer
	keys     KeyMap
	logger   *log.Logger
	rng      *rand.Rand

	board    *snake.Board
	scene    Scene
	replay   bool
	sessions int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. By default log output is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithRenderer replaces the default terminal renderer.
func WithRenderer(r snake.Renderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(c *Controller) {
		c.keys = keys
	}
}

// WithSeed seeds apple placement. 0 means seed from the current time.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a controller and starts the first session on the help scene.
func New(cfg config.Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:      cfg,
		renderer: snake.NewTerminalRenderer(cfg.Display.Color),
		keys:     DefaultKeyMap(),
		replay:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.rng == nil {
		WithSeed(0)(c)
	}

	c.Init()
	return c
}

// Init starts a fresh session: a new board with score 0 and the help scene.
func (c *Controller) Init() {
	c.board = snake.NewBoard(c.cfg.Board.Width, c.cfg.Board.Height, c.rng)
	c.board.MaxAppleAttempts = c.cfg.Apples.MaxAttempts
	c.scene = SceneHelp
	c.sessions++
	c.logger.Info("session started", "session", c.sessions, "width", c.board.Width, "height", c.board.Height)
}

// Scene returns the current scene.
func (c *Controller) Scene() Scene {
	return c.scene
}

// Board returns the active board.
func (c *Controller) Board() *snake.Board {
	return c.board
}

// Replay reports whether another session was requested.
func (c *Controller) Replay() bool {
	return c.replay
}

// Keys returns the key bindings in use.
func (c *Controller) Keys() KeyMap {
	return c.keys
}

// HandleKey feeds one key press to the current scene and returns the scene
// that follows.
func (c *Controller) HandleKey(pressed string) Scene {
	cmd := c.keys.Command(pressed)

	switch c.scene {
	case SceneHelp:
		if cmd == CommandQuit {
			c.exit()
			break
		}
		c.scene = ScenePlaying

	case ScenePlaying:
		if cmd == CommandQuit {
			c.exit()
			break
		}
		if dir, ok := cmd.Direction(); ok {
			c.step(dir)
		}

	case SceneLost:
		switch cmd {
		case CommandQuit:
			c.exit()
		case CommandRestart:
			c.replay = true
			c.logger.Info("replay requested")
			c.Init()
		}
	}

	return c.scene
}

// step applies one turn to the board.
func (c *Controller) step(dir core.Direction) {
	score := c.board.Score
	alive := c.board.Update(dir, false)

	if c.board.Score > score {
		c.logger.Debug("apple eaten", "score", c.board.Score, "length", c.board.Snake.Len())
		if len(c.board.Apples) == 0 {
			c.logger.Warn("board saturated, no cell left for an apple")
		}
	}

	if !alive {
		c.scene = SceneLost
		c.logger.Info("snake died", "score", c.board.Score, "direction", dir)
	}
}

func (c *Controller) exit() {
	c.replay = false
	c.scene = SceneExited
	c.logger.Info("quit", "sessions", c.sessions, "score", c.board.Score)
}

// Draw paints the current scene onto the surface.
// The lost prompt is written over the last rendered frame, so the fatal
// move itself is never shown.
func (c *Controller) Draw(dst snake.Surface) {
	switch c.scene {
	case SceneHelp:
		dst.Clear()
		for i, line := range strings.Split(HelpText, "\n") {
			dst.Put(i, 0, line, core.ColorDefault)
		}
		dst.Refresh()

	case ScenePlaying:
		c.renderer.Render(c.board, dst)

	case SceneLost:
		dst.Put(c.board.Height+snake.HeaderRows+1, 0, LostText, core.ColorDefault)
		dst.Refresh()
	}
}

// ScreenSize returns the display area the scenes need.
func (c *Controller) ScreenSize() (width, height int) {
	width = c.cfg.Board.Width
	for _, line := range append(strings.Split(HelpText, "\n"), LostText) {
		width = max(width, len(line))
	}
	return width, c.cfg.Board.Height + snake.HeaderRows + 2
}

// Run is the synchronous game loop: draw, read one key, handle it, until
// the player quits. Key read errors end the loop.
func (c *Controller) Run(keys KeySource, dst snake.Surface) error {
	for {
		c.Draw(dst)

		pressed, err := keys.ReadKey()
		if err != nil {
			return fmt.Errorf("game: read key: %w", err)
		}

		if c.HandleKey(pressed) == SceneExited {
			return nil
		}
	}
}
