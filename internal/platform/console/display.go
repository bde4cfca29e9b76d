// Package console provides a tcell display for the snake game. It implements
// the synchronous loop directly: every read blocks on the next terminal
// event and every refresh pushes the frame to the terminal.
package console

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// ErrClosed is returned by ReadKey once the display has been closed.
var ErrClosed = errors.New("console: display closed")

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
}

// Display is a drawing surface and key source backed by a tcell screen.
type Display struct {
	screen tcell.Screen
}

// Open initializes the terminal and returns a display that owns it.
func Open() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	return NewDisplay(screen), nil
}

// NewDisplay wraps an initialized screen.
func NewDisplay(screen tcell.Screen) *Display {
	screen.HideCursor()
	screen.Clear()
	return &Display{screen: screen}
}

// Clear blanks the screen.
func (d *Display) Clear() {
	d.screen.Clear()
}

// Put writes text starting at (row, col).
func (d *Display) Put(row, col int, text string, color core.Color) {
	style, ok := colorStyles[color]
	if !ok {
		style = tcell.StyleDefault
	}
	for i, r := range []rune(text) {
		d.screen.SetContent(col+i, row, r, nil, style)
	}
}

// Refresh shows pending writes.
func (d *Display) Refresh() {
	d.screen.Show()
}

// ReadKey blocks until a key is pressed. Printable keys are returned as
// themselves and ctrl+c as "q"; other keys get their tcell name, which no
// binding uses. Resizes repaint the current frame and keep waiting.
func (d *Display) ReadKey() (string, error) {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				return string(ev.Rune()), nil
			case tcell.KeyCtrlC:
				return "q", nil
			default:
				return ev.Name(), nil
			}
		}
	}
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

// Run opens the terminal, plays until the player quits and restores the
// terminal on every exit path.
func Run(ctrl *game.Controller) error {
	d, err := Open()
	if err != nil {
		return err
	}
	defer d.Close()

	return ctrl.Run(d, d)
}
