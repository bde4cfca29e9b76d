package snake

import (
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used to draw the board.
const (
	GlyphEmpty    = '.'
	GlyphObstacle = '#'
	GlyphApple    = '@'
)

// HeaderRows is the number of rows above the grid. Row 0 holds the score.
const HeaderRows = 1

// Surface is a character display the board can be painted on.
type Surface interface {
	// Clear blanks the whole surface.
	Clear()
	// Put writes text starting at the given row and column.
	Put(row, col int, text string, color core.Color)
	// Refresh makes pending writes visible.
	Refresh()
}

// Renderer paints a board onto a surface. Implementations must not modify
// the board.
type Renderer interface {
	Render(b *Board, dst Surface)
}

// SegmentGlyph returns the character drawn for a snake segment facing d.
func SegmentGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return 'A'
	case core.DirDown:
		return 'V'
	case core.DirRight:
		return '>'
	case core.DirLeft:
		return '<'
	default:
		return '?'
	}
}

// TerminalRenderer draws the board with single character glyphs: the score
// on row 0, then the grid, obstacles, apples and snake in that order so
// later layers win on shared cells.
type TerminalRenderer struct {
	// Color enables per-glyph colors.
	Color bool
}

// NewTerminalRenderer creates a renderer, optionally colored.
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{Color: color}
}

// Render implements Renderer.
func (r *TerminalRenderer) Render(b *Board, dst Surface) {
	dst.Clear()

	dst.Put(0, 0, strconv.Itoa(b.Score), r.color(core.ColorYellow))

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			dst.Put(y+HeaderRows, x, string(GlyphEmpty), r.color(core.ColorGray))
		}
	}

	for p := range b.Obstacles {
		r.put(b, dst, p, GlyphObstacle, core.ColorGray)
	}

	for _, p := range b.Apples {
		r.put(b, dst, p, GlyphApple, core.ColorRed)
	}

	for i, part := range b.Snake.Body {
		color := core.ColorGreen
		if i == len(b.Snake.Body)-1 {
			color = core.ColorBrightGreen
		}
		r.put(b, dst, part.Point, SegmentGlyph(part.Direction), color)
	}

	dst.Refresh()
}

// put draws a single glyph, skipping points off the grid.
func (r *TerminalRenderer) put(b *Board, dst Surface, p core.Point, glyph rune, color core.Color) {
	if !b.WithinBorders(p) {
		return
	}
	dst.Put(p.Y+HeaderRows, p.X, string(glyph), r.color(color))
}

func (r *TerminalRenderer) color(c core.Color) core.Color {
	if !r.Color {
		return core.ColorDefault
	}
	return c
}
