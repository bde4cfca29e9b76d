// Package snake implements the snake game model: the board, the snake body
// and the turn-based state transition that moves it.
package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultAppleAttempts is the number of random draws NewApple makes before
// falling back to enumerating the free cells.
const DefaultAppleAttempts = 64

// ErrBoardFull is returned when no free cell is left for an apple.
var ErrBoardFull = errors.New("snake: no free cell for apple")

// Board holds the grid, obstacles, apples, snake and score for one session.
type Board struct {
	Width     int
	Height    int
	Obstacles map[core.Point]bool
	Apples    []core.Point
	Snake     *Snake
	Score     int

	// MaxAppleAttempts bounds rejection sampling in NewApple.
	// Zero means DefaultAppleAttempts.
	MaxAppleAttempts int

	rng *rand.Rand
}

// NewBoard creates the starting board of a session: a three segment snake
// heading right from (1, 1), a wall around the perimeter and one apple in
// the center.
func NewBoard(width, height int, rng *rand.Rand) *Board {
	b := &Board{
		Width:     width,
		Height:    height,
		Obstacles: make(map[core.Point]bool),
		Snake:     NewSnake(),
		rng:       rng,
	}

	for x := 1; x <= 3; x++ {
		b.Snake.Grow(BodyPart{Point: core.Point{X: x, Y: 1}, Direction: core.DirRight})
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				b.Obstacles[core.Point{X: x, Y: y}] = true
			}
		}
	}

	b.Apples = append(b.Apples, core.Point{X: width / 2, Y: height / 2})
	return b
}

// WithinBorders reports whether p lies on the grid.
func (b *Board) WithinBorders(p core.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Update advances the board by one turn in the given direction and reports
// whether the snake is still alive.
//
// A direction opposite to the head's facing is ignored: nothing moves and
// Update reports alive. On death the new head is not appended, so the body
// stays as left by the tail step.
//
// shifted is reserved for sub-cell movement and currently has no effect.
func (b *Board) Update(direction core.Direction, shifted bool) bool {
	_ = shifted

	head := b.Snake.Head()
	if head == nil {
		return false
	}
	if head.Direction.Opposite(direction) {
		return true
	}

	next := head.Point.Add(direction.Unit())

	if i := b.appleIndex(next); i >= 0 {
		b.Apples = append(b.Apples[:i], b.Apples[i+1:]...)
		// A full board leaves the apple set empty; play goes on.
		_ = b.placeApple(next)
		b.Score++
	} else {
		b.Snake.Shrink()
	}

	if b.Obstacles[next] || b.Snake.Contains(next) {
		return false
	}

	// The segment behind the new head takes the new facing as well.
	if prev := b.Snake.Head(); prev != nil {
		prev.Direction = direction
	}
	b.Snake.Grow(BodyPart{Point: next, Direction: direction})
	return true
}

// NewApple places an apple on a random free cell.
// Returns ErrBoardFull if every cell is taken.
func (b *Board) NewApple() error {
	return b.placeApple()
}

// placeApple picks a free cell that is also not one of the reserved points.
func (b *Board) placeApple(reserved ...core.Point) error {
	attempts := b.MaxAppleAttempts
	if attempts <= 0 {
		attempts = DefaultAppleAttempts
	}

	for range attempts {
		p := core.Point{X: b.rng.Intn(b.Width), Y: b.rng.Intn(b.Height)}
		if !b.occupied(p, reserved) {
			b.Apples = append(b.Apples, p)
			return nil
		}
	}

	free := b.FreeCells(reserved...)
	if len(free) == 0 {
		return ErrBoardFull
	}
	b.Apples = append(b.Apples, free[b.rng.Intn(len(free))])
	return nil
}

// FreeCells lists, row by row, the grid cells holding no obstacle, apple or
// snake segment, skipping the excluded points.
func (b *Board) FreeCells(exclude ...core.Point) []core.Point {
	var free []core.Point
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !b.occupied(p, exclude) {
				free = append(free, p)
			}
		}
	}
	return free
}

func (b *Board) occupied(p core.Point, reserved []core.Point) bool {
	if b.Obstacles[p] || b.appleIndex(p) >= 0 || b.Snake.Contains(p) {
		return true
	}
	for _, r := range reserved {
		if r == p {
			return true
		}
	}
	return false
}

// appleIndex returns the index of the apple at p, or -1.
func (b *Board) appleIndex(p core.Point) int {
	for i, a := range b.Apples {
		if a == p {
			return i
		}
	}
	return -1
}
