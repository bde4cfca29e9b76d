package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestBoard(seed int64) *Board {
	return NewBoard(30, 20, rand.New(rand.NewSource(seed)))
}

func part(x, y int, d core.Direction) BodyPart {
	return BodyPart{Point: core.Point{X: x, Y: y}, Direction: d}
}

func cloneBody(s *Snake) []BodyPart {
	body := make([]BodyPart, len(s.Body))
	copy(body, s.Body)
	return body
}

// checkApple fails the test if p collides with anything on the board other
// than the apple itself.
func checkApple(t *testing.T, b *Board, p core.Point) {
	t.Helper()
	if b.Obstacles[p] {
		t.Errorf("Apple placed on obstacle at %v", p)
	}
	if b.Snake.Contains(p) {
		t.Errorf("Apple placed on snake at %v", p)
	}
	if !b.WithinBorders(p) {
		t.Errorf("Apple placed out of bounds at %v", p)
	}
	count := 0
	for _, a := range b.Apples {
		if a == p {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Apple %v present %d times, expected once", p, count)
	}
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(1)

	expected := []BodyPart{
		part(1, 1, core.DirRight),
		part(2, 1, core.DirRight),
		part(3, 1, core.DirRight),
	}
	if !reflect.DeepEqual(b.Snake.Body, expected) {
		t.Errorf("Snake = %v, expected %v", b.Snake.Body, expected)
	}

	if len(b.Apples) != 1 || b.Apples[0] != (core.Point{X: 15, Y: 10}) {
		t.Errorf("Apples = %v, expected [(15, 10)]", b.Apples)
	}

	if b.Score != 0 {
		t.Errorf("Score = %d, expected 0", b.Score)
	}

	// Perimeter ring: 2*30 + 2*18 cells
	if len(b.Obstacles) != 96 {
		t.Errorf("Obstacle count = %d, expected 96", len(b.Obstacles))
	}
	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 29, Y: 0}, {X: 0, Y: 19}, {X: 29, Y: 19}, {X: 14, Y: 0}, {X: 0, Y: 7}} {
		if !b.Obstacles[p] {
			t.Errorf("Expected obstacle at %v", p)
		}
	}
	if b.Obstacles[core.Point{X: 1, Y: 1}] {
		t.Error("Interior cell (1, 1) should not be an obstacle")
	}
}

func TestUpdateBasicMove(t *testing.T) {
	b := newTestBoard(2)

	if !b.Update(core.DirRight, false) {
		t.Fatal("Update() = false, expected alive")
	}

	expected := []BodyPart{
		part(2, 1, core.DirRight),
		part(3, 1, core.DirRight),
		part(4, 1, core.DirRight),
	}
	if !reflect.DeepEqual(b.Snake.Body, expected) {
		t.Errorf("Snake = %v, expected %v", b.Snake.Body, expected)
	}
	if b.Score != 0 {
		t.Errorf("Score = %d, expected 0", b.Score)
	}
	if len(b.Apples) != 1 || b.Apples[0] != (core.Point{X: 15, Y: 10}) {
		t.Errorf("Apples = %v, expected untouched [(15, 10)]", b.Apples)
	}
}

func TestUpdateEatApple(t *testing.T) {
	b := newTestBoard(3)
	eaten := core.Point{X: 4, Y: 1}
	b.Apples = []core.Point{eaten}

	if !b.Update(core.DirRight, false) {
		t.Fatal("Update() = false, expected alive")
	}

	expected := []BodyPart{
		part(1, 1, core.DirRight),
		part(2, 1, core.DirRight),
		part(3, 1, core.DirRight),
		part(4, 1, core.DirRight),
	}
	if !reflect.DeepEqual(b.Snake.Body, expected) {
		t.Errorf("Snake = %v, expected %v", b.Snake.Body, expected)
	}
	if b.Score != 1 {
		t.Errorf("Score = %d, expected 1", b.Score)
	}
	if len(b.Apples) != 1 {
		t.Fatalf("Apple count = %d, expected 1", len(b.Apples))
	}
	if b.Apples[0] == eaten {
		t.Error("Eaten apple should be gone")
	}
	checkApple(t, b, b.Apples[0])
}

func TestUpdateReversalIgnored(t *testing.T) {
	tests := []struct {
		name    string
		body    []BodyPart
		reverse core.Direction
	}{
		{
			name:    "facing right",
			body:    []BodyPart{part(1, 1, core.DirRight), part(2, 1, core.DirRight), part(3, 1, core.DirRight)},
			reverse: core.DirLeft,
		},
		{
			name:    "facing down",
			body:    []BodyPart{part(5, 3, core.DirDown), part(5, 4, core.DirDown)},
			reverse: core.DirUp,
		},
		{
			name:    "facing up",
			body:    []BodyPart{part(5, 6, core.DirUp), part(5, 5, core.DirUp)},
			reverse: core.DirDown,
		},
		{
			name:    "facing left",
			body:    []BodyPart{part(8, 8, core.DirLeft), part(7, 8, core.DirLeft), part(6, 8, core.DirLeft)},
			reverse: core.DirRight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(4)
			b.Snake = NewSnake(tc.body...)
			before := cloneBody(b.Snake)
			apples := append([]core.Point(nil), b.Apples...)

			if !b.Update(tc.reverse, false) {
				t.Error("Update() = false on reversal, expected alive")
			}
			if !reflect.DeepEqual(b.Snake.Body, before) {
				t.Errorf("Snake = %v, expected unchanged %v", b.Snake.Body, before)
			}
			if !reflect.DeepEqual(b.Apples, apples) || b.Score != 0 {
				t.Error("Reversal should not touch apples or score")
			}
		})
	}
}

func TestUpdateShrinkOnPlainMove(t *testing.T) {
	b := newTestBoard(5)
	moves := []core.Direction{core.DirRight, core.DirDown, core.DirDown, core.DirRight, core.DirUp}

	for _, d := range moves {
		before := b.Snake.Len()
		if !b.Update(d, false) {
			t.Fatalf("Update(%v) = false, expected alive", d)
		}
		if b.Snake.Len() != before {
			t.Errorf("Update(%v) changed length %d -> %d", d, before, b.Snake.Len())
		}
	}
}

func TestUpdateSetsPreviousHeadDirection(t *testing.T) {
	b := newTestBoard(6)

	if !b.Update(core.DirDown, false) {
		t.Fatal("Update() = false, expected alive")
	}

	expected := []BodyPart{
		part(2, 1, core.DirRight),
		part(3, 1, core.DirDown),
		part(3, 2, core.DirDown),
	}
	if !reflect.DeepEqual(b.Snake.Body, expected) {
		t.Errorf("Snake = %v, expected %v", b.Snake.Body, expected)
	}
}

func TestUpdateShiftedIsInert(t *testing.T) {
	a := newTestBoard(7)
	b := newTestBoard(7)

	moves := []core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirDown, core.DirRight}
	for _, d := range moves {
		aliveA := a.Update(d, false)
		aliveB := b.Update(d, true)
		if aliveA != aliveB {
			t.Fatalf("Update(%v) alive mismatch: %v vs %v", d, aliveA, aliveB)
		}
	}
	if !reflect.DeepEqual(a.Snake.Body, b.Snake.Body) {
		t.Errorf("shifted changed the outcome: %v vs %v", a.Snake.Body, b.Snake.Body)
	}
}

func TestWallDeath(t *testing.T) {
	b := newTestBoard(8)
	b.Snake = NewSnake(part(1, 3, core.DirUp), part(1, 2, core.DirUp), part(1, 1, core.DirUp))

	if b.Update(core.DirUp, false) {
		t.Fatal("Update() = true, expected death on wall")
	}

	// Tail popped, head not appended
	expected := []BodyPart{part(1, 2, core.DirUp), part(1, 1, core.DirUp)}
	if !reflect.DeepEqual(b.Snake.Body, expected) {
		t.Errorf("Snake = %v, expected %v", b.Snake.Body, expected)
	}
}

func TestWallDeathOnEverySide(t *testing.T) {
	tests := []struct {
		name string
		body []BodyPart
		dir  core.Direction
	}{
		{"top", []BodyPart{part(10, 2, core.DirUp), part(10, 1, core.DirUp)}, core.DirUp},
		{"bottom", []BodyPart{part(10, 17, core.DirDown), part(10, 18, core.DirDown)}, core.DirDown},
		{"left", []BodyPart{part(2, 9, core.DirLeft), part(1, 9, core.DirLeft)}, core.DirLeft},
		{"right", []BodyPart{part(27, 9, core.DirRight), part(28, 9, core.DirRight)}, core.DirRight},
		{"turn into top", []BodyPart{part(4, 1, core.DirRight), part(5, 1, core.DirRight)}, core.DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(9)
			b.Snake = NewSnake(tc.body...)
			if b.Update(tc.dir, false) {
				t.Errorf("Update(%v) = true, expected death", tc.dir)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	b := newTestBoard(10)
	// Head at (5, 5) facing left, body wraps below it
	b.Snake = NewSnake(
		part(5, 7, core.DirUp),
		part(5, 6, core.DirRight),
		part(6, 6, core.DirUp),
		part(6, 5, core.DirLeft),
		part(5, 5, core.DirLeft),
	)

	if b.Update(core.DirDown, false) {
		t.Error("Update() = true, expected self collision")
	}
	if b.Snake.Len() != 4 {
		t.Errorf("Snake len = %d, expected 4 (tail popped, no head)", b.Snake.Len())
	}
}

func TestMovingIntoVacatedTail(t *testing.T) {
	b := newTestBoard(11)
	// 2x2 loop: the head chases its own tail
	b.Snake = NewSnake(
		part(5, 6, core.DirRight),
		part(6, 6, core.DirUp),
		part(6, 5, core.DirLeft),
		part(5, 5, core.DirLeft),
	)

	if !b.Update(core.DirDown, false) {
		t.Fatal("Update() = false, expected alive when entering the vacated tail cell")
	}
	head := b.Snake.Head()
	if head.Point != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Head = %v, expected (5, 6)", head.Point)
	}
}

func TestGrowthRepeated(t *testing.T) {
	b := newTestBoard(12)

	for i := 0; i < 10; i++ {
		head := b.Snake.Head().Point
		target := core.Point{X: head.X + 1, Y: head.Y}
		b.Apples = []core.Point{target}
		before := b.Snake.Len()

		if !b.Update(core.DirRight, false) {
			t.Fatalf("step %d: Update() = false, expected alive", i)
		}
		if b.Snake.Len() != before+1 {
			t.Errorf("step %d: len = %d, expected %d", i, b.Snake.Len(), before+1)
		}
		if b.Score != i+1 {
			t.Errorf("step %d: score = %d, expected %d", i, b.Score, i+1)
		}
		if len(b.Apples) != 1 {
			t.Fatalf("step %d: apple count = %d, expected 1", i, len(b.Apples))
		}
		checkApple(t, b, b.Apples[0])
	}
}

func TestNewAppleValidity(t *testing.T) {
	b := newTestBoard(13)

	for i := 0; i < 200; i++ {
		if err := b.NewApple(); err != nil {
			t.Fatalf("NewApple() failed: %v", err)
		}
		checkApple(t, b, b.Apples[len(b.Apples)-1])
	}
}

func TestNewAppleFallbackFindsLastCell(t *testing.T) {
	b := NewBoard(5, 3, rand.New(rand.NewSource(14)))
	b.MaxAppleAttempts = 1
	b.Apples = nil
	b.Snake = NewSnake(part(1, 1, core.DirRight), part(2, 1, core.DirRight))

	if err := b.NewApple(); err != nil {
		t.Fatalf("NewApple() failed: %v", err)
	}
	if len(b.Apples) != 1 || b.Apples[0] != (core.Point{X: 3, Y: 1}) {
		t.Errorf("Apples = %v, expected [(3, 1)]", b.Apples)
	}
}

func TestNewAppleBoardFull(t *testing.T) {
	b := NewBoard(5, 3, rand.New(rand.NewSource(15)))
	b.Apples = nil

	if free := b.FreeCells(); len(free) != 0 {
		t.Fatalf("FreeCells() = %v, expected none", free)
	}

	err := b.NewApple()
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("NewApple() error = %v, expected ErrBoardFull", err)
	}
	if len(b.Apples) != 0 {
		t.Errorf("Apples = %v, expected none after failure", b.Apples)
	}
}

func TestEatLastAppleOnFullBoard(t *testing.T) {
	// 6x3 board: interior row is x=1..4; snake fills three cells, apple the fourth
	b := NewBoard(6, 3, rand.New(rand.NewSource(16)))
	b.Apples = []core.Point{{X: 4, Y: 1}}

	if !b.Update(core.DirRight, false) {
		t.Fatal("Update() = false, expected alive")
	}
	if b.Score != 1 || b.Snake.Len() != 4 {
		t.Errorf("Score = %d, len = %d, expected 1 and 4", b.Score, b.Snake.Len())
	}
	if len(b.Apples) != 0 {
		t.Errorf("Apples = %v, expected none on a saturated board", b.Apples)
	}
}

func TestDeterminism(t *testing.T) {
	b1 := newTestBoard(12345)
	b2 := newTestBoard(12345)

	for i := 0; i < 50; i++ {
		if err := b1.NewApple(); err != nil {
			t.Fatal(err)
		}
		if err := b2.NewApple(); err != nil {
			t.Fatal(err)
		}
	}

	if !reflect.DeepEqual(b1.Apples, b2.Apples) {
		t.Error("Boards with the same seed placed different apples")
	}
}

func TestSnapshot(t *testing.T) {
	b := newTestBoard(17)
	b.Update(core.DirDown, false)

	snap := b.Snapshot()
	if snap.HeadX != 3 || snap.HeadY != 2 || snap.Dir != core.DirDown {
		t.Errorf("Snapshot head = (%d, %d) %v, expected (3, 2) down", snap.HeadX, snap.HeadY, snap.Dir)
	}
	if snap.SnakeLen != 3 || snap.Apples != 1 || snap.Score != 0 {
		t.Errorf("Snapshot = %+v, unexpected counts", snap)
	}
	if b.DebugState() == "" {
		t.Error("DebugState() should not be empty")
	}
}
