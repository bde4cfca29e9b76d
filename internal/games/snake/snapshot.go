package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable board state for tests and debug logging.
type Snapshot struct {
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	Apples   int
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Score:    b.Score,
		SnakeLen: b.Snake.Len(),
		Apples:   len(b.Apples),
	}
	if head := b.Snake.Head(); head != nil {
		snap.HeadX = head.Point.X
		snap.HeadY = head.Point.Y
		snap.Dir = head.Direction
	}
	return snap
}

// DebugState returns a string representation of the board state.
func (b *Board) DebugState() string {
	snap := b.Snapshot()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d, Snake len: %d, Direction: %s\n", snap.Score, snap.SnakeLen, snap.Dir))
	sb.WriteString(fmt.Sprintf("Head: (%d, %d), Apples: %v\n", snap.HeadX, snap.HeadY, b.Apples))
	return sb.String()
}
