package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// BodyPart is one occupied cell of the snake together with the direction
// the snake was facing there. The direction only affects the drawn glyph.
type BodyPart struct {
	Point     core.Point
	Direction core.Direction
}

// Snake is an ordered body, tail first and head last.
type Snake struct {
	Body []BodyPart
}

// NewSnake creates a snake from the given parts, tail first.
func NewSnake(parts ...BodyPart) *Snake {
	body := make([]BodyPart, len(parts))
	copy(body, parts)
	return &Snake{Body: body}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Head returns a pointer to the head segment, or nil for an empty snake.
func (s *Snake) Head() *BodyPart {
	if len(s.Body) == 0 {
		return nil
	}
	return &s.Body[len(s.Body)-1]
}

// Grow appends a new head.
func (s *Snake) Grow(part BodyPart) {
	s.Body = append(s.Body, part)
}

// Shrink removes the tail segment. It is a no-op on an empty snake.
func (s *Snake) Shrink() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[1:]
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p core.Point) bool {
	for _, part := range s.Body {
		if part.Point == p {
			return true
		}
	}
	return false
}

// Points returns the occupied points, tail first.
func (s *Snake) Points() []core.Point {
	points := make([]core.Point, len(s.Body))
	for i, part := range s.Body {
		points[i] = part.Point
	}
	return points
}
