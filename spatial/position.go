package spatial

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/constraints"
)

// Pos represents a position (or an offset) in a 2D space.
// X grows to the right, Y grows downwards, the zero value is the origin.
// All arithmetic wraps on overflow.
type Pos[T constraints.Integer] struct {
	X T
	Y T
}

// Unit offsets in screen coordinates
var (
	Up    = Pos[int]{X: 0, Y: -1}
	Down  = Pos[int]{X: 0, Y: 1}
	Left  = Pos[int]{X: -1, Y: 0}
	Right = Pos[int]{X: 1, Y: 0}
)

// P creates a position
func P[T constraints.Integer](x, y T) Pos[T] {
	return Pos[T]{X: x, Y: y}
}

// String returns "(x, y)"
func (p Pos[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Add returns p + o
func (p Pos[T]) Add(o Pos[T]) Pos[T] {
	return Pos[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o
func (p Pos[T]) Sub(o Pos[T]) Pos[T] {
	return Pos[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales both components by k
func (p Pos[T]) Mul(k T) Pos[T] {
	return Pos[T]{X: p.X * k, Y: p.Y * k}
}

// Neg negates both components, unsigned types wrap around
func (p Pos[T]) Neg() Pos[T] {
	return Pos[T]{X: -p.X, Y: -p.Y}
}

// Compare orders positions by X, then by Y
func (p Pos[T]) Compare(o Pos[T]) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// Less reports whether p sorts before o
func (p Pos[T]) Less(o Pos[T]) bool {
	return p.Compare(o) < 0
}

// Crosses returns the four neighbours at dist forming a cross:
// below, above, right, left.
func (p Pos[T]) Crosses(dist T) [4]Pos[T] {
	return [4]Pos[T]{
		{X: p.X, Y: p.Y + dist},
		{X: p.X, Y: p.Y - dist},
		{X: p.X + dist, Y: p.Y},
		{X: p.X - dist, Y: p.Y},
	}
}

// Diagonals returns the four neighbours at dist forming an X.
func (p Pos[T]) Diagonals(dist T) [4]Pos[T] {
	return [4]Pos[T]{
		{X: p.X + dist, Y: p.Y + dist},
		{X: p.X - dist, Y: p.Y + dist},
		{X: p.X + dist, Y: p.Y - dist},
		{X: p.X - dist, Y: p.Y - dist},
	}
}

// Neighbours returns Crosses followed by Diagonals.
func (p Pos[T]) Neighbours(dist T) [8]Pos[T] {
	var result [8]Pos[T]
	crosses, diagonals := p.Crosses(dist), p.Diagonals(dist)
	copy(result[:4], crosses[:])
	copy(result[4:], diagonals[:])
	return result
}

// Clockwise returns p turned 90 degrees clockwise on Y-up axes: (x, y) -> (y, -x).
// On screen axes (Y down) this is a left turn, see TurnLeft.
func (p Pos[T]) Clockwise() Pos[T] {
	return Pos[T]{X: p.Y, Y: -p.X}
}

// CounterClockwise returns p turned 90 degrees counterclockwise on Y-up axes: (x, y) -> (-y, x).
func (p Pos[T]) CounterClockwise() Pos[T] {
	return Pos[T]{X: -p.Y, Y: p.X}
}

// TurnRight turns a screen-space direction right, Up becomes Right.
func (p Pos[T]) TurnRight() Pos[T] {
	return p.CounterClockwise()
}

// TurnLeft turns a screen-space direction left, Up becomes Left.
func (p Pos[T]) TurnLeft() Pos[T] {
	return p.Clockwise()
}

// Manhattan returns the taxicab distance between p and o.
func (p Pos[T]) Manhattan(o Pos[T]) T {
	return absDiff(p.X, o.X) + absDiff(p.Y, o.Y)
}

func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Convert changes the coordinate type of p
func Convert[U, T constraints.Integer](p Pos[T]) Pos[U] {
	return Pos[U]{X: U(p.X), Y: U(p.Y)}
}

// FromByte converts an arrow byte into a unit offset:
// '<' left, '>' right, 'v' or 'V' down, anything else up.
func FromByte(b byte) Pos[int8] {
	return Dir[int8](b)
}

// Dir is FromByte for an arbitrary coordinate type.
func Dir[T constraints.Integer](b byte) Pos[T] {
	var one T = 1
	switch b {
	case '<':
		return Pos[T]{X: -one}
	case '>':
		return Pos[T]{X: one}
	case 'v', 'V':
		return Pos[T]{Y: one}
	default:
		return Pos[T]{Y: -one}
	}
}

// IsDir reports whether b is one of the recognised arrow bytes.
func IsDir(b byte) bool {
	switch b {
	case '<', '>', 'v', 'V', '^':
		return true
	}
	return false
}
