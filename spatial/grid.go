package spatial

import (
	"fmt"
	"iter"
	"strings"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("aoc-grid-state-hash-key-32-bytes")

// Grid represents a dense row-major 2D grid addressed by Pos[int]
type Grid[T any] struct {
	Width  int
	Height int
	cells  []T
}

// NewGrid creates a width x height grid with every cell set to fill
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Width: width, Height: height, cells: cells}
}

// ParseGrid builds a grid from lines, converting each byte with fn.
// The width is the longest line, shorter rows are padded with fn(' ').
func ParseGrid[T any](lines []string, fn func(b byte) T) *Grid[T] {
	if len(lines) == 0 {
		return &Grid[T]{}
	}
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	grid := &Grid[T]{Width: width, Height: len(lines), cells: make([]T, 0, width*len(lines))}
	for _, line := range lines {
		for x := 0; x < width; x++ {
			b := byte(' ')
			if x < len(line) {
				b = line[x]
			}
			grid.cells = append(grid.cells, fn(b))
		}
	}
	return grid
}

// ByteGrid builds a grid of raw bytes from lines
func ByteGrid(lines []string) *Grid[byte] {
	return ParseGrid(lines, func(b byte) byte { return b })
}

// Contains returns true if p lies inside the grid
func (g *Grid[T]) Contains(p Pos[int]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Get returns the cell at p, false if p is out of bounds
func (g *Grid[T]) Get(p Pos[int]) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.Width+p.X], true
}

// At returns the cell at p, it panics if p is out of bounds
func (g *Grid[T]) At(p Pos[int]) T {
	if !g.Contains(p) {
		panic(fmt.Sprintf("position %v out of %dx%d grid", p, g.Width, g.Height))
	}
	return g.cells[p.Y*g.Width+p.X]
}

// Set updates the cell at p, it returns false if p is out of bounds
func (g *Grid[T]) Set(p Pos[int], value T) bool {
	if !g.Contains(p) {
		return false
	}
	g.cells[p.Y*g.Width+p.X] = value
	return true
}

// All iterates cells in row-major order
func (g *Grid[T]) All() iter.Seq2[Pos[int], T] {
	return func(yield func(Pos[int], T) bool) {
		for i, cell := range g.cells {
			if !yield(Pos[int]{X: i % g.Width, Y: i / g.Width}, cell) {
				return
			}
		}
	}
}

// Find returns the first position (row-major) whose cell matches fn
func (g *Grid[T]) Find(fn func(T) bool) (Pos[int], bool) {
	for p, cell := range g.All() {
		if fn(cell) {
			return p, true
		}
	}
	return Pos[int]{}, false
}

// FindAll returns all positions whose cell matches fn
func (g *Grid[T]) FindAll(fn func(T) bool) []Pos[int] {
	var result []Pos[int]
	for p, cell := range g.All() {
		if fn(cell) {
			result = append(result, p)
		}
	}
	return result
}

// Neighbours returns the in-bounds orthogonal neighbours of p
func (g *Grid[T]) Neighbours(p Pos[int]) []Pos[int] {
	result := make([]Pos[int], 0, 4)
	for _, n := range p.Crosses(1) {
		if g.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}

// Rows returns copies of the grid rows
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.Height)
	for y := range rows {
		rows[y] = append([]T(nil), g.cells[y*g.Width:(y+1)*g.Width]...)
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Width: g.Width, Height: g.Height, cells: append([]T(nil), g.cells...)}
}

// Transpose swaps rows and columns
func (g *Grid[T]) Transpose() *Grid[T] {
	result := &Grid[T]{Width: g.Height, Height: g.Width, cells: make([]T, len(g.cells))}
	for p, cell := range g.All() {
		result.cells[p.X*result.Width+p.Y] = cell
	}
	return result
}

// RotateClockwise returns the grid rotated 90 degrees clockwise as displayed on screen
func (g *Grid[T]) RotateClockwise() *Grid[T] {
	result := &Grid[T]{Width: g.Height, Height: g.Width, cells: make([]T, len(g.cells))}
	for p, cell := range g.All() {
		result.cells[p.X*result.Width+(g.Height-1-p.Y)] = cell
	}
	return result
}

// String renders the grid one row per line
func (g *Grid[T]) String() string {
	builder := strings.Builder{}
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for _, cell := range g.cells[y*g.Width : (y+1)*g.Width] {
			switch v := any(cell).(type) {
			case byte:
				builder.WriteByte(v)
			case rune:
				builder.WriteRune(v)
			default:
				builder.WriteString(fmt.Sprint(v))
			}
		}
	}
	return builder.String()
}

// Hash returns a 64-bit HighwayHash of the grid dimensions and contents,
// used to de-duplicate grid states.
func (g *Grid[T]) Hash() uint64 {
	hash, err := highwayhash.New64(hashKey)
	if err != nil { // only on invalid key size
		panic(err)
	}
	_, _ = fmt.Fprintf(hash, "%dx%d:", g.Width, g.Height)
	if data, ok := any(g.cells).([]byte); ok {
		_, _ = hash.Write(data)
		return hash.Sum64()
	}
	for _, cell := range g.cells {
		_, _ = fmt.Fprintf(hash, "%v\x00", cell)
	}
	return hash.Sum64()
}
