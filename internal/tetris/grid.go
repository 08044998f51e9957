// Package tetris implements the rules of a falling-block puzzle: the piece
// catalog, rotation, collision checks against the playfield, gravity, landing
// and line clears. It has no terminal dependencies; the platform drives it
// through commands and reads its state back for drawing.
package tetris

import "strings"

// MaxGridSize is the side of the largest piece grid (the I piece).
const MaxGridSize = 4

// Grid is a square occupancy pattern of side 1..MaxGridSize stored as a
// row-major bit set.
type Grid struct {
	size int
	bits uint16
}

// NewGrid parses a square pattern where 'X' marks an occupied cell, e.g.
// NewGrid("X..", "XXX", "..."). It panics if the rows do not form a square of
// a supported size.
func NewGrid(rows ...string) Grid {
	n := len(rows)
	if n == 0 || n > MaxGridSize {
		panic("tetris: grid size out of range")
	}
	g := Grid{size: n}
	for i, row := range rows {
		if len(row) != n {
			panic("tetris: grid rows must form a square: " + strings.Join(rows, "/"))
		}
		for j, ch := range row {
			if ch == 'X' {
				g.set(i, j)
			}
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return g.size
}

// At reports whether cell (row, col) is occupied. Outside the grid is empty.
func (g Grid) At(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.bits&(1<<(row*g.size+col)) != 0
}

func (g *Grid) set(row, col int) {
	g.bits |= 1 << (row*g.size + col)
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for b := g.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Cell is an offset inside a piece grid.
type Cell struct {
	Row, Col int
}

// Cells lists the occupied cells in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for i := range g.size {
		for j := range g.size {
			if g.At(i, j) {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// String renders the grid with 'X' and '.', rows separated by '/'.
func (g Grid) String() string {
	var sb strings.Builder
	for i := range g.size {
		if i > 0 {
			sb.WriteByte('/')
		}
		for j := range g.size {
			if g.At(i, j) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns g turned 90° clockwise: the cell at (i, j) moves to
// (j, N-1-i). The input is not modified.
func Rotate(g Grid) Grid {
	out := Grid{size: g.size}
	n := g.size
	for i := range n {
		for j := range n {
			if g.At(i, j) {
				out.set(j, n-1-i)
			}
		}
	}
	return out
}
