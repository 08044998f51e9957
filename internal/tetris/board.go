package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Playfield dimensions.
const (
	Rows = 20
	Cols = 10
)

// Empty marks a free board cell. Any other value is the color of a settled block.
const Empty = core.ColorDefault

// Board is the grid of settled blocks, row 0 at the top.
type Board [Rows][Cols]core.Color

// Occupied reports whether (row, col) holds a block. Coordinates outside the
// board are not occupied; bounds are the caller's concern.
func (b *Board) Occupied(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return b[row][col] != Empty
}

// RowComplete reports whether every cell in row r is filled.
func (b *Board) RowComplete(r int) bool {
	for _, c := range b[r] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for r := range Rows {
		for c := range Cols {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Collides reports whether p, shifted by dx columns and dy rows, would leave
// the board through the bottom or a side, or overlap a settled block. dy is
// unsigned because pieces only ever move down.
func Collides(b *Board, p Piece, dx int, dy uint) bool {
	baseRow := p.Row + int(dy)
	baseCol := p.Col + dx
	for _, c := range p.Grid.Cells() {
		row := baseRow + c.Row
		col := baseCol + c.Col
		if row > Rows-1 || col < 0 || col > Cols-1 {
			return true
		}
		if row >= 0 && b[row][col] != Empty {
			return true
		}
	}
	return false
}

// fuse writes the piece's color into the board. The piece must be in a legal
// position; fusing onto a block or outside the board is a bug.
func fuse(b *Board, p Piece) {
	for _, c := range p.Grid.Cells() {
		row, col := p.Row+c.Row, p.Col+c.Col
		if row < 0 || row >= Rows || col < 0 || col >= Cols {
			panic(fmt.Sprintf("tetris: fusing %s outside the board at (%d,%d)", p.Kind, row, col))
		}
		if b[row][col] != Empty {
			panic(fmt.Sprintf("tetris: fusing %s onto occupied cell (%d,%d)", p.Kind, row, col))
		}
		b[row][col] = p.Color
	}
}

// completedRows lists full rows top to bottom.
func completedRows(b *Board) []int {
	var rows []int
	for r := range Rows {
		if b.RowComplete(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// clearLines removes every complete row, dropping the rows above it by one and
// opening an empty row at the top. Rows are processed in ascending order so
// indices below the current one stay valid. Returns the number removed.
func clearLines(b *Board) int {
	rows := completedRows(b)
	for _, r := range rows {
		for k := r; k > 0; k-- {
			b[k] = b[k-1]
		}
		b[0] = [Cols]core.Color{}
	}
	return len(rows)
}
