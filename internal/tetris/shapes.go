package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// String returns the shape letter.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return string("IJLOSTZ"[k])
}

type shapeDef struct {
	grid     Grid
	color    core.Color
	spawnCol int
}

// catalog holds the spawn orientation of every shape. Spawn columns center
// each grid on the 10-wide board.
var catalog = [kindCount]shapeDef{
	KindI: {
		grid: NewGrid(
			"....",
			"XXXX",
			"....",
			"....",
		),
		color:    core.ColorCyan,
		spawnCol: 3,
	},
	KindJ: {
		grid: NewGrid(
			"X..",
			"XXX",
			"...",
		),
		color:    core.ColorBlue,
		spawnCol: 3,
	},
	KindL: {
		grid: NewGrid(
			"..X",
			"XXX",
			"...",
		),
		color:    core.ColorYellow,
		spawnCol: 3,
	},
	KindO: {
		grid: NewGrid(
			"XX",
			"XX",
		),
		color:    core.ColorWhite,
		spawnCol: 4,
	},
	KindS: {
		grid: NewGrid(
			".XX",
			"XX.",
			"...",
		),
		color:    core.ColorGreen,
		spawnCol: 3,
	},
	KindT: {
		grid: NewGrid(
			".X.",
			"XXX",
			"...",
		),
		color:    core.ColorMagenta,
		spawnCol: 3,
	},
	KindZ: {
		grid: NewGrid(
			"XX.",
			".XX",
			"...",
		),
		color:    core.ColorRed,
		spawnCol: 3,
	},
}

// Palette lists the colors a settled board cell may hold, in Kind order.
func Palette() []core.Color {
	colors := make([]core.Color, kindCount)
	for k := range kindCount {
		colors[k] = catalog[k].color
	}
	return colors
}

// Piece is a shape placed on the board. Col and Row anchor the top-left cell
// of the grid.
type Piece struct {
	Kind  Kind
	Grid  Grid
	Color core.Color
	Col   int
	Row   int
}

// NewPiece returns the given shape in spawn orientation at its spawn anchor.
func NewPiece(k Kind) Piece {
	def := catalog[k]
	return Piece{
		Kind:  k,
		Grid:  def.grid,
		Color: def.color,
		Col:   def.spawnCol,
		Row:   0,
	}
}

// RandomPiece picks one of the seven shapes uniformly. Successive calls are
// independent, so repeats and droughts are possible.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(Kind(rng.Intn(int(kindCount))))
}

// Rotated returns a copy of p with its grid rotated; p is unchanged.
func (p Piece) Rotated() Piece {
	p.Grid = Rotate(p.Grid)
	return p
}

// Offset returns a copy of p moved by (dx, dy).
func (p Piece) Offset(dx, dy int) Piece {
	p.Col += dx
	p.Row += dy
	return p
}
