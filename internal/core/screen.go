package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// BoxStyle selects the box-drawing characters used by DrawBox.
type BoxStyle int

const (
	BoxSingle BoxStyle = iota // ┌─┐│└┘
	BoxDouble                 // ╔═╗║╚╝
)

// boxRunes holds corner and edge runes: tl, tr, bl, br, horizontal, vertical.
var boxRunes = map[BoxStyle][6]rune{
	BoxSingle: {'┌', '┐', '└', '┘', '─', '│'},
	BoxDouble: {'╔', '╗', '╚', '╝', '═', '║'},
}

// Screen is a character buffer the game draws into. The platform decides how
// the buffer reaches the terminal.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and clears the buffer.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// Clear fills the screen with blanks.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an uncolored rune. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right starting at (x, y), clipped at the edge.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawColoredText(x, y, text, ColorDefault)
}

// DrawColoredText writes colored text starting at (x, y).
func (s *Screen) DrawColoredText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox outlines r with the given box style and color.
func (s *Screen) DrawBox(r Rect, style BoxStyle, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	br := boxRunes[style]
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, br[4], c)
		s.SetColored(x, r.Bottom()-1, br[4], c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, br[5], c)
		s.SetColored(r.Right()-1, y, br[5], c)
	}
	s.SetColored(r.X, r.Y, br[0], c)
	s.SetColored(r.Right()-1, r.Y, br[1], c)
	s.SetColored(r.X, r.Bottom()-1, br[2], c)
	s.SetColored(r.Right()-1, r.Bottom()-1, br[3], c)
}

// String returns the buffer as plain text, one line per row, without color.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range s.width {
		runes[x] = s.cells[y*s.width+x].Rune
	}
	return string(runes)
}
