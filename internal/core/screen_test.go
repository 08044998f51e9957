package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorCyan)
	assert.Equal(t, Cell{Rune: '█', Color: ColorCyan}, s.GetCell(5, 5))

	// Out of bounds writes are dropped.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ColorDefault, s.GetCell(100, 0).Color)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawColoredText(0, 0, "XXXX", ColorRed)

	s.Clear()

	for x := 0; x < 4; x++ {
		assert.Equal(t, blankCell, s.GetCell(x, 0), "after Clear at (%d, 0)", x)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	assert.Equal(t, "  Hello", s.Row(1)[:7])

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "██ab")

	assert.Equal(t, '█', s.Get(1, 0), "runes are placed one per column")
	assert.Equal(t, 'a', s.Get(2, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2), "row = %q", s.Row(2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawBox(t *testing.T) {
	tests := []struct {
		name   string
		style  BoxStyle
		corner rune
		hEdge  rune
		vEdge  rune
	}{
		{"single", BoxSingle, '┌', '─', '│'},
		{"double", BoxDouble, '╔', '═', '║'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawBox(NewRect(1, 1, 5, 4), tc.style, ColorGray)

			assert.Equal(t, tc.corner, s.Get(1, 1))
			for x := 2; x < 5; x++ {
				assert.Equal(t, tc.hEdge, s.Get(x, 1), "top edge at x=%d", x)
				assert.Equal(t, tc.hEdge, s.Get(x, 4), "bottom edge at x=%d", x)
			}
			for y := 2; y < 4; y++ {
				assert.Equal(t, tc.vEdge, s.Get(1, y), "left edge at y=%d", y)
				assert.Equal(t, tc.vEdge, s.Get(5, y), "right edge at y=%d", y)
			}
			assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)
			assert.Equal(t, ' ', s.Get(3, 2), "interior stays empty")
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, "        ", s.Row(0), "Resize clears the buffer")
	assert.Equal(t, "        ", s.Row(-1), "out of bounds row is spaces")
}
