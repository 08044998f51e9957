package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield on screen. Each board cell is drawn two columns wide.
const (
	frameX     = 2
	frameY     = 0
	frameW     = 2*Cols + 2
	frameH     = Rows + 2
	sideX      = frameX + frameW + 2
	blockRunes = "██"

	// MinScreenW and MinScreenH are the smallest screen the game fits on.
	MinScreenW = sideX + 2*MaxGridSize + 2 + 2
	MinScreenH = frameH
)

// Render draws the board, the falling piece, the next-piece preview and the
// score into dst. dst is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.renderBoard(dst)
	if !g.GameOver() {
		drawPiece(dst, g.active, frameX+1, frameY+1)
	}
	g.renderNext(dst)
	g.renderScore(dst)

	if g.GameOver() {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(frameX, frameY, frameW, frameH), core.BoxDouble, core.ColorDefault)
	for r := range Rows {
		for c := range Cols {
			if color := g.board[r][c]; color != Empty {
				drawBlock(dst, frameX+1+2*c, frameY+1+r, color)
			}
		}
	}
}

// drawPiece draws p's occupied cells relative to the board origin (ox, oy).
func drawPiece(dst *core.Screen, p Piece, ox, oy int) {
	for _, c := range p.Grid.Cells() {
		drawBlock(dst, ox+2*(p.Col+c.Col), oy+p.Row+c.Row, p.Color)
	}
}

func drawBlock(dst *core.Screen, x, y int, color core.Color) {
	dst.DrawColoredText(x, y, blockRunes, color)
}

func (g *Game) renderNext(dst *core.Screen) {
	size := g.next.Grid.Size()
	dst.DrawText(sideX+2, frameY, "next")
	box := core.NewRect(sideX, frameY+1, 2*size+2, size+2)
	dst.DrawBox(box, core.BoxSingle, core.ColorDefault)

	preview := g.next
	preview.Col, preview.Row = 0, 0
	drawPiece(dst, preview, box.X+1, box.Y+1)
}

func (g *Game) renderScore(dst *core.Screen) {
	y := frameY + MaxGridSize + 4
	dst.DrawText(sideX, y, "score")
	dst.DrawText(sideX, y+1, fmt.Sprintf("%d", g.score))
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{"GAME OVER", fmt.Sprintf("%d lines", g.score)}
	y := frameY + frameH/2 - len(lines)/2
	for i, line := range lines {
		x := frameX + (frameW-len(line))/2
		dst.DrawColoredText(x, y+i, line, core.ColorRed)
	}
}

// BoardArea returns the screen rectangle of the board frame.
func BoardArea() core.Rect {
	return core.NewRect(frameX, frameY, frameW, frameH)
}
