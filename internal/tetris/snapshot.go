package tetris

// PieceSnapshot is the observable part of a piece.
type PieceSnapshot struct {
	Kind Kind
	Grid string
	Col  int
	Row  int
}

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Ticks  uint64
	Pieces int
	Score  int
	Status Status
	Active PieceSnapshot
	Next   Kind
	Board  Board
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:  g.ticks,
		Pieces: g.pieces,
		Score:  g.score,
		Status: g.status,
		Active: PieceSnapshot{
			Kind: g.active.Kind,
			Grid: g.active.Grid.String(),
			Col:  g.active.Col,
			Row:  g.active.Row,
		},
		Next:  g.next.Kind,
		Board: g.board,
	}
}
