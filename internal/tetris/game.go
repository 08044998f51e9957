package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Status is the state machine's state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "playing"
}

// Outcome reports what a gravity tick did.
type Outcome int

const (
	// Falling means the active piece moved down one row.
	Falling Outcome = iota
	// Landed means the piece was fused, lines resolved and the next piece spawned.
	Landed
	// Terminal means the game is over; no further ticks have any effect.
	Terminal
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Falling:
		return "falling"
	case Landed:
		return "landed"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Game owns the board, the active and next pieces, the score and the
// game-over flag. Every command either applies fully or leaves the state
// untouched. A Game is not safe for concurrent use; the platform drives it
// from a single loop.
type Game struct {
	rng    *rand.Rand
	board  Board
	active Piece
	next   Piece
	score  int
	status Status

	ticks  uint64 // gravity ticks applied
	pieces int    // pieces spawned, including the current one

	events []core.Event
}

// New creates a game ready to play with a time-based seed.
func New() *Game {
	g := &Game{}
	g.Reset(core.RuntimeConfig{Seed: time.Now().UnixNano()})
	return g
}

// NewWithSeed creates a game whose piece sequence is fixed by seed.
func NewWithSeed(seed int64) *Game {
	g := &Game{}
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// Reset clears the board and draws fresh active and next pieces.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = Board{}
	g.score = 0
	g.status = StatusPlaying
	g.ticks = 0
	g.events = nil
	g.active = RandomPiece(g.rng)
	g.next = RandomPiece(g.rng)
	g.pieces = 1
}

// Board returns a copy of the settled blocks.
func (g *Game) Board() Board {
	return g.board
}

// Active returns the falling piece.
func (g *Game) Active() Piece {
	return g.active
}

// Next returns the preview piece.
func (g *Game) Next() Piece {
	return g.next
}

// Score returns the number of lines cleared so far.
func (g *Game) Score() int {
	return g.score
}

// Status returns the current state.
func (g *Game) Status() Status {
	return g.status
}

// GameOver reports whether the game has reached its terminal state.
func (g *Game) GameOver() bool {
	return g.status == StatusGameOver
}

// State returns the summary polled by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.GameOver(),
	}
}

// MoveLeft shifts the active piece one column left if the target is free.
func (g *Game) MoveLeft() bool {
	return g.move(-1)
}

// MoveRight shifts the active piece one column right if the target is free.
func (g *Game) MoveRight() bool {
	return g.move(1)
}

func (g *Game) move(dx int) bool {
	if g.GameOver() || Collides(&g.board, g.active, dx, 0) {
		return false
	}
	g.active = g.active.Offset(dx, 0)
	return true
}

// Rotate turns the active piece clockwise in place. A rotation that would
// collide is rejected without trying alternative offsets.
func (g *Game) Rotate() bool {
	if g.GameOver() {
		return false
	}
	candidate := g.active.Rotated()
	if Collides(&g.board, candidate, 0, 0) {
		return false
	}
	g.active = candidate
	return true
}

// Tick applies one step of gravity.
func (g *Game) Tick() Outcome {
	if g.GameOver() {
		return Terminal
	}
	g.ticks++

	if !Collides(&g.board, g.active, 0, 1) {
		g.active = g.active.Offset(0, 1)
		return Falling
	}

	// Blocked before leaving the spawn row: the stack reached the top.
	if g.active.Row == 0 {
		g.endGame()
		return Terminal
	}

	g.land()
	if g.GameOver() {
		return Terminal
	}
	return Landed
}

// HardDrop ticks until the active piece lands or the game ends.
func (g *Game) HardDrop() Outcome {
	for {
		if out := g.Tick(); out != Falling {
			return out
		}
	}
}

// land fuses the active piece, resolves lines and spawns the next piece.
func (g *Game) land() {
	fuse(&g.board, g.active)
	g.emit(core.Event{Kind: core.EventPieceLanded})

	if n := clearLines(&g.board); n > 0 {
		g.score += n
		g.emit(core.Event{Kind: core.EventLinesCleared, Count: n})
	}

	g.spawn()
}

// spawn promotes the preview piece and draws a new one. A spawned piece that
// already overlaps the stack ends the game, so fuse never writes over a
// settled block.
func (g *Game) spawn() {
	g.active = g.next
	g.next = RandomPiece(g.rng)
	g.pieces++

	if Collides(&g.board, g.active, 0, 0) {
		g.endGame()
	}
}

func (g *Game) endGame() {
	if g.status == StatusGameOver {
		return
	}
	g.status = StatusGameOver
	g.emit(core.Event{Kind: core.EventGameOver, Score: g.score})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Events returns and clears the events produced since the last call.
func (g *Game) Events() []core.Event {
	events := g.events
	g.events = nil
	return events
}

// Apply runs a single player command. Quit, Pause and Restart belong to the
// platform and are ignored here.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		g.MoveLeft()
	case core.ActionMoveRight:
		g.MoveRight()
	case core.ActionRotate:
		g.Rotate()
	case core.ActionHardDrop:
		g.HardDrop()
	}
}

// Step applies the commands in the frame in a fixed order (left, right,
// rotate, drop) and returns the resulting state along with any events the
// commands or earlier ticks produced.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{
		core.ActionMoveLeft,
		core.ActionMoveRight,
		core.ActionRotate,
		core.ActionHardDrop,
	} {
		if in.Has(a) {
			g.Apply(a)
		}
	}
	return core.StepResult{State: g.State(), Events: g.Events()}
}
