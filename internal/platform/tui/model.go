package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.TetrisConfig
	Player  string

	// Clock drives the gravity timer. Nil means the system clock.
	Clock core.Clock

	// OnGameOver is called once per finished game with the final score.
	OnGameOver func(score int)
}

// Model is the Bubble Tea model for a Tetris session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	runtime    core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	timer      *core.GravityTimer
	curve      *config.GravityCurve
	onGameOver func(score int)
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the current game's score has been recorded
}

// NewModel creates a model around game. The game is reset from opts.Runtime;
// a zero seed is replaced by one from the clock.
func NewModel(game *tetris.Game, store *storage.Store, opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.FrameRate <= 0 {
		rt.FrameRate = opts.Config.FrameRate
	}
	rt.Gravity = opts.Config.Interval()

	game.Reset(rt)

	return Model{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, screenHeight(rt.ScreenH)),
		store:      store,
		runtime:    rt,
		player:     opts.Player,
		keys:       NewKeyMap(opts.Config.Keys),
		help:       help.New(),
		timer:      core.NewGravityTimer(opts.Clock, rt.Gravity),
		curve:      config.NewGravityCurve(opts.Config.Gravity),
		onGameOver: opts.OnGameOver,
	}
}

// screenHeight leaves the bottom line for the help bar.
func screenHeight(h int) int {
	if h > tetris.MinScreenH {
		return h - 1
	}
	return h
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.timer.Reset()
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey applies one command immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.game.GameOver() {
			m.paused = !m.paused
			m.timer.SetPaused(m.paused)
		}
		return m, nil

	case core.ActionRestart:
		if m.game.GameOver() {
			m.restart()
		}
		return m, nil
	}

	if m.paused || m.game.GameOver() {
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	m.handleEvents(result.Events)
	return m, nil
}

// handleFrame runs a gravity tick when the timer is due.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.paused && !m.game.GameOver() && m.timer.Due() {
		m.game.Tick()
		m.handleEvents(m.game.Events())
	}
	return m, frameCmd(m.runtime.FrameRate)
}

// handleEvents reacts to what the engine reported since the last command.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLinesCleared:
			if m.curve.IsEnabled() {
				m.timer.SetInterval(m.curve.Interval(m.game.Score()))
			}
		case core.EventGameOver:
			m.recordScore(e.Score)
		}
	}
}

// recordScore saves a finished game once.
func (m *Model) recordScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store != nil {
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveScore(m.player, score)
	}
	if m.onGameOver != nil {
		m.onGameOver(score)
	}
}

// restart begins a new game with a fresh seed.
func (m *Model) restart() {
	m.runtime.Seed = time.Now().UnixNano()
	m.game.Reset(m.runtime)
	m.timer.SetInterval(m.runtime.Gravity)
	m.timer.Reset()
	m.paused = false
	m.scoreSaved = false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		area := tetris.BoardArea()
		label := " PAUSED "
		x := core.Clamp(area.X+(area.W-len(label))/2, 0, m.screen.Width()-len(label))
		m.screen.DrawColoredText(x, area.Y+area.H/2, label, core.ColorYellow)
	}

	view := RenderScreen(m.screen)
	if m.runtime.ScreenH > tetris.MinScreenH {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Score returns the current game's score.
func (m Model) Score() int {
	return m.game.Score()
}

// Paused reports whether gravity is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// State returns the engine state with the session's pause flag.
func (m Model) State() core.GameState {
	s := m.game.State()
	s.Paused = m.paused
	return s
}

// Result is what a finished session reports to the caller.
type Result struct {
	Score    int
	GameOver bool
}

// Run plays a session on the local terminal until the player quits.
func Run(game *tetris.Game, store *storage.Store, opts Options) (Result, error) {
	p := tea.NewProgram(
		NewModel(game, store, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if m, ok := final.(Model); ok {
		s := m.State()
		return Result{Score: s.Score, GameOver: s.GameOver}, nil
	}
	return Result{Score: game.Score(), GameOver: game.GameOver()}, nil
}
