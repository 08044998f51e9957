package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the bindings for every command. It implements help.KeyMap.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Rotate:  binding(cfg.Rotate, "rotate"),
		Drop:    binding(cfg.Drop, "drop"),
		Pause:   binding(cfg.Pause, "pause"),
		Restart: binding(cfg.Restart, "restart"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

// binding normalizes key names ("space" is reported as " ") and labels the
// binding for the help line.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, n := range names {
		if n == "space" {
			n = " "
		}
		keys = append(keys, n)
		if n == " " {
			labels = append(labels, "space")
		} else {
			labels = append(labels, n)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Pause, k.Restart, k.Quit},
	}
}

// Action translates a key press. Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Drop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
