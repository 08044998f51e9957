// Package tui runs the game in a terminal with Bubble Tea. It maps keys to
// commands, drives gravity from a frame loop and draws the game's screen
// buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to poll the gravity timer.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
