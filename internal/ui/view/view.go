// Package view derives display values from timer state. It has no UI
// toolkit dependency so every presentation renders the same text.
package view

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/model"
)

var (
	WorkColor  = color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	BreakColor = color.NRGBA{R: 0x27, G: 0xAE, B: 0x60, A: 0xFF}
)

// QuickMinutes are the work durations offered as shortcuts.
var QuickMinutes = []int{15, 25, 45}

// Model is everything a presentation draws.
type Model struct {
	Time      string
	Label     string
	Title     string
	Progress  float64
	Color     color.NRGBA
	ShowStart bool
	ShowPause bool
	Completed string
	IsRunning bool
	IsWork    bool
}

// FromState builds the view model for state.
func FromState(state model.State) Model {
	return Model{
		Time:      FormatTime(state.RemainingSeconds),
		Label:     Label(state.Kind),
		Title:     Title(state),
		Progress:  state.Progress(),
		Color:     Color(state.Kind),
		ShowStart: !state.IsRunning,
		ShowPause: state.IsRunning,
		Completed: CompletedText(state.CompletedWorkSessions),
		IsRunning: state.IsRunning,
		IsWork:    state.IsWorkSession(),
	}
}

// FormatTime renders seconds as mm:ss. Minutes are not capped at 59.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func Label(kind model.SessionKind) string {
	if kind == model.KindBreak {
		return "Break Time"
	}
	return "Work Session"
}

func Color(kind model.SessionKind) color.NRGBA {
	if kind == model.KindBreak {
		return BreakColor
	}
	return WorkColor
}

// Title is the window title shown by the mobile layout.
func Title(state model.State) string {
	kind := "Work"
	if state.Kind == model.KindBreak {
		kind = "Break"
	}
	return fmt.Sprintf("%s - %s", FormatTime(state.RemainingSeconds), kind)
}

// CompletedText is the session counter caption.
func CompletedText(completed int) string {
	return fmt.Sprintf("Completed sessions: %d", completed)
}

// Hex renders c as #RRGGBB.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
