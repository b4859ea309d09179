package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/ui/view"
)

var (
	workColor  = lipgloss.Color(view.Hex(view.WorkColor))
	breakColor = lipgloss.Color(view.Hex(view.BreakColor))
	mutedColor = lipgloss.Color("#636E72")
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Frame     lipgloss.Style
	Label     lipgloss.Style
	Time      lipgloss.Style
	Status    lipgloss.Style
	Completed lipgloss.Style
	Message   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 3),
		Label:     lipgloss.NewStyle().Bold(true),
		Time:      lipgloss.NewStyle().Bold(true).Padding(1, 0),
		Status:    lipgloss.NewStyle().Foreground(mutedColor).Italic(true),
		Completed: lipgloss.NewStyle().Foreground(mutedColor),
		Message:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDCB6E")),
	}
}

func sessionColor(isWork bool) lipgloss.Color {
	if isWork {
		return workColor
	}
	return breakColor
}
