// Package tui is the terminal variant of the timer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/feedback"
	"pomodoro/internal/session"
	"pomodoro/internal/ui/view"
)

const progressWidth = 36

// Model is the bubbletea model for the terminal timer.
type Model struct {
	controller *session.Controller
	events     <-chan timer.Event
	keys       KeyMap
	styles     Styles
	help       help.Model
	progress   progress.Model
	state      model.State
	message    string
	closed     bool
}

// New creates a model bound to controller.
func New(controller *session.Controller) *Model {
	bar := progress.New(progress.WithoutPercentage(), progress.WithWidth(progressWidth))
	return &Model{
		controller: controller,
		events:     controller.Timer().Subscribe(16),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		progress:   bar,
		state:      controller.State(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(controller *session.Controller) error {
	_, err := tea.NewProgram(New(controller), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Init starts listening for timer events.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return msgTimerClosed{}
		}
		return msgTimerEvent{Event: event}
	}
}

// Update handles input and timer events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case msgTimerEvent:
		m.state = m.controller.State()
		if msg.Event.Type == timer.EventCompleted && msg.Event.Completion != nil {
			m.message = feedback.Message(msg.Event.Completion.Ended)
		}
		if msg.Event.Type == timer.EventStarted {
			m.message = ""
		}
		return m, m.waitForEvent()
	case msgTimerClosed:
		m.closed = true
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Quick15):
		_ = m.controller.SetQuickTime(15)
	case key.Matches(msg, m.keys.Quick25):
		_ = m.controller.SetQuickTime(25)
	case key.Matches(msg, m.keys.Quick45):
		_ = m.controller.SetQuickTime(45)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil
	}
	m.state = m.controller.State()
	return m, nil
}

// View renders the timer.
func (m *Model) View() string {
	current := view.FromState(m.state)
	color := sessionColor(current.IsWork)

	m.progress.FullColor = string(color)
	status := "paused"
	if current.IsRunning {
		status = "running"
	}

	lines := []string{
		m.styles.Label.Foreground(color).Render(current.Label),
		m.styles.Time.Foreground(color).Render(current.Time),
		m.progress.ViewAs(current.Progress),
		"",
		m.styles.Status.Render(status),
		m.styles.Completed.Render(current.Completed),
	}
	if m.message != "" {
		lines = append(lines, "", m.styles.Message.Render(m.message))
	}

	body := m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return strings.Join([]string{body, m.help.View(m.keys)}, "\n")
}
