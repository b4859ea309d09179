package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Quick15 key.Binding
	Quick25 key.Binding
	Quick45 key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quick15: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "15 min"),
		),
		Quick25: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "25 min"),
		),
		Quick45: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "45 min"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Quick15, k.Quick25, k.Quick45},
		{k.Help, k.Quit},
	}
}
