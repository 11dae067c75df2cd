package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's key bindings for the help footer. Widget keys
// (arrows, Enter, Space, Escape, type-ahead) are handled by the widget
// itself; these bindings only describe them.
type keyMap struct {
	Toggle   key.Binding
	Navigate key.Binding
	Select   key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle menu"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Navigate, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Navigate, k.Select},
		{k.Dismiss, k.Help, k.Quit},
	}
}
