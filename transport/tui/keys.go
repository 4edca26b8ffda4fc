package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Quit}
}

func (that keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{that.ShortHelp()}
}
