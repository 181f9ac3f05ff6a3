// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the playback keybindings.
type KeyMap struct {
	TogglePause key.Binding
	SpeedUp     key.Binding
	SpeedDown   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TogglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/play"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePause, k.SpeedUp, k.SpeedDown, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePause, k.SpeedUp, k.SpeedDown},
		{k.Help, k.Quit},
	}
}
