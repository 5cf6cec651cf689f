package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts. It implements help.KeyMap.
type KeyMap struct {
	Back          key.Binding
	Details       key.Binding
	Down          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	Quit          key.Binding
	Refresh       key.Binding
	Select        key.Binding
	Settings      key.Binding
	ToggleTooltip key.Binding
	Up            key.Binding
}

// NewKeyMap creates the default key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "live view"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run item"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		ToggleTooltip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle stats"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Details, k.Settings, k.ToggleTooltip, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Details, k.Settings, k.ToggleTooltip},
		{k.Up, k.Down, k.Select, k.Back},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
