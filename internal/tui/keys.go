package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	AddEvent   key.Binding
	AddFrame   key.Binding
	Hyperbolas key.Binding
	Worldlines key.Binding
	NextField  key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddEvent: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "add event"),
		),
		AddFrame: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "add frame"),
		),
		Hyperbolas: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hyperbolas"),
		),
		Worldlines: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "worldlines"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
