package keyboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Keys holds the keyboard shortcuts of kdash
type Keys struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Row activation
	Invoke key.Binding

	// Global
	Refresh key.Binding
	Quit    key.Binding
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Invoke: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy cluster IP"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Invoke, k.Refresh, k.Quit}
}

// HelpLine renders bindings as "key: description" joined by bullets.
// Disabled bindings are skipped.
func HelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
