package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme or an unknown theme is requested
const DefaultTheme = "charm"

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	Primary    lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor // Background for status messages

	Table     TableStyles
	Header    lipgloss.Style
	Summary   lipgloss.Style
	StatusBar lipgloss.Style
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// palette holds the colors a theme is derived from
type palette struct {
	primary    lipgloss.AdaptiveColor
	muted      lipgloss.AdaptiveColor
	errorColor lipgloss.AdaptiveColor
	success    lipgloss.AdaptiveColor
	warning    lipgloss.AdaptiveColor
	border     lipgloss.AdaptiveColor
	background lipgloss.AdaptiveColor

	selectedFg lipgloss.Color
	selectedBg lipgloss.Color
}

var palettes = map[string]palette{
	"charm": {
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		errorColor: lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		background: lipgloss.AdaptiveColor{Light: "254", Dark: "235"},
		selectedFg: lipgloss.Color("229"),
		selectedBg: lipgloss.Color("57"),
	},
	"dracula": {
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		errorColor: lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},
		border:     lipgloss.AdaptiveColor{Light: "61", Dark: "61"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"},
		selectedFg: lipgloss.Color("#282a36"),
		selectedBg: lipgloss.Color("#bd93f9"),
	},
	"nord": {
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		errorColor: lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},
		border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		background: lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"},
		selectedFg: lipgloss.Color("#2e3440"),
		selectedBg: lipgloss.Color("#88c0d0"),
	},
	"gruvbox": {
		primary:    lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"},
		muted:      lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		errorColor: lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"},
		success:    lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		warning:    lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"},
		border:     lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"},
		background: lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"},
		selectedFg: lipgloss.Color("#282828"),
		selectedBg: lipgloss.Color("#fe8019"),
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Muted:      p.muted,
		Error:      p.errorColor,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Background: p.background,
	}

	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(p.selectedFg).
		Background(p.selectedBg)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Summary = lipgloss.NewStyle().
		Foreground(t.Muted).
		PaddingLeft(1)

	t.StatusBar = lipgloss.NewStyle().
		Padding(0, 1)

	return t
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		return newTheme(DefaultTheme, palettes[DefaultTheme])
	}
	return newTheme(name, p)
}

// AvailableThemes returns the sorted theme names
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
