// Package theme centralizes the lipgloss styles used by the UI panes.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme struct {
	Name string

	PaneBorder        lipgloss.Style
	PaneBorderFocused lipgloss.Style
	PaneTitle         lipgloss.Style

	MethodBadge   lipgloss.Style
	URLText       lipgloss.Style
	StatusBar     lipgloss.Style
	StatusBarKey  lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	ResponseStatusOK  lipgloss.Style
	ResponseStatusErr lipgloss.Style
	ResponseMeta      lipgloss.Style

	HistoryTime lipgloss.Style

	EditorLineNumber lipgloss.Style
	EditorCursorLine lipgloss.Style
	EditorSelection  lipgloss.Style
	EditorMarked     lipgloss.Style
}

// Default picks the dark or light palette from the terminal background.
func Default() Theme {
	if termenv.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

func Dark() Theme {
	border := lipgloss.Color("240")
	accent := lipgloss.Color("105")
	return Theme{
		Name: "dark",

		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
		PaneBorderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		PaneTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),

		MethodBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		URLText:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		StatusBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusBarKey:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),

		ResponseStatusOK:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		ResponseStatusErr: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ResponseMeta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		HistoryTime: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),

		EditorLineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		EditorCursorLine: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		EditorSelection:  lipgloss.NewStyle().Background(lipgloss.Color("#4C3F72")),
		EditorMarked:     lipgloss.NewStyle().Underline(true),
	}
}

func Light() Theme {
	t := Dark()
	t.Name = "light"
	t.PaneBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250"))
	t.URLText = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	t.EditorCursorLine = lipgloss.NewStyle().Background(lipgloss.Color("254"))
	t.EditorSelection = lipgloss.NewStyle().Background(lipgloss.Color("183"))
	t.EditorLineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	return t
}

// ByName resolves a settings value to a theme, defaulting by terminal
// background for unknown names.
func ByName(name string) Theme {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	default:
		return Default()
	}
}
