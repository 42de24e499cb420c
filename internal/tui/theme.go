package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Header     lipgloss.Style
	Task       lipgloss.Style
	PausedTask lipgloss.Style
	Running    lipgloss.Style
	Elapsed    lipgloss.Style
	Focused    lipgloss.Style
	Input      lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	Modal      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Task:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PausedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Running:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Elapsed:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Modal:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 2),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Task:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		PausedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Running:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Elapsed:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Modal:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("141")).Padding(1, 2),
	},
}

// ThemeOrder fixes the cycle order for the theme toggle.
var ThemeOrder = []string{"default", "dracula"}

func themeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
