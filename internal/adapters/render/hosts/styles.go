package hosts

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	rooted     lipgloss.Style
	locked     lipgloss.Style
	entry      lipgloss.Style
	detail     lipgloss.Style
	win        lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		rooted:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		locked:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		entry:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		win:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
