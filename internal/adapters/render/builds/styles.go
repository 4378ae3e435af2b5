package builds

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	count     lipgloss.Style
	path      lipgloss.Style
	separator lipgloss.Style
	group     lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	footer    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		path:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		separator: lipgloss.NewStyle().Faint(true),
		group:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		footer:    lipgloss.NewStyle().Faint(true),
	}
}
