package courbe

import "charm.land/lipgloss/v2"

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)
