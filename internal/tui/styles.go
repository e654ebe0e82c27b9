package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles. The palette leans on the brand colours of the
// web portal: olive green for headings, terracotta for errors.
var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("64"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("64")).Padding(1, 2)
)
