package tui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)
