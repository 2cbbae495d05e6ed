package view

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(14).Faint(true)
	valueStyle = lipgloss.NewStyle()
	noteStyle  = lipgloss.NewStyle().Italic(true)
)
