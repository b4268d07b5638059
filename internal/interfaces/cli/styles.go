package cli

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF5F87"
	colorSecondary = "#626262"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSecondary))
)
