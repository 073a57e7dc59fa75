package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Margin(0, 1, 0, 0).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27"))

	tabStyle = lipgloss.NewStyle().
			Italic(true).
			Padding(0, 2).
			Margin(0, 1, 0, 0).
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("237"))

	tabBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("244"))

	pillStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("226"))

	bodyStyle = lipgloss.NewStyle().
			Padding(1, 2)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
