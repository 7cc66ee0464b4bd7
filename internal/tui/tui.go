package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunDashboard starts the read-only overview TUI
func RunDashboard(data DashboardData) error {
	p := tea.NewProgram(NewDashboardModel(data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
