package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	gridStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	robotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	landmarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)
