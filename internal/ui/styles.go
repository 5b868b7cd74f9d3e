package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle  = lipgloss.NewStyle().Bold(true).PaddingTop(1).PaddingBottom(1)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	buttonStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).MarginTop(1)
	summaryStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	scoreStyle   = lipgloss.NewStyle().Bold(true).PaddingBottom(1)

	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Review rows: user picks are highlighted, wrong picks are struck through.
	pickedStyle = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0"))
	wrongStyle  = lipgloss.NewStyle().Background(lipgloss.Color("8")).Strikethrough(true)
)
