package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	statusMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("8"))

	inputPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	inputErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	inputBoxStyle    = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("4")).
				Padding(0, 1)
)
