package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Content container with padding
	ContentStyle = lipgloss.NewStyle().
			Padding(1, 3)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Button renders an always-enabled trigger control.
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Background(ColorPrimary).
			Foreground(ColorBgDark).
			Bold(true)

	// Status styles
	StatusLoading = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StatusError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	ItemIDStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Help styles
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
