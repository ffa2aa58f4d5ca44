// Package tui provides the shared palette, styles and keybindings for
// hellofetch terminal views.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night inspired color palette
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7") // Blue
	ColorSecondary = lipgloss.Color("#bb9af7") // Purple
	ColorSuccess   = lipgloss.Color("#9ece6a") // Green
	ColorWarning   = lipgloss.Color("#e0af68") // Yellow
	ColorError     = lipgloss.Color("#f7768e") // Red
	ColorMuted     = lipgloss.Color("#565f89") // Gray
	ColorBgDark    = lipgloss.Color("#16161e")
	ColorFg        = lipgloss.Color("#c0caf5")
)
