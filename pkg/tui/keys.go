package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CommonKeys defines the keybindings every hellofetch view understands.
type CommonKeys struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding
}

// NewCommonKeys returns CommonKeys with the canonical bindings.
func NewCommonKeys() CommonKeys {
	return CommonKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ToggleHelpMsg is sent when the user presses the help key.
type ToggleHelpMsg struct{}

// HandleCommon processes a key message against the common keybindings.
// It returns a tea.Cmd if the key was handled (tea.Quit for quit,
// a ToggleHelpMsg command for help), or nil if unhandled.
func HandleCommon(msg tea.KeyMsg, keys CommonKeys) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		return func() tea.Msg { return ToggleHelpMsg{} }
	}
	return nil
}
