package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keybinding for the help overlay
type HelpBinding struct {
	Key         string
	Description string
}

// HelpBindingFromKey converts a key.Binding to a HelpBinding.
func HelpBindingFromKey(k key.Binding) HelpBinding {
	h := k.Help()
	return HelpBinding{Key: h.Key, Description: h.Desc}
}

// HelpOverlay renders a help panel from CommonKeys plus any extra bindings.
type HelpOverlay struct {
	Visible bool
}

// Toggle flips the overlay visibility.
func (h *HelpOverlay) Toggle() {
	h.Visible = !h.Visible
}

func commonBindings(keys CommonKeys) []HelpBinding {
	return []HelpBinding{
		HelpBindingFromKey(keys.Quit),
		HelpBindingFromKey(keys.Help),
		HelpBindingFromKey(keys.Back),
	}
}

// Render produces the help overlay string. extras are listed before the
// common bindings. width is the available terminal width; zero means unknown.
func (h HelpOverlay) Render(keys CommonKeys, extras []HelpBinding, width int) string {
	if !h.Visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	writeBindings(&b, extras)
	writeBindings(&b, commonBindings(keys))

	overlay := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	if width > 8 {
		overlay = overlay.Width(min(50, width-4))
	}
	return overlay.Render(strings.TrimRight(b.String(), "\n"))
}

// ShortHelp renders bindings as a single footer line.
func ShortHelp(bindings []HelpBinding) string {
	parts := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		parts = append(parts, HelpKeyStyle.Render(bind.Key)+" "+HelpDescStyle.Render(bind.Description))
	}
	return strings.Join(parts, HelpDescStyle.Render(" • "))
}

func writeBindings(b *strings.Builder, bindings []HelpBinding) {
	for _, bind := range bindings {
		b.WriteString(HelpKeyStyle.Render(bind.Key))
		b.WriteString("  ")
		b.WriteString(HelpDescStyle.Render(bind.Description))
		b.WriteString("\n")
	}
}
