package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	shared "github.com/mistakeknot/hellofetch/pkg/tui"
)

// Text the view must render verbatim.
const (
	DefaultTitle = "Hello World"
	FetchLabel   = "Fetch Data"
	LoadingText  = "Loading..."
)

// Render draws s. The title and the trigger are always present; below them
// exactly one of the loading indicator, the error text or the fetched
// content is shown.
func Render(title string, s fetch.State) string {
	if title == "" {
		title = DefaultTitle
	}
	parts := []string{
		shared.TitleStyle.Render(title),
		"",
		shared.ButtonStyle.Render(FetchLabel),
		"",
	}

	switch s.Phase() {
	case fetch.PhaseLoading:
		parts = append(parts, shared.StatusLoading.Render(LoadingText))
	case fetch.PhaseError:
		parts = append(parts, shared.StatusError.Render(s.Error))
	default:
		if s.Message != "" {
			parts = append(parts, shared.StatusSuccess.Render(s.Message))
		}
		if list := renderItems(s.Items); list != "" {
			parts = append(parts, list)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderItems(items []fetch.Item) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, shared.ItemIDStyle.Render(fmt.Sprintf("%3d", it.ID))+"  "+shared.ItemStyle.Render(it.Name))
	}
	return strings.Join(lines, "\n")
}
