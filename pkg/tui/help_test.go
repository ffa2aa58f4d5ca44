package tui

import (
	"strings"
	"testing"
)

func TestHelpOverlayHiddenByDefault(t *testing.T) {
	var h HelpOverlay
	if out := h.Render(NewCommonKeys(), nil, 80); out != "" {
		t.Fatalf("expected hidden overlay, got %q", out)
	}
}

func TestHelpOverlayListsExtrasAndCommon(t *testing.T) {
	h := HelpOverlay{}
	h.Toggle()
	out := h.Render(NewCommonKeys(), []HelpBinding{{Key: "enter", Description: "fetch data"}}, 0)
	for _, want := range []string{"Keyboard Shortcuts", "fetch data", "quit", "help"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in overlay:\n%s", want, out)
		}
	}
}
