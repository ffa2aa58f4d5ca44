package tui

import (
	"github.com/charmbracelet/bubbles/key"

	shared "github.com/mistakeknot/hellofetch/pkg/tui"
)

type keyMap struct {
	shared.CommonKeys
	Fetch key.Binding
}

var keys = keyMap{
	CommonKeys: shared.NewCommonKeys(),
	Fetch: key.NewBinding(
		key.WithKeys("enter", "f"),
		key.WithHelp("enter/f", "fetch data"),
	),
}

func (k keyMap) bindings() []shared.HelpBinding {
	return []shared.HelpBinding{
		shared.HelpBindingFromKey(k.Fetch),
		shared.HelpBindingFromKey(k.Help),
		shared.HelpBindingFromKey(k.Quit),
	}
}
