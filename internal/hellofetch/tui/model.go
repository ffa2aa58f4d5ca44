// Package tui is the bubbletea front end: it renders a fetch.Store and turns
// the trigger key into a fetch cycle.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	shared "github.com/mistakeknot/hellofetch/pkg/tui"
)

type orchestrator interface {
	Start()
	Resolve(ctx context.Context) fetch.Action
}

// Messages
type fetchedMsg struct {
	action fetch.Action
}

// StateChangedMsg tells the model the store changed outside its own update
// loop. The state is rendered from the store, so the message only forces a
// redraw.
type StateChangedMsg struct {
	State fetch.State
}

// Model renders the store's state. It never mutates State itself; every
// change goes through the store.
type Model struct {
	store fetch.Store
	orch  orchestrator
	ctx   context.Context
	title string
	help  shared.HelpOverlay

	width    int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithTitle overrides the heading.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// WithContext sets the context handed to every fetch.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates a Model over store, triggering fetches through orch.
func New(store fetch.Store, orch orchestrator, opts ...Option) Model {
	m := Model{
		store: store,
		orch:  orch,
		ctx:   context.Background(),
		title: DefaultTitle,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.help.Visible && key.Matches(msg, keys.Back) {
			m.help.Visible = false
			return m, nil
		}
		if key.Matches(msg, keys.Fetch) {
			cmd := m.trigger()
			return m, cmd
		}
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
		}
		return m, shared.HandleCommon(msg, keys.CommonKeys)

	case shared.ToggleHelpMsg:
		m.help.Toggle()
		return m, nil

	case fetchedMsg:
		m.store.Dispatch(msg.action)
		return m, nil

	case StateChangedMsg:
		return m, nil
	}

	return m, nil
}

// trigger dispatches RequestStarted immediately and hands the network step
// to bubbletea as a command.
func (m Model) trigger() tea.Cmd {
	m.orch.Start()
	ctx := m.ctx
	orch := m.orch
	return func() tea.Msg {
		return fetchedMsg{action: orch.Resolve(ctx)}
	}
}

// View renders the store's current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := Render(m.title, m.store.State())
	parts := []string{body, "", shared.ShortHelp(keys.bindings())}
	if overlay := m.help.Render(keys.CommonKeys, []shared.HelpBinding{shared.HelpBindingFromKey(keys.Fetch)}, m.width); overlay != "" {
		parts = append(parts, "", overlay)
	}
	return shared.ContentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Watch forwards store changes to send until the returned function is
// called. send runs on its own goroutine so a dispatch made from inside
// Update never blocks on the program's message channel.
func Watch(store fetch.Store, send func(tea.Msg)) func() {
	return store.Subscribe(func(s fetch.State) {
		go send(StateChangedMsg{State: s})
	})
}
