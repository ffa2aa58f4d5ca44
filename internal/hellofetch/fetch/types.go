// Package fetch holds the fetch lifecycle: the State a view renders, the
// actions that move it, the reducer, an in-memory store and the
// orchestrator that runs one fetch cycle against a Client.
package fetch

// Item is a single row of fetched content.
type Item struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Payload is the decoded body of a successful fetch.
type Payload struct {
	Message string `json:"message"`
	Items   []Item `json:"items,omitempty"`
}

// State is everything the view needs to render one frame.
// Loading and a non-empty Error are never set together.
type State struct {
	Items   []Item `json:"items"`
	Message string `json:"message,omitempty"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// InitialState is the state a new store starts from.
func InitialState() State {
	return State{Items: []Item{}}
}

// Phase names which of the mutually exclusive render states applies.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Phase reports the render state. Loading wins over a stale error.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.HasError():
		return PhaseError
	default:
		return PhaseIdle
	}
}

// HasError reports whether the last completed attempt failed.
func (s State) HasError() bool {
	return s.Error != ""
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
