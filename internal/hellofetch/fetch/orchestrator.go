package fetch

import (
	"context"
	"fmt"
	"log/slog"
)

// Client performs the single outbound GET a fetch cycle needs.
type Client interface {
	Get(ctx context.Context) (Payload, error)
}

// Orchestrator runs fetch cycles: it announces the start, waits on the
// client and dispatches the outcome.
type Orchestrator struct {
	dispatcher Dispatcher
	client     Client
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for failure details.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOrchestrator wires d and c together.
func NewOrchestrator(d Dispatcher, c Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		dispatcher: d,
		client:     c,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start dispatches RequestStarted. It never touches the network.
func (o *Orchestrator) Start() {
	o.dispatcher.Dispatch(RequestStarted{})
}

// Resolve performs the GET and returns the action describing its outcome
// without dispatching it. Failure detail is logged, never returned.
func (o *Orchestrator) Resolve(ctx context.Context) Action {
	payload, err := o.client.Get(ctx)
	if err != nil {
		o.logger.Debug("fetch failed", "error", err)
		return RequestFailed{Message: FailedToFetch}
	}
	o.logger.Debug("fetch succeeded", "items", len(payload.Items))
	return RequestSucceeded{Payload: payload}
}

// Trigger starts a cycle and returns as soon as RequestStarted is dispatched.
// The outcome is dispatched from another goroutine when the GET resolves.
func (o *Orchestrator) Trigger(ctx context.Context) {
	o.Start()
	go func() {
		o.dispatcher.Dispatch(o.Resolve(ctx))
	}()
}

// Fetch runs a full cycle and returns once the outcome has been dispatched.
// The returned error only tells the caller the cycle failed; the store
// already holds the user-facing message.
func (o *Orchestrator) Fetch(ctx context.Context) error {
	o.Start()
	a := o.Resolve(ctx)
	o.dispatcher.Dispatch(a)
	if failed, ok := a.(RequestFailed); ok {
		return fmt.Errorf("%w: %s", ErrFetchFailed, failed.Message)
	}
	return nil
}
