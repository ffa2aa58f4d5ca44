package fetch

// Reduce returns the state that follows s after a. It has no side effects and
// never shares the Items backing array with its input.
func Reduce(s State, a Action) State {
	next := State{
		Items:   cloneItems(s.Items),
		Message: s.Message,
		Loading: s.Loading,
		Error:   s.Error,
	}

	switch a := a.(type) {
	case RequestStarted:
		next.Loading = true
		next.Error = ""
	case RequestSucceeded:
		next.Loading = false
		next.Error = ""
		next.Message = a.Payload.Message
		next.Items = cloneItems(a.Payload.Items)
	case RequestFailed:
		next.Loading = false
		next.Error = a.Message
		if next.Error == "" {
			next.Error = FailedToFetch
		}
	}

	return next
}
