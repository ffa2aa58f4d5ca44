package fetch

import "errors"

// FailedToFetch is the only failure text a user ever sees.
const FailedToFetch = "Failed to fetch data"

// ErrFetchFailed wraps every client failure once it crosses the orchestrator.
var ErrFetchFailed = errors.New("fetch failed")
