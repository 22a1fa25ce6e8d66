package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrTransientFetch marks provider failures that are worth retrying
	// (timeouts, transport errors, retryable statuses). Anything else from a
	// fetch is permanent and converts straight to a placeholder record.
	ErrTransientFetch = errors.New("transient fetch failure")

	// ErrSinkWrite marks a run that computed records but could not persist
	// them; callers must report it distinctly from "nothing to do".
	ErrSinkWrite = errors.New("sink write failure")
)
