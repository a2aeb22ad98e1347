package preview

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("preview: aborted")
	// ErrUnknownControl is returned when a screen carries a control the
	// preview walker does not handle.
	ErrUnknownControl = errors.New("preview: unknown control kind")
)
