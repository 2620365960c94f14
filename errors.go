package stickpad

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoteNotFound indicates the requested note does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidColor indicates a color value is not a #rrggbb string.
	ErrInvalidColor = errors.New("invalid color")
)
