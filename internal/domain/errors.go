package domain

import "errors"

// Domain errors represent caller misuse, as opposed to infrastructure
// failures. Callers match them with errors.Is.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates a file type the editor does not import.
	ErrUnsupportedType = errors.New("unsupported type")
)
