package abiclient

import "errors"

var (
	// ErrMissingSymbol is returned by Open when a required entry point is
	// not exported by the library.
	ErrMissingSymbol = errors.New("abiclient: missing symbol")

	// ErrUnsupported is returned when the library lacks an optional entry
	// point, or the platform cannot load shared libraries.
	ErrUnsupported = errors.New("abiclient: unsupported")

	// ErrFailed is returned when an entry point reports failure through its
	// sentinel value.
	ErrFailed = errors.New("abiclient: operation failed")

	// ErrClosed is returned by calls on a closed Client.
	ErrClosed = errors.New("abiclient: client closed")
)

// LibraryError carries the message a *Result entry point reported.
type LibraryError struct {
	Op      string
	Message string
}

func (e *LibraryError) Error() string {
	return "abiclient: " + e.Op + ": " + e.Message
}

func (e *LibraryError) Unwrap() error {
	return ErrFailed
}
