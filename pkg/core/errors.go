package core

import "errors"

// Common errors.
var (
	// ErrNoStore indicates no store file was found, either within the
	// ascension bound of a locate or at a specific directory on load.
	ErrNoStore = errors.New("store file not found")

	// ErrInvalidRequest indicates a reconcile request carrying neither a
	// file path nor a digest. This is a caller bug, never swallowed.
	ErrInvalidRequest = errors.New("request needs a file path or a digest")

	// ErrCancelled indicates the user interrupted an interactive prompt.
	// It aborts the current item only; the store is left unmutated.
	ErrCancelled = errors.New("cancelled")
)
