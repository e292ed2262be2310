package store

import "errors"

// Sentinel errors returned by document readers. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrReadDocument is returned when a document file cannot be read
	// (missing, unreadable, a directory, ...).
	ErrReadDocument = errors.New("error reading a json file")

	// ErrDecodeDocument is returned when a document file was read but its
	// contents are not valid JSON for the target type.
	ErrDecodeDocument = errors.New("error decoding json document")
)
