package document

import "go.trai.ch/zerr"

var (
	// ErrMalformedDocument is returned when a document is not valid JSON/YAML or misses a required field.
	ErrMalformedDocument = zerr.New("malformed mapping document")

	// ErrIO is returned when a document file cannot be read or written.
	ErrIO = zerr.New("mapping document i/o failed")
)
