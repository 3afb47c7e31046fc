package sidecar

import "fmt"

// ParseError is returned when sidecar text is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed sidecar JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidDocumentError is returned when a parsed sidecar's top level is not
// an object.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return "invalid sidecar document: " + e.Reason
}
