package tag

import "fmt"

// ReadError is returned when a tag container cannot be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read tags from %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is returned when a tag container cannot be serialized or
// written back to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write tags to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
