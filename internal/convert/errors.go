package convert

import "fmt"

// IOError is a filesystem read/create/write failure for a sidecar or art
// file. Op is a short verb phrase ("write sidecar", "read album art").
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// MissingArtError is returned when an explicitly supplied art path does not
// exist at apply time.
type MissingArtError struct {
	Path string
}

func (e *MissingArtError) Error() string {
	return fmt.Sprintf("album art %s not found", e.Path)
}
