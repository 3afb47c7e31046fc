// Package convert orchestrates tag/sidecar conversion.
//
// Converter handles one file at a time (extract or apply) and aborts on the
// first error. Traverser handles whole directory trees: it tolerates files
// whose tags cannot be read, continues past them, and only aborts when an
// output cannot be written. Both depend on tag.Codec so tests can run
// against an in-memory fake.
package convert
