// Package cli wires the id3json command surface: extract, apply,
// batch-extract, probe and art.
package cli
