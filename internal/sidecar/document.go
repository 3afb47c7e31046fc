package sidecar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

const indent = "    " // 4-space indent, fixed sidecar convention

// Document is a string-keyed mapping that preserves key insertion order,
// mirroring the frame order of the tag set it was built from.
//
// Values are strings for text frames, *Document for nested aggregate
// entries, or json.RawMessage for foreign values carried through from a
// parsed sidecar. Setting an existing key replaces its value but keeps the
// key's original position.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key, last-wins on value and first-wins on order.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the document's keys in insertion order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Len returns the number of keys in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Parse decodes data as a JSON object while preserving key order. The top
// level must be an object: anything else yields an InvalidDocumentError.
// Malformed JSON yields a ParseError. String values are stored as strings;
// every other value is kept as raw JSON.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &InvalidDocumentError{Reason: fmt.Sprintf("top-level value is %v, want an object", tok)}
	}

	doc := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &ParseError{Err: fmt.Errorf("unexpected object key %v", keyTok)}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Err: err}
		}

		// Only values that are JSON strings become string entries;
		// json.Unmarshal alone would also accept null as a no-op.
		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '"' {
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil {
				return nil, &ParseError{Err: err}
			}
			doc.Set(key, s)
		} else {
			doc.Set(key, raw)
		}
	}

	// Closing brace, then nothing but EOF.
	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Err: err}
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: fmt.Errorf("trailing data after document: %v", tok)}
	}

	return doc, nil
}

// Encode renders the document as pretty-printed UTF-8 JSON with 4-space
// indentation, keys in insertion order, and a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) encode(buf *bytes.Buffer, prefix string) error {
	if len(d.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	inner := prefix + indent
	for i, key := range d.keys {
		kb, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.Write(kb)
		buf.WriteString(": ")

		switch v := d.values[key].(type) {
		case *Document:
			if err := v.encode(buf, inner); err != nil {
				return err
			}
		case json.RawMessage:
			// Re-indent raw values to the current depth.
			var tmp bytes.Buffer
			if err := json.Indent(&tmp, v, inner, indent); err != nil {
				return err
			}
			buf.Write(tmp.Bytes())
		default:
			vb, err := json.Marshal(v)
			if err != nil {
				return err
			}
			buf.Write(vb)
		}

		if i < len(d.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(prefix)
	buf.WriteByte('}')
	return nil
}
