// Package sidecar implements the mapping between a tag set and its JSON
// sidecar document.
//
// A sidecar is a flat JSON object whose keys are frame IDs and whose values
// are the frames' text. Extraction maps tag.Set -> Document, application
// maps Document -> tag.Set:
//
//	doc := sidecar.FromTagSet(set)
//	data, _ := doc.Encode() // pretty-printed, 4-space indent, key order kept
//
//	doc, err := sidecar.Parse(data)
//	set := sidecar.ToTagSet(doc)
//
// The round trip FromTagSet(ToTagSet(d)) is the identity on d restricted to
// its string-valued entries. Non-string values survive Parse and Encode
// untouched but never become frames.
package sidecar
