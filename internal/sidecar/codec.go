package sidecar

import "github.com/tagtools/id3json/internal/tag"

// FromTagSet maps every text frame of the set into a document keyed by
// frame ID. Duplicate IDs collapse to the last value seen; the key keeps
// the position of its first occurrence. Frames without textual content
// never reach this layer (the codec drops them on read).
func FromTagSet(set *tag.Set) *Document {
	doc := New()
	for _, f := range set.Frames {
		doc.Set(f.ID, f.Text)
	}
	return doc
}

// ToTagSet builds a fresh tag set from every string-valued entry of the
// document, in document order. Non-string values are silently ignored so a
// sidecar may carry extra structured data that tag round-trips are not
// expected to preserve.
func ToTagSet(doc *Document) *tag.Set {
	set := &tag.Set{}
	for _, key := range doc.Keys() {
		v, ok := doc.Get(key)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			set.AddText(key, s)
		}
	}
	return set
}
