package tag

import (
	"slices"

	"github.com/bogem/id3v2"
)

// ID3Codec reads and writes ID3v2 tag containers in MP3 files using the
// id3v2 library. Files are read at whatever tag version is present but are
// always written back at version 2.4.
//
// The id3v2 library exposes parsed frames as a map keyed by frame ID, so
// Read emits frames in sorted-ID order to keep output deterministic.
type ID3Codec struct{}

// Read parses the ID3v2 tag of the file at path. Text frames and attached
// pictures are collected; every other frame type is dropped.
func (ID3Codec) Read(path string) (*Set, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer t.Close()

	all := t.AllFrames()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	set := &Set{}
	for _, id := range ids {
		for _, framer := range all[id] {
			switch f := framer.(type) {
			case id3v2.TextFrame:
				set.AddText(id, f.Text)
			case id3v2.PictureFrame:
				set.AddPicture(Picture{
					MIME:        f.MimeType,
					Type:        f.PictureType,
					Description: f.Description,
					Data:        f.Picture,
				})
			}
		}
	}
	return set, nil
}

// Write replaces the ID3v2 tag of the file at path with the given set.
// The file's audio data is untouched; its previous tag, if any, is
// discarded rather than merged.
func (ID3Codec) Write(path string, set *Set) error {
	// Parse is off: the new tag fully replaces the old one.
	t, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer t.Close()

	t.SetVersion(4)
	for _, f := range set.Frames {
		t.AddTextFrame(f.ID, id3v2.EncodingUTF8, f.Text)
	}
	for _, p := range set.Pictures {
		t.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    p.MIME,
			PictureType: p.Type,
			Description: p.Description,
			Picture:     p.Data,
		})
	}

	if err := t.Save(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
