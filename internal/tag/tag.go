package tag

// PictureFrontCover is the ID3v2 picture-type classification for front
// cover art. It is the only classification this tool ever writes.
const PictureFrontCover byte = 0x03

// Frame is a single text frame: a short stable frame ID (for example
// "TIT2") and its textual content.
type Frame struct {
	ID   string
	Text string
}

// Picture is a single attached picture frame.
type Picture struct {
	MIME        string
	Type        byte
	Description string
	Data        []byte
}

// Set is an ordered collection of text frames and attached pictures read
// from, or destined for, one audio file's tag container.
//
// Frame IDs are not required to be unique; duplicate handling is left to
// the mapping layer (see the sidecar package, which applies last-wins).
type Set struct {
	Frames   []Frame
	Pictures []Picture
}

// AddText appends a text frame to the set.
func (s *Set) AddText(id, text string) {
	s.Frames = append(s.Frames, Frame{ID: id, Text: text})
}

// AddPicture appends a picture frame to the set.
func (s *Set) AddPicture(p Picture) {
	s.Pictures = append(s.Pictures, p)
}

// Codec reads and writes tag containers on disk. It is an interface so the
// mapping and traversal logic can be tested against an in-memory fake
// instead of real audio files.
type Codec interface {
	// Read parses the tag container embedded in the file at path.
	Read(path string) (*Set, error)

	// Write replaces the file's tag container with the given set. The
	// previous tags are not preserved.
	Write(path string, set *Set) error
}
