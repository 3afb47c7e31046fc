// Package tag models an audio file's tag container as an ordered set of
// text frames and attached pictures, independent of any on-disk format.
//
// The Codec interface is the boundary to the real container format. The
// shipped implementation, ID3Codec, is backed by the id3v2 library:
//
//	set, err := tag.ID3Codec{}.Read("song.mp3")
//	if err != nil {
//	    return err
//	}
//	for _, frame := range set.Frames {
//	    fmt.Printf("%s = %s\n", frame.ID, frame.Text)
//	}
//
// Higher layers (sidecar mapping, batch traversal) depend only on Codec,
// so tests run against an in-memory fake.
package tag
