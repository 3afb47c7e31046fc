package art

import "github.com/bogem/id3v2"

// ID3CoverHandler manages front-cover pictures in MP3 ID3v2 tags.
type ID3CoverHandler struct{}

func (ID3CoverHandler) HasCover(path string) bool {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false
	}
	defer t.Close()

	return len(t.GetFrames(t.CommonID("Attached picture"))) != 0
}

// EmbedCover replaces any existing attached pictures with a single
// front-cover APIC frame holding the given bytes.
func (ID3CoverHandler) EmbedCover(path string, cover []byte) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer t.Close()

	t.DeleteFrames(t.CommonID("Attached picture"))
	t.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Front cover",
		Picture:     cover,
	})
	return t.Save()
}
