package art

import (
	"github.com/go-flac/flacpicture/v2"
	"github.com/go-flac/go-flac/v2"
)

// FLACCoverHandler manages front-cover pictures in FLAC metadata blocks.
type FLACCoverHandler struct{}

func (FLACCoverHandler) HasCover(path string) bool {
	f, err := flac.ParseFile(path)
	if err != nil {
		return false
	}
	defer f.Close()

	for _, mdb := range f.Meta {
		if mdb.Type == flac.Picture {
			return true
		}
	}
	return false
}

// EmbedCover appends a front-cover picture block holding the given bytes.
func (FLACCoverHandler) EmbedCover(path string, cover []byte) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mbp, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front cover", cover, "image/jpeg")
	if err != nil {
		return err
	}

	mdb := mbp.Marshal()
	f.Meta = append(f.Meta, &mdb)

	return f.Save(path)
}
