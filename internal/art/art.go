package art

import "github.com/tagtools/id3json/internal/tag"

// FirstPicture returns the raw bytes of the first attached picture in the
// set, or false if the set carries none. The bytes are returned verbatim,
// whatever MIME type the container recorded. Never errors.
//
// The tag spec allows multiple pictures but in practice there's only one.
func FirstPicture(set *tag.Set) ([]byte, bool) {
	if len(set.Pictures) == 0 {
		return nil, false
	}
	return set.Pictures[0].Data, true
}

// EmbedFrontCover appends data to the set as a single front-cover picture
// with MIME type image/jpeg and an empty description. It is additive:
// pictures already in the set are left in place.
func EmbedFrontCover(set *tag.Set, data []byte) {
	set.AddPicture(tag.Picture{
		MIME: "image/jpeg",
		Type: tag.PictureFrontCover,
		Data: data,
	})
}
