package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tagtools/id3json/internal/art"
	"github.com/tagtools/id3json/internal/sidecar"
	"github.com/tagtools/id3json/internal/tag"
)

// Converter performs single-file conversions between an audio file's tag
// container and its JSON sidecar.
type Converter struct {
	Codec tag.Codec

	// ResizeArt, when > 0, downscales art to fit this many pixels on its
	// longest edge before embedding (apply only). Implies JPEG re-encoding.
	ResizeArt int

	// ConvertArt re-encodes art as JPEG before embedding (apply only).
	ConvertArt bool
}

// NewConverter returns a Converter backed by the given codec.
func NewConverter(codec tag.Codec) *Converter {
	return &Converter{Codec: codec}
}

// SidecarPath returns the default sidecar path for an audio file: the
// original extension replaced by .json.
func SidecarPath(audioPath string) string {
	return replaceExt(audioPath, ".json")
}

// ArtPath returns the default art path for single-file mode: the original
// extension replaced by .jpg. Batch mode derives .jpeg instead; the
// asymmetry is kept on purpose, see DESIGN.md.
func ArtPath(audioPath string) string {
	return replaceExt(audioPath, ".jpg")
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Extract reads the audio file's tags and writes them out as a JSON
// sidecar, plus the first embedded picture as a raw art file when present.
// Empty sidecarPath and artPath are derived from audioPath (.json / .jpg).
// Both outputs overwrite unconditionally. The first failing step aborts;
// outputs already written are not rolled back.
func (c *Converter) Extract(audioPath, sidecarPath, artPath string) error {
	if sidecarPath == "" {
		sidecarPath = SidecarPath(audioPath)
	}

	set, err := c.Codec.Read(audioPath)
	if err != nil {
		return err
	}

	doc := sidecar.FromTagSet(set)
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode sidecar: %w", err)
	}
	if err := os.WriteFile(sidecarPath, data, 0644); err != nil {
		return &IOError{Op: "write sidecar", Path: sidecarPath, Err: err}
	}

	if pic, ok := art.FirstPicture(set); ok {
		if artPath == "" {
			artPath = ArtPath(audioPath)
		}
		if err := os.WriteFile(artPath, pic, 0644); err != nil {
			return &IOError{Op: "write album art", Path: artPath, Err: err}
		}
	}

	return nil
}

// Apply builds a fresh tag set from the sidecar and writes it onto the
// audio file, replacing whatever tags the file carried before. When
// artPath is given the file must exist; its bytes are embedded as a front
// cover. When artPath is empty no art step occurs and the written tag set
// carries no picture.
func (c *Converter) Apply(audioPath, sidecarPath, artPath string) error {
	if sidecarPath == "" {
		sidecarPath = SidecarPath(audioPath)
	}

	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return &IOError{Op: "read sidecar", Path: sidecarPath, Err: err}
	}

	doc, err := sidecar.Parse(data)
	if err != nil {
		return err
	}

	set := sidecar.ToTagSet(doc)

	if artPath != "" {
		cover, err := os.ReadFile(artPath)
		if err != nil {
			if os.IsNotExist(err) {
				return &MissingArtError{Path: artPath}
			}
			return &IOError{Op: "read album art", Path: artPath, Err: err}
		}
		if c.ResizeArt > 0 {
			if cover, err = art.Resize(cover, c.ResizeArt); err != nil {
				return fmt.Errorf("resize album art: %w", err)
			}
		} else if c.ConvertArt {
			if cover, err = art.ConvertToJPEG(cover); err != nil {
				return fmt.Errorf("convert album art: %w", err)
			}
		}
		art.EmbedFrontCover(set, cover)
	}

	return c.Codec.Write(audioPath, set)
}
