// Package probe reads format-agnostic metadata summaries from audio files.
// Unlike the tag package it is read-only and not limited to MP3: anything
// the dhowden/tag library understands (MP3, FLAC, M4A, OGG) works.
package probe

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// PictureInfo describes an embedded picture without carrying its bytes.
type PictureInfo struct {
	MIME        string
	Type        string
	Description string
	Size        int
}

// Summary is the common metadata of one audio file.
type Summary struct {
	Format      string
	FileType    string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Year        int
	Track       int
	TrackTotal  int
	Picture     *PictureInfo
}

// Read opens an audio file and reads whatever common metadata its container
// carries.
func Read(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read metadata from %s: %w", path, err)
	}

	s := &Summary{
		Format:      string(m.Format()),
		FileType:    string(m.FileType()),
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		AlbumArtist: m.AlbumArtist(),
		Genre:       m.Genre(),
		Year:        m.Year(),
	}
	s.Track, s.TrackTotal = m.Track()

	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		s.Picture = &PictureInfo{
			MIME:        pic.MIMEType,
			Type:        pic.Type,
			Description: pic.Description,
			Size:        len(pic.Data),
		}
	}

	return s, nil
}
