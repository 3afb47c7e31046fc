package art

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CoverHandler embeds album art directly into an audio container without
// rewriting its text tags.
type CoverHandler interface {
	HasCover(path string) bool
	EmbedCover(path string, cover []byte) error
}

// HandlerFor picks a cover handler by file extension.
func HandlerFor(path string) (CoverHandler, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return ID3CoverHandler{}, nil
	case ".flac":
		return FLACCoverHandler{}, nil
	default:
		return nil, fmt.Errorf("no cover handler for %q files", filepath.Ext(path))
	}
}
