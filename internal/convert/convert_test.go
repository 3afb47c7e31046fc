package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tagtools/id3json/internal/sidecar"
	"github.com/tagtools/id3json/internal/tag"
)

// fakeCodec is an in-memory tag.Codec for testing the mapping and
// traversal logic without real audio files.
type fakeCodec struct {
	mu       sync.Mutex
	sets     map[string]*tag.Set
	readErrs map[string]error
	writes   map[string]*tag.Set
}

func newFakeCodec() *fakeCodec {
	return &fakeCodec{
		sets:     make(map[string]*tag.Set),
		readErrs: make(map[string]error),
		writes:   make(map[string]*tag.Set),
	}
}

func (c *fakeCodec) Read(path string) (*tag.Set, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err, ok := c.readErrs[path]; ok {
		return nil, &tag.ReadError{Path: path, Err: err}
	}
	set, ok := c.sets[path]
	if !ok {
		return nil, &tag.ReadError{Path: path, Err: errors.New("no tag data")}
	}
	return set, nil
}

func (c *fakeCodec) Write(path string, set *tag.Set) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writes[path] = set
	return nil
}

func (c *fakeCodec) written(path string) (*tag.Set, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.writes[path]
	return set, ok
}

func testSet(withArt bool) *tag.Set {
	set := &tag.Set{}
	set.AddText("TIT2", "Title")
	set.AddText("TPE1", "Artist")
	if withArt {
		set.AddPicture(tag.Picture{
			MIME: "image/jpeg",
			Type: tag.PictureFrontCover,
			Data: []byte{1, 2, 3, 4},
		})
	}
	return set
}

func TestConverter_ExtractWritesSidecarAndArt(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	sidecarPath := filepath.Join(dir, "tags.json")
	artPath := filepath.Join(dir, "cover.bin")

	codec := newFakeCodec()
	codec.sets[audio] = testSet(true)

	conv := NewConverter(codec)
	if err := conv.Extract(audio, sidecarPath, artPath); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	want := `{
    "TIT2": "Title",
    "TPE1": "Artist"
}
`
	if string(data) != want {
		t.Errorf("sidecar =\n%s\nwant\n%s", data, want)
	}

	artData, err := os.ReadFile(artPath)
	if err != nil {
		t.Fatalf("read art: %v", err)
	}
	if !bytes.Equal(artData, []byte{1, 2, 3, 4}) {
		t.Errorf("art = %v, want [1 2 3 4]", artData)
	}
}

func TestConverter_ExtractDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	codec := newFakeCodec()
	codec.sets[audio] = testSet(true)

	if err := NewConverter(codec).Extract(audio, "", ""); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "song.json")); err != nil {
		t.Errorf("default sidecar missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "song.jpg")); err != nil {
		t.Errorf("default art missing: %v", err)
	}
}

func TestConverter_ExtractWithoutArtWritesNoArtFile(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	codec := newFakeCodec()
	codec.sets[audio] = testSet(false)

	if err := NewConverter(codec).Extract(audio, "", ""); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "song.jpg")); !os.IsNotExist(err) {
		t.Errorf("art file should not exist, stat err = %v", err)
	}
}

func TestConverter_ExtractTagReadErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	codec := newFakeCodec() // no set registered: Read fails

	err := NewConverter(codec).Extract(audio, "", "")
	var readErr *tag.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %v, want *tag.ReadError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "song.json")); !os.IsNotExist(statErr) {
		t.Errorf("sidecar should not exist after read failure")
	}
}

func TestConverter_ExtractSidecarWriteError(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	// A directory at the sidecar path makes the write fail.
	if err := os.Mkdir(filepath.Join(dir, "song.json"), 0755); err != nil {
		t.Fatal(err)
	}

	codec := newFakeCodec()
	codec.sets[audio] = testSet(false)

	err := NewConverter(codec).Extract(audio, "", "")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
}

func TestConverter_ApplyBuildsFreshTagSet(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	sidecarPath := filepath.Join(dir, "song.json")

	content := `{"TIT2":"New Title","extra":5,"TALB":"New Album"}`
	if err := os.WriteFile(sidecarPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	codec := newFakeCodec()
	if err := NewConverter(codec).Apply(audio, "", ""); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, ok := codec.written(audio)
	if !ok {
		t.Fatal("nothing written to audio path")
	}
	if len(set.Frames) != 2 {
		t.Fatalf("got %d frames, want 2 (non-strings ignored)", len(set.Frames))
	}
	if set.Frames[0] != (tag.Frame{ID: "TIT2", Text: "New Title"}) {
		t.Errorf("frame 0 = %+v", set.Frames[0])
	}
	if set.Frames[1] != (tag.Frame{ID: "TALB", Text: "New Album"}) {
		t.Errorf("frame 1 = %+v", set.Frames[1])
	}
	if len(set.Pictures) != 0 {
		t.Errorf("got %d pictures, want 0 (no art path given)", len(set.Pictures))
	}
}

func TestConverter_ApplyMissingArtIsFatal(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	sidecarPath := filepath.Join(dir, "song.json")
	if err := os.WriteFile(sidecarPath, []byte(`{"TIT2":"T"}`), 0644); err != nil {
		t.Fatal(err)
	}

	codec := newFakeCodec()
	err := NewConverter(codec).Apply(audio, "", filepath.Join(dir, "nonexistent.jpg"))

	var missing *MissingArtError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingArtError", err)
	}
	if _, ok := codec.written(audio); ok {
		t.Error("audio path was written despite missing art")
	}
}

func TestConverter_ApplyEmbedsArt(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	sidecarPath := filepath.Join(dir, "song.json")
	artPath := filepath.Join(dir, "cover.jpg")

	if err := os.WriteFile(sidecarPath, []byte(`{"TIT2":"T"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(artPath, []byte{9, 8, 7}, 0644); err != nil {
		t.Fatal(err)
	}

	codec := newFakeCodec()
	if err := NewConverter(codec).Apply(audio, "", artPath); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, _ := codec.written(audio)
	if len(set.Pictures) != 1 {
		t.Fatalf("got %d pictures, want 1", len(set.Pictures))
	}
	pic := set.Pictures[0]
	if pic.MIME != "image/jpeg" || pic.Type != tag.PictureFrontCover {
		t.Errorf("picture = %+v, want front cover image/jpeg", pic)
	}
	if !bytes.Equal(pic.Data, []byte{9, 8, 7}) {
		t.Errorf("picture data = %v, want [9 8 7]", pic.Data)
	}
}

func TestConverter_ApplyMalformedSidecar(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(filepath.Join(dir, "song.json"), []byte(`{"a":`), 0644); err != nil {
		t.Fatal(err)
	}

	err := NewConverter(newFakeCodec()).Apply(audio, "", "")
	var parseErr *sidecar.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %v, want *sidecar.ParseError", err)
	}
}

func TestConverter_ApplyNonObjectSidecar(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(filepath.Join(dir, "song.json"), []byte(`["a"]`), 0644); err != nil {
		t.Fatal(err)
	}

	err := NewConverter(newFakeCodec()).Apply(audio, "", "")
	var invalid *sidecar.InvalidDocumentError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want *sidecar.InvalidDocumentError", err)
	}
}

func TestConverter_ApplyMissingSidecar(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	err := NewConverter(newFakeCodec()).Apply(audio, "", "")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error = %v, want *IOError", err)
	}
}

func TestExtractThenApply_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	codec := newFakeCodec()
	codec.sets[src] = testSet(true)

	conv := NewConverter(codec)
	if err := conv.Extract(src, "", ""); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if err := conv.Apply(dst, SidecarPath(src), ArtPath(src)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	set, ok := codec.written(dst)
	if !ok {
		t.Fatal("nothing written to destination")
	}

	want := codec.sets[src]
	if len(set.Frames) != len(want.Frames) {
		t.Fatalf("got %d frames, want %d", len(set.Frames), len(want.Frames))
	}
	for i, f := range want.Frames {
		if set.Frames[i] != f {
			t.Errorf("frame %d = %+v, want %+v", i, set.Frames[i], f)
		}
	}
	if len(set.Pictures) != 1 || !bytes.Equal(set.Pictures[0].Data, want.Pictures[0].Data) {
		t.Errorf("picture did not survive the round trip")
	}
}

func TestSidecarPathAndArtPath(t *testing.T) {
	tests := []struct {
		audio   string
		sidecar string
		art     string
	}{
		{"song.mp3", "song.json", "song.jpg"},
		{"dir/track.mp3", "dir/track.json", "dir/track.jpg"},
		{"noext", "noext.json", "noext.jpg"},
	}

	for _, tt := range tests {
		if got := SidecarPath(tt.audio); got != tt.sidecar {
			t.Errorf("SidecarPath(%q) = %q, want %q", tt.audio, got, tt.sidecar)
		}
		if got := ArtPath(tt.audio); got != tt.art {
			t.Errorf("ArtPath(%q) = %q, want %q", tt.audio, got, tt.art)
		}
	}
}
