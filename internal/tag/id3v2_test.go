package tag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeAudioStub creates a file that looks enough like an untagged MP3 for
// the id3v2 library to prepend a tag to it.
func writeAudioStub(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "song.mp3")
	data := append([]byte{0xFF, 0xFB, 0x90, 0x00}, make([]byte, 64)...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestID3Codec_WriteThenRead(t *testing.T) {
	path := writeAudioStub(t)
	codec := ID3Codec{}

	in := &Set{}
	in.AddText("TIT2", "Some Title")
	in.AddText("TPE1", "Some Artist")
	in.AddPicture(Picture{
		MIME:        "image/jpeg",
		Type:        PictureFrontCover,
		Description: "",
		Data:        []byte{0xDE, 0xAD, 0xBE, 0xEF},
	})

	if err := codec.Write(path, in); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := codec.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	got := make(map[string]string, len(out.Frames))
	for _, f := range out.Frames {
		got[f.ID] = f.Text
	}
	if got["TIT2"] != "Some Title" {
		t.Errorf("TIT2 = %q, want Some Title", got["TIT2"])
	}
	if got["TPE1"] != "Some Artist" {
		t.Errorf("TPE1 = %q, want Some Artist", got["TPE1"])
	}

	if len(out.Pictures) != 1 {
		t.Fatalf("got %d pictures, want 1", len(out.Pictures))
	}
	pic := out.Pictures[0]
	if pic.MIME != "image/jpeg" {
		t.Errorf("picture MIME = %q, want image/jpeg", pic.MIME)
	}
	if pic.Type != PictureFrontCover {
		t.Errorf("picture type = %#x, want front cover", pic.Type)
	}
	if !bytes.Equal(pic.Data, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("picture data = %v, want original bytes", pic.Data)
	}
}

func TestID3Codec_WriteReplacesExistingTag(t *testing.T) {
	path := writeAudioStub(t)
	codec := ID3Codec{}

	first := &Set{}
	first.AddText("TIT2", "Old Title")
	first.AddText("TALB", "Old Album")
	if err := codec.Write(path, first); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}

	second := &Set{}
	second.AddText("TIT2", "New Title")
	if err := codec.Write(path, second); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	out, err := codec.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(out.Frames) != 1 {
		t.Fatalf("got %d frames, want 1 (old tag must not survive)", len(out.Frames))
	}
	if out.Frames[0].ID != "TIT2" || out.Frames[0].Text != "New Title" {
		t.Errorf("frame = %+v, want {TIT2 New Title}", out.Frames[0])
	}
}

func TestID3Codec_ReadMissingFile(t *testing.T) {
	_, err := ID3Codec{}.Read(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*ReadError); !ok {
		t.Errorf("error = %T, want *ReadError", err)
	}
}

func TestID3Codec_ReadUntaggedFile(t *testing.T) {
	path := writeAudioStub(t)

	set, err := ID3Codec{}.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(set.Frames) != 0 || len(set.Pictures) != 0 {
		t.Errorf("untagged file yielded %d frames, %d pictures", len(set.Frames), len(set.Pictures))
	}
}
