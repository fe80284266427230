package testutil

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCoverProducesDecodablePNG(t *testing.T) {
	root := t.TempDir()
	path := WriteCover(t, root, "album", 3, 4, 2, color.RGBA{R: 255, A: 255})
	if filepath.Base(path) != "3.png" {
		t.Fatalf("expected 3.png, got %s", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("expected 4x2 image, got %v", b)
	}
}

func TestWriteLibrary(t *testing.T) {
	root := t.TempDir()
	WriteLibrary(t, root, map[string][]string{"Focus": {"a.mp3", "b.flac"}})
	entries, err := os.ReadDir(filepath.Join(root, "Focus"))
	if err != nil {
		t.Fatalf("read playlist: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 files, got %d", len(entries))
	}
}
