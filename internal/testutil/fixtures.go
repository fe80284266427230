// Package testutil builds on-disk fixtures shared by package tests.
package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/atomicstack/mineral/internal/logging"
)

// UseTempLog points the shared logger at a per-test file and restores the
// default afterwards.
func UseTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mineral.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

// WriteCover writes a solid w×h PNG to {root}/images/{kind}/{id}.png and
// returns its path.
func WriteCover(t *testing.T, root, kind string, id uint64, w, h int, fill color.Color) string {
	t.Helper()
	dir := filepath.Join(root, "images", kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create cover dir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	path := filepath.Join(dir, strconv.FormatUint(id, 10)+".png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create cover: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode cover: %v", err)
	}
	return path
}

// WriteFile writes data to {root}/{rel}, creating parents.
func WriteFile(t *testing.T, root, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteLibrary creates one directory per playlist under root, each holding
// empty files with the given names.
func WriteLibrary(t *testing.T, root string, playlists map[string][]string) {
	t.Helper()
	for name, files := range playlists {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("create playlist %s: %v", name, err)
		}
		for _, file := range files {
			WriteFile(t, root, filepath.Join(name, file), nil)
		}
	}
}
