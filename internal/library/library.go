// Package library scans music directories into playlists.
package library

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/model"
)

// AudioExtensions lists the file suffixes treated as tracks.
var AudioExtensions = []string{".mp3", ".flac", ".ogg", ".opus", ".m4a", ".wav", ".aac"}

// Dir treats every directory directly under a location as a playlist holding
// the audio files beneath it.
type Dir struct {
	extensions map[string]struct{}
}

func NewDir() *Dir {
	exts := make(map[string]struct{}, len(AudioExtensions))
	for _, ext := range AudioExtensions {
		exts[ext] = struct{}{}
	}
	return &Dir{extensions: exts}
}

// Scan returns the playlists found under locations, sorted by name. Locations
// or playlists that cannot be read are reported as errors and skipped.
func (d *Dir) Scan(locations []string) ([]model.Collection, []error) {
	var (
		collections []model.Collection
		errs        []error
	)
	for _, loc := range locations {
		loc = expandHome(loc)
		entries, err := os.ReadDir(loc)
		if err != nil {
			err = fmt.Errorf("read library location %s: %w", loc, err)
			events.Library.Skip(loc, err)
			errs = append(errs, err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			path := filepath.Join(loc, entry.Name())
			c, err := d.playlist(path)
			if err != nil {
				events.Library.Skip(path, err)
				errs = append(errs, err)
				continue
			}
			collections = append(collections, c)
		}
	}
	sort.SliceStable(collections, func(i, j int) bool {
		return strings.ToLower(collections[i].Name) < strings.ToLower(collections[j].Name)
	})
	events.Library.Scan(locations, len(collections), len(errs))
	return collections, errs
}

func (d *Dir) playlist(dir string) (model.Collection, error) {
	var tracks []model.Track
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.isAudio(entry.Name()) {
			return nil
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tracks = append(tracks, model.Track{
			ID:    ID(path),
			Name:  name,
			Album: filepath.Base(filepath.Dir(path)),
			Path:  path,
		})
		return nil
	})
	if err != nil {
		return model.Collection{}, fmt.Errorf("scan playlist %s: %w", dir, err)
	}
	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].Path < tracks[j].Path })
	return model.Collection{
		ID:          ID(dir),
		Name:        filepath.Base(dir),
		Description: dir,
		Tracks:      tracks,
	}, nil
}

func (d *Dir) isAudio(name string) bool {
	_, ok := d.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ID derives a stable identifier from a path.
func ID(path string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(filepath.Clean(path)))
	return h.Sum64()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
