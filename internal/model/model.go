// Package model holds the library records shared by state, the reducer and
// the playback/library collaborators.
package model

import (
	"fmt"
	"time"
)

// Track is a single playable item.
type Track struct {
	ID       uint64
	Name     string
	Artist   string
	Album    string
	Path     string
	Duration time.Duration
}

// Collection is any named list of tracks: a playlist, an album or an artist.
type Collection struct {
	ID          uint64
	Name        string
	Description string
	Tracks      []Track
}

// FormatDuration renders durations as mm:ss, or --:-- when unknown.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
