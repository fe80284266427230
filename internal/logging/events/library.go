package events

import "github.com/atomicstack/mineral/internal/logging"

type LibraryTracer struct{}

type PlaybackTracer struct{}

var (
	Library  = LibraryTracer{}
	Playback = PlaybackTracer{}
)

func (LibraryTracer) Scan(locations []string, collections, failures int) {
	logging.Trace("library.scan", map[string]interface{}{
		"locations":   locations,
		"collections": collections,
		"failures":    failures,
	})
}

func (LibraryTracer) Skip(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("library.skip", payload)
}

func (PlaybackTracer) Start(id, track, path string) {
	logging.Trace("playback.start", map[string]interface{}{"id": id, "track": track, "path": path})
}

func (PlaybackTracer) Finish(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("playback.finish", payload)
}
