package events

import "github.com/atomicstack/mineral/internal/logging"

type CacheTracer struct{}

var Cache = CacheTracer{}

func (CacheTracer) Request(kind string, id uint64) {
	logging.Trace("cache.request", map[string]interface{}{"kind": kind, "id": id})
}

func (CacheTracer) Result(kind string, id uint64, status string) {
	logging.Trace("cache.result", map[string]interface{}{"kind": kind, "id": id, "status": status})
}

func (CacheTracer) Stale(kind string, id uint64, status string) {
	logging.Trace("cache.stale", map[string]interface{}{"kind": kind, "id": id, "status": status})
}

func (CacheTracer) Load(kind string, id uint64, path string) {
	logging.Trace("cache.load", map[string]interface{}{"kind": kind, "id": id, "path": path})
}

func (CacheTracer) LoadError(kind string, id uint64, err error) {
	if err == nil {
		return
	}
	logging.Trace("cache.load.error", map[string]interface{}{"kind": kind, "id": id, "error": err.Error()})
}

func (CacheTracer) Close(entries, pending int) {
	logging.Trace("cache.close", map[string]interface{}{"entries": entries, "pending": pending})
}
