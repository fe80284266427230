// Package cache serves cover images without blocking the caller. The entry
// map is owned by the main loop; a loader goroutine fills it through a pair
// of mailboxes.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/mailbox"
)

// DefaultLoadTimeout bounds a single load.
const DefaultLoadTimeout = 5 * time.Second

// ErrLoaderStopped marks entries requested after the loader exited.
var ErrLoaderStopped = errors.New("image loader stopped")

// Kind is the category of item a cover belongs to.
type Kind int

const (
	KindPlaylist Kind = iota
	KindAlbum
	KindArtist
)

func (k Kind) String() string {
	switch k {
	case KindPlaylist:
		return "playlist"
	case KindAlbum:
		return "album"
	case KindArtist:
		return "artist"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Key identifies one cover.
type Key struct {
	Kind Kind
	ID   uint64
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Kind, k.ID)
}

// Status is the lifecycle position of an entry.
type Status int

const (
	StatusNotRequested Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotRequested:
		return "not-requested"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ImageState is what Get returns. Image is set only when Loaded, Err only
// when Failed.
type ImageState struct {
	Status Status
	Image  *Image
	Err    string
}

// LoadRequest asks the loader for one key.
type LoadRequest struct {
	Key Key
}

// LoadResult answers exactly one LoadRequest.
type LoadResult struct {
	Key   Key
	Image *Image
	Err   error
}

// Options configures New.
type Options struct {
	// LoadTimeout bounds each load; zero uses DefaultLoadTimeout and a
	// negative value disables the deadline.
	LoadTimeout time.Duration
	// Notify receives MarkDirty after each delivered result.
	Notify event.Emitter
}

// Cache must only be used from one goroutine.
type Cache struct {
	entries  map[Key]ImageState
	requests *mailbox.Mailbox[LoadRequest]
	results  *mailbox.Mailbox[LoadResult]

	cancel context.CancelFunc
	done   chan struct{}
	// swept is set once Loading entries were failed after the loader stopped.
	swept bool
}

// New starts the loader goroutine. Close stops it.
func New(ctx context.Context, loader Loader, opts Options) *Cache {
	timeout := opts.LoadTimeout
	if timeout == 0 {
		timeout = DefaultLoadTimeout
	}
	ctx, cancel := context.WithCancel(ctx)
	c := &Cache{
		entries:  make(map[Key]ImageState),
		requests: mailbox.New[LoadRequest](),
		results:  mailbox.New[LoadResult](),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	w := &worker{
		loader:   loader,
		requests: c.requests,
		results:  c.results,
		notify:   opts.Notify,
		timeout:  timeout,
	}
	go func() {
		defer close(c.done)
		w.run(ctx)
	}()
	return c
}

// Get returns the current state for (kind, id). The first access for a key
// records Loading and sends exactly one request; later accesses never send
// another. Pending results are drained first.
func (c *Cache) Get(kind Kind, id uint64) ImageState {
	c.Poll()
	key := Key{Kind: kind, ID: id}
	if st, ok := c.entries[key]; ok {
		return st
	}
	st := ImageState{Status: StatusLoading}
	if err := c.requests.Send(LoadRequest{Key: key}); err != nil {
		st = ImageState{Status: StatusFailed, Err: ErrLoaderStopped.Error()}
	} else {
		events.Cache.Request(kind.String(), id)
	}
	c.entries[key] = st
	return st
}

// NotRequested is the placeholder for views with nothing selected.
func (c *Cache) NotRequested() ImageState {
	return ImageState{Status: StatusNotRequested}
}

// Peek reports an entry without requesting it.
func (c *Cache) Peek(kind Kind, id uint64) (ImageState, bool) {
	st, ok := c.entries[Key{Kind: kind, ID: id}]
	return st, ok
}

// Poll moves every ready result into the map and returns how many were
// applied. It never blocks. Settled entries are never overwritten. Once the
// loader has stopped, entries still Loading can never be answered and become
// Failed with ErrLoaderStopped.
func (c *Cache) Poll() int {
	applied := 0
	for {
		res, ok := c.results.TryRecv()
		if !ok {
			return applied + c.sweep()
		}
		current, known := c.entries[res.Key]
		if known && current.Status != StatusLoading {
			events.Cache.Stale(res.Key.Kind.String(), res.Key.ID, current.Status.String())
			continue
		}
		next := ImageState{Status: StatusLoaded, Image: res.Image}
		if res.Err != nil {
			next = ImageState{Status: StatusFailed, Err: res.Err.Error()}
		} else if res.Image == nil {
			next = ImageState{Status: StatusFailed, Err: "loader returned no image"}
		}
		c.entries[res.Key] = next
		events.Cache.Result(res.Key.Kind.String(), res.Key.ID, next.Status.String())
		applied++
	}
}

func (c *Cache) sweep() int {
	if c.swept {
		return 0
	}
	select {
	case <-c.done:
	default:
		return 0
	}
	c.swept = true
	failed := 0
	for key, st := range c.entries {
		if st.Status != StatusLoading {
			continue
		}
		c.entries[key] = ImageState{Status: StatusFailed, Err: ErrLoaderStopped.Error()}
		events.Cache.Result(key.Kind.String(), key.ID, StatusFailed.String())
		failed++
	}
	return failed
}

// Len reports the number of known keys.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Close stops the loader and waits for it. Entries stay readable.
func (c *Cache) Close() {
	events.Cache.Close(c.Len(), c.requests.Len())
	c.requests.Close()
	c.cancel()
	<-c.done
	c.results.Close()
}
