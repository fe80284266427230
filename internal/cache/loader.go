package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/logging"
	"github.com/atomicstack/mineral/internal/logging/events"
	"github.com/atomicstack/mineral/internal/mailbox"
)

// ErrNotFound is returned when no cover exists on disk. Fetching covers over
// the network is not supported.
var ErrNotFound = errors.New("unimplemented: network cover fetch")

// Loader produces the image for one key.
type Loader interface {
	Load(ctx context.Context, key Key) (*Image, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, key Key) (*Image, error)

func (f LoaderFunc) Load(ctx context.Context, key Key) (*Image, error) {
	return f(ctx, key)
}

type worker struct {
	loader   Loader
	requests *mailbox.Mailbox[LoadRequest]
	results  *mailbox.Mailbox[LoadResult]
	notify   event.Emitter
	timeout  time.Duration
}

// run answers requests in arrival order until the request mailbox is closed
// and drained, ctx ends, or the result mailbox refuses a result. On return the
// request mailbox is closed so later requests fail fast.
func (w *worker) run(ctx context.Context) {
	defer w.requests.Close()
	for {
		req, err := w.requests.Recv(ctx)
		if err != nil {
			return
		}
		img, err := w.load(ctx, req.Key)
		events.Cache.LoadError(req.Key.Kind.String(), req.Key.ID, err)
		if sendErr := w.results.Send(LoadResult{Key: req.Key, Image: img, Err: err}); sendErr != nil {
			logging.Warn("cover result dropped, stopping loader", "key", req.Key.String(), "err", sendErr)
			return
		}
		if w.notify != nil {
			w.notify.Emit(event.MarkDirty{})
		}
	}
}

func (w *worker) load(ctx context.Context, key Key) (img *Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("load %s: panic: %v", key, r)
		}
	}()
	if w.timeout <= 0 {
		return w.loader.Load(ctx, key)
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	type outcome struct {
		img *Image
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("load %s: panic: %v", key, r)}
			}
		}()
		img, err := w.loader.Load(ctx, key)
		ch <- outcome{img: img, err: err}
	}()
	select {
	case out := <-ch:
		if out.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, w.timeoutErr()
		}
		return out.img, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, w.timeoutErr()
		}
		return nil, ctx.Err()
	}
}

func (w *worker) timeoutErr() error {
	return fmt.Errorf("load timed out after %s", w.timeout)
}

// DiskLoader reads covers from {Root}/images/{kind}/{id}.{ext}.
type DiskLoader struct {
	Root string
	// Cols and Rows bound the rendered size in terminal cells.
	Cols int
	Rows int
}

func (l DiskLoader) Load(ctx context.Context, key Key) (*Image, error) {
	path, err := l.find(key)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrNotFound
	}
	events.Cache.Load(key.Kind.String(), key.ID, path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cover: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(data, path, Box{Cols: l.Cols, Rows: l.Rows})
}

// find returns the first directory entry named "{id}.*", or "" if none.
func (l DiskLoader) find(key Key) (string, error) {
	dir := filepath.Join(l.Root, "images", key.Kind.String())
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read cover directory: %w", err)
	}
	prefix := strconv.FormatUint(key.ID, 10) + "."
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", nil
}
