package app

import (
	"context"
	"time"

	"github.com/atomicstack/mineral/internal/bus"
	"github.com/atomicstack/mineral/internal/cache"
	"github.com/atomicstack/mineral/internal/dispatch"
	"github.com/atomicstack/mineral/internal/event"
	"github.com/atomicstack/mineral/internal/library"
	"github.com/atomicstack/mineral/internal/playback"
	"github.com/atomicstack/mineral/internal/reducer"
	"github.com/atomicstack/mineral/internal/render"
	"github.com/atomicstack/mineral/internal/state"
	"github.com/atomicstack/mineral/internal/terminal"
	"github.com/atomicstack/mineral/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	MusicDirs    []string
	CacheDir     string
	Player       []string
	TickInterval time.Duration
	LoadTimeout  time.Duration
	CoverWidth   int
	CoverHeight  int
	Debug        bool
}

// Run wires the bus, cache, reducer and terminal, and blocks until Exit is
// handled or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driver := terminal.New(ctx)
	events := bus.Start(ctx, bus.Options{Input: driver.Inputs(), InitGlobal: true})
	defer events.Close()
	emit := event.Global()

	covers := cache.New(ctx, cache.DiskLoader{Root: cfg.CacheDir, Cols: cfg.CoverWidth, Rows: cfg.CoverHeight}, cache.Options{
		LoadTimeout: cfg.LoadTimeout,
		Notify:      emit,
	})
	defer covers.Close()

	player := playback.NewExec(cfg.Player)
	defer player.Stop()

	st := state.New()
	dispatcher := dispatch.New(cfg.Debug)
	view := ui.New(dispatcher.Keys())
	loop := NewLoop(LoopOptions{
		Events:     events,
		State:      st,
		Dispatcher: dispatcher,
		Reducer: reducer.New(ctx, st, emit, reducer.Options{
			Library:   library.NewDir(),
			Player:    player,
			Locations: cfg.MusicDirs,
		}),
		Scheduler: render.NewScheduler(cfg.TickInterval, func() int {
			frame := view.Render(st, covers)
			driver.Draw(frame)
			return lipgloss.Height(frame)
		}),
	})

	event.Emit(event.ActionEvent{Action: event.LoadLibrary{}})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return driver.Run()
	})
	g.Go(func() error {
		defer driver.Quit()
		defer events.StopInput()
		return loop.Run(gctx)
	})
	return g.Wait()
}
