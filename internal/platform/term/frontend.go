package term

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/fabiojmendes/super-jeff/internal/application/runner"
)

// Options tunes the terminal loop
type Options struct {
	// FPS is the frame rate of the loop
	FPS int
	// Fixed feeds 1/FPS to the session every frame instead of the measured time
	Fixed bool
	// HoldInitial and HoldRepeat configure the held-key emulation
	HoldInitial time.Duration
	HoldRepeat  time.Duration
	Logger      *log.Logger
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.HoldInitial <= 0 {
		o.HoldInitial = 550 * time.Millisecond
	}
	if o.HoldRepeat <= 0 {
		o.HoldRepeat = 90 * time.Millisecond
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Frontend drives a runner from a tcell screen. The caller owns the screen.
type Frontend struct {
	screen   tcell.Screen
	runner   *runner.Runner
	keys     *HeldKeys
	renderer *Renderer
	opts     Options
	now      func() time.Time

	start bool
	reset bool
}

// New creates a frontend on an initialized screen
func New(screen tcell.Screen, r *runner.Runner, opts Options) *Frontend {
	opts = opts.withDefaults()
	return &Frontend{
		screen:   screen,
		runner:   r,
		keys:     NewHeldKeys(opts.HoldInitial, opts.HoldRepeat),
		renderer: NewRenderer(screen),
		opts:     opts,
		now:      time.Now,
	}
}

// Run loops until ctx ends or the player quits
func (f *Frontend) Run(ctx context.Context) error {
	step := time.Second / time.Duration(f.opts.FPS)
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	f.draw()
	last := f.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !f.handle(ev) {
				return nil
			}
		case <-ticker.C:
			now := f.now()
			dt := now.Sub(last).Seconds()
			if f.opts.Fixed {
				dt = step.Seconds()
			}
			last = now
			f.frame(dt, now)
		}
	}
}

// handle processes one event and returns false to quit
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := ActionFor(ev)
		switch action {
		case ActionQuit:
			return false
		case ActionReset:
			f.reset = true
			f.keys.Clear()
			return true
		case ActionNone:
		default:
			f.keys.Press(action, f.now())
		}
		f.start = true
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) frame(dt float64, now time.Time) {
	f.runner.Frame(dt, runner.Controls{
		Input: f.keys.Input(now),
		Start: f.start && !f.reset,
		Reset: f.reset,
	})
	f.start = false
	f.reset = false
	f.draw()
}

func (f *Frontend) draw() {
	sess := f.runner.Session()
	f.renderer.Draw(sess.Level(), sess.Snapshot())
	f.screen.Show()
}
