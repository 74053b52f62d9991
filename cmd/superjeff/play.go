package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/fabiojmendes/super-jeff/internal/application/game"
	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/runner"
	"github.com/fabiojmendes/super-jeff/internal/application/scene/playing"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/audio"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/storage"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/stream"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/watch"
	"github.com/fabiojmendes/super-jeff/internal/platform/term"
)

const (
	screenW = 960
	screenH = 540
)

type playOptions struct {
	*globalOptions
	term     bool
	record   string
	spectate string
	watch    bool
	mute     bool
}

func newPlayCmd(g *globalOptions) *cobra.Command {
	opts := &playOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a level",
		Long: `Play a level in a window, or in the terminal with --term.

Controls:
  Left/Right, A/D   - Walk
  Down, S           - Crouch
  Space, Up, W      - Jump (hold for a higher jump)
  R                 - Reload the level
  F5                - Save the recording (window)
  Esc, Q            - Quit

Examples:
  superjeff play
  superjeff play --term
  superjeff play --record run.json --seed 7
  superjeff play --spectate :8080
  superjeff play --config ./dev --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd.Context())
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.term, "term", false, "Play in the terminal")
	f.StringVar(&opts.record, "record", "", "Record input to this file")
	f.StringVar(&opts.spectate, "spectate", "", "Serve a websocket snapshot feed on this address (e.g. :8080)")
	f.BoolVar(&opts.watch, "watch", false, "Reload the level when files under --config change")
	f.BoolVar(&opts.mute, "mute", false, "Disable sound")
	return cmd
}

func (o *playOptions) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	seed := o.resolveSeed()
	sess, err := o.newSession(o.level, seed)
	if err != nil {
		return err
	}
	o.logger.Info("loaded level", "level", o.level, "config", o.loader().BasePath(), "seed", seed)

	var ropts []runner.Option
	ropts = append(ropts, runner.WithLogger(o.logger))
	if o.record != "" {
		ropts = append(ropts, runner.WithRecorder(replay.NewRecorder(seed, o.level)))
		o.logger.Info("recording enabled", "file", o.record)
	}

	if o.watch {
		w, err := o.startWatcher()
		if err != nil {
			return err
		}
		defer w.Close()
		ropts = append(ropts, runner.WithReloads(w.Events))
	}

	if !o.mute {
		sink, closeSink := o.sink()
		defer closeSink()
		ropts = append(ropts, runner.WithSink(sink))
	}

	r := runner.New(sess, ropts...)

	store, err := storage.Open(o.db)
	if err != nil {
		o.logger.Warn("could not open runs database", "err", err)
	} else {
		defer store.Close()
		r.OnCompleted = o.saveRun(store, seed)
	}

	if o.spectate != "" {
		stop := o.serveSpectators(r)
		defer stop()
	}

	if o.term {
		return o.runTerminal(ctx, r)
	}
	return o.runWindow(r)
}

func (o *playOptions) startWatcher() (*watch.Watcher, error) {
	if o.config == "" {
		return nil, errors.New("--watch needs --config pointing at a directory")
	}
	w, err := watch.New(o.config, filepath.Join(o.config, "levels"))
	if err != nil {
		return nil, err
	}
	go func() {
		for err := range w.Errors {
			o.logger.Warn("watcher error", "err", err)
		}
	}()
	o.logger.Info("watching for level changes", "dir", o.config)
	return w, nil
}

// sink picks the audio backend for the frontend
func (o *playOptions) sink() (audio.Sink, func()) {
	if !o.term {
		return audio.NewEbitenSink(), func() {}
	}
	s := audio.NewBeepSink(0.6)
	if err := s.Init(); err != nil {
		o.logger.Warn("audio initialization failed, continuing without sound", "err", err)
	}
	return s, s.Close
}

func (o *playOptions) saveRun(store *storage.Store, seed int64) func(*session.Session) {
	return func(s *session.Session) {
		id, err := store.SaveRun(storage.Run{
			Level:   o.level,
			Seed:    seed,
			Score:   s.Score(),
			Seconds: s.FinalTime(),
			Total:   s.FinalScore(),
		})
		if err != nil {
			o.logger.Error("failed to save run", "err", err)
			return
		}
		o.logger.Info("run saved", "id", id, "total", s.FinalScore(), "time", s.FinalTime())
	}
}

func (o *playOptions) serveSpectators(r *runner.Runner) func() {
	hub := stream.NewHub(o.logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: o.spectate, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			o.logger.Error("spectator server stopped", "err", err)
		}
	}()
	o.logger.Info("spectator feed listening", "addr", o.spectate, "path", "/ws")

	r.OnFrame = func(snap session.Snapshot) {
		if err := hub.Broadcast("snapshot", snap); err != nil {
			o.logger.Warn("failed to broadcast snapshot", "err", err)
		}
	}

	return func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func (o *playOptions) runWindow(r *runner.Runner) error {
	scene := playing.New(r, screenW, screenH, o.record, o.logger)
	g := game.New(scene, screenW, screenH)
	if !o.fixed {
		g.UseWallClock(time.Now)
	}
	defer g.Close()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Super Jeff")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (o *playOptions) runTerminal(ctx context.Context, r *runner.Runner) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// hold log output until the terminal is restored
	var held bytes.Buffer
	o.logger.SetOutput(&held)
	defer func() {
		o.logger.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(held.Bytes())
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err = term.New(screen, r, term.Options{Fixed: o.fixed, Logger: o.logger}).Run(ctx)
	screen.Fini()
	if err != nil {
		return err
	}

	if err := r.Save(o.record); err != nil && !errors.Is(err, replay.ErrNoFrames) {
		return err
	}
	return nil
}
