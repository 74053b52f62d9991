// Package runner drives a session from a frontend: it records frames, plays
// cues, feeds spectators and reports finished runs.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/audio"
)

// Controls is what a frontend polled this frame
type Controls struct {
	Input system.InputState
	// Start is any key press while the session waits to start
	Start bool
	// Reset reloads the level
	Reset bool
}

// Runner is not safe for concurrent use; call Frame from the frontend loop only.
type Runner struct {
	sess     *session.Session
	logger   *log.Logger
	sink     audio.Sink
	recorder *replay.Recorder
	reloads  <-chan string

	// OnFrame receives a snapshot after every step
	OnFrame func(session.Snapshot)
	// OnCompleted is called once per completed run
	OnCompleted func(*session.Session)

	reported bool
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSink plays every cue through s
func WithSink(s audio.Sink) Option {
	return func(r *Runner) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithRecorder records every frame fed to the session
func WithRecorder(rec *replay.Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithReloads resets the session whenever a path arrives on ch
func WithReloads(ch <-chan string) Option {
	return func(r *Runner) { r.reloads = ch }
}

// New creates a runner around sess
func New(sess *session.Session, opts ...Option) *Runner {
	r := &Runner{
		sess:   sess,
		logger: log.New(io.Discard),
		sink:   audio.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session returns the driven session
func (r *Runner) Session() *session.Session { return r.sess }

// Recorder returns the recorder, or nil when not recording
func (r *Runner) Recorder() *replay.Recorder { return r.recorder }

// Frame advances the session by one frame
func (r *Runner) Frame(dt float64, c Controls) {
	if path, ok := r.pendingReload(); ok {
		r.logger.Info("level file changed, reloading", "path", path)
		c.Reset = true
	}

	fi := replay.FrameInput{
		DT: dt,
		L:  c.Input.Left,
		R:  c.Input.Right,
		D:  c.Input.Down,
		J:  c.Input.Jump,
		S:  c.Start && r.sess.State() == state.StateNotStarted,
		X:  c.Reset,
	}
	if fi.S && fi.X {
		fi.S = false
	}
	if err := replay.Apply(r.sess, fi); err != nil {
		r.logger.Error("reload failed, keeping current level", "err", err)
		fi.X = false
		_ = replay.Apply(r.sess, fi)
	}
	if fi.X {
		r.reported = false
	}
	if r.recorder != nil {
		r.recorder.RecordFrame(fi)
	}

	audio.PlayAll(r.sink, r.sess.Sounds())

	if r.OnFrame != nil {
		r.OnFrame(r.sess.Snapshot())
	}
	if r.sess.State() == state.StateCompleted && !r.reported {
		r.reported = true
		if r.OnCompleted != nil {
			r.OnCompleted(r.sess)
		}
	}
}

// pendingReload drains the reload channel and returns the last path
func (r *Runner) pendingReload() (string, bool) {
	var path string
	got := false
	for {
		select {
		case p, ok := <-r.reloads:
			if !ok {
				r.reloads = nil
				return path, got
			}
			path, got = p, true
		default:
			return path, got
		}
	}
}

// Save writes the recording to filename, if recording
func (r *Runner) Save(filename string) error {
	if r.recorder == nil || filename == "" {
		return nil
	}
	if err := r.recorder.Save(filename); err != nil {
		return err
	}
	r.logger.Info("recording saved", "file", filename, "frames", r.recorder.FrameCount())
	return nil
}
