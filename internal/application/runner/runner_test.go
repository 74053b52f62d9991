package runner

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

const (
	frame = 1.0 / 60
	seed  = 12345
)

var floorRows = []string{
	"#                    #",
	"#                    #",
	"#                    #",
	"# S    E        M    #",
	"######################",
}

// dropRows put the player straight above a one-hit boss
var dropRows = []string{
	"#       #",
	"#   S   #",
	"#       #",
	"#       #",
	"#       #",
	"#       #",
	"#   M   #",
	"#########",
}

func newSession(t *testing.T, rows []string, cfg *config.Tuning, opts ...session.Option) *session.Session {
	t.Helper()
	lvl, err := system.LoadLevel(&config.LevelConfig{Name: "test", Rows: rows}, cfg)
	require.NoError(t, err)
	return session.New(lvl, cfg, rand.New(rand.NewSource(seed)), opts...)
}

func oneHitBoss() *config.Tuning {
	cfg := config.Default()
	cfg.Boss.Health = 1
	return cfg
}

type sinkLog struct{ played []entity.SoundEffect }

func (s *sinkLog) Play(sound entity.SoundEffect) { s.played = append(s.played, sound) }

func TestRunner_StartIsRecordedOnce(t *testing.T) {
	rec := replay.NewRecorder(seed, "test")
	r := New(newSession(t, floorRows, config.Default()), WithRecorder(rec))

	r.Frame(frame, Controls{Start: true})
	r.Frame(frame, Controls{Start: true})

	assert.Equal(t, state.StateRunning, r.Session().State())
	frames := rec.Data().Frames
	require.Len(t, frames, 2)
	assert.True(t, frames[0].S)
	assert.False(t, frames[1].S, "already running")
	assert.Equal(t, 1, frames[1].F)
}

func TestRunner_PlaysCues(t *testing.T) {
	sink := &sinkLog{}
	r := New(newSession(t, floorRows, config.Default()), WithSink(sink))

	r.Frame(frame, Controls{Start: true})
	r.Frame(frame, Controls{Input: system.InputState{Jump: true}})

	assert.Contains(t, sink.played, entity.SoundJump)
}

func TestRunner_ReloadFromWatcher(t *testing.T) {
	var buf bytes.Buffer
	reloads := make(chan string, 2)
	rec := replay.NewRecorder(seed, "test")
	r := New(newSession(t, floorRows, config.Default()),
		WithReloads(reloads),
		WithRecorder(rec),
		WithLogger(log.New(&buf)),
	)

	r.Frame(frame, Controls{Start: true})
	r.Frame(frame, Controls{})
	require.Equal(t, state.StateRunning, r.Session().State())

	reloads <- "levels/test.txt"
	reloads <- "levels/test.txt"
	r.Frame(frame, Controls{Start: true})

	assert.Equal(t, state.StateNotStarted, r.Session().State())
	frames := rec.Data().Frames
	assert.True(t, frames[2].X)
	assert.False(t, frames[2].S, "a reset frame never starts")
	assert.Contains(t, buf.String(), "reloading")
	assert.Empty(t, reloads, "pending reloads collapse into one")
}

func TestRunner_ReloadFailureStillSteps(t *testing.T) {
	failing := session.LoaderFunc(func() (*entity.Level, *config.Tuning, error) {
		return nil, nil, errors.New("broken level")
	})
	rec := replay.NewRecorder(seed, "test")
	r := New(newSession(t, floorRows, config.Default(), session.WithLoader(failing)), WithRecorder(rec))

	r.Frame(frame, Controls{Start: true})
	before := r.Session().Frame()
	r.Frame(frame, Controls{Reset: true})

	assert.Equal(t, state.StateRunning, r.Session().State())
	assert.Equal(t, before+1, r.Session().Frame())
	assert.False(t, rec.Data().Frames[1].X)
}

func TestRunner_CompletedReportedOnce(t *testing.T) {
	r := New(newSession(t, dropRows, oneHitBoss()))

	completed := 0
	var frames []uint64
	r.OnCompleted = func(s *session.Session) {
		completed++
		assert.Positive(t, s.FinalScore())
	}
	r.OnFrame = func(s session.Snapshot) { frames = append(frames, s.Frame) }

	r.Frame(frame, Controls{Start: true})
	for i := 0; i < 120; i++ {
		r.Frame(frame, Controls{})
	}

	assert.Equal(t, state.StateCompleted, r.Session().State())
	assert.Equal(t, 1, completed)
	require.Len(t, frames, 121)
	assert.Equal(t, uint64(1), frames[0])
}

func TestRunner_RecordingReplays(t *testing.T) {
	rec := replay.NewRecorder(seed, "test")
	r := New(newSession(t, floorRows, config.Default()), WithRecorder(rec))

	r.Frame(frame, Controls{Start: true})
	for i := 0; i < 240; i++ {
		r.Frame(frame, Controls{Input: system.InputState{Right: i < 150, Jump: i%40 < 10}})
	}

	data := rec.Data()
	res, err := replay.Run(&data, newSession(t, floorRows, config.Default()))
	require.NoError(t, err)

	live := r.Session()
	assert.Equal(t, live.State(), res.State)
	assert.Equal(t, live.Score(), res.Score)
	assert.Equal(t, live.Elapsed(), res.Elapsed)
	assert.Equal(t, live.Snapshot(), newReplayed(t, data).Snapshot())
}

func newReplayed(t *testing.T, data replay.ReplayData) *session.Session {
	t.Helper()
	s := newSession(t, floorRows, config.Default())
	_, err := replay.Run(&data, s)
	require.NoError(t, err)
	return s
}

func TestRunner_SaveWithoutRecorder(t *testing.T) {
	r := New(newSession(t, floorRows, config.Default()))
	assert.NoError(t, r.Save("ignored.json"))
	assert.Nil(t, r.Recorder())
}

func TestCameraX(t *testing.T) {
	level := &entity.Level{Width: 40, Height: 10}

	tests := []struct {
		name    string
		playerX float64
		trapped bool
		trapX   float64
		viewW   float64
		want    float64
	}{
		{"follows player", 2, false, 0, 10, 2},
		{"clamped at left edge", -18, false, 0, 10, -15},
		{"clamped at right edge", 19, false, 0, 10, 15},
		{"trap holds the left edge", 1, true, 0, 10, 5},
		{"trap does not block forward", 8, true, 0, 10, 8},
		{"wide view centers", 3, false, 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := session.Snapshot{Trapped: tt.trapped, TrapX: tt.trapX}
			snap.Player.X = tt.playerX
			assert.InDelta(t, tt.want, CameraX(level, snap, tt.viewW), 1e-9)
		})
	}
}
