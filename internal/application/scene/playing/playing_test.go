package playing

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/runner"
	"github.com/fabiojmendes/super-jeff/internal/application/scene"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

var testRows = []string{
	"#                    #",
	"#                    #",
	"#                    #",
	"# S    E        M    #",
	"######################",
}

func newTestRunner(t *testing.T, opts ...runner.Option) *runner.Runner {
	t.Helper()
	cfg := config.Default()
	lvl, err := system.LoadLevel(&config.LevelConfig{Name: "test", Rows: testRows}, cfg)
	require.NoError(t, err)
	return runner.New(session.New(lvl, cfg, rand.New(rand.NewSource(12345))), opts...)
}

func scripted(controls ...runner.Controls) func() runner.Controls {
	i := 0
	return func() runner.Controls {
		if i >= len(controls) {
			return runner.Controls{}
		}
		c := controls[i]
		i++
		return c
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_UpdateStepsSession(t *testing.T) {
	p := New(newTestRunner(t), 640, 240, "", nil)
	p.poll = scripted(
		runner.Controls{Start: true},
		runner.Controls{Input: system.InputState{Right: true}},
	)

	next, err := p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StateRunning, p.snap.State)

	x := p.snap.Player.X
	_, err = p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Greater(t, p.snap.Player.X, x)
	assert.Equal(t, uint64(2), p.snap.Frame)
}

func TestPlaying_Scale(t *testing.T) {
	p := New(newTestRunner(t), 640, 240, "", nil)

	// five rows over 240 pixels
	assert.InDelta(t, 48, p.Scale(), 1e-9)

	x, y := p.ToScreen(entity.V(0, 0), 0)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 120, y, 1e-9)

	x, y = p.ToScreen(entity.V(1, 1), 0)
	assert.InDelta(t, 368, x, 1e-9)
	assert.InDelta(t, 72, y, 1e-9, "y points up in the world, down on screen")
}

func TestPlaying_OnExitSavesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := replay.NewRecorder(12345, "test")
	p := New(newTestRunner(t, runner.WithRecorder(rec)), 640, 240, path, nil)
	p.poll = scripted(runner.Controls{Start: true})

	for range 3 {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].S)
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := replay.NewRecorder(12345, "test")
	p := New(newTestRunner(t, runner.WithRecorder(rec)), 640, 240, path, nil)

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
	assert.NoFileExists(t, path)
}
