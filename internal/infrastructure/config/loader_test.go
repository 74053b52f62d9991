package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadTuning_Embedded(t *testing.T) {
	cfg, err := NewEmbeddedLoader().LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, -40.0, cfg.Physics.Gravity.Y)
	assert.Equal(t, 10.0, cfg.Physics.MaxVelocity.X)
	assert.Equal(t, 100.0, cfg.Physics.MaxVelocity.Y)
	assert.Equal(t, 0.9, cfg.Player.Extent.X)
	assert.Equal(t, 15.0, cfg.Player.JumpSpeed)
	assert.Equal(t, 0.25, cfg.Player.AirControl)
	assert.Equal(t, -5.0, cfg.Enemy.Speed)
	assert.Equal(t, 3, cfg.Boss.Health)
	assert.Equal(t, -15.0, cfg.Boss.ChargeSpeed)
	assert.Equal(t, 30.0, cfg.Boss.MaxThrowDistance)
	assert.Equal(t, 500, cfg.Scoring.Boss)
	assert.Equal(t, 100, cfg.Scoring.Enemy)
	assert.InDelta(t, 1.0/60, cfg.Session.FixedDT, 1e-12)
}

func TestDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		cfg := Default()
		assert.Equal(t, 0.5, cfg.Banana.Extent.X)
	})
}

func TestLoader_LoadLevel(t *testing.T) {
	cfg, err := NewEmbeddedLoader().LoadLevel("level1")
	require.NoError(t, err)

	assert.Equal(t, "level1", cfg.Name)
	assert.Len(t, cfg.Rows, 12)
	for _, row := range cfg.Rows {
		assert.Len(t, row, 72)
	}
}

func TestLoader_LoadLevel_Missing(t *testing.T) {
	_, err := NewEmbeddedLoader().LoadLevel("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read level nope")
}

func TestLoader_LoadTuning_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing file",
			files:   fstest.MapFS{},
			wantErr: "failed to read tuning.yaml",
		},
		{
			name:    "bad yaml",
			files:   fstest.MapFS{"tuning.yaml": {Data: []byte("physics: [")}},
			wantErr: "failed to parse tuning.yaml",
		},
		{
			name:    "unknown field",
			files:   fstest.MapFS{"tuning.yaml": {Data: []byte("physics:\n  warp: 9\n")}},
			wantErr: "failed to parse tuning.yaml",
		},
		{
			name:    "zero values",
			files:   fstest.MapFS{"tuning.yaml": {Data: []byte("physics:\n  drag: 10\n")}},
			wantErr: "invalid tuning.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.files, "test").LoadTuning()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadAll_FromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefaults(dir))

	cfg, err := NewLoader(dir).LoadAll("level1")
	require.NoError(t, err)
	assert.NotNil(t, cfg.Tuning)
	assert.Equal(t, "level1", cfg.Level.Name)
}

func TestParseLevel(t *testing.T) {
	cfg := ParseLevel("crlf", []byte("#  #\r\n####\r\n\r\n\n"))
	assert.Equal(t, []string{"#  #", "####"}, cfg.Rows)
}

func TestTuning_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Tuning)
		wantErr string
	}{
		{"defaults", func(*Tuning) {}, ""},
		{"zero charge speed", func(c *Tuning) { c.Boss.ChargeSpeed = 0 }, "boss.charge_speed"},
		{"zero probe distance", func(c *Tuning) { c.Enemy.ProbeDistance = 0 }, "enemy.probe_distance"},
		{"negative probe distance", func(c *Tuning) { c.Enemy.ProbeDistance = -1 }, "enemy.probe_distance"},
		{"zero jump speed", func(c *Tuning) { c.Player.JumpSpeed = 0 }, "player.jump_speed"},
		{"positive charge speed", func(c *Tuning) { c.Boss.ChargeSpeed = 15 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
