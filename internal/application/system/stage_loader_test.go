package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

func levelConfig(rows ...string) *config.LevelConfig {
	return &config.LevelConfig{Name: "test", Rows: rows}
}

func TestLoadLevel(t *testing.T) {
	cfg := testTuning()
	lvl, err := LoadLevel(levelConfig(
		"#      #",
		"# S E M#",
		"########",
	), cfg)
	require.NoError(t, err)

	assert.Equal(t, 8, lvl.Width)
	assert.Equal(t, 3, lvl.Height)
	assert.Equal(t, entity.V(4, 1.5), lvl.MaxBounds())
	assert.Len(t, lvl.Tiles, 12)

	// bottom-left tile
	assert.Contains(t, lvl.Tiles, entity.Tile{Position: entity.V(-3.5, -1), Extent: entity.V(1, 1)})

	// feet rest on the floor top at y=-0.5
	assert.InDelta(t, -1.5, lvl.PlayerSpawn.X, 1e-12)
	assert.InDelta(t, -0.5, lvl.PlayerSpawn.Y-cfg.Player.Extent.Y/2, 1e-12)
	require.Len(t, lvl.EnemySpawns, 1)
	assert.InDelta(t, 0.5, lvl.EnemySpawns[0].X, 1e-12)
	assert.InDelta(t, -0.5, lvl.EnemySpawns[0].Y-cfg.Enemy.Extent.Y/2, 1e-12)
	assert.InDelta(t, 2.5, lvl.BossSpawn.X, 1e-12)
	assert.InDelta(t, -0.5, lvl.BossSpawn.Y-cfg.Boss.Extent.Y/2, 1e-12)

	// no T marker: trap sits a fixed distance before the boss
	assert.InDelta(t, 2.5-cfg.Session.TrapDistance, lvl.TrapX, 1e-12)
}

func TestLoadLevel_TrapMarker(t *testing.T) {
	lvl, err := LoadLevel(levelConfig(
		"     T   T",
		"S        M",
		"##########",
	), testTuning())
	require.NoError(t, err)

	assert.InDelta(t, 0.5, lvl.TrapX, 1e-12, "leftmost marker wins")
}

func TestLoadLevel_RaggedRowsAndUnknownChars(t *testing.T) {
	lvl, err := LoadLevel(levelConfig(
		"S  ?? M",
		"###",
		"#######~~",
	), testTuning())
	require.NoError(t, err)

	assert.Equal(t, 9, lvl.Width)
	assert.Len(t, lvl.Tiles, 10)
}

func TestLoadLevel_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr error
	}{
		{"no rows", nil, ErrEmptyLevel},
		{"only empty rows", []string{"", ""}, ErrEmptyLevel},
		{"no spawn", []string{"  M", "###"}, ErrNoSpawn},
		{"two spawns", []string{"S S M", "#####"}, ErrMultipleSpawns},
		{"no boss", []string{"S  ", "###"}, ErrNoBoss},
		{"two bosses", []string{"S M M", "#####"}, ErrMultipleBosses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := LoadLevel(levelConfig(tt.rows...), testTuning())
			assert.Nil(t, lvl)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "level test")
		})
	}
}

func TestLoadLevel_EmbeddedLevel(t *testing.T) {
	cfg, err := config.NewEmbeddedLoader().LoadAll("level1")
	require.NoError(t, err)

	lvl, err := LoadLevel(cfg.Level, cfg.Tuning)
	require.NoError(t, err)

	assert.Len(t, lvl.EnemySpawns, 3)
	assert.Less(t, lvl.PlayerSpawn.X, lvl.TrapX)
	assert.Less(t, lvl.TrapX, lvl.BossSpawn.X)

	// every spawn starts clear of the tiles
	physics := NewPhysicsSystem(cfg.Tuning, lvl)
	assert.False(t, physics.Overlaps(lvl.PlayerSpawn, cfg.Tuning.Player.Extent))
	assert.False(t, physics.Overlaps(lvl.BossSpawn, cfg.Tuning.Boss.Extent))
	for _, e := range lvl.EnemySpawns {
		assert.False(t, physics.Overlaps(e, cfg.Tuning.Enemy.Extent))
	}
}
