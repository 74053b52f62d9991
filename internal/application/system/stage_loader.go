package system

import (
	"errors"
	"fmt"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// Level grid characters
const (
	CharTile  = '#'
	CharEnemy = 'E'
	CharBoss  = 'M'
	CharSpawn = 'S'
	CharTrap  = 'T'
)

var (
	ErrEmptyLevel     = errors.New("level is empty")
	ErrNoSpawn        = errors.New("level has no player spawn")
	ErrNoBoss         = errors.New("level has no boss")
	ErrMultipleSpawns = errors.New("level has more than one player spawn")
	ErrMultipleBosses = errors.New("level has more than one boss")
)

// LoadLevel converts a text grid into a Level. It either returns a complete
// level or an error, never a partial one.
func LoadLevel(cfg *config.LevelConfig, tuning *config.Tuning) (*entity.Level, error) {
	width := 0
	for _, row := range cfg.Rows {
		width = max(width, len([]rune(row)))
	}
	height := len(cfg.Rows)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("level %s: %w", cfg.Name, ErrEmptyLevel)
	}

	lvl := &entity.Level{
		Name:   cfg.Name,
		Width:  width,
		Height: height,
	}
	offset := entity.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	tileOffset := entity.Vec2{X: entity.TileSide / 2, Y: -entity.TileSide / 2}
	tileExtent := entity.Vec2{X: entity.TileSide, Y: entity.TileSide}

	var spawns, bosses int
	trapFound := false
	for y, row := range cfg.Rows {
		for x, c := range []rune(row) {
			pos := entity.Vec2{X: float64(x) - offset.X, Y: -float64(y) + offset.Y}.Add(tileOffset)
			switch c {
			case CharTile:
				lvl.Tiles = append(lvl.Tiles, entity.Tile{Position: pos, Extent: tileExtent})
			case CharEnemy:
				lvl.EnemySpawns = append(lvl.EnemySpawns, feetOnCell(pos, tuning.Enemy.Extent.Y))
			case CharBoss:
				bosses++
				lvl.BossSpawn = feetOnCell(pos, tuning.Boss.Extent.Y)
			case CharSpawn:
				spawns++
				lvl.PlayerSpawn = feetOnCell(pos, tuning.Player.Extent.Y)
			case CharTrap:
				if !trapFound || pos.X < lvl.TrapX {
					lvl.TrapX = pos.X
				}
				trapFound = true
			}
		}
	}

	switch {
	case spawns == 0:
		return nil, fmt.Errorf("level %s: %w", cfg.Name, ErrNoSpawn)
	case spawns > 1:
		return nil, fmt.Errorf("level %s: %w (%d)", cfg.Name, ErrMultipleSpawns, spawns)
	case bosses == 0:
		return nil, fmt.Errorf("level %s: %w", cfg.Name, ErrNoBoss)
	case bosses > 1:
		return nil, fmt.Errorf("level %s: %w (%d)", cfg.Name, ErrMultipleBosses, bosses)
	}

	if !trapFound {
		lvl.TrapX = lvl.BossSpawn.X - tuning.Session.TrapDistance
	}

	return lvl, nil
}

// feetOnCell lifts an entity of height h so its feet rest on the bottom of the cell at pos
func feetOnCell(pos entity.Vec2, h float64) entity.Vec2 {
	return pos.Add(entity.Vec2{Y: (h - entity.TileSide) / 2})
}
