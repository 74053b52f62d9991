package system

import (
	"math/rand"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

const frame = 1.0 / 60

func testTuning() *config.Tuning {
	return config.Default()
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func tileAt(x, y float64) entity.Tile {
	return entity.Tile{Position: entity.V(x, y), Extent: entity.V(1, 1)}
}

// floorLevel builds a floor whose top is y=0 covering x in [from, to)
func floorLevel(from, to int) *entity.Level {
	lvl := &entity.Level{Name: "test", Width: 80, Height: 40}
	for x := from; x < to; x++ {
		lvl.Tiles = append(lvl.Tiles, tileAt(float64(x)+0.5, -0.5))
	}
	return lvl
}

// addWall stacks tiles on the floor in column x (cell [x, x+1))
func addWall(lvl *entity.Level, x, height int) {
	for y := 0; y < height; y++ {
		lvl.Tiles = append(lvl.Tiles, tileAt(float64(x)+0.5, float64(y)+0.5))
	}
}

// standingPlayer returns a grounded player whose feet rest on y=0
func standingPlayer(cfg *config.Tuning, x float64) *entity.Player {
	p := entity.NewPlayer(entity.V(x, cfg.Player.Extent.Y/2), cfg.Player.Extent)
	p.Grounded = true
	return p
}

type soundLog []entity.SoundEffect

func (l *soundLog) record(s entity.SoundEffect) {
	*l = append(*l, s)
}

func (l soundLog) count(s entity.SoundEffect) int {
	n := 0
	for _, got := range l {
		if got == s {
			n++
		}
	}
	return n
}
