package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

func TestPhysicsSystem_LandsFromJustAbove(t *testing.T) {
	cfg := testTuning()
	lvl := floorLevel(-5, 5)
	physics := NewPhysicsSystem(cfg, lvl)
	input := NewInputSystem(cfg, physics)

	p := entity.NewPlayer(entity.V(0, cfg.Player.Extent.Y/2+0.01), cfg.Player.Extent)
	startY := p.Position.Y

	input.UpdatePlayer(p, InputState{}, frame)

	assert.True(t, p.Grounded)
	assert.Equal(t, 0.0, p.Velocity.Y)
	assert.Equal(t, startY, p.Position.Y)
}

func TestPhysicsSystem_GroundedMeansZeroVerticalVelocity(t *testing.T) {
	cfg := testTuning()
	rng := testRNG()

	for i := 0; i < 50; i++ {
		lvl := &entity.Level{Width: 80, Height: 40}
		// a few random floating platforms above a floor
		for x := -10; x < 10; x++ {
			lvl.Tiles = append(lvl.Tiles, tileAt(float64(x)+0.5, -0.5))
			if rng.Intn(3) == 0 {
				lvl.Tiles = append(lvl.Tiles, tileAt(float64(x)+0.5, float64(rng.Intn(6))+0.5))
			}
		}
		physics := NewPhysicsSystem(cfg, lvl)

		body := &entity.Body{
			Position: entity.V(rng.Float64()*16-8, 12+rng.Float64()*5),
			Extent:   cfg.Player.Extent,
			Velocity: entity.V(rng.Float64()*20-10, rng.Float64()*10-5),
		}
		for f := 0; f < 240; f++ {
			physics.Accelerate(body, physics.Gravity(), frame)
			c := physics.Resolve(body, frame, PolicyStop)
			if c.Grounded {
				require.Equal(t, 0.0, body.Velocity.Y)
			}
			if c.Y {
				require.Equal(t, 0.0, body.Velocity.Y)
			}
			if c.X {
				require.Equal(t, 0.0, body.Velocity.X)
			}
		}
	}
}

func TestPhysicsSystem_StopAxisSeparated(t *testing.T) {
	cfg := testTuning()
	lvl := floorLevel(-5, 5)
	addWall(lvl, 2, 3)
	physics := NewPhysicsSystem(cfg, lvl)

	// right edge flush against the wall at x=2
	body := &entity.Body{
		Position: entity.V(2-0.45, 0.9),
		Extent:   cfg.Player.Extent,
		Velocity: entity.V(5, -1),
	}
	startX := body.Position.X

	c := physics.Resolve(body, frame, PolicyStop)

	assert.True(t, c.X)
	assert.True(t, c.Y)
	assert.True(t, c.Grounded)
	assert.Equal(t, entity.Vec2{}, body.Velocity)
	assert.Equal(t, startX, body.Position.X)
}

func TestPhysicsSystem_CeilingIsNotGround(t *testing.T) {
	cfg := testTuning()
	lvl := &entity.Level{Tiles: []entity.Tile{tileAt(0.5, 3.5)}}
	physics := NewPhysicsSystem(cfg, lvl)

	body := &entity.Body{
		Position: entity.V(0.5, 3-0.9),
		Extent:   cfg.Player.Extent,
		Velocity: entity.V(0, 10),
	}
	c := physics.Resolve(body, frame, PolicyStop)

	assert.True(t, c.Y)
	assert.False(t, c.Grounded)
	assert.Equal(t, 0.0, body.Velocity.Y)
}

func TestPhysicsSystem_Accelerate_Clamps(t *testing.T) {
	cfg := testTuning()
	physics := NewPhysicsSystem(cfg, floorLevel(0, 1))

	body := &entity.Body{}
	for i := 0; i < 1000; i++ {
		physics.Accelerate(body, entity.V(30, -400), frame)
	}

	assert.Equal(t, cfg.Physics.MaxVelocity.X, body.Velocity.X)
	assert.Equal(t, -cfg.Physics.MaxVelocity.Y, body.Velocity.Y)
}

func TestPhysicsSystem_Probes(t *testing.T) {
	cfg := testTuning()
	lvl := floorLevel(-5, 5)
	addWall(lvl, 3, 2)
	physics := NewPhysicsSystem(cfg, lvl)
	probe, drop := cfg.Enemy.ProbeDistance, cfg.Enemy.LedgeDrop

	tests := []struct {
		name      string
		x, vx     float64
		wantWall  bool
		wantLedge bool
	}{
		{"open floor", 0, 5, false, false},
		{"wall ahead", 2, 5, true, false},
		{"wall behind", 2, -5, false, false},
		{"ledge ahead", -4.6, -5, false, true},
		{"ledge behind", -4.6, 5, false, false},
		{"standing still", -4.6, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &entity.Body{
				Position: entity.V(tt.x, 1),
				Extent:   cfg.Enemy.Extent,
				Velocity: entity.V(tt.vx, 0),
			}
			assert.Equal(t, tt.wantWall, physics.WallAhead(body, probe))
			assert.Equal(t, tt.wantLedge, physics.LedgeAhead(body, probe, drop))
		})
	}
}

func TestPhysicsSystem_PatrolStaysOnPlatform(t *testing.T) {
	cfg := testTuning()
	lvl := floorLevel(-5, 5)
	physics := NewPhysicsSystem(cfg, lvl)

	body := &entity.Body{
		Position: entity.V(0, 1),
		Extent:   cfg.Enemy.Extent,
		Velocity: entity.V(-5, 0),
	}

	reversals := 0
	for i := 0; i < 600; i++ {
		if physics.Resolve(body, frame, PolicyPatrol).Reversed {
			reversals++
		}
		require.LessOrEqual(t, body.Position.X, 4.6)
		require.GreaterOrEqual(t, body.Position.X, -4.6)
		require.Equal(t, 5.0, abs(body.Velocity.X))
		require.Equal(t, 1.0, body.Position.Y)
	}
	assert.GreaterOrEqual(t, reversals, 2)
}
