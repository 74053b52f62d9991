package system

import (
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// Policy selects how a body reacts to tiles in Resolve
type Policy int

const (
	// PolicyStop zeroes the blocked axis (player)
	PolicyStop Policy = iota
	// PolicyPatrol reverses on a wall or ledge ahead (enemies)
	PolicyPatrol
)

// Contact reports what Resolve ran into this frame
type Contact struct {
	X        bool // horizontal move blocked
	Y        bool // vertical move blocked
	Grounded bool // blocked while moving down
	Reversed bool // patrol turned around
}

// PhysicsSystem integrates bodies and resolves them against the level tiles
type PhysicsSystem struct {
	config *config.Tuning
	level  *entity.Level
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Tuning, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// Gravity returns the world gravity
func (s *PhysicsSystem) Gravity() entity.Vec2 {
	return s.config.Physics.Gravity
}

// Accelerate adds a*dt to the velocity and clamps it to the max velocity
func (s *PhysicsSystem) Accelerate(body *entity.Body, a entity.Vec2, dt float64) {
	limit := s.config.Physics.MaxVelocity
	body.Velocity = body.Velocity.Add(a.Scale(dt)).Clamp(limit.Neg(), limit)
}

// Overlaps reports whether a box at pos with extent ext overlaps any tile
func (s *PhysicsSystem) Overlaps(pos, ext entity.Vec2) bool {
	for i := range s.level.Tiles {
		t := &s.level.Tiles[i]
		if entity.Collides(pos, ext, t.Position, t.Extent) {
			return true
		}
	}
	return false
}

// Resolve moves the body by velocity*dt, reacting to tiles according to policy
func (s *PhysicsSystem) Resolve(body *entity.Body, dt float64, policy Policy) Contact {
	switch policy {
	case PolicyPatrol:
		return s.patrol(body, dt)
	default:
		return s.stop(body, dt)
	}
}

// stop tests each axis on its own and cancels the blocked one
func (s *PhysicsSystem) stop(body *entity.Body, dt float64) Contact {
	var c Contact
	disp := body.Velocity.Scale(dt)

	if s.Overlaps(body.Position.Add(entity.Vec2{X: disp.X}), body.Extent) {
		disp.X = 0
		body.Velocity.X = 0
		c.X = true
	}

	if s.Overlaps(body.Position.Add(entity.Vec2{Y: disp.Y}), body.Extent) {
		if body.Velocity.Y < 0 {
			c.Grounded = true
		}
		disp.Y = 0
		body.Velocity.Y = 0
		c.Y = true
	}

	body.Position = body.Position.Add(disp)
	return c
}

func (s *PhysicsSystem) patrol(body *entity.Body, dt float64) Contact {
	var c Contact
	probe := s.config.Enemy.ProbeDistance
	if s.WallAhead(body, probe) || s.LedgeAhead(body, probe, s.config.Enemy.LedgeDrop) {
		body.Velocity.X = -body.Velocity.X
		c.Reversed = true
	}
	body.Position = body.Position.Add(body.Velocity.Scale(dt))
	return c
}

// WallAhead reports whether the body would hit a tile distance units ahead
func (s *PhysicsSystem) WallAhead(body *entity.Body, distance float64) bool {
	dir := entity.Sign(body.Velocity.X)
	if dir == 0 {
		return false
	}
	return s.Overlaps(body.Position.Add(entity.Vec2{X: dir * distance}), body.Extent)
}

// LedgeAhead reports whether there is no ground under the next step.
// The probe is the body shifted distance ahead and drop down.
func (s *PhysicsSystem) LedgeAhead(body *entity.Body, distance, drop float64) bool {
	dir := entity.Sign(body.Velocity.X)
	if dir == 0 {
		return false
	}
	return !s.Overlaps(body.Position.Add(entity.Vec2{X: dir * distance, Y: -drop}), body.Extent)
}
