package system

import (
	"math"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// RNG is the random source threaded through the AI. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// minLaunchSpeed keeps the trajectory formula away from a zero divisor
const minLaunchSpeed = 0.5

// BossSystem runs the monkey state machine and its bananas
type BossSystem struct {
	config  *config.Tuning
	physics *PhysicsSystem
	rng     RNG

	// Event callbacks
	OnSound func(s entity.SoundEffect)
}

// NewBossSystem creates a new boss system
func NewBossSystem(cfg *config.Tuning, physics *PhysicsSystem, rng RNG) *BossSystem {
	return &BossSystem{
		config:  cfg,
		physics: physics,
		rng:     rng,
	}
}

// Spawn creates the boss at its spawn point with freshly rolled timers
func (s *BossSystem) Spawn(spawn entity.Vec2) *entity.Monkey {
	b := s.config.Boss
	boss := entity.NewMonkey(spawn, b.Extent, b.Health, b.ChargeSpeed, b.ChargeIncrement, s.config.BossHurtbox())
	boss.ThrowInterval = s.rollThrowInterval()
	boss.RageThreshold = s.rollRageThreshold()
	return boss
}

// Update advances the boss by one frame. Bananas in flight keep moving after the boss dies.
func (s *BossSystem) Update(boss *entity.Monkey, target entity.Vec2, dt float64) {
	s.updateBananas(boss, dt)

	switch boss.State {
	case entity.BossIdle:
		boss.ThrowTimer += dt
		if boss.ThrowTimer >= boss.ThrowInterval {
			boss.State = entity.BossThrowing
		}

	case entity.BossThrowing:
		s.throw(boss, target)
		boss.State = entity.BossIdle
		boss.ThrowTimer = 0
		boss.ThrowInterval = s.rollThrowInterval()
		if boss.Thrown >= boss.RageThreshold {
			boss.Enrage()
		}

	case entity.BossCharging:
		s.charge(boss, dt)

	case entity.BossDead:
		boss.Velocity = entity.Vec2{}
	}
}

// RageDelay returns the windup before a charge at the boss's current health
func (s *BossSystem) RageDelay(boss *entity.Monkey) float64 {
	if s.config.Boss.RageDelayScaled {
		return s.config.Boss.RageDelay * float64(boss.Health)
	}
	return s.config.Boss.RageDelay
}

// LaunchVelocity computes a banana velocity whose parabola lands dx away at the same height
func (s *BossSystem) LaunchVelocity(boss *entity.Monkey, dx float64) entity.Vec2 {
	b := s.config.Boss
	health := float64(boss.Health) / float64(max(1, boss.MaxHealth))
	vy := s.rng.Float64()*b.LaunchJitter*health + math.Abs(dx)/2
	vy = math.Max(vy, minLaunchSpeed)
	vx := dx * -s.config.Physics.Gravity.Y / vy / 2
	return entity.Vec2{X: vx, Y: vy}
}

func (s *BossSystem) throw(boss *entity.Monkey, target entity.Vec2) {
	dx := target.X - boss.Position.X
	if math.Abs(dx) > s.config.Boss.MaxThrowDistance {
		return
	}
	v := s.LaunchVelocity(boss, dx)
	boss.Bananas = append(boss.Bananas, entity.NewBanana(boss.Position, s.config.Banana.Extent, v))
	boss.Thrown++
	s.emit(entity.SoundThrow)
}

// charge waits out the windup, then runs until a wall or ledge is ahead
func (s *BossSystem) charge(boss *entity.Monkey, dt float64) {
	boss.RageTimer += dt
	if boss.RageTimer < s.RageDelay(boss) {
		return
	}

	if boss.Velocity.X == 0 {
		s.emit(entity.SoundRage)
	}
	boss.Velocity.X = boss.ChargeVelocity

	probe := s.config.Enemy.ProbeDistance
	if s.physics.WallAhead(&boss.Body, probe) || s.physics.LedgeAhead(&boss.Body, probe, s.config.Enemy.LedgeDrop) {
		boss.Calm()
		boss.ThrowInterval = s.rollThrowInterval()
		boss.RageThreshold = s.rollRageThreshold()
		return
	}

	boss.Position = boss.Position.Add(boss.Velocity.Scale(dt))
}

func (s *BossSystem) updateBananas(boss *entity.Monkey, dt float64) {
	g := s.physics.Gravity()
	for _, b := range boss.Bananas {
		b.Update(g, dt)
	}
}

// rollThrowInterval draws from [min, max)
func (s *BossSystem) rollThrowInterval() float64 {
	b := s.config.Boss
	return b.ThrowIntervalMin + s.rng.Float64()*(b.ThrowIntervalMax-b.ThrowIntervalMin)
}

// rollRageThreshold draws from [min, max), or min when the range is empty
func (s *BossSystem) rollRageThreshold() int {
	b := s.config.Boss
	span := b.RageThresholdMax - b.RageThresholdMin
	if span <= 0 {
		return b.RageThresholdMin
	}
	return b.RageThresholdMin + s.rng.Intn(span)
}

func (s *BossSystem) emit(sound entity.SoundEffect) {
	if s.OnSound != nil {
		s.OnSound(sound)
	}
}
