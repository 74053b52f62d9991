package system

import (
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// EnemySystem moves the ground patrollers
type EnemySystem struct {
	config  *config.Tuning
	physics *PhysicsSystem
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.Tuning, physics *PhysicsSystem) *EnemySystem {
	return &EnemySystem{config: cfg, physics: physics}
}

// Spawn creates an enemy at spawn using the tuned shape and speed
func (s *EnemySystem) Spawn(spawn entity.Vec2) *entity.Enemy {
	e := s.config.Enemy
	return entity.NewEnemy(spawn, e.Extent, e.Speed, e.Health, s.config.EnemyHurtbox())
}

// Update patrols every live enemy. Corpses stay where they fell.
func (s *EnemySystem) Update(enemies []*entity.Enemy, dt float64) {
	for _, e := range enemies {
		if !e.IsAlive() {
			e.Velocity = entity.Vec2{}
			continue
		}
		s.physics.Resolve(&e.Body, dt, PolicyPatrol)
	}
}
