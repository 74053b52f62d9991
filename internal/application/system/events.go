package system

import "github.com/fabiojmendes/super-jeff/internal/domain/entity"

// Event is something the session reports to its frontends once, in the frame it happened
type Event interface {
	isEvent()
}

// StartedEvent is emitted when the session timer is armed
type StartedEvent struct{}

func (StartedEvent) isEvent() {}

// PlayerDiedEvent is emitted when the player dies
type PlayerDiedEvent struct {
	Cause    DeathCause
	Position entity.Vec2
}

func (PlayerDiedEvent) isEvent() {}

// TrapEngagedEvent is emitted when the player crosses the trap line
type TrapEngagedEvent struct {
	X float64
}

func (TrapEngagedEvent) isEvent() {}

// EnemyKilledEvent is emitted for each enemy stomped to death
type EnemyKilledEvent struct {
	Index  int
	Points int
}

func (EnemyKilledEvent) isEvent() {}

// BossDamagedEvent is emitted when a stomp takes health off the boss
type BossDamagedEvent struct {
	Health int
}

func (BossDamagedEvent) isEvent() {}

// BossDefeatedEvent is emitted once, when the boss dies
type BossDefeatedEvent struct {
	Points int
}

func (BossDefeatedEvent) isEvent() {}

// CompletedEvent is emitted when the level is cleared
type CompletedEvent struct {
	Seconds float64
	Score   int
	Total   int
}

func (CompletedEvent) isEvent() {}
