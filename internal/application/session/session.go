// Package session owns a level's entities and advances them one frame at a time.
package session

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// Loader rebuilds the level and tuning for a reset
type Loader interface {
	Load() (*entity.Level, *config.Tuning, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func() (*entity.Level, *config.Tuning, error)

// Load calls f
func (f LoaderFunc) Load() (*entity.Level, *config.Tuning, error) { return f() }

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for state transitions
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets where Reset reloads the level from. Without one, Reset
// rebuilds from the level the session was created with.
func WithLoader(l Loader) Option {
	return func(s *Session) { s.loader = l }
}

// Session is the per-level orchestrator. It is not safe for concurrent use.
type Session struct {
	cfg    *config.Tuning
	level  *entity.Level
	rng    system.RNG
	logger *log.Logger
	loader Loader

	physics *system.PhysicsSystem
	input   *system.InputSystem
	boss    *system.BossSystem
	enemies *system.EnemySystem
	combat  *system.CombatSystem

	player  *entity.Player
	monkey  *entity.Monkey
	enemyXs []*entity.Enemy

	state      state.SessionState
	frame      uint64
	trapped    bool
	score      int
	bossScored bool
	elapsed    float64
	finalTime  float64
	finalScore int

	sounds []entity.SoundEffect
	events []system.Event
}

// New creates a session for level. rng drives every random draw of the AI.
func New(level *entity.Level, cfg *config.Tuning, rng system.RNG, opts ...Option) *Session {
	s := &Session{
		rng:    rng,
		logger: log.New(io.Discard),
		sounds: make([]entity.SoundEffect, 0, 8),
		events: make([]system.Event, 0, 4),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.build(level, cfg)
	return s
}

// build wires fresh systems and entities for level
func (s *Session) build(level *entity.Level, cfg *config.Tuning) {
	s.cfg = cfg
	s.level = level

	s.physics = system.NewPhysicsSystem(cfg, level)
	s.input = system.NewInputSystem(cfg, s.physics)
	s.boss = system.NewBossSystem(cfg, s.physics, s.rng)
	s.enemies = system.NewEnemySystem(cfg, s.physics)
	s.combat = system.NewCombatSystem(cfg)
	s.input.OnSound = s.playSound
	s.boss.OnSound = s.playSound
	s.combat.OnSound = s.playSound

	s.player = entity.NewPlayer(level.PlayerSpawn, cfg.Player.Extent)
	s.monkey = s.boss.Spawn(level.BossSpawn)
	s.enemyXs = make([]*entity.Enemy, 0, len(level.EnemySpawns))
	for _, sp := range level.EnemySpawns {
		s.enemyXs = append(s.enemyXs, s.enemies.Spawn(sp))
	}

	s.state = state.StateNotStarted
	s.frame = 0
	s.trapped = false
	s.score = 0
	s.bossScored = false
	s.elapsed = 0
	s.finalTime = 0
	s.finalScore = 0
	s.sounds = s.sounds[:0]
	s.events = s.events[:0]
}

// Start arms the timer and begins simulation. It only acts on a fresh session.
func (s *Session) Start() bool {
	if s.state != state.StateNotStarted {
		return false
	}
	s.state = state.StateRunning
	s.events = append(s.events, system.StartedEvent{})
	s.logger.Info("session started", "level", s.level.Name, "enemies", len(s.enemyXs))
	return true
}

// Reset discards all state and rebuilds the level. On a load error the
// current session is left untouched.
func (s *Session) Reset() error {
	level, cfg := s.level, s.cfg
	if s.loader != nil {
		l, c, err := s.loader.Load()
		if err != nil {
			s.logger.Error("reload failed, keeping current level", "error", err)
			return err
		}
		level, cfg = l, c
	}
	s.build(level, cfg)
	s.logger.Info("level reset", "level", level.Name)
	return nil
}

// Step advances the world by dt seconds with the held keys in input.
// Sounds and events from the previous step are cleared first.
func (s *Session) Step(dt float64, input system.InputState) {
	s.sounds = s.sounds[:0]
	s.events = s.events[:0]

	if !s.state.Simulating() {
		return
	}
	dt = s.clampDT(dt)
	s.frame++
	s.elapsed += dt

	s.input.UpdatePlayer(s.player, input, dt)
	s.boss.Update(s.monkey, s.player.Position, dt)
	s.updateTrap()
	s.enemies.Update(s.enemyXs, dt)
	s.checkFall()

	res := s.combat.Resolve(s.player, s.monkey, s.enemyXs)
	if res.PlayerKilled {
		s.playerDied(res.Cause)
	}
	s.award(res)

	s.monkey.PruneBananas(s.level.MinBounds().Y)

	s.finishFrame()
}

// clampDT rejects negative or NaN steps and bounds large ones
func (s *Session) clampDT(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if limit := s.cfg.Session.MaxFrameDT; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// updateTrap latches the trap once the player crosses it and keeps the player from retreating
func (s *Session) updateTrap() {
	trapX := s.level.TrapX
	if !s.trapped && s.player.Position.X > trapX {
		s.trapped = true
		s.events = append(s.events, system.TrapEngagedEvent{X: trapX})
		s.logger.Info("trap engaged", "x", trapX)
	}
	if !s.trapped {
		return
	}

	left := trapX + s.player.Extent.X/2
	if s.player.Position.X < left {
		s.player.Position.X = left
		if s.player.Velocity.X < 0 {
			s.player.Velocity.X = 0
		}
	}
}

func (s *Session) checkFall() {
	limit := s.level.MinBounds().Y - s.cfg.Player.FallMargin*s.player.Extent.Y
	if s.player.Position.Y >= limit {
		return
	}
	if s.player.Die() {
		s.playSound(entity.SoundFall)
		s.playerDied(system.CauseFall)
	}
}

func (s *Session) playerDied(cause system.DeathCause) {
	s.events = append(s.events, system.PlayerDiedEvent{Cause: cause, Position: s.player.Position})
	s.logger.Info("player died", "cause", cause, "x", s.player.Position.X, "y", s.player.Position.Y)
}

// award scores kills. The boss bonus is paid once per session.
func (s *Session) award(res system.CombatResult) {
	for _, i := range res.EnemiesKilled {
		s.score += s.cfg.Scoring.Enemy
		s.events = append(s.events, system.EnemyKilledEvent{Index: i, Points: s.cfg.Scoring.Enemy})
	}

	if res.BossHit && s.monkey.IsAlive() {
		s.events = append(s.events, system.BossDamagedEvent{Health: s.monkey.Health})
		s.logger.Debug("boss hit", "health", s.monkey.Health)
	}

	if !s.monkey.IsAlive() && !s.bossScored {
		s.bossScored = true
		s.score += s.cfg.Scoring.Boss
		s.events = append(s.events, system.BossDefeatedEvent{Points: s.cfg.Scoring.Boss})
		s.logger.Info("boss defeated", "score", s.score)
	}
}

// finishFrame moves the session out of Running when the player died or the boss fell.
// Completion freezes the world, bananas still in flight included.
func (s *Session) finishFrame() {
	switch {
	case s.player.Dead:
		s.state = state.StatePlayerDead
	case !s.monkey.IsAlive():
		s.state = state.StateCompleted
		s.finalTime = s.elapsed
		s.finalScore = s.score + s.timeBonus(s.elapsed)
		s.events = append(s.events, system.CompletedEvent{
			Seconds: s.finalTime,
			Score:   s.score,
			Total:   s.finalScore,
		})
		s.logger.Info("level completed", "seconds", s.finalTime, "score", s.score, "total", s.finalScore)
	}
}

// timeBonus pays for every whole second under par
func (s *Session) timeBonus(seconds float64) int {
	left := s.cfg.Scoring.ParSeconds - int(math.Floor(seconds))
	return max(0, left) * s.cfg.Scoring.BonusPerSecond
}

func (s *Session) playSound(sound entity.SoundEffect) {
	s.sounds = append(s.sounds, sound)
}

// State returns the session state
func (s *Session) State() state.SessionState { return s.state }

// Sounds returns the cues of the last step. Valid until the next Step.
func (s *Session) Sounds() []entity.SoundEffect { return s.sounds }

// Events returns the events of the last step (or of Start). Valid until the next Step.
func (s *Session) Events() []system.Event { return s.events }

// Score returns the kill score so far
func (s *Session) Score() int { return s.score }

// Elapsed returns the simulated seconds since Start
func (s *Session) Elapsed() float64 { return s.elapsed }

// FinalTime returns the completion time, zero until completed
func (s *Session) FinalTime() float64 { return s.finalTime }

// FinalScore returns score plus time bonus, zero until completed
func (s *Session) FinalScore() int { return s.finalScore }

// Trapped reports whether the trap line has been crossed
func (s *Session) Trapped() bool { return s.trapped }

// Frame returns the number of simulated frames
func (s *Session) Frame() uint64 { return s.frame }

// Level returns the static level data
func (s *Session) Level() *entity.Level { return s.level }

// Tuning returns the tuning in use
func (s *Session) Tuning() *config.Tuning { return s.cfg }
