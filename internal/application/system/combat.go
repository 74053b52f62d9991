package system

import (
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// DeathCause says what killed the player
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFall
	CauseEnemy
	CauseBoss
	CauseBanana
)

// String returns the string representation of the cause
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFall:
		return "fall"
	case CauseEnemy:
		return "enemy"
	case CauseBoss:
		return "boss"
	case CauseBanana:
		return "banana"
	default:
		return "unknown"
	}
}

// CombatResult summarizes one combat pass
type CombatResult struct {
	EnemiesKilled []int // indexes into the enemy slice
	BossHit       bool
	BossKilled    bool
	PlayerKilled  bool
	Cause         DeathCause
}

// CombatSystem resolves contacts between the player, the boss, its bananas and the enemies
type CombatSystem struct {
	config *config.Tuning

	// Event callbacks
	OnSound func(s entity.SoundEffect)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.Tuning) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// Resolve runs boss, banana and enemy checks in that order.
// Within each target a stomp is checked before body contact.
func (s *CombatSystem) Resolve(player *entity.Player, boss *entity.Monkey, enemies []*entity.Enemy) CombatResult {
	var res CombatResult
	if player.Dead {
		return res
	}

	if boss != nil {
		s.resolveBoss(player, boss, &res)
		if !res.PlayerKilled {
			s.resolveBananas(player, boss, &res)
		}
	}

	for i, e := range enemies {
		if res.PlayerKilled {
			break
		}
		s.resolveEnemy(player, i, e, &res)
	}

	return res
}

func (s *CombatSystem) resolveBoss(player *entity.Player, boss *entity.Monkey, res *CombatResult) {
	if !boss.IsAlive() {
		return
	}

	if s.stomps(player, boss.Head()) {
		switch boss.Damage(1) {
		case entity.DamageIgnored:
			s.emit(entity.SoundClick)
		case entity.DamageTaken:
			res.BossHit = true
			s.emit(entity.SoundHit)
		case entity.DamageKilled:
			res.BossHit = true
			res.BossKilled = true
			s.emit(entity.SoundHit)
		}
		player.Bounce(s.config.Player.JumpSpeed)
		return
	}

	if player.Box().Overlaps(boss.Hitbox()) {
		s.kill(player, CauseBoss, res)
	}
}

func (s *CombatSystem) resolveBananas(player *entity.Player, boss *entity.Monkey, res *CombatResult) {
	body := player.Box()
	for _, b := range boss.Bananas {
		if body.Overlaps(b.Box()) {
			s.kill(player, CauseBanana, res)
			return
		}
	}
}

func (s *CombatSystem) resolveEnemy(player *entity.Player, i int, e *entity.Enemy, res *CombatResult) {
	if !e.IsAlive() {
		return
	}

	if s.stomps(player, e.Head()) {
		if e.Damage(1) == entity.DamageKilled {
			res.EnemiesKilled = append(res.EnemiesKilled, i)
		}
		s.emit(entity.SoundHit)
		player.Bounce(s.config.Player.JumpSpeed)
		return
	}

	if player.Box().Overlaps(e.Hitbox()) {
		s.kill(player, CauseEnemy, res)
	}
}

// stomps reports whether the descending player's feet land on head
func (s *CombatSystem) stomps(player *entity.Player, head entity.Box) bool {
	if !player.Descending() {
		return false
	}
	p := s.config.Player
	return player.FootProbe(p.FootProbe, p.FootDrop).Overlaps(head)
}

func (s *CombatSystem) kill(player *entity.Player, cause DeathCause, res *CombatResult) {
	if !player.Die() {
		return
	}
	res.PlayerKilled = true
	res.Cause = cause
	s.emit(entity.SoundDead)
}

func (s *CombatSystem) emit(sound entity.SoundEffect) {
	if s.OnSound != nil {
		s.OnSound(sound)
	}
}
