package config

import (
	"errors"
	"fmt"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// Tuning is the root config for tuning.yaml
type Tuning struct {
	Physics PhysicsTuning `yaml:"physics"`
	Player  PlayerTuning  `yaml:"player"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	Boss    BossTuning    `yaml:"boss"`
	Banana  BananaTuning  `yaml:"banana"`
	Scoring ScoringTuning `yaml:"scoring"`
	Session SessionTuning `yaml:"session"`
}

type PhysicsTuning struct {
	Gravity     entity.Vec2 `yaml:"gravity"`
	Drag        float64     `yaml:"drag"`
	DragSnap    float64     `yaml:"drag_snap"`
	MaxVelocity entity.Vec2 `yaml:"max_velocity"`
}

type PlayerTuning struct {
	Extent     entity.Vec2 `yaml:"extent"`
	Speed      float64     `yaml:"speed"`
	AirControl float64     `yaml:"air_control"` // multiplier on Speed while airborne
	JumpSpeed  float64     `yaml:"jump_speed"`
	FootProbe  entity.Vec2 `yaml:"foot_probe"`
	FootDrop   float64     `yaml:"foot_drop"`
	FallMargin float64     `yaml:"fall_margin"` // in player heights below the world
}

type EnemyTuning struct {
	Extent        entity.Vec2 `yaml:"extent"`
	Speed         float64     `yaml:"speed"`
	Health        int         `yaml:"health"`
	ProbeDistance float64     `yaml:"probe_distance"`
	LedgeDrop     float64     `yaml:"ledge_drop"`
	HeadHeight    float64     `yaml:"head_height"`
	HitboxScale   entity.Vec2 `yaml:"hitbox_scale"`
}

type BossTuning struct {
	Extent           entity.Vec2 `yaml:"extent"`
	Health           int         `yaml:"health"`
	RageDelay        float64     `yaml:"rage_delay"`
	RageDelayScaled  bool        `yaml:"rage_delay_scaled"` // multiply RageDelay by current health
	ChargeSpeed      float64     `yaml:"charge_speed"`      // signed, negative charges left first
	ChargeIncrement  float64     `yaml:"charge_increment"`
	ThrowIntervalMin float64     `yaml:"throw_interval_min"`
	ThrowIntervalMax float64     `yaml:"throw_interval_max"`
	RageThresholdMin int         `yaml:"rage_threshold_min"`
	RageThresholdMax int         `yaml:"rage_threshold_max"`
	MaxThrowDistance float64     `yaml:"max_throw_distance"`
	LaunchJitter     float64     `yaml:"launch_jitter"`
	HeadHeight       float64     `yaml:"head_height"`
	HitboxScale      entity.Vec2 `yaml:"hitbox_scale"`
}

type BananaTuning struct {
	Extent entity.Vec2 `yaml:"extent"`
}

type ScoringTuning struct {
	Boss           int `yaml:"boss"`
	Enemy          int `yaml:"enemy"`
	ParSeconds     int `yaml:"par_seconds"`
	BonusPerSecond int `yaml:"bonus_per_second"`
}

type SessionTuning struct {
	FixedDT      float64 `yaml:"fixed_dt"`
	MaxFrameDT   float64 `yaml:"max_frame_dt"`
	TrapDistance float64 `yaml:"trap_distance"`
}

// EnemyHurtbox returns the enemy hit geometry
func (t *Tuning) EnemyHurtbox() entity.Hurtbox {
	return entity.Hurtbox{HeadHeight: t.Enemy.HeadHeight, Scale: t.Enemy.HitboxScale}
}

// BossHurtbox returns the boss hit geometry
func (t *Tuning) BossHurtbox() entity.Hurtbox {
	return entity.Hurtbox{HeadHeight: t.Boss.HeadHeight, Scale: t.Boss.HitboxScale}
}

// Validate checks the values the simulation divides by or draws ranges from
func (t *Tuning) Validate() error {
	var errs []error
	positive := func(name string, v entity.Vec2) {
		if v.X <= 0 || v.Y <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("player.extent", t.Player.Extent)
	positive("enemy.extent", t.Enemy.Extent)
	positive("boss.extent", t.Boss.Extent)
	positive("banana.extent", t.Banana.Extent)
	positive("physics.max_velocity", t.Physics.MaxVelocity)

	if t.Physics.Gravity.Y >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity.y must be negative, got %v", t.Physics.Gravity.Y))
	}
	if t.Boss.Health <= 0 || t.Enemy.Health <= 0 {
		errs = append(errs, errors.New("boss.health and enemy.health must be positive"))
	}
	if t.Boss.ThrowIntervalMin <= 0 || t.Boss.ThrowIntervalMax < t.Boss.ThrowIntervalMin {
		errs = append(errs, fmt.Errorf("boss.throw_interval range [%v, %v) is invalid",
			t.Boss.ThrowIntervalMin, t.Boss.ThrowIntervalMax))
	}
	if t.Boss.RageThresholdMin <= 0 || t.Boss.RageThresholdMax < t.Boss.RageThresholdMin {
		errs = append(errs, fmt.Errorf("boss.rage_threshold range [%d, %d) is invalid",
			t.Boss.RageThresholdMin, t.Boss.RageThresholdMax))
	}
	if t.Player.JumpSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.jump_speed must be positive, got %v", t.Player.JumpSpeed))
	}
	if t.Enemy.ProbeDistance <= 0 {
		errs = append(errs, fmt.Errorf("enemy.probe_distance must be positive, got %v", t.Enemy.ProbeDistance))
	}
	// a zero charge never reaches a wall, so the boss would stay enraged
	if t.Boss.ChargeSpeed == 0 {
		errs = append(errs, errors.New("boss.charge_speed must not be zero"))
	}
	if t.Session.MaxFrameDT <= 0 {
		errs = append(errs, errors.New("session.max_frame_dt must be positive"))
	}
	return errors.Join(errs...)
}
