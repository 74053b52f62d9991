package entity

// BossState is the boss AI state
type BossState int

const (
	// BossIdle counts down to the next throw
	BossIdle BossState = iota
	// BossThrowing lasts one frame, the banana leaves the boss's hand
	BossThrowing
	// BossCharging covers the rage windup and the charge itself. Invulnerable.
	BossCharging
	BossDead
)

// String returns the string representation of the boss state
func (s BossState) String() string {
	switch s {
	case BossIdle:
		return "Idle"
	case BossThrowing:
		return "Throwing"
	case BossCharging:
		return "Charging"
	case BossDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Monkey is the boss
type Monkey struct {
	Body
	Hurtbox Hurtbox

	State     BossState
	Health    int
	MaxHealth int

	// ChargeVelocity is the signed horizontal charge speed
	ChargeVelocity  float64
	ChargeIncrement float64

	// ThrowTimer accumulates toward ThrowInterval
	ThrowTimer    float64
	ThrowInterval float64

	// Thrown counts bananas since the last rage
	Thrown        int
	RageThreshold int

	// RageTimer accumulates the windup before the charge starts
	RageTimer float64

	Bananas []*Banana
}

// NewMonkey creates a boss at spawn
func NewMonkey(spawn, extent Vec2, health int, chargeVelocity, chargeIncrement float64, hurtbox Hurtbox) *Monkey {
	return &Monkey{
		Body: Body{
			Position: spawn,
			Extent:   extent,
			Spawn:    spawn,
		},
		Hurtbox:         hurtbox,
		State:           BossIdle,
		Health:          health,
		MaxHealth:       health,
		ChargeVelocity:  chargeVelocity,
		ChargeIncrement: chargeIncrement,
		Bananas:         make([]*Banana, 0, 8),
	}
}

// IsAlive returns true until health reaches zero
func (m *Monkey) IsAlive() bool {
	return m.State != BossDead
}

// Enraged reports whether the boss is charging (or winding up to)
func (m *Monkey) Enraged() bool {
	return m.State == BossCharging
}

// Damage hits the boss. Enraged or dead bosses ignore it; otherwise the
// charge gets faster and the boss either dies or counterattacks.
func (m *Monkey) Damage(amount int) DamageResult {
	if m.State == BossDead || m.Enraged() {
		return DamageIgnored
	}
	m.Health = max(0, m.Health-amount)
	m.ChargeVelocity += Sign(m.ChargeVelocity) * m.ChargeIncrement
	if m.Health == 0 {
		m.State = BossDead
		m.Velocity = Vec2{}
		return DamageKilled
	}
	m.Enrage()
	return DamageTaken
}

// Enrage starts the windup toward a charge
func (m *Monkey) Enrage() {
	m.State = BossCharging
	m.Thrown = 0
	m.RageTimer = 0
	m.Velocity = Vec2{}
}

// Calm ends a charge and flips the direction of the next one
func (m *Monkey) Calm() {
	m.State = BossIdle
	m.Velocity = Vec2{}
	m.ChargeVelocity = -m.ChargeVelocity
	m.ThrowTimer = 0
}

// Head returns the stompable box
func (m *Monkey) Head() Box {
	return headOf(&m.Body, m.Hurtbox)
}

// Hitbox returns the box that kills the player on contact
func (m *Monkey) Hitbox() Box {
	return hitboxOf(&m.Body, m.Hurtbox)
}

// PruneBananas drops bananas that fell under y and returns how many were removed
func (m *Monkey) PruneBananas(y float64) int {
	kept := m.Bananas[:0]
	for _, b := range m.Bananas {
		if !b.Below(y) {
			kept = append(kept, b)
		}
	}
	removed := len(m.Bananas) - len(kept)
	for i := len(kept); i < len(m.Bananas); i++ {
		m.Bananas[i] = nil
	}
	m.Bananas = kept
	return removed
}
