package entity

// DamageResult is the outcome of a damage call
type DamageResult int

const (
	// DamageIgnored means the target was dead or invulnerable
	DamageIgnored DamageResult = iota
	DamageTaken
	DamageKilled
)

// String returns the string representation of the damage result
func (r DamageResult) String() string {
	switch r {
	case DamageIgnored:
		return "Ignored"
	case DamageTaken:
		return "Taken"
	case DamageKilled:
		return "Killed"
	default:
		return "Unknown"
	}
}

// Hurtbox describes where a health-carrying entity can be hit
type Hurtbox struct {
	// HeadHeight is the height of the stompable slice at the top of the body
	HeadHeight float64
	// Scale shrinks the lethal body box relative to the extent
	Scale Vec2
}

func headOf(b *Body, h Hurtbox) Box {
	return Box{
		Center: Vec2{b.Position.X, b.Position.Y + b.Extent.Y/2 - h.HeadHeight/2},
		Extent: Vec2{b.Extent.X, h.HeadHeight},
	}
}

func hitboxOf(b *Body, h Hurtbox) Box {
	return Box{
		Center: b.Position,
		Extent: Vec2{b.Extent.X * h.Scale.X, b.Extent.Y * h.Scale.Y},
	}
}

// Enemy represents a ground patroller
type Enemy struct {
	Body
	Hurtbox Hurtbox

	Health int
}

// NewEnemy creates an enemy at spawn walking with the given horizontal speed
func NewEnemy(spawn, extent Vec2, speed float64, health int, hurtbox Hurtbox) *Enemy {
	return &Enemy{
		Body: Body{
			Position: spawn,
			Extent:   extent,
			Velocity: Vec2{X: speed},
			Spawn:    spawn,
		},
		Hurtbox: hurtbox,
		Health:  health,
	}
}

// IsAlive returns true if the enemy still has health
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// Damage reduces health. A dead enemy ignores further damage.
func (e *Enemy) Damage(amount int) DamageResult {
	if !e.IsAlive() {
		return DamageIgnored
	}
	e.Health = max(0, e.Health-amount)
	if e.Health == 0 {
		e.Velocity = Vec2{}
		return DamageKilled
	}
	return DamageTaken
}

// Reverse flips the walking direction
func (e *Enemy) Reverse() {
	e.Velocity.X = -e.Velocity.X
}

// Head returns the stompable box
func (e *Enemy) Head() Box {
	return headOf(&e.Body, e.Hurtbox)
}

// Hitbox returns the box that kills the player on contact
func (e *Enemy) Hitbox() Box {
	return hitboxOf(&e.Body, e.Hurtbox)
}
