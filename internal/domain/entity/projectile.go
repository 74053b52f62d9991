package entity

// Banana is a ballistic projectile thrown by the boss. It ignores tiles.
type Banana struct {
	Body
}

// NewBanana creates a banana at pos with the given launch velocity
func NewBanana(pos, extent, velocity Vec2) *Banana {
	return &Banana{
		Body: Body{
			Position: pos,
			Extent:   extent,
			Velocity: velocity,
			Spawn:    pos,
		},
	}
}

// Update integrates the banana under gravity
func (b *Banana) Update(gravity Vec2, dt float64) {
	b.Velocity = b.Velocity.Add(gravity.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Below reports whether the banana has fallen under y
func (b *Banana) Below(y float64) bool {
	return b.Position.Y < y
}
