package entity

// Body is the kinematic state shared by every moving entity
type Body struct {
	Position Vec2
	Extent   Vec2
	Velocity Vec2
	Spawn    Vec2
}

// Box returns the body's bounding box
func (b *Body) Box() Box {
	return Box{Center: b.Position, Extent: b.Extent}
}

// Bottom returns the y coordinate of the body's feet
func (b *Body) Bottom() float64 {
	return b.Position.Y - b.Extent.Y/2
}

// Player represents the player character
type Player struct {
	Body

	// StandExtent is the extent while not crouched
	StandExtent Vec2

	Grounded    bool
	// Crouched persists after down is released until there is headroom to stand
	Crouched    bool
	Dead        bool
	FacingRight bool
}

// NewPlayer creates a player standing at spawn
func NewPlayer(spawn, extent Vec2) *Player {
	return &Player{
		Body: Body{
			Position: spawn,
			Extent:   extent,
			Spawn:    spawn,
		},
		StandExtent: extent,
		FacingRight: true,
	}
}

// Die marks the player dead and stops it. Returns false if already dead.
func (p *Player) Die() bool {
	if p.Dead {
		return false
	}
	p.Dead = true
	p.Velocity = Vec2{}
	return true
}

// Respawn puts the player back at its spawn point
func (p *Player) Respawn() {
	p.Position = p.Spawn
	p.Velocity = Vec2{}
	p.Extent = p.StandExtent
	p.Grounded = false
	p.Crouched = false
	p.Dead = false
	p.FacingRight = true
}

// SetCrouched resizes the player keeping the feet in place
func (p *Player) SetCrouched(crouched bool) {
	if p.Crouched == crouched {
		return
	}
	bottom := p.Bottom()
	p.Crouched = crouched
	p.Extent = p.StandExtent
	if crouched {
		p.Extent.Y /= 2
	}
	p.Position.Y = bottom + p.Extent.Y/2
}

// StandBox returns the box the player would occupy standing up
func (p *Player) StandBox() Box {
	return Box{
		Center: Vec2{p.Position.X, p.Bottom() + p.StandExtent.Y/2},
		Extent: p.StandExtent,
	}
}

// FootProbe returns the stomp probe: a thin box of the given size centered drop below the feet
func (p *Player) FootProbe(size Vec2, drop float64) Box {
	return Box{
		Center: Vec2{p.Position.X, p.Bottom() - drop},
		Extent: size,
	}
}

// Descending reports whether the player is moving down
func (p *Player) Descending() bool {
	return p.Velocity.Y < 0
}

// Bounce launches the player upward after a stomp
func (p *Player) Bounce(speed float64) {
	p.Velocity.Y = speed
	p.Grounded = false
}
