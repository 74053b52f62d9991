package system

import (
	"math"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

// InputSystem drives the player from the held keys
type InputSystem struct {
	config  *config.Tuning
	physics *PhysicsSystem

	// Event callbacks
	OnSound func(s entity.SoundEffect)
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.Tuning, physics *PhysicsSystem) *InputSystem {
	return &InputSystem{config: cfg, physics: physics}
}

// InputState is the snapshot of held logical keys for one frame
type InputState struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Down  bool `json:"d,omitempty"`
	Jump  bool `json:"j,omitempty"`
}

// UpdatePlayer advances the player by one frame: drag, input, gravity, then tile resolution
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt float64) {
	if player.Dead {
		return
	}

	s.applyDrag(player, dt)
	s.handleCrouch(player, input.Down)
	s.handleMovement(player, input, dt)
	s.handleJump(player, input)

	s.physics.Accelerate(&player.Body, s.physics.Gravity(), dt)

	contact := s.physics.Resolve(&player.Body, dt, PolicyStop)
	player.Grounded = contact.Grounded

	if player.Velocity.X > 0 {
		player.FacingRight = true
	} else if player.Velocity.X < 0 {
		player.FacingRight = false
	}
}

// speed returns the horizontal acceleration, reduced in the air
func (s *InputSystem) speed(player *entity.Player) float64 {
	if player.Grounded {
		return s.config.Player.Speed
	}
	return s.config.Player.Speed * s.config.Player.AirControl
}

// applyDrag slows the player down on the ground and snaps small speeds to zero
func (s *InputSystem) applyDrag(player *entity.Player, dt float64) {
	if !player.Grounded {
		return
	}
	decay := min(1, s.config.Physics.Drag*dt)
	player.Velocity.X -= player.Velocity.X * decay
	if math.Abs(player.Velocity.X) < s.config.Physics.DragSnap {
		player.Velocity.X = 0
	}
}

// handleCrouch shrinks the player while down is held.
// Standing back up waits until there is headroom.
func (s *InputSystem) handleCrouch(player *entity.Player, down bool) {
	if down {
		player.SetCrouched(true)
		return
	}
	if !player.Crouched {
		return
	}
	stand := player.StandBox()
	if s.physics.Overlaps(stand.Center, stand.Extent) {
		return
	}
	player.SetCrouched(false)
}

func (s *InputSystem) handleMovement(player *entity.Player, input InputState, dt float64) {
	if input.Left {
		s.physics.Accelerate(&player.Body, entity.Vec2{X: -s.speed(player)}, dt)
	}
	if input.Right {
		s.physics.Accelerate(&player.Body, entity.Vec2{X: s.speed(player)}, dt)
	}
}

func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	jump := s.config.Player.JumpSpeed
	if input.Jump && player.Grounded {
		player.Velocity.Y = jump
		player.Grounded = false
		s.emit(entity.SoundJump)
		return
	}

	// Variable jump height
	if !input.Jump && player.Velocity.Y > jump/2 {
		player.Velocity.Y = jump / 2
	}
}

func (s *InputSystem) emit(sound entity.SoundEffect) {
	if s.OnSound != nil {
		s.OnSound(sound)
	}
}
