// Package scene defines the screens of the window frontend.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the window frontend.
// Update returns the next scene to switch to, or nil to stay. A non-nil error
// (ebiten.Termination included) ends the game loop.
type Scene interface {
	// Update advances the scene by dt seconds
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is replaced or the window closes
	OnExit()
}
