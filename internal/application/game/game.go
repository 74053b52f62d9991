// Package game adapts the scene stack to ebiten.Game.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fabiojmendes/super-jeff/internal/application/scene"
)

// Game implements ebiten.Game and switches scenes
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	// dt is the fixed frame time, also used for the first wall-clock frame
	dt   float64
	now  func() time.Time
	last time.Time
}

// New creates a Game on a fixed 1/60 s step. The initial scene's OnEnter runs immediately.
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene and applies transitions
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDT())
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps a fixed logical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT switches to a fixed frame time
func (g *Game) SetDT(dt float64) {
	g.dt = dt
	g.now = nil
}

// UseWallClock measures each frame with now instead of a fixed step
func (g *Game) UseWallClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Close exits the current scene. Call it once RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

func (g *Game) frameDT() float64 {
	if g.now == nil {
		return g.dt
	}
	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return g.dt
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t
	return dt
}
