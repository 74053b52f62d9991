// Package playing provides the gameplay scene of the window frontend.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/runner"
	"github.com/fabiojmendes/super-jeff/internal/application/scene"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/application/system"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorTile    = color.RGBA{80, 80, 100, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorDead    = color.RGBA{120, 120, 120, 255}
	colorEnemy   = color.RGBA{200, 100, 100, 255}
	colorBoss    = color.RGBA{150, 100, 50, 255}
	colorEnraged = color.RGBA{230, 60, 40, 255}
	colorBanana  = color.RGBA{255, 215, 0, 255}
	colorTrap    = color.RGBA{200, 50, 50, 160}
	colorDim     = color.RGBA{0, 0, 0, 140}
	colorLost    = color.RGBA{100, 0, 0, 180}
)

// Playing is the gameplay scene
type Playing struct {
	runner     *runner.Runner
	level      *entity.Level
	screenW    int
	screenH    int
	recordPath string
	logger     *log.Logger

	// poll reads the keyboard; replaced in tests
	poll func() runner.Controls
	snap session.Snapshot
}

// New creates the scene. recordPath is where F5 and OnExit save the recording.
func New(r *runner.Runner, screenW, screenH int, recordPath string, logger *log.Logger) *Playing {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Playing{
		runner:     r,
		screenW:    screenW,
		screenH:    screenH,
		recordPath: recordPath,
		logger:     logger,
		poll:       pollKeyboard,
	}
	p.refresh()
	return p
}

// Update advances the session by one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.runner.Frame(dt, p.poll())
	p.refresh()
	return nil, nil
}

func (p *Playing) refresh() {
	sess := p.runner.Session()
	p.level = sess.Level()
	p.snap = sess.Snapshot()
}

func pollKeyboard() runner.Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	just := inpututil.AppendJustPressedKeys(nil)
	start := false
	for _, k := range just {
		if k != ebiten.KeyEscape && k != ebiten.KeyR && k != ebiten.KeyF5 {
			start = true
		}
	}

	return runner.Controls{
		Input: system.InputState{
			Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
			Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
			Down:  pressed(ebiten.KeyArrowDown, ebiten.KeyS),
			Jump:  pressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
		},
		Start: start,
		Reset: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func (p *Playing) saveRecording() {
	if p.runner.Recorder() == nil {
		return
	}
	name := p.recordPath
	if name == "" {
		name = replay.GenerateFilename()
	}
	if err := p.runner.Save(name); err != nil && !errors.Is(err, replay.ErrNoFrames) {
		p.logger.Error("failed to save recording", "file", name, "err", err)
	}
}

// Scale returns pixels per world unit; the whole level height fits the screen
func (p *Playing) Scale() float64 {
	if p.level.Height == 0 {
		return 1
	}
	return float64(p.screenH) / float64(p.level.Height)
}

// ToScreen converts a world point to pixels for a camera centered on camX
func (p *Playing) ToScreen(v entity.Vec2, camX float64) (float64, float64) {
	unit := p.Scale()
	return (v.X-camX)*unit + float64(p.screenW)/2, float64(p.screenH)/2 - v.Y*unit
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	unit := p.Scale()
	camX := runner.CameraX(p.level, p.snap, float64(p.screenW)/unit)

	for _, t := range p.level.Tiles {
		p.drawBox(screen, t.Position, t.Extent, camX, colorTile)
	}
	if p.snap.Trapped {
		x, _ := p.ToScreen(entity.V(p.snap.TrapX, 0), camX)
		vector.DrawFilledRect(screen, float32(x-1), 0, 2, float32(p.screenH), colorTrap, false)
	}
	p.drawEnemies(screen, camX)
	p.drawBoss(screen, camX)
	for _, b := range p.snap.Bananas {
		p.drawView(screen, b, camX, colorBanana)
	}
	p.drawPlayer(screen, camX)
	p.drawHUD(screen)

	switch p.snap.State {
	case state.StateNotStarted:
		p.drawOverlay(screen, colorDim, "SUPER JEFF\n\nPress any key to start")
	case state.StatePlayerDead:
		p.drawOverlay(screen, colorLost, "YOU DIED\n\nPress R to restart")
	case state.StateCompleted:
		p.drawOverlay(screen, colorDim, fmt.Sprintf("LEVEL COMPLETE\n\nTime: %.2f\nTotal: %d\n\nPress R to play again",
			p.snap.FinalTime, p.snap.FinalScore))
	}
}

func (p *Playing) drawBox(screen *ebiten.Image, center, extent entity.Vec2, camX float64, c color.Color) {
	unit := p.Scale()
	x, y := p.ToScreen(entity.V(center.X-extent.X/2, center.Y+extent.Y/2), camX)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(extent.X*unit), float32(extent.Y*unit), c, false)
}

func (p *Playing) drawView(screen *ebiten.Image, b session.BoxView, camX float64, c color.Color) {
	p.drawBox(screen, entity.V(b.X, b.Y), entity.V(b.W, b.H), camX, c)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX float64) {
	pl := p.snap.Player
	c := colorPlayer
	if pl.Dead {
		c = colorDead
	}
	p.drawView(screen, pl.BoxView, camX, c)

	// eye marks the facing direction
	eyeX := pl.X + pl.W/4
	if !pl.FacingRight {
		eyeX = pl.X - pl.W/4
	}
	p.drawBox(screen, entity.V(eyeX, pl.Y+pl.H/4), entity.V(0.15, 0.15), camX, colorBG)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX float64) {
	for _, e := range p.snap.Enemies {
		if e.Dead {
			continue
		}
		p.drawView(screen, e.BoxView, camX, colorEnemy)
	}
}

func (p *Playing) drawBoss(screen *ebiten.Image, camX float64) {
	b := p.snap.Boss
	c := colorBoss
	switch {
	case b.Dead:
		c = colorDead
	case b.Enraged:
		c = colorEnraged
	}
	p.drawView(screen, b.BoxView, camX, c)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", p.snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.2f", p.snap.Elapsed), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Boss: %d", p.snap.Boss.Health), p.screenW-70, 10)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("playing", "level", p.level.Name)
}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	p.saveRecording()
}
