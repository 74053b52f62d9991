package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fabiojmendes/super-jeff/internal/application/runner"
	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// hudRows is the number of rows above the world
const hudRows = 1

var (
	styleTile    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleEnraged = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanana  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrap    = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Renderer draws snapshots as text. One world unit is two columns wide and one row tall.
type Renderer struct {
	screen tcell.Screen
	cols   int
	rows   int
	camX   float64
	height float64
}

// NewRenderer draws onto screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame. The caller shows the screen.
func (r *Renderer) Draw(level *entity.Level, snap session.Snapshot) {
	r.screen.Clear()
	r.cols, r.rows = r.screen.Size()
	r.height = float64(level.Height)
	r.camX = runner.CameraX(level, snap, float64(r.cols)/2)

	for _, t := range level.Tiles {
		r.fill(t.Position, t.Extent, '█', styleTile)
	}
	if snap.Trapped {
		col := r.col(snap.TrapX)
		for row := hudRows; row < r.rows; row++ {
			if r.empty(col, row) {
				r.screen.SetContent(col, row, '|', nil, styleTrap)
			}
		}
	}
	for _, e := range snap.Enemies {
		if !e.Dead {
			r.fillView(e.BoxView, 'E', styleEnemy)
		}
	}
	r.drawBoss(snap.Boss)
	for _, b := range snap.Bananas {
		r.fillView(b, ')', styleBanana)
	}
	if snap.Player.Dead {
		r.fillView(snap.Player.BoxView, 'x', styleDead)
	} else {
		r.fillView(snap.Player.BoxView, '@', stylePlayer)
	}

	r.text(0, 0, fmt.Sprintf("Score: %d  Time: %.2f  Boss: %d", snap.Score, snap.Elapsed, snap.Boss.Health), styleHUD)

	switch snap.State {
	case state.StateNotStarted:
		r.banner("SUPER JEFF", "press any key to start, q to quit")
	case state.StatePlayerDead:
		r.banner("YOU DIED", "press r to restart")
	case state.StateCompleted:
		r.banner("LEVEL COMPLETE", fmt.Sprintf("time %.2f  total %d", snap.FinalTime, snap.FinalScore), "press r to play again")
	}
}

func (r *Renderer) drawBoss(b session.BossView) {
	switch {
	case b.Dead:
		r.fillView(b.BoxView, 'm', styleDead)
	case b.Enraged:
		r.fillView(b.BoxView, 'M', styleEnraged)
	default:
		r.fillView(b.BoxView, 'M', styleBoss)
	}
}

func (r *Renderer) col(x float64) int {
	return int(math.Round((x-r.camX)*2 + float64(r.cols)/2))
}

func (r *Renderer) row(y float64) int {
	return hudRows + int(math.Round(r.height/2-y))
}

func (r *Renderer) fillView(b session.BoxView, ch rune, style tcell.Style) {
	r.fill(entity.V(b.X, b.Y), entity.V(b.W, b.H), ch, style)
}

// fill paints every cell covered by the box, at least one
func (r *Renderer) fill(center, extent entity.Vec2, ch rune, style tcell.Style) {
	c0, c1 := r.col(center.X-extent.X/2), r.col(center.X+extent.X/2)
	r0, r1 := r.row(center.Y+extent.Y/2), r.row(center.Y-extent.Y/2)
	c1 = max(c1, c0+1)
	r1 = max(r1, r0+1)
	for row := max(r0, hudRows); row < min(r1, r.rows); row++ {
		for col := max(c0, 0); col < min(c1, r.cols); col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) empty(col, row int) bool {
	ch, _, _, _ := r.screen.GetContent(col, row)
	return ch == ' ' || ch == 0
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		if col >= r.cols {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *Renderer) banner(lines ...string) {
	top := r.rows/2 - len(lines)/2
	for i, line := range lines {
		line = " " + strings.TrimSpace(line) + " "
		r.text(max(0, (r.cols-len(line))/2), top+i, line, styleBanner)
	}
}
