package runner

import (
	"math"

	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// CameraX returns the world x at the center of a view viewW units wide.
// The camera follows the player, never shows past the level edges, and once
// the trap has engaged it stops scrolling back past the trap line.
func CameraX(level *entity.Level, snap session.Snapshot, viewW float64) float64 {
	lo := level.MinBounds().X + viewW/2
	hi := level.MaxBounds().X - viewW/2
	if lo > hi {
		return 0
	}

	x := snap.Player.X
	if snap.Trapped {
		x = math.Max(x, snap.TrapX+viewW/2)
	}
	return math.Max(lo, math.Min(hi, x))
}
