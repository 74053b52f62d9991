package session

import (
	"github.com/fabiojmendes/super-jeff/internal/application/state"
	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// BoxView is a rendered rectangle in world units
type BoxView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func boxView(pos, ext entity.Vec2) BoxView {
	return BoxView{X: pos.X, Y: pos.Y, W: ext.X, H: ext.Y}
}

// PlayerView is the player as the renderer sees it
type PlayerView struct {
	BoxView
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	Grounded    bool    `json:"grounded"`
	Crouched    bool    `json:"crouched"`
	Dead        bool    `json:"dead"`
	FacingRight bool    `json:"facingRight"`
}

// EnemyView is one patroller
type EnemyView struct {
	BoxView
	Dead        bool `json:"dead"`
	FacingRight bool `json:"facingRight"`
}

// BossView is the monkey
type BossView struct {
	BoxView
	State   entity.BossState `json:"-"`
	Phase   string           `json:"state"`
	Health  int              `json:"health"`
	Enraged bool             `json:"enraged"`
	Dead    bool             `json:"dead"`
}

// Snapshot is a read-only copy of everything a frontend draws
type Snapshot struct {
	Frame      uint64             `json:"frame"`
	State      state.SessionState `json:"state"`
	Player     PlayerView         `json:"player"`
	Boss       BossView           `json:"boss"`
	Enemies    []EnemyView        `json:"enemies"`
	Bananas    []BoxView          `json:"bananas"`
	Score      int                `json:"score"`
	Elapsed    float64            `json:"elapsed"`
	Trapped    bool               `json:"trapped"`
	TrapX      float64            `json:"trapX"`
	FinalTime  float64            `json:"finalTime,omitempty"`
	FinalScore int                `json:"finalScore,omitempty"`
}

// Snapshot copies the current world state
func (s *Session) Snapshot() Snapshot {
	p := s.player
	m := s.monkey
	snap := Snapshot{
		Frame: s.frame,
		State: s.state,
		Player: PlayerView{
			BoxView:     boxView(p.Position, p.Extent),
			VX:          p.Velocity.X,
			VY:          p.Velocity.Y,
			Grounded:    p.Grounded,
			Crouched:    p.Crouched,
			Dead:        p.Dead,
			FacingRight: p.FacingRight,
		},
		Boss: BossView{
			BoxView: boxView(m.Position, m.Extent),
			State:   m.State,
			Phase:   m.State.String(),
			Health:  m.Health,
			Enraged: m.Enraged(),
			Dead:    !m.IsAlive(),
		},
		Enemies:    make([]EnemyView, 0, len(s.enemyXs)),
		Bananas:    make([]BoxView, 0, len(m.Bananas)),
		Score:      s.score,
		Elapsed:    s.elapsed,
		Trapped:    s.trapped,
		TrapX:      s.level.TrapX,
		FinalTime:  s.finalTime,
		FinalScore: s.finalScore,
	}
	for _, e := range s.enemyXs {
		snap.Enemies = append(snap.Enemies, EnemyView{
			BoxView:     boxView(e.Position, e.Extent),
			Dead:        !e.IsAlive(),
			FacingRight: e.Velocity.X > 0,
		})
	}
	for _, b := range m.Bananas {
		snap.Bananas = append(snap.Bananas, boxView(b.Position, b.Extent))
	}
	return snap
}
