package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// EbitenSink plays cues through the ebiten audio context
type EbitenSink struct {
	players map[entity.SoundEffect]*audio.Player
}

// NewEbitenSink synthesizes every tone up front
func NewEbitenSink() *EbitenSink {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	s := &EbitenSink{players: make(map[entity.SoundEffect]*audio.Player, len(Tones))}
	for sound, tone := range Tones {
		s.players[sound] = ctx.NewPlayerFromBytes(PCM(tone, ctx.SampleRate()))
	}
	return s
}

// Play restarts the cue's player
func (s *EbitenSink) Play(sound entity.SoundEffect) {
	p, ok := s.players[sound]
	if !ok {
		return
	}
	_ = p.Rewind()
	p.Play()
}
