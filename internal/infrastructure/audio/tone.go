// Package audio turns simulation sound cues into synthesized tones.
package audio

import (
	"math"
	"time"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// SampleRate is shared by both backends
const SampleRate = 44100

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a short sweep from From to To hertz
type Tone struct {
	From     float64
	To       float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// Tones maps every cue to its tone
var Tones = map[entity.SoundEffect]Tone{
	entity.SoundJump:  {From: 330, To: 660, Duration: 90 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	entity.SoundHit:   {From: 520, To: 260, Duration: 110 * time.Millisecond, Wave: WaveSquare, Volume: 0.35},
	entity.SoundClick: {From: 1800, To: 1800, Duration: 25 * time.Millisecond, Wave: WaveSquare, Volume: 0.2},
	entity.SoundDead:  {From: 220, To: 55, Duration: 450 * time.Millisecond, Wave: WaveSquare, Volume: 0.35},
	entity.SoundFall:  {From: 880, To: 110, Duration: 600 * time.Millisecond, Wave: WaveSine, Volume: 0.35},
	entity.SoundThrow: {From: 700, To: 900, Duration: 70 * time.Millisecond, Wave: WaveSine, Volume: 0.25},
	entity.SoundRage:  {From: 90, To: 140, Duration: 350 * time.Millisecond, Wave: WaveSquare, Volume: 0.4},
}

// Sink plays cues
type Sink interface {
	Play(entity.SoundEffect)
}

// Nop discards cues
type Nop struct{}

// Play does nothing
func (Nop) Play(entity.SoundEffect) {}

// PlayAll plays every cue of a frame in order
func PlayAll(s Sink, sounds []entity.SoundEffect) {
	for _, sound := range sounds {
		s.Play(sound)
	}
}

// Samples returns the tone length in samples at rate
func (t Tone) Samples(rate int) int {
	return int(float64(rate) * t.Duration.Seconds())
}

// oscillator generates one tone sample by sample
type oscillator struct {
	tone  Tone
	rate  float64
	total int
	pos   int
	phase float64
}

func newOscillator(t Tone, rate int) *oscillator {
	return &oscillator{tone: t, rate: float64(rate), total: t.Samples(rate)}
}

func (o *oscillator) done() bool {
	return o.pos >= o.total
}

// next returns the next sample in [-Volume, Volume]
func (o *oscillator) next() float64 {
	progress := float64(o.pos) / float64(o.total)
	freq := o.tone.From + (o.tone.To-o.tone.From)*progress

	var v float64
	switch o.tone.Wave {
	case WaveSquare:
		if o.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	default:
		v = math.Sin(2 * math.Pi * o.phase)
	}

	o.phase += freq / o.rate
	o.phase -= math.Floor(o.phase)
	o.pos++
	return v * o.tone.Volume * o.envelope(progress)
}

// envelope fades the last fifth of the tone out to avoid a click
func (o *oscillator) envelope(progress float64) float64 {
	const release = 0.2
	if progress > 1-release {
		return (1 - progress) / release
	}
	return 1
}
