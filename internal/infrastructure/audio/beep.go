package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/fabiojmendes/super-jeff/internal/domain/entity"
)

// toneStreamer adapts an oscillator to beep
type toneStreamer struct {
	osc *oscillator
}

// Streamer returns t as a finite beep stream
func Streamer(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{osc: newOscillator(t, int(rate))}
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.osc.done() {
			return i, i > 0
		}
		v := s.osc.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// BeepSink mixes cues into the system speaker. Cues played before Init are dropped.
type BeepSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBeepSink creates a sink with the given master volume in [0, 1]
func NewBeepSink(volume float64) *BeepSink {
	return &BeepSink{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker
func (s *BeepSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	rate := beep.SampleRate(SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the cue on the mixer
func (s *BeepSink) Play(sound entity.SoundEffect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	tone, ok := Tones[sound]
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(s.stream(tone))
	speaker.Unlock()
}

func (s *BeepSink) stream(t Tone) beep.Streamer {
	return newVolume(Streamer(t, beep.SampleRate(SampleRate)), s.volume)
}

// Close silences the mixer
func (s *BeepSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func newVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
