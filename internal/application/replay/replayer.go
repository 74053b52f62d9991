package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fabiojmendes/super-jeff/internal/application/session"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// Apply feeds one recorded frame into sess
func Apply(sess *session.Session, fi FrameInput) error {
	if fi.X {
		if err := sess.Reset(); err != nil {
			return fmt.Errorf("frame %d: reset: %w", fi.F, err)
		}
	}
	if fi.S {
		sess.Start()
	}
	sess.Step(fi.DT, fi.Input())
	return nil
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result is the outcome of a headless replay
type Result struct {
	Frames     int                `json:"frames"`
	State      state.SessionState `json:"state"`
	Score      int                `json:"score"`
	Elapsed    float64            `json:"elapsed"`
	FinalTime  float64            `json:"finalTime"`
	FinalScore int                `json:"finalScore"`
}

// Run plays every recorded frame into sess as fast as possible
func Run(data *ReplayData, sess *session.Session) (Result, error) {
	r := NewReplayer(*data)
	for {
		fi, ok := r.GetInput()
		if !ok {
			break
		}
		if err := Apply(sess, fi); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Frames:     r.TotalFrames(),
		State:      sess.State(),
		Score:      sess.Score(),
		Elapsed:    sess.Elapsed(),
		FinalTime:  sess.FinalTime(),
		FinalScore: sess.FinalScore(),
	}, nil
}
