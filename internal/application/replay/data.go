package replay

import "github.com/fabiojmendes/super-jeff/internal/application/system"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records everything fed into the session for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Elapsed seconds
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	D  bool    `json:"d,omitempty"` // Down
	J  bool    `json:"j,omitempty"` // Jump
	S  bool    `json:"s,omitempty"` // Start requested before the step
	X  bool    `json:"x,omitempty"` // Reset requested before the step
}

// Input returns the held keys of the frame
func (f FrameInput) Input() system.InputState {
	return system.InputState{Left: f.L, Right: f.R, Down: f.D, Jump: f.J}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
