package state

import "fmt"

// SessionState represents the lifecycle of a play session
type SessionState int

const (
	StateNotStarted SessionState = iota
	StateRunning
	StatePlayerDead
	StateCompleted
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StatePlayerDead:
		return "PlayerDead"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Simulating reports whether frames advance the world in this state
func (s SessionState) Simulating() bool {
	return s == StateRunning
}

// MarshalText encodes the state by name
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name written by MarshalText
func (s *SessionState) UnmarshalText(text []byte) error {
	for c := StateNotStarted; c <= StateCompleted; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", text)
}
