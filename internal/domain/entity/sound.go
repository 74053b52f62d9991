package entity

// SoundEffect is a discrete audio cue emitted by the simulation
type SoundEffect int

const (
	SoundJump SoundEffect = iota
	SoundHit
	SoundClick
	SoundDead
	SoundFall
	SoundThrow
	SoundRage
)

// AllSounds lists every cue, in declaration order
var AllSounds = []SoundEffect{SoundJump, SoundHit, SoundClick, SoundDead, SoundFall, SoundThrow, SoundRage}

// String returns the cue name
func (s SoundEffect) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundHit:
		return "hit"
	case SoundClick:
		return "click"
	case SoundDead:
		return "dead"
	case SoundFall:
		return "fall"
	case SoundThrow:
		return "throw"
	case SoundRage:
		return "rage"
	default:
		return "unknown"
	}
}

// MarshalText encodes the cue by name
func (s SoundEffect) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
