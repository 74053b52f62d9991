package audio

import (
	"encoding/binary"
	"math"
)

// PCM synthesizes t as 16-bit little-endian stereo
func PCM(t Tone, rate int) []byte {
	osc := newOscillator(t, rate)
	buf := make([]byte, 0, osc.total*4)
	for !osc.done() {
		s := int16(math.Round(osc.next() * math.MaxInt16))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}
