package mem

import "encoding/binary"

// LaneCount is the number of 64-bit lanes in a 1600-bit state.
const LaneCount = 25

// Load decodes the state into 25 little-endian lanes.
func Load(a *[LaneCount]uint64, state *[LaneCount * 8]byte) {
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}
}

// Store encodes the 25 lanes into the state as little-endian words.
func Store(state *[LaneCount * 8]byte, a *[LaneCount]uint64) {
	for i, v := range a {
		binary.LittleEndian.PutUint64(state[i*8:], v)
	}
}
