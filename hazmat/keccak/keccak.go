// Package keccak provides an optimized implementation of the Keccak-f[1600] permutation and its reduced-round
// Keccak-p[1600, n] variants.
//
// The state is 200 bytes, read as 25 little-endian 64-bit lanes with lane (x, y) at index x+5*y. Every function
// permutes caller-owned state in place, allocates nothing, and keeps no state between calls, so distinct states may be
// permuted concurrently.
//
// Padding, rate selection, and the absorb/squeeze loop belong to the caller. XORAndF1600 takes an input block of any
// length up to StateSize, so one entry point serves every rate.
package keccak

import (
	"github.com/codahale/keccak1600/internal/mem"
)

const (
	// StateSize is the size of the permutation state in bytes.
	StateSize = 200

	// Rounds is the number of rounds in Keccak-f[1600].
	Rounds = 24

	// reducedRounds is the round count of Keccak-p[1600, 12], as used by TurboSHAKE and KangarooTwelve.
	reducedRounds = 12
)

// Lanes is the number of permutations the host machine can perform in parallel. The x2 and x4 entry points permute
// their states one after another.
const Lanes = 1

// Implementation returns the name of the implementation behind F1600 and its variants.
func Implementation() string {
	return "generic"
}

// State returns b as a permutation state. It panics if len(b) != StateSize, so a mis-sized buffer is rejected before
// any lane is read.
func State(b []byte) *[StateSize]byte {
	if len(b) != StateSize {
		panic("keccak: invalid state length")
	}
	return (*[StateSize]byte)(b)
}

// F1600 applies the Keccak-f[1600] permutation to the state.
func F1600(state *[StateSize]byte) {
	f1600Generic(state, Rounds)
}

// XORAndF1600 XORs in into the first len(in) bytes of the state, then applies the Keccak-f[1600] permutation. A sponge
// absorbs one rate-sized block with each call.
//
// It panics if in is longer than StateSize. The state is not modified in that case.
func XORAndF1600(state *[StateSize]byte, in []byte) {
	if len(in) > StateSize {
		panic("keccak: input larger than state")
	}
	mem.XORInPlace(state[:len(in)], in)
	f1600Generic(state, Rounds)
}

// XORAndPermuteRounds XORs in into the first len(in) bytes of the state, then applies the Keccak-p[1600, rounds]
// permutation. It panics if in is longer than StateSize or unless 1 <= rounds <= Rounds, before the state is modified.
func XORAndPermuteRounds(state *[StateSize]byte, in []byte, rounds int) {
	if len(in) > StateSize {
		panic("keccak: input larger than state")
	}
	if rounds < 1 || rounds > Rounds {
		panic("keccak: invalid number of rounds")
	}
	mem.XORInPlace(state[:len(in)], in)
	f1600Generic(state, rounds)
}

// P1600 applies the Keccak-p[1600, 12] permutation to the state.
func P1600(state *[StateSize]byte) {
	f1600Generic(state, reducedRounds)
}

// PermuteRounds applies the Keccak-p[1600, rounds] permutation to the state: the last rounds rounds of Keccak-f[1600].
// It panics unless 1 <= rounds <= Rounds.
func PermuteRounds(state *[StateSize]byte, rounds int) {
	if rounds < 1 || rounds > Rounds {
		panic("keccak: invalid number of rounds")
	}
	f1600Generic(state, rounds)
}

// F1600x2 applies the Keccak-f[1600] permutation to the two states. The results are identical to two calls to F1600.
func F1600x2(state1, state2 *[StateSize]byte) {
	f1600x2Generic(state1, state2, Rounds)
}

// F1600x4 applies the Keccak-f[1600] permutation to the four states. The results are identical to four calls to F1600.
func F1600x4(state1, state2, state3, state4 *[StateSize]byte) {
	f1600x2Generic(state1, state2, Rounds)
	f1600x2Generic(state3, state4, Rounds)
}

// P1600x2 applies the Keccak-p[1600, 12] permutation to the two states.
func P1600x2(state1, state2 *[StateSize]byte) {
	f1600x2Generic(state1, state2, reducedRounds)
}

// P1600x4 applies the Keccak-p[1600, 12] permutation to the four states.
func P1600x4(state1, state2, state3, state4 *[StateSize]byte) {
	f1600x2Generic(state1, state2, reducedRounds)
	f1600x2Generic(state3, state4, reducedRounds)
}
