package keccak

import (
	"math/bits"

	"github.com/codahale/keccak1600/internal/mem"
)

func f1600Generic(state *[StateSize]byte, rounds int) {
	var a [25]uint64
	mem.Load(&a, state)
	roundsGeneric(&a, rounds)
	mem.Store(state, &a)
}

func f1600x2Generic(state1, state2 *[StateSize]byte, rounds int) {
	f1600Generic(state1, rounds)
	f1600Generic(state2, rounds)
}

// roundsGeneric applies the last rounds rounds of Keccak-f[1600] to the lanes.
//
// Each round is fused: θ's column effects are folded into the lane reads, and ρ and π are applied by reading every
// output row's five χ inputs directly from the input lanes. Output lane (x, y) comes from input lane (x+3y mod 5, x).
func roundsGeneric(a *[25]uint64, rounds int) {
	for _, rc := range roundConstants[Rounds-rounds:] {
		// θ
		c0 := a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c1 := a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c2 := a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c3 := a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c4 := a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]
		d0 := c4 ^ bits.RotateLeft64(c1, 1)
		d1 := c0 ^ bits.RotateLeft64(c2, 1)
		d2 := c1 ^ bits.RotateLeft64(c3, 1)
		d3 := c2 ^ bits.RotateLeft64(c4, 1)
		d4 := c3 ^ bits.RotateLeft64(c0, 1)

		// ρ, π, χ, ι, one output row at a time.
		var e [25]uint64
		e[0], e[1], e[2], e[3], e[4] = chi(
			a[0]^d0,
			bits.RotateLeft64(a[6]^d1, 44),
			bits.RotateLeft64(a[12]^d2, 43),
			bits.RotateLeft64(a[18]^d3, 21),
			bits.RotateLeft64(a[24]^d4, 14),
		)
		e[0] ^= rc
		e[5], e[6], e[7], e[8], e[9] = chi(
			bits.RotateLeft64(a[3]^d3, 28),
			bits.RotateLeft64(a[9]^d4, 20),
			bits.RotateLeft64(a[10]^d0, 3),
			bits.RotateLeft64(a[16]^d1, 45),
			bits.RotateLeft64(a[22]^d2, 61),
		)
		e[10], e[11], e[12], e[13], e[14] = chi(
			bits.RotateLeft64(a[1]^d1, 1),
			bits.RotateLeft64(a[7]^d2, 6),
			bits.RotateLeft64(a[13]^d3, 25),
			bits.RotateLeft64(a[19]^d4, 8),
			bits.RotateLeft64(a[20]^d0, 18),
		)
		e[15], e[16], e[17], e[18], e[19] = chi(
			bits.RotateLeft64(a[4]^d4, 27),
			bits.RotateLeft64(a[5]^d0, 36),
			bits.RotateLeft64(a[11]^d1, 10),
			bits.RotateLeft64(a[17]^d2, 15),
			bits.RotateLeft64(a[23]^d3, 56),
		)
		e[20], e[21], e[22], e[23], e[24] = chi(
			bits.RotateLeft64(a[2]^d2, 62),
			bits.RotateLeft64(a[8]^d3, 55),
			bits.RotateLeft64(a[14]^d4, 39),
			bits.RotateLeft64(a[15]^d0, 41),
			bits.RotateLeft64(a[21]^d1, 2),
		)
		*a = e
	}
}

// chi applies χ to one row.
func chi(b0, b1, b2, b3, b4 uint64) (e0, e1, e2, e3, e4 uint64) {
	return b0 ^ (b2 &^ b1), b1 ^ (b3 &^ b2), b2 ^ (b4 &^ b3), b3 ^ (b0 &^ b4), b4 ^ (b1 &^ b0)
}
