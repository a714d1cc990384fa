// Package reference implements Keccak-p[1600] as five discrete steps per round, with no fusion and no packing.
//
// It is slow and exists to check the optimized implementations in hazmat/keccak. Its tables are derived at init from
// the FIPS 202 round-constant LFSR and ρ walk.
package reference

import "math/bits"

// A State is 25 lanes indexed by x + 5*y.
type State [25]uint64

var (
	roundConstants  = generateRoundConstants()  //nolint:gochecknoglobals // derived constants
	rotationOffsets = generateRotationOffsets() //nolint:gochecknoglobals // derived constants
)

// RoundConstants returns the 24 Keccak-f[1600] round constants.
func RoundConstants() [24]uint64 {
	return roundConstants
}

// RotationOffsets returns the ρ offsets indexed by x + 5*y.
func RotationOffsets() [25]int {
	return rotationOffsets
}

// Theta XORs each lane with the parities of two neighbouring columns.
func Theta(a *State) {
	var c, d [5]uint64
	for x := range 5 {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := range 5 {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for y := range 5 {
		for x := range 5 {
			a[x+5*y] ^= d[x]
		}
	}
}

// Rho rotates each lane by its fixed offset.
func Rho(a *State) {
	for i := range a {
		a[i] = bits.RotateLeft64(a[i], rotationOffsets[i])
	}
}

// Pi moves the lane at (x, y) to (y, 2x+3y).
func Pi(a *State) {
	var b State
	for y := range 5 {
		for x := range 5 {
			b[y+5*((2*x+3*y)%5)] = a[x+5*y]
		}
	}
	*a = b
}

// Chi applies the non-linear row mapping a[x] ^= ^a[x+1] & a[x+2].
func Chi(a *State) {
	for y := range 5 {
		var row [5]uint64
		copy(row[:], a[5*y:5*y+5])
		for x := range 5 {
			a[x+5*y] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// Iota XORs the round constant into lane (0, 0).
func Iota(a *State, rc uint64) {
	a[0] ^= rc
}

// Round applies θ, ρ, π, χ, and ι in order.
func Round(a *State, rc uint64) {
	Theta(a)
	Rho(a)
	Pi(a)
	Chi(a)
	Iota(a, rc)
}

// Permute applies one round per element of rcs, in order. Passing RoundConstants() gives Keccak-f[1600]; passing its
// last n elements gives Keccak-p[1600, n].
func Permute(a *State, rcs []uint64) {
	for _, rc := range rcs {
		Round(a, rc)
	}
}

// rcBit returns bit t of the output of the FIPS 202 rc LFSR.
func rcBit(t int) uint64 {
	r := uint16(1)
	for range t % 255 {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}

func generateRoundConstants() (rcs [24]uint64) {
	for ir := range rcs {
		for j := range 7 {
			rcs[ir] |= rcBit(j+7*ir) << ((1 << j) - 1)
		}
	}
	return rcs
}

func generateRotationOffsets() (offsets [25]int) {
	x, y := 1, 0
	for t := range 24 {
		offsets[x+5*y] = ((t + 1) * (t + 2) / 2) % 64
		x, y = y, (2*x+3*y)%5
	}
	return offsets
}
