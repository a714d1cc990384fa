package keccak

// roundConstants holds the ι constants for rounds 0 through 23.
var roundConstants = [Rounds]uint64{ //nolint:gochecknoglobals // these are constants
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808a,
	0x8000000080008000,
	0x000000000000808b,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008a,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000a,
	0x000000008000808b,
	0x800000000000008b,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800a,
	0x800000008000000a,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotationOffsets holds the ρ offsets, indexed by x+5*y. The round functions inline these as literals.
var rotationOffsets = [25]int{ //nolint:gochecknoglobals // these are constants
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// RoundConstant returns the ι constant for round i of Keccak-f[1600]. It panics unless 0 <= i < Rounds.
func RoundConstant(i int) uint64 {
	if uint(i) >= Rounds {
		panic("keccak: round index out of range")
	}
	return roundConstants[i]
}

// RotationOffset returns the ρ rotation for the lane at (x, y). It panics unless both coordinates are in [0, 5).
func RotationOffset(x, y int) int {
	if uint(x) >= 5 || uint(y) >= 5 {
		panic("keccak: lane coordinates out of range")
	}
	return rotationOffsets[x+5*y]
}
