package reference //nolint:testpackage // testing internals

import (
	"encoding/hex"
	"testing"

	"github.com/codahale/keccak1600/internal/mem"
)

func TestPermute(t *testing.T) {
	var a State
	rcs := RoundConstants()
	Permute(&a, rcs[:])

	var out [200]byte
	mem.Store(&out, (*[25]uint64)(&a))

	if got, want := hex.EncodeToString(out[:]), "e7dde140798f25f18a47c033f9ccd584eea95aa61e2698d54d49806f304715bd57d05362054e288bd46f8e7f2da497ffc44746a4a0e5fe90762e19d60cda5b8c9c05191bf7a630ad64fc8fd0b75a933035d617233fa95aeb0321710d26e6a6a95f55cfdb167ca58126c84703cd31b8439f56a5111a2ff20161aed9215a63e505f270c98cf2febe641166c47b95703661cb0ed04f555a7cb8c832cf1c8ae83e8c14263aae22790c94e409c5a224f94118c26504e72635f5163ba1307fe944f67549a2ec5c7bfff1ea"; got != want {
		t.Errorf("Keccak-f[1600](0*200) = %s, want = %s", got, want)
	}
}

func TestRoundConstants(t *testing.T) {
	rcs := RoundConstants()
	for i, want := range map[int]uint64{
		0:  0x0000000000000001,
		1:  0x0000000000008082,
		2:  0x800000000000808a,
		12: 0x000000008000808b,
		23: 0x8000000080008008,
	} {
		if got := rcs[i]; got != want {
			t.Errorf("RC[%d] = %#016x, want = %#016x", i, got, want)
		}
	}
}

func TestRotationOffsets(t *testing.T) {
	want := [25]int{
		0, 1, 62, 28, 27,
		36, 44, 6, 55, 20,
		3, 10, 43, 25, 39,
		41, 45, 15, 21, 8,
		18, 2, 61, 56, 14,
	}
	if got := RotationOffsets(); got != want {
		t.Errorf("RotationOffsets() = %v, want = %v", got, want)
	}
}

func TestTheta(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		var a State
		Theta(&a)
		if a != (State{}) {
			t.Errorf("Theta(0) = %x, want 0", a)
		}
	})

	t.Run("single bit", func(t *testing.T) {
		// A single bit in column 0 flips that bit in column 4 and the rotated bit in column 1, in every row.
		var a State
		a[0] = 1
		Theta(&a)

		for y := range 5 {
			want := [5]uint64{0, 1, 0, 0, 2}
			if y == 0 {
				want[0] = 1
			}
			for x := range 5 {
				if got := a[x+5*y]; got != want[x] {
					t.Errorf("a[%d,%d] = %#x, want = %#x", x, y, got, want[x])
				}
			}
		}
	})
}

func TestPi(t *testing.T) {
	var a State
	for i := range a {
		a[i] = uint64(i)
	}
	Pi(&a)

	for y := range 5 {
		for x := range 5 {
			if got, want := a[y+5*((2*x+3*y)%5)], uint64(x+5*y); got != want {
				t.Errorf("lane (%d,%d) moved to wrong position: got %d, want %d", x, y, got, want)
			}
		}
	}

	if a[0] != 0 {
		t.Errorf("lane (0,0) moved: a[0] = %d", a[0])
	}
}

func TestChi(t *testing.T) {
	var a State
	a[2] = 1 // x=2 feeds a[0] via ^a[1] & a[2]
	Chi(&a)

	if got, want := a[0], uint64(1); got != want {
		t.Errorf("a[0] = %d, want = %d", got, want)
	}
	if got, want := a[2], uint64(1); got != want {
		t.Errorf("a[2] = %d, want = %d", got, want)
	}
	for i, v := range a {
		if i != 0 && i != 2 && v != 0 {
			t.Errorf("a[%d] = %d, want 0", i, v)
		}
	}
}

func TestIota(t *testing.T) {
	var a State
	Iota(&a, 0x8082)

	if a[0] != 0x8082 {
		t.Errorf("a[0] = %#x, want = 0x8082", a[0])
	}
	for i := 1; i < len(a); i++ {
		if a[i] != 0 {
			t.Errorf("a[%d] = %#x, want 0", i, a[i])
		}
	}
}
