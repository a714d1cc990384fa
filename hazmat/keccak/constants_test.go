package keccak //nolint:testpackage // testing internals

import (
	"strings"
	"testing"

	"github.com/codahale/keccak1600/internal/reference"
)

func TestRoundConstants(t *testing.T) {
	want := reference.RoundConstants()
	for i := range Rounds {
		if got := RoundConstant(i); got != want[i] {
			t.Errorf("RoundConstant(%d) = %#016x, want = %#016x", i, got, want[i])
		}
	}

	for _, i := range []int{-1, Rounds, 100} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("RoundConstant(%d) did not panic", i)
					return
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "keccak: ") {
					t.Errorf("RoundConstant(%d) panicked with %v", i, r)
				}
			}()

			RoundConstant(i)
		}()
	}
}

func TestRotationOffsets(t *testing.T) {
	want := reference.RotationOffsets()
	for y := range 5 {
		for x := range 5 {
			if got := RotationOffset(x, y); got != want[x+5*y] {
				t.Errorf("RotationOffset(%d, %d) = %d, want = %d", x, y, got, want[x+5*y])
			}
		}
	}

	if got := RotationOffset(0, 0); got != 0 {
		t.Errorf("RotationOffset(0, 0) = %d, want = 0", got)
	}

	for _, xy := range [][2]int{{5, 0}, {0, 5}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RotationOffset(%d, %d) did not panic", xy[0], xy[1])
				}
			}()

			RotationOffset(xy[0], xy[1])
		}()
	}
}
