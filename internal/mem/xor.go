// Package mem provides byte- and lane-level helpers for moving data in and out of a Keccak state.
package mem

import "crypto/subtle"

// XORInPlace sets dst[i] ^= src[i] for each i in src. Uses subtle.XORBytes for slices larger than 16 bytes and a
// scalar loop for small slices.
func XORInPlace(dst, src []byte) {
	if len(src) > 16 {
		subtle.XORBytes(dst, dst, src)
	} else {
		for i, s := range src {
			dst[i] ^= s
		}
	}
}
