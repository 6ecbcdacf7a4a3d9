// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

const lowerHexDigits = "0123456789abcdef"

// unsignedToBase renders v in base (8, 10 or 16) into the tail of scratch,
// returning the used slice. Digits are generated least-significant-first
// by repeated divide/modulo, then the result is read out high-to-low by
// slicing from the end, so no separate reverse pass is needed.
func unsignedToBase(scratch []byte, v uint64, base uint64) []byte {
	i := len(scratch)
	if v == 0 {
		i--
		scratch[i] = '0'
		return scratch[i:]
	}
	for v > 0 {
		i--
		scratch[i] = lowerHexDigits[v%base]
		v /= base
	}
	return scratch[i:]
}

// signedToBase renders v in base 8, 10 or 16, with a leading '-' for
// negative values. The minimum signed value has no positive
// counterpart, so its magnitude is computed via unsigned widening
// before negation rather than by negating the signed value itself.
func signedToBase(scratch []byte, v int64, base uint64) []byte {
	if v >= 0 {
		return unsignedToBase(scratch, uint64(v), base)
	}
	mag := -uint64(v)
	digits := unsignedToBase(scratch, mag, base)
	i := len(scratch) - len(digits) - 1
	scratch[i] = '-'
	return scratch[i:]
}
