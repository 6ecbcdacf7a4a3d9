// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package floatfmt

import (
	"math/bits"

	"github.com/sio-authors/sio/internal/rio"
	"github.com/sio-authors/sio/sio/bignum"
)

// fatalf reports an internal invariant violation best-effort and
// signal-safely to fd 2, then panics. See sio/doc.go for why this
// package panics instead of calling os.Exit.
func fatalf(msg string) {
	_, _ = rio.WriteFull(2, []byte("floatfmt: "+msg+"\n"))
	panic("floatfmt: " + msg)
}

// estimateScalingFactor finds k0 such that 10^(k0-1) < mantissa*2^exponent
// <= 10^(k0+1); the true decimal exponent k is k0 or k0+1, refined by the
// fixup step in ToDigits.
func estimateScalingFactor(mantissa uint64, exponent int16) int16 {
	// mantissa > 0 is guaranteed by the caller; mantissa-1 never wraps
	// except when mantissa == 0, which cannot happen here.
	nbits := int64(64 - bits.LeadingZeros64(mantissa-1))
	// 1292913986 = floor(2^32 * log10(2)); the shift must be arithmetic
	// since nbits+exponent can be negative for tiny denormals.
	return int16((nbits + int64(exponent)) * 1292913986 >> 32)
}

// roundUp increments the decimal digit string in buf[:length] by one unit
// in the last place, propagating a carry through trailing '9's. If every
// digit was '9' the whole string becomes the correctly rounded "1000..0"
// in place (or, if length is zero, there is nothing to place in place)
// and carry reports that the decimal exponent must increase by one; extra
// is the single leading digit the caller should prepend when length was
// zero and there is room for it.
func roundUp(buf []byte, length int) (carry bool, extra byte) {
	i := length - 1
	for i >= 0 && buf[i] == '9' {
		i--
	}
	if i < 0 {
		if length == 0 {
			return true, '1'
		}
		buf[0] = '1'
		for j := 1; j < length; j++ {
			buf[j] = '0'
		}
		return true, 0
	}
	buf[i]++
	for j := i + 1; j < length; j++ {
		buf[j] = '0'
	}
	return false, 0
}

// ToDigits produces up to len(buf) decimal digits of d (which must be
// Finite with a non-zero mantissa) plus the decimal exponent k such that
// the value equals 0.d1d2...dL x 10^k, rounded half-to-even against the
// original binary value. limit is the smallest decimal exponent worth
// representing (the caller derives it from -precision); digit generation
// stops early, before exponent reaches limit, if the caller asked for
// fewer digits than the value has.
func ToDigits(d *Decoded, buf []byte, limit int16) (length int, k int16) {
	if d.Mantissa == 0 {
		fatalf("ToDigits requires a non-zero mantissa")
	}
	bufferSize := len(buf)

	k = estimateScalingFactor(d.Mantissa, d.Exponent)

	var mant, scale bignum.N
	mant.FromUint64(d.Mantissa)
	scale.FromUint32(1)
	if d.Exponent < 0 {
		scale.MulPow2(int(-d.Exponent))
	} else {
		mant.MulPow2(int(d.Exponent))
	}

	if k >= 0 {
		scale.MulPow10(int(k))
	} else {
		mant.MulPow10(int(-k))
	}

	{
		var fixup bignum.N
		scale.Clone(&fixup)
		fixup.DivTwoPow10(bufferSize)
		fixup.Add(&mant)
		if fixup.Cmp(&scale) >= 0 {
			k++
		} else {
			mant.MulSmall(10)
		}
	}

	switch {
	case int(k) < int(limit):
		length = 0
	case int(k)-int(limit) < bufferSize:
		length = int(k) - int(limit)
	default:
		length = bufferSize
	}

	if length > 0 {
		var scale2, scale4, scale8 bignum.N
		scale.Clone(&scale2)
		scale2.MulPow2(1)
		scale.Clone(&scale4)
		scale4.MulPow2(2)
		scale.Clone(&scale8)
		scale8.MulPow2(3)

		for i := 0; i < length; i++ {
			if mant.IsZero() {
				for j := i; j < length; j++ {
					buf[j] = '0'
				}
				return length, k
			}
			digit := byte('0')
			if mant.Cmp(&scale8) >= 0 {
				mant.Sub(&scale8)
				digit += 8
			}
			if mant.Cmp(&scale4) >= 0 {
				mant.Sub(&scale4)
				digit += 4
			}
			if mant.Cmp(&scale2) >= 0 {
				mant.Sub(&scale2)
				digit += 2
			}
			if mant.Cmp(&scale) >= 0 {
				mant.Sub(&scale)
				digit++
			}
			if digit > '9' {
				fatalf("digit extraction produced an invalid digit")
			}
			buf[i] = digit
			mant.MulSmall(10)
		}
	}

	scale.MulSmall(5)
	order := mant.Cmp(&scale)
	lastOdd := length > 0 && (buf[length-1]-'0')&1 == 1
	if order > 0 || (order == 0 && lastOdd) {
		carry, extra := roundUp(buf[:length], length)
		if carry {
			k++
			if extra != 0 && int(k) > int(limit) && length < bufferSize {
				buf[length] = extra
				length++
			}
		}
	}
	return length, k
}
