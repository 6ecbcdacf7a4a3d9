// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

// Package floatfmt decodes IEEE-754 binary64 values and renders them as
// %f text using an exact (not shortest-round-trip) Dragon4 digit
// generator. It is the float half of the sio format engine: dragon.go
// and format.go in this package never touch math/big or strconv, so the whole path
// from bit pattern to padded text stays allocation-free and usable from
// a signal-delivered goroutine.
package floatfmt

import "math"

// Kind classifies a decoded float.
type Kind uint8

const (
	Finite Kind = iota
	Zero
	Infinity
	NaN
)

// Decoded is a binary64 split into sign, integer mantissa, binary
// exponent and rounding-neighborhood half-widths, following Steele &
// White's formulation: the represented value is (-1)^Sign * Mantissa *
// 2^Exponent, and [value-Minus*2^Exponent, value+Plus*2^Exponent] (open
// or closed per Inclusive) is the set of binary64 values that round to
// the same bit pattern.
type Decoded struct {
	Sign      bool
	Mantissa  uint64
	Exponent  int16
	Plus      uint64
	Minus     uint64
	Inclusive bool
	Kind      Kind
}

// Decode splits f into its decoded representation.
func Decode(f float64) Decoded {
	bits := math.Float64bits(f)

	var d Decoded
	d.Sign = bits>>63 != 0
	e := int16((bits >> 52) & 0x7ff)
	m := bits & (1<<52 - 1)
	even := m&1 == 0

	switch {
	case e == 0 && m == 0:
		d.Kind = Zero
		d.Inclusive = even

	case e == 0:
		// Denormal.
		d.Kind = Finite
		d.Exponent = -(1023 + 52)
		d.Mantissa = m << 1
		d.Plus = 1
		d.Minus = 1
		d.Inclusive = even

	case e == 0x7ff:
		d.Exponent = -1
		d.Mantissa = ^uint64(0)
		d.Plus = ^uint64(0)
		d.Minus = ^uint64(0)
		d.Inclusive = false
		if m == 0 {
			d.Kind = Infinity
		} else {
			d.Kind = NaN
		}

	default:
		// Normal.
		d.Kind = Finite
		d.Exponent = e - (1023 + 52)
		d.Mantissa = m | (1 << 52)
		if m == 0 {
			// Smallest mantissa for this exponent: the lower rounding
			// boundary is half as wide, so scale up by 4 to keep plus
			// and minus integral.
			d.Exponent -= 2
			d.Mantissa <<= 2
			d.Plus = 2
			d.Minus = 1
		} else {
			d.Exponent--
			d.Mantissa <<= 1
			d.Plus = 1
			d.Minus = 1
		}
		d.Inclusive = even
	}
	return d
}
