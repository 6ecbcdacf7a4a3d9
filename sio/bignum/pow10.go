// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package bignum

// smallPow10Max is the largest i such that 10^i fits in a uint32.
const smallPow10Max = 9

// pow10 holds 10^i for i in [0, smallPow10Max].
var pow10 = [smallPow10Max + 1]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// twoPow10 holds 2*10^i for i in [0, smallPow10Max].
var twoPow10 = [smallPow10Max + 1]uint32{
	2, 20, 200, 2000, 20000, 200000, 2000000, 20000000, 200000000, 2000000000,
}

// The limb arrays below are verbatim little-endian base-2^32 digits of
// 10^16, 10^32, 10^64, 10^128 and 10^256, reproduced from the reference
// implementation's precomputed constants.
var pow10to16 = []uint32{0x6fc10000, 0x002386f2}

var pow10to32 = []uint32{0, 0x85acef81, 0x2d6d415b, 0x000004ee}

var pow10to64 = []uint32{
	0, 0, 0xbf6a1f01, 0x6e38ed64, 0xdaa797ed, 0xe93ff9f4, 0x00184f03,
}

var pow10to128 = []uint32{
	0, 0, 0, 0,
	0x2e953e01, 0x03df9909, 0x0f1538fd, 0x2374e42f,
	0xd3cff5ec, 0xc404dc08, 0xbccdb0da, 0xa6337f19,
	0xe91f2603, 0x0000024e,
}

var pow10to256 = []uint32{
	0, 0, 0, 0, 0, 0, 0, 0,
	0x982e7c01, 0xbed3875b, 0xd8d99f72, 0x12152f87,
	0x6bde50c6, 0xcf4a6e70, 0xd595d80f, 0x26b2716e,
	0xadc666b0, 0x1d153624, 0x3c42d35a, 0x63ff540e,
	0xcc5573c0, 0x65f9ef17, 0x55bc28f2, 0x80dcc7f7,
	0xf46eeddc, 0x5fdcefce, 0x000553f7,
}

// MulPow10 multiplies self by 10^n in place. Only valid for n < 512, and
// the product must still fit in Limbs limbs: any non-zero self overflows
// for n >= 386, and an overflow is fatal.
func (n *N) MulPow10(e int) *N {
	if e < 0 || e >= 512 {
		panic("bignum: MulPow10 exponent out of range")
	}
	if e&7 != 0 {
		n.MulSmall(pow10[e&7])
	}
	if e&8 != 0 {
		n.MulSmall(pow10[8])
	}
	if e&16 != 0 {
		n.MulDigits(pow10to16)
	}
	if e&32 != 0 {
		n.MulDigits(pow10to32)
	}
	if e&64 != 0 {
		n.MulDigits(pow10to64)
	}
	if e&128 != 0 {
		n.MulDigits(pow10to128)
	}
	if e&256 != 0 {
		n.MulDigits(pow10to256)
	}
	return n
}

// DivTwoPow10 divides self by 2*10^n in place.
func (n *N) DivTwoPow10(e int) *N {
	for e > smallPow10Max {
		n.DivRemSmall(pow10[smallPow10Max])
		e -= smallPow10Max
	}
	n.DivRemSmall(twoPow10[e])
	return n
}
