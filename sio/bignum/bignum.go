// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

// Package bignum implements a fixed-capacity, non-negative, arbitrary
// precision integer used by sio/floatfmt to convert binary64 values to
// exact decimal digits. It holds no slices and performs no allocation:
// every value is a value type backed by a fixed [Limbs]uint32 array, so
// it is safe to use from async-signal contexts the way the rest of the
// sio module is.
//
// The operation set is the minimum Dragon4 needs: add, subtract,
// multiply by a small constant, by a power of ten, or by a little-endian
// limb slice (MulDigits, used for the precomputed powers of ten),
// multiply by a power of two (a shift), divide by a small constant, and
// compare. There is no division by an arbitrary divisor and no support
// for negative values.
package bignum

import (
	"strconv"

	"github.com/sio-authors/sio/internal/rio"
)

// Limbs is the fixed capacity of N, in base-2^32 digits. It is load
// bearing: Dragon4 at default %f precision on a binary64 never needs
// more than this, and any operation that would overflow it is a
// programmer error, not a runtime condition to recover from.
const Limbs = 40

const digitBits = 32

// N is a non-negative integer base[0] + base[1]*2^32 + ... Size is one
// past the index of the highest non-zero limb; size == 0 means zero.
// Limbs at indices >= size are always zero. N is a value type: pass it
// by value when you want a copy, pass *N when you want to mutate.
type N struct {
	size int
	base [Limbs]uint32
}

// fatalf reports an internal invariant violation best-effort and
// signal-safely to fd 2, mirroring __sio_assert_fail's "print then
// abort", and then panics. Go has no abort()-only story that preserves
// a caller's ability to recover and log, so this is a panic rather than
// os.Exit; see sio/doc.go for the full rationale.
func fatalf(msg string) {
	_, _ = rio.WriteFull(2, []byte("bignum: "+msg+"\n"))
	panic("bignum: " + msg)
}

func overflow() {
	fatalf("overflow past " + strconv.Itoa(Limbs) + " limbs")
}

// FromUint32 resets self to hold v.
func (n *N) FromUint32(v uint32) *N {
	n.base = [Limbs]uint32{}
	n.size = 0
	if v != 0 {
		n.base[0] = v
		n.size = 1
	}
	return n
}

// FromUint64 resets self to hold v.
func (n *N) FromUint64(v uint64) *N {
	n.base = [Limbs]uint32{}
	n.base[0] = uint32(v)
	n.base[1] = uint32(v >> digitBits)
	n.size = 0
	for i := 2; i > 0; i-- {
		if n.base[i-1] != 0 {
			n.size = i
			break
		}
	}
	return n
}

// Clone copies self's value into dst. dst and self must not alias.
func (n *N) Clone(dst *N) {
	dst.size = n.size
	dst.base = n.base
}

// IsZero reports whether self holds zero.
func (n *N) IsZero() bool {
	return n.size == 0
}

// BitLen returns one plus the index of the highest set bit, or 0 if self
// is zero.
func (n *N) BitLen() int {
	if n.size == 0 {
		return 0
	}
	top := n.base[n.size-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (n.size-1)*digitBits + bits
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add adds other into self in place and returns self.
func (n *N) Add(other *N) *N {
	sz := maxInt(n.size, other.size)
	var carry uint64
	for i := 0; i < sz; i++ {
		sum := uint64(n.base[i]) + uint64(other.base[i]) + carry
		n.base[i] = uint32(sum)
		carry = sum >> digitBits
	}
	if carry != 0 {
		if sz == Limbs {
			overflow()
		}
		n.base[sz] = uint32(carry)
		sz++
	}
	n.size = sz
	return n
}

// AddSmall adds a single limb v into self in place and returns self.
func (n *N) AddSmall(v uint32) *N {
	carry := uint64(v)
	i := 0
	for carry != 0 {
		if i == Limbs {
			overflow()
		}
		sum := uint64(n.base[i]) + carry
		n.base[i] = uint32(sum)
		carry = sum >> digitBits
		i++
	}
	if i > n.size {
		n.size = i
	}
	return n
}

// Sub subtracts other from self in place. Precondition: self >= other.
func (n *N) Sub(other *N) *N {
	sz := maxInt(n.size, other.size)
	var borrow uint64
	for i := 0; i < sz; i++ {
		a := uint64(n.base[i])
		b := uint64(other.base[i])
		d := a - b - borrow
		if a < b+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
		n.base[i] = uint32(d)
	}
	if borrow != 0 {
		fatalf("Sub underflow, self < other")
	}
	for sz > 0 && n.base[sz-1] == 0 {
		sz--
	}
	n.size = sz
	return n
}

// MulSmall multiplies self by a single 32-bit value in place.
func (n *N) MulSmall(v uint32) *N {
	sz := n.size
	var carry uint64
	for i := 0; i < sz; i++ {
		p := uint64(n.base[i])*uint64(v) + carry
		n.base[i] = uint32(p)
		carry = p >> digitBits
	}
	if carry != 0 {
		if sz == Limbs {
			overflow()
		}
		n.base[sz] = uint32(carry)
		sz++
	}
	n.size = sz
	return n
}

// MulPow2 left-shifts self by bits in place.
func (n *N) MulPow2(bits int) *N {
	if n.size == 0 || bits == 0 {
		return n
	}
	limbShift := bits / digitBits
	bitShift := bits % digitBits
	if n.size+limbShift > Limbs {
		overflow()
	}
	for i := n.size - 1; i >= 0; i-- {
		n.base[i+limbShift] = n.base[i]
	}
	for i := 0; i < limbShift; i++ {
		n.base[i] = 0
	}
	sz := n.size + limbShift
	if bitShift > 0 {
		var carry uint32
		for i := limbShift; i < sz; i++ {
			v := n.base[i]
			n.base[i] = (v << bitShift) | carry
			carry = v >> (digitBits - bitShift)
		}
		if carry != 0 {
			if sz == Limbs {
				overflow()
			}
			n.base[sz] = carry
			sz++
		}
	}
	n.size = sz
	return n
}

// pow5Val = 5^pow5Exp = 5^13, the largest power of five that fits in a uint32.
const pow5Exp = 13
const pow5Val = 1220703125

// MulPow5 multiplies self by 5^e in place.
func (n *N) MulPow5(e int) *N {
	for e >= pow5Exp {
		n.MulSmall(pow5Val)
		e -= pow5Exp
	}
	rest := uint32(1)
	for i := 0; i < e; i++ {
		rest *= 5
	}
	return n.MulSmall(rest)
}

// MulDigits multiplies self by the arbitrary-precision value given as
// little-endian limbs (schoolbook multiplication into a scratch array,
// then copied back).
func (n *N) MulDigits(digits []uint32) *N {
	var a, b []uint32
	var sza, szb int
	if n.size < len(digits) {
		a, sza = n.base[:n.size], n.size
		b, szb = digits, len(digits)
	} else {
		a, sza = digits, len(digits)
		b, szb = n.base[:n.size], n.size
	}

	var ret [Limbs]uint32
	retsz := 0
	for i := 0; i < sza; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		j := 0
		for ; j < szb; j++ {
			if i+j >= Limbs {
				overflow()
			}
			v := uint64(a[i])*uint64(b[j]) + uint64(ret[i+j]) + carry
			ret[i+j] = uint32(v)
			carry = v >> digitBits
		}
		for carry != 0 {
			if i+j >= Limbs {
				overflow()
			}
			v := uint64(ret[i+j]) + carry
			ret[i+j] = uint32(v)
			carry = v >> digitBits
			j++
		}
		if i+j > retsz {
			retsz = i + j
		}
	}
	for retsz > 0 && ret[retsz-1] == 0 {
		retsz--
	}
	n.base = ret
	n.size = retsz
	return n
}

// DivRemSmall divides self by a single 32-bit value in place and returns
// the remainder.
func (n *N) DivRemSmall(v uint32) uint32 {
	sz := n.size
	var borrow uint64
	for i := sz - 1; i >= 0; i-- {
		cur := (borrow << digitBits) | uint64(n.base[i])
		n.base[i] = uint32(cur / uint64(v))
		borrow = cur % uint64(v)
	}
	for sz > 0 && n.base[sz-1] == 0 {
		sz--
	}
	n.size = sz
	return uint32(borrow)
}

// Cmp compares self to other, returning -1, 0 or 1. Not constant time.
func (n *N) Cmp(other *N) int {
	sz := maxInt(n.size, other.size)
	for i := sz - 1; i >= 0; i-- {
		a, b := n.base[i], other.base[i]
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}
