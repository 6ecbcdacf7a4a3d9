// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import "unsafe"

// ArgKind tags the dynamic type carried by an Arg. Go has no va_list;
// this tagged-variant slice is the call-site replacement the caller
// builds explicitly with the typed constructors below.
type ArgKind uint8

const (
	KindInt32 ArgKind = iota
	KindInt64
	KindUint32
	KindUint64
	KindUintptr
	KindFloat64
	KindString
	KindPointer
)

// Arg is one positional argument to a format call. Zero value is not
// meaningful on its own; build values with the constructors below.
type Arg struct {
	kind ArgKind
	i    int64
	u    uint64
	f    float64
	s    string
	p    unsafe.Pointer
	null bool
}

// Int builds an Arg for %d/%i/%c/%ld/%lld carrying a signed 64-bit value.
func Int(v int64) Arg { return Arg{kind: KindInt64, i: v} }

// Int32 builds an Arg for plain %d/%i/%c carrying a signed 32-bit value.
func Int32(v int32) Arg { return Arg{kind: KindInt32, i: int64(v)} }

// Uint builds an Arg for %lu/%llu/%x/%o carrying an unsigned 64-bit value.
func Uint(v uint64) Arg { return Arg{kind: KindUint64, u: v} }

// Uint32 builds an Arg for plain %u/%x/%o carrying an unsigned 32-bit value.
func Uint32(v uint32) Arg { return Arg{kind: KindUint32, u: uint64(v)} }

// Size builds an Arg for %zd/%zu/%zx/%zo carrying a size_t-equivalent value.
func Size(v uintptr) Arg { return Arg{kind: KindUintptr, u: uint64(v)} }

// Float64 builds an Arg for %f.
func Float64(v float64) Arg { return Arg{kind: KindFloat64, f: v} }

// Str builds an Arg for %s.
func Str(v string) Arg { return Arg{kind: KindString, s: v} }

// NullStr builds an Arg for %s representing a NULL string pointer; it
// renders as "(null)" per spec.
func NullStr() Arg { return Arg{kind: KindString, null: true} }

// Ptr builds an Arg for %p. A nil p renders as "(nil)".
func Ptr(v unsafe.Pointer) Arg {
	return Arg{kind: KindPointer, p: v, null: v == nil}
}

// signedInt reports whether the argument's kind is one of the signed
// integer kinds and returns its value widened to int64.
func (a Arg) signedInt() (int64, bool) {
	switch a.kind {
	case KindInt32, KindInt64:
		return a.i, true
	}
	return 0, false
}

// unsignedInt reports whether the argument's kind is one of the
// unsigned integer kinds and returns its value widened to uint64.
func (a Arg) unsignedInt() (uint64, bool) {
	switch a.kind {
	case KindUint32, KindUint64, KindUintptr:
		return a.u, true
	}
	return 0, false
}

// asInt64 widens any integer-kind argument (signed or unsigned) to an
// int64, for uses that only need a plain integer value: %c and the
// *-width/.*-precision consumers.
func (a Arg) asInt64() (int64, bool) {
	if v, ok := a.signedInt(); ok {
		return v, true
	}
	if v, ok := a.unsignedInt(); ok {
		return int64(v), true
	}
	return 0, false
}
