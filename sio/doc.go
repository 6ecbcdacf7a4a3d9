// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

// Package sio is a reentrant formatted-output engine modeled on CS:APP's
// sio (Signal-safe I/O) library: a restricted printf subset (%c %s %%
// %p %d %i %u %x %o %f, *-width, .*-precision, l/ll/z size modifiers)
// that writes through a sink (a file descriptor via internal/rio, or a
// caller-supplied []byte buffer) instead of through libc stdio.
//
// Reentrancy. Every exported entry point (Print, Fprint, Eprint,
// Sprint) holds no package-level mutable state reachable from a format
// call: each call builds its own formatState on the stack, and every
// big-integer or float scratch involved in rendering %f is a value type
// passed by pointer, never shared. Two goroutines calling Fprint against
// distinct descriptors need no coordination; two calling it against the
// same descriptor may interleave at the syscall level, which is
// intentional: the caller owns synchronization, exactly as in the
// reference implementation.
//
// Async-signal safety, and where the Go port differs from the C
// original. The original sio library is safe to call from a POSIX
// signal handler: no locks, no heap, no locale, no stdio buffering. This
// port keeps all of that except the heap point: Go's runtime and
// garbage collector make a hard no-allocation guarantee unenforceable
// at the language level: a %f whose rendered length can outgrow this
// package's fixed scratch allocates once for that conversion, and
// literal text and %s strings are converted to []byte, which can
// allocate. Go also does not
// deliver OS signals to interrupt-context code the way C does; a
// signal.Notify handler runs on an ordinary goroutine. So the property
// this package actually offers is: safe to call concurrently, with no
// shared mutable state and no locking, from any goroutine including one
// woken by signal.Notify (a close but not bit-for-bit identical cousin
// of the original async-signal-safety guarantee). Internal invariant
// violations (bignum overflow, a malformed Dragon digit) panic rather
// than abort(), so an embedding process can recover and log instead of
// dying outright; see bignum.fatalf and floatfmt.fatalf.
package sio
