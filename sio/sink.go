// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

// sink is the single output abstraction every conversion in this package
// writes through. A call writes leftPad copies of padChar, then data,
// then rightPad copies of padChar, in that order, and reports the total
// byte count it wrote (FD sink) or would have written (buffer sink). It
// returns ok=false only on an unrecoverable underlying I/O failure; a
// buffer sink never fails this way, it only truncates.
type sink interface {
	write(padChar byte, leftPad int, data []byte, rightPad int) (n int, ok bool)
}

// padChunk is the size of the fixed pad-character array the FD sink
// reuses across writes, so it never allocates to satisfy a wide width.
const padChunk = 128
