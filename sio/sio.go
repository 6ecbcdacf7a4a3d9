// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

// Print formats according to format and writes to file descriptor 1.
func Print(format string, args ...Arg) (int, error) {
	return Fprint(1, format, args...)
}

// Eprint formats according to format and writes to file descriptor 2.
func Eprint(format string, args ...Arg) (int, error) {
	return Fprint(2, format, args...)
}

// Fprint formats according to format and writes to fd, retrying on
// EINTR through internal/rio. It returns the number of bytes written,
// or -1 with an error wrapping ErrFormat or ErrWrite on failure.
func Fprint(fd int, format string, args ...Arg) (int, error) {
	return runFormat(newFDSink(fd), format, args)
}

// Sprint formats according to format into buf, which it never grows:
// it reports the number of bytes it would have written even when buf
// is too small to hold them all, the way C's snprintf does, so callers
// can detect truncation as `n > len(buf)-1`. buf's last byte is always
// reserved for a NUL terminator (when len(buf) > 0): the written prefix
// is buf[:min(n, len(buf)-1)].
func Sprint(buf []byte, format string, args ...Arg) (int, error) {
	snk := newBufferSink(buf)
	n, err := runFormat(snk, format, args)
	snk.terminate(n)
	return n, err
}
