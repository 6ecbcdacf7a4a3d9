// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import (
	"fmt"

	"github.com/sio-authors/sio/sio/floatfmt"
)

// sizeMod is the optional size modifier preceding a conversion letter.
type sizeMod uint8

const (
	sizeNone sizeMod = iota
	sizeLong
	sizeLongLong
	sizeSize
)

// formatState is the per-call scratch for one interpreter run: read
// cursor, running total, error flag, and the fixed-size buffers every
// integer and float conversions render into. A %f whose MaxLen outgrows
// floatScr falls back to a single allocation for that conversion;
// literal text runs and %s arguments are converted from string to
// []byte before reaching the sink, which can allocate.
type formatState struct {
	snk    sink
	format string
	pos    int
	args   []Arg
	argPos int

	total    int
	fmtErr   bool
	intScr   [128]byte
	floatScr [320]byte
}

func (s *formatState) nextArg() (Arg, bool) {
	if s.argPos >= len(s.args) {
		return Arg{}, false
	}
	a := s.args[s.argPos]
	s.argPos++
	return a, true
}

// runFormat parses format, dispatching each conversion to D/F/G/H
// (itoa, floatfmt.Decode/ToDigits/FormatFixed) and emitting every
// produced segment through snk. It returns the accumulated
// would-have-written count on success, or (-1, err) on the first sink
// failure or, after parsing finishes, if any format error was seen.
func runFormat(snk sink, format string, args []Arg) (int, error) {
	s := &formatState{snk: snk, format: format, args: args}

	for s.pos < len(s.format) {
		if s.format[s.pos] != '%' {
			start := s.pos
			for s.pos < len(s.format) && s.format[s.pos] != '%' {
				s.pos++
			}
			if !s.emit([]byte(s.format[start:s.pos]), 0) {
				return -1, fmt.Errorf("%w: sink failed", ErrWrite)
			}
			continue
		}
		if !s.convert() {
			return -1, fmt.Errorf("%w: sink failed", ErrWrite)
		}
	}

	if s.fmtErr {
		return -1, fmt.Errorf("%w", ErrFormat)
	}
	return s.total, nil
}

// convert parses and emits one %-specifier starting at s.pos (which
// points just past the '%'... actually at it; convert consumes it).
// It returns false only when the sink itself failed; format errors set
// s.fmtErr and parsing continues so the argument cursor stays aligned.
func (s *formatState) convert() bool {
	s.pos++ // consume '%'

	width := 0
	haveWidth := false
	if s.peek() == '*' {
		s.pos++
		haveWidth = true
		if v, ok := s.nextArg(); ok {
			if iv, ok := v.asInt64(); ok {
				width = int(iv)
			} else {
				s.fmtErr = true
			}
		} else {
			s.fmtErr = true
		}
	}

	precision := -1
	havePrecision := false
	if s.peek() == '.' {
		s.pos++
		havePrecision = true
		if s.peek() == '*' {
			s.pos++
			if v, ok := s.nextArg(); ok {
				if iv, ok := v.asInt64(); ok {
					if iv >= 0 {
						precision = int(iv)
					}
				} else {
					s.fmtErr = true
				}
			} else {
				s.fmtErr = true
			}
		} else {
			s.fmtErr = true
		}
	}

	mod := sizeNone
	switch s.peek() {
	case 'l':
		s.pos++
		if s.peek() == 'l' {
			s.pos++
			mod = sizeLongLong
		} else {
			mod = sizeLong
		}
	case 'z':
		s.pos++
		mod = sizeSize
	}

	if s.pos >= len(s.format) {
		s.fmtErr = true
		return true
	}
	conv := s.format[s.pos]
	s.pos++

	switch conv {
	case 'c':
		if mod != sizeNone {
			s.fmtErr = true
		}
		return s.convertChar(width)
	case 's':
		if mod != sizeNone {
			s.fmtErr = true
		}
		return s.convertString(width, precision)
	case '%':
		if haveWidth || havePrecision || mod != sizeNone {
			s.fmtErr = true
		}
		return s.emit([]byte{'%'}, 0)
	case 'p':
		if mod != sizeNone {
			s.fmtErr = true
		}
		return s.convertPointer(width)
	case 'd', 'i':
		return s.convertInt(width, true, 10)
	case 'u':
		return s.convertInt(width, false, 10)
	case 'x':
		return s.convertInt(width, false, 16)
	case 'o':
		return s.convertInt(width, false, 8)
	case 'f':
		if mod != sizeNone && mod != sizeLong {
			s.fmtErr = true
		}
		return s.convertFloat(width, precision)
	default:
		s.fmtErr = true
		return true
	}
}

func (s *formatState) peek() byte {
	if s.pos >= len(s.format) {
		return 0
	}
	return s.format[s.pos]
}

// emit pads data to width (positive ⇒ left-pad with spaces, negative ⇒
// right-pad) and writes it through the sink, accumulating s.total.
func (s *formatState) emit(data []byte, width int) bool {
	leftPad, rightPad := 0, 0
	if width > 0 && width > len(data) {
		leftPad = width - len(data)
	} else if width < 0 && -width > len(data) {
		rightPad = -width - len(data)
	}
	n, ok := s.snk.write(' ', leftPad, data, rightPad)
	if n < 0 {
		fatalf("sink reported a negative byte count")
	}
	s.total += n
	return ok
}

func (s *formatState) convertChar(width int) bool {
	v, ok := s.nextArg()
	if !ok {
		s.fmtErr = true
		return true
	}
	iv, ok := v.asInt64()
	if !ok {
		s.fmtErr = true
		return true
	}
	s.intScr[0] = byte(iv)
	return s.emit(s.intScr[:1], width)
}

func (s *formatState) convertString(width, precision int) bool {
	v, ok := s.nextArg()
	if !ok {
		s.fmtErr = true
		return true
	}
	if v.kind != KindString {
		s.fmtErr = true
		return true
	}
	var data []byte
	if v.null {
		data = []byte("(null)")
	} else {
		data = []byte(v.s)
		if precision >= 0 && precision < len(data) {
			data = data[:precision]
		}
	}
	return s.emit(data, width)
}

func (s *formatState) convertPointer(width int) bool {
	v, ok := s.nextArg()
	if !ok {
		s.fmtErr = true
		return true
	}
	if v.kind != KindPointer {
		s.fmtErr = true
		return true
	}
	if v.null {
		return s.emit([]byte("(nil)"), width)
	}
	addr := uint64(uintptr(v.p))
	var hexBuf [16]byte
	hex := unsignedToBase(hexBuf[:], addr, 16)
	s.intScr[0] = '0'
	s.intScr[1] = 'x'
	copy(s.intScr[2:], hex)
	full := s.intScr[: 2+len(hex) : 2+len(hex)]
	return s.emit(full, width)
}

func (s *formatState) convertInt(width int, signed bool, base uint64) bool {
	v, ok := s.nextArg()
	if !ok {
		s.fmtErr = true
		return true
	}
	var data []byte
	if signed {
		iv, ok := v.signedInt()
		if !ok {
			if uv, ok2 := v.unsignedInt(); ok2 {
				iv = int64(uv)
			} else {
				s.fmtErr = true
				return true
			}
		}
		data = signedToBase(s.intScr[:], iv, base)
	} else {
		uv, ok := v.unsignedInt()
		if !ok {
			if iv, ok2 := v.signedInt(); ok2 {
				uv = uint64(iv)
			} else {
				s.fmtErr = true
				return true
			}
		}
		data = unsignedToBase(s.intScr[:], uv, base)
	}
	return s.emit(data, width)
}

func (s *formatState) convertFloat(width, precision int) bool {
	v, ok := s.nextArg()
	if !ok {
		s.fmtErr = true
		return true
	}
	if v.kind != KindFloat64 {
		s.fmtErr = true
		return true
	}
	need := floatfmt.MaxLen(precision)
	var buf []byte
	if need <= len(s.floatScr) {
		buf = s.floatScr[:0]
	} else {
		buf = make([]byte, 0, need)
	}
	data := floatfmt.FormatFixed(buf, v.f, precision)
	return s.emit(data, width)
}
