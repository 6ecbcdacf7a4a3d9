// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import (
	"math"
	"testing"
	"unsafe"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func sprint(t *testing.T, format string, args ...Arg) (string, int) {
	t.Helper()
	buf := make([]byte, 256)
	n, err := Sprint(buf, format, args...)
	testutils.NoError(t, err)
	end := n
	if end > len(buf)-1 {
		end = len(buf) - 1
	}
	return string(buf[:end]), n
}

func TestScenarioIntSizes(t *testing.T) {
	minInt32 := int32(math.MinInt32)
	got, _ := sprint(t, "int size: %d %u %x\n",
		Int32(minInt32),
		Uint32(uint32(minInt32)),
		Uint32(uint32(minInt32)),
	)
	testutils.Equal(t, "int size: -2147483648 2147483648 80000000\n", got)
}

func TestScenarioSizeT(t *testing.T) {
	neg1 := ^uintptr(0)
	got, _ := sprint(t, "size_t size: %zd %zu %zx\n", Size(neg1), Size(neg1), Size(neg1))
	testutils.Equal(t, "size_t size: -1 18446744073709551615 ffffffffffffffff\n", got)
}

func TestScenarioPointers(t *testing.T) {
	got, _ := sprint(t, "pointer: %p %p %p\n",
		Ptr(nil),
		Ptr(unsafe.Pointer(uintptr(0x400640))),
		Ptr(unsafe.Pointer(^uintptr(0))),
	)
	testutils.Equal(t, "pointer: (nil) 0x400640 0xffffffffffffffff\n", got)
}

func TestScenarioStrings(t *testing.T) {
	got, _ := sprint(t, "string: %s %s\n", NullStr(), Str("hola"))
	testutils.Equal(t, "string: (null) hola\n", got)
}

func TestScenarioPositivePadding(t *testing.T) {
	got, _ := sprint(t, "padding:'%*d'\n", Int(5), Int(5))
	testutils.Equal(t, "padding:'    5'\n", got)
}

func TestScenarioNegativePadding(t *testing.T) {
	got, _ := sprint(t, "negative padding:'%*d'\n", Int(-5), Int(-5))
	testutils.Equal(t, "negative padding:'-5   '\n", got)
}

func TestScenarioFloatDefault(t *testing.T) {
	got, _ := sprint(t, "%f", Float64(1234.5))
	testutils.Equal(t, "1234.500000", got)
}

func TestFormatErrorOnPercentWithFlags(t *testing.T) {
	buf := make([]byte, 64)
	_, err := Sprint(buf, "%*%", Int(5))
	if err == nil {
		t.Fatal("expected a format error for width applied to %%")
	}
}

func TestFormatErrorOnTruncatedSpecifier(t *testing.T) {
	buf := make([]byte, 64)
	_, err := Sprint(buf, "abc%")
	if err == nil {
		t.Fatal("expected a format error for a specifier truncated at end of string")
	}
}

func TestSprintTruncationAndNUL(t *testing.T) {
	buf := make([]byte, 6)
	n, err := Sprint(buf, "%s", Str("hello world"))
	testutils.NoError(t, err)
	testutils.Equal(t, 11, n)
	testutils.Equal(t, "hello", string(buf[:5]))
	testutils.Equal(t, byte(0), buf[5])
}

func TestSprintReturnIndependentOfCapWhenLargeEnough(t *testing.T) {
	small := make([]byte, 64)
	n1, err := Sprint(small, "%s-%d", Str("value"), Int(42))
	testutils.NoError(t, err)

	large := make([]byte, 256)
	n2, err := Sprint(large, "%s-%d", Str("value"), Int(42))
	testutils.NoError(t, err)
	testutils.Equal(t, n1, n2)
}

func TestPaddingArithmeticMatchesMaxWidthLength(t *testing.T) {
	cases := []struct {
		width int
		value int64
	}{
		{0, 7}, {10, 7}, {-10, 7}, {3, 1234567}, {-3, 1234567},
	}
	for _, c := range cases {
		got, n := sprint(t, "%*d", Int(int64(c.width)), Int(c.value))
		plain, _ := sprint(t, "%d", Int(c.value))

		absWidth := c.width
		if absWidth < 0 {
			absWidth = -absWidth
		}
		want := len(plain)
		if want < absWidth {
			want = absWidth
		}
		testutils.Equal(t, want, n, "width=%d value=%d", c.width, c.value)

		digitLen := len(got)
		if digitLen < absWidth {
			t.Fatalf("width=%d value=%d: got %q shorter than width", c.width, c.value, got)
		}
	}
}

func TestRunOfLiteralTextIsEmittedVerbatim(t *testing.T) {
	got, _ := sprint(t, "no specifiers here\n")
	testutils.Equal(t, "no specifiers here\n", got)
}

// TestFloatPaddingMatchesMaxWidthLength checks that %f padding, like
// every other conversion, right-pads on a negative width and left-pads
// on a positive one, with the total length always matching max(|width|,
// rendered length).
func TestFloatPaddingMatchesMaxWidthLength(t *testing.T) {
	cases := []struct {
		width int
		value float64
	}{
		{0, 3.5}, {12, 3.5}, {-12, 3.5}, {20, -1234.5}, {-20, -1234.5},
	}
	for _, c := range cases {
		got, n := sprint(t, "%*f", Int(int64(c.width)), Float64(c.value))
		testutils.Equal(t, len(got), n, "width=%d value=%v", c.width, c.value)

		absWidth := c.width
		if absWidth < 0 {
			absWidth = -absWidth
		}
		if len(got) < absWidth {
			t.Fatalf("width=%d value=%v: got %q shorter than width", c.width, c.value, got)
		}
		plain, _ := sprint(t, "%f", Float64(c.value))
		pad := absWidth - len(plain)
		if pad < 0 {
			pad = 0
		}
		testutils.Equal(t, len(plain)+pad, len(got), "width=%d value=%v", c.width, c.value)
		if c.width < 0 && (got[:len(plain)] != plain || countTrailingSpaces(got) != pad) {
			t.Fatalf("width=%d value=%v: expected %q followed by %d pad spaces, got %q", c.width, c.value, plain, pad, got)
		}
		if c.width >= 0 && got[pad:] != plain {
			t.Fatalf("width=%d value=%v: expected %d pad spaces before %q, got %q", c.width, c.value, pad, plain, got)
		}
	}
}

func countTrailingSpaces(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == ' '; i-- {
		n++
	}
	return n
}
