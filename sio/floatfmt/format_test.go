// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package floatfmt

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func format(f float64, precision int) string {
	buf := make([]byte, 0, MaxLen(precision))
	return string(FormatFixed(buf, f, precision))
}

func TestFormatFixedSpecials(t *testing.T) {
	testutils.Equal(t, "inf", format(math.Inf(1), 6))
	testutils.Equal(t, "-inf", format(math.Inf(-1), 6))
	testutils.Equal(t, "nan", format(math.NaN(), 6))
	testutils.Equal(t, "0.000000", format(0, 6))
	testutils.Equal(t, "-0.000000", format(math.Copysign(0, -1), 6))
	testutils.Equal(t, "0", format(0, 0))
}

func TestFormatFixedKnownValues(t *testing.T) {
	testutils.Equal(t, "3.141593", format(3.14159265358979, 6))
	testutils.Equal(t, "1.000000", format(1, 6))
	testutils.Equal(t, "100.000000", format(100, 6))
	testutils.Equal(t, "0.500000", format(0.5, 6))
	testutils.Equal(t, "-2.500000", format(-2.5, 6))
	testutils.Equal(t, "2", format(2, 0))
}

// TestDragonRoundingAgainstStrconv cross-checks the exact Dragon digit
// generator against the standard library's own correctly-rounded
// formatter across a large population of random finite doubles and
// precisions. strconv is only ever used here, in the test oracle; the
// formatter under test never imports it.
func TestDragonRoundingAgainstStrconv(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 10000
	precisions := []int{0, 1, 2, 6, 10, 17}
	for i := 0; i < n; i++ {
		bits := rng.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		precision := precisions[i%len(precisions)]
		want := strconv.FormatFloat(f, 'f', precision, 64)
		got := format(f, precision)
		if got != want {
			t.Fatalf("bits=%#016x precision=%d: got %q want %q", bits, precision, got, want)
		}
	}
}

func TestDragonRoundingSmallIntegers(t *testing.T) {
	for i := 0; i < 2000; i++ {
		f := float64(i)
		want := strconv.FormatFloat(f, 'f', 2, 64)
		got := format(f, 2)
		testutils.Equal(t, want, got, "i=%d", i)
	}
}
