// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package floatfmt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestDecodeSpecialValues(t *testing.T) {
	testutils.Equal(t, Zero, Decode(0).Kind)
	testutils.Equal(t, Zero, Decode(math.Copysign(0, -1)).Kind)
	testutils.Equal(t, true, Decode(math.Copysign(0, -1)).Sign)
	testutils.Equal(t, Infinity, Decode(math.Inf(1)).Kind)
	testutils.Equal(t, Infinity, Decode(math.Inf(-1)).Kind)
	testutils.Equal(t, true, Decode(math.Inf(-1)).Sign)
	testutils.Equal(t, NaN, Decode(math.NaN()).Kind)
}

func TestDecodeEdgeBitPatterns(t *testing.T) {
	cases := []uint64{
		0x0000000000000001, // smallest denormal
		0x000FFFFFFFFFFFFF, // largest denormal
		0x0010000000000000, // smallest normal
		0x7FEFFFFFFFFFFFFF, // largest finite
		0x8000000000000000, // negative zero
	}
	for _, bits := range cases {
		f := math.Float64frombits(bits)
		d := Decode(f)
		if d.Kind == Finite {
			reconstructed := math.Ldexp(float64(d.Mantissa), int(d.Exponent))
			if d.Sign {
				reconstructed = -reconstructed
			}
			testutils.Equal(t, f, reconstructed, "bits %#016x", bits)
		}
	}
}

// TestDecodeRoundTrip checks that decoding a finite value and
// reconstructing mantissa*2^exponent (with sign) always yields back the
// original float, across a large population of random bit patterns.
func TestDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 1 << 15
	for i := 0; i < n; i++ {
		bits := rng.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		d := Decode(f)
		if d.Kind == Zero {
			continue
		}
		got := math.Ldexp(float64(d.Mantissa), int(d.Exponent))
		if d.Sign {
			got = -got
		}
		if got != f {
			t.Fatalf("round trip failed for bits %#016x: got %v want %v", bits, got, f)
		}
	}
}
