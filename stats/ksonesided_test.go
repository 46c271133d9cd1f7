// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestOneSidedSingleSample(t *testing.T) {
	// P[D_1⁺ >= x] = 1 - x.
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if want, got := 1-x, OneSidedUpperTail(1, x); !aeqTol(want, got, 1e-12) {
			t.Errorf("OneSidedUpperTail(1, %v) = %v, want %v", x, got, want)
		}
	}
}

func TestOneSidedSmallSample(t *testing.T) {
	// Hand evaluation of the Birnbaum-Tingey sum for n=2, x=0.3:
	// x*C(2,1)*(0.8)^0*(0.2)^1 + (0.7)^2 = 0.12 + 0.49.
	if want, got := 0.61, OneSidedUpperTail(2, 0.3); !aeqTol(want, got, 1e-12) {
		t.Errorf("OneSidedUpperTail(2, 0.3) = %v, want %v", got, want)
	}
}

func TestOneSidedMonotonic(t *testing.T) {
	for _, n := range []float64{10, 1000, 500000} {
		prev := 1.0
		for x := 0.01; x < 1; x += 0.01 {
			cur := OneSidedUpperTail(n, x)
			if cur > prev+1e-12 {
				t.Fatalf("n=%v: tail increases at x=%v: %v > %v", n, x, cur, prev)
			}
			if cur < 0 || cur > 1 {
				t.Fatalf("n=%v x=%v: tail = %v out of range", n, x, cur)
			}
			prev = cur
		}
	}
}

func TestOneSidedAsymptoticContinuity(t *testing.T) {
	// The switch from the exact Smirnov sum to the asymptotic
	// correction at n = 200000 must not produce a jump.
	for _, x := range []float64{0.002, 0.003, 0.004} {
		exact := OneSidedUpperTail(200000, x)
		asympt := OneSidedUpperTail(200001, x)
		if !aeqTol(exact, asympt, 1e-3) {
			t.Errorf("x=%v: tail(200000) = %.8g, tail(200001) = %.8g", x, exact, asympt)
		}
	}
}

func TestOneSidedDoubled(t *testing.T) {
	// Doubling the one-sided tail approximates the two-sided
	// survival function well when n*x² is large; compare against
	// the complement of the exact Pomeranz CDF.
	n, x := 100, 0.25 // n*x² = 6.25
	doubled := 2 * OneSidedUpperTail(float64(n), x)
	exact := 1 - PomeranzCDF(n, x)
	if !aeqTol(exact, doubled, 1e-4) {
		t.Errorf("2*tail = %.10g, 1-Pomeranz = %.10g", doubled, exact)
	}
	if math.Abs(doubled-exact) > 1e-9 {
		t.Errorf("absolute gap %v too large", math.Abs(doubled-exact))
	}
}
