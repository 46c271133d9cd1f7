// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestKSPomeranzLimits(t *testing.T) {
	// The three trichotomy cases: fractional part of t above 0.5,
	// in (0, 0.5], and exactly 0.
	n := 4
	for _, tt := range []float64{2.7, 2.3, 2.0} {
		A := make([]float64, 2*n+3)
		floors := make([]int, 2*n+3)
		ceilings := make([]int, 2*n+3)
		ksPomeranzLimits(n, tt, A, floors, ceilings)

		for i := 1; i <= 2*n+2; i++ {
			if floors[i] > ceilings[i] {
				t.Errorf("t=%v: floors[%d] = %d > ceilings[%d] = %d",
					tt, i, floors[i], i, ceilings[i])
			}
		}
		if A[0] != 0 || A[1] != 0 {
			t.Errorf("t=%v: A[0], A[1] = %v, %v, want 0, 0", tt, A[0], A[1])
		}
		for i := 1; i <= 2*n+2; i++ {
			if A[i] < A[i-1] {
				t.Errorf("t=%v: A[%d] = %v < A[%d] = %v", tt, i, A[i], i-1, A[i-1])
			}
		}
		if A[2*n+2] != float64(n) {
			t.Errorf("t=%v: A[2n+2] = %v, want %v", tt, A[2*n+2], n)
		}
	}
}

func TestKSPomeranzCoeffs(t *testing.T) {
	n := 5
	A := make([]float64, 2*n+3)
	floors := make([]int, 2*n+3)
	ceilings := make([]int, 2*n+3)
	ksPomeranzLimits(n, float64(n)*0.46, A, floors, ceilings)

	H := ksPomeranzCoeffs(n, A)
	widths := []float64{2 * A[2] / float64(n), (1 - 2*A[2]) / float64(n), A[2] / float64(n), 0}
	for s := range H {
		if H[s][0] != 1 {
			t.Errorf("H[%d][0] = %v, want 1", s, H[s][0])
		}
		if H[s][1] != widths[s] {
			t.Errorf("H[%d][1] = %v, want %v", s, H[s][1], widths[s])
		}
		// H[s][j] = w^j/j!
		w := widths[s]
		for j := 2; j <= n+1; j++ {
			want := math.Pow(w, float64(j)) / mathxFactorial(j)
			if math.Abs(H[s][j]-want) > 1e-15*(1+math.Abs(want)) {
				t.Errorf("H[%d][%d] = %v, want %v", s, j, H[s][j], want)
			}
		}
	}
}

func mathxFactorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func TestPomeranzTrichotomy(t *testing.T) {
	// Exercise all three boundary-array cases end to end and
	// check each against Durbin, which is exact in this range.
	for _, test := range []struct {
		n int
		x float64
	}{
		{10, 0.20},  // t = 2 exactly
		{10, 0.25},  // fractional part 0.5
		{10, 0.27},  // fractional part 0.7
		{10, 0.23},  // fractional part 0.3
		{25, 0.124}, // t = 3.1
	} {
		durbin := DurbinCDF(test.n, test.x)
		pomeranz := PomeranzCDF(test.n, test.x)
		if !aeqTol(durbin, pomeranz, 1e-8) {
			t.Errorf("n=%v x=%v: Pomeranz = %.15g, Durbin = %.15g",
				test.n, test.x, pomeranz, durbin)
		}
	}
}
