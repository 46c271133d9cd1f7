// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-ksdist/mathx"
)

// Scale factor for the Pomeranz recursion. Row values shrink roughly
// geometrically, so whenever a row's minimum drops below 1e-280 the
// row is multiplied by ksReno and the count of rescales is folded
// back in log space at the end.
const ksRenoExp = 350

var ksReno = math.Ldexp(1, ksRenoExp) // 2^350

// PomeranzCDF returns P[D_n <= x] for the two-sided
// Kolmogorov-Smirnov statistic over n samples, computed with the
// Pomeranz recursion.
//
// Pomeranz, J. (1974). "Exact Cumulative Distribution of the
// Kolmogorov-Smirnov Statistic for Small Samples (Algorithm 487)".
// Communications of the ACM 17 (12). The O(n²) variant implemented
// here, with the precomputed coefficient table and the
// rescale-and-count underflow protection, is the one given by Simard
// and L'Ecuyer (2011). KSDist.CDF applies it for the mid-range
// 0.754693 <= n*x² < 4 where Durbin's method becomes too expensive.
func PomeranzCDF(n int, x float64) float64 {
	const eps = 1.0e-15
	t := float64(n) * x

	A := make([]float64, 2*n+3)
	floors := make([]int, 2*n+3)
	ceilings := make([]int, 2*n+3)
	ksPomeranzLimits(n, t, A, floors, ceilings)

	H := ksPomeranzCoeffs(n, A)

	// V holds two alternating rows of the forward recursion over
	// the boundary lattice.
	var V [2][]float64
	V[0] = make([]float64, n+2)
	V[1] = make([]float64, n+2)
	V[1][1] = ksReno
	renormalizations := 1

	r1, r2 := 0, 1
	for i := 2; i <= 2*n+2; i++ {
		jlow := 2 + floors[i]
		if jlow < 1 {
			jlow = 1
		}
		jup := ceilings[i]
		if jup > n+1 {
			jup = n+1
		}
		klow := 2 + floors[i-1]
		if klow < 1 {
			klow = 1
		}
		kup0 := ceilings[i-1]

		// Match the interval width against the coefficient
		// table to find which of the four structural cases
		// this transition is.
		w := (A[i] - A[i-1]) / float64(n)
		s := -1
		for j := 0; j < 4; j++ {
			if math.Abs(w-H[j][1]) <= eps {
				s = j
				break
			}
		}

		minsum := ksReno
		r1, r2 = r2, r1
		for j := jlow; j <= jup; j++ {
			kup := kup0
			if kup > j {
				kup = j
			}
			sum := 0.0
			for k := kup; k >= klow; k-- {
				sum += V[r1][k] * H[s][j-k]
			}
			V[r2][j] = sum
			if sum < minsum {
				minsum = sum
			}
		}

		if minsum < 1.0e-280 {
			for j := jlow; j <= jup; j++ {
				V[r2][j] *= ksReno
			}
			renormalizations++
		}
	}

	sum := V[r2][n+1]
	w := mathx.LogFactorial(float64(n)) - float64(renormalizations)*ksRenoExp*math.Ln2 + math.Log(sum)
	if w >= 0 {
		return 1
	}
	return math.Exp(w)
}

// ksPomeranzLimits fills in the breakpoints A[i] of the Pomeranz
// lattice together with floors[i] = floor(A[i]-t) and
// ceilings[i] = ceil(A[i]+t), which bound the inner sums of the
// recursion. The index-parity formulas branch on where the
// fractional part of t = n*x falls relative to 0 and 0.5, since that
// determines how the lattice lines interleave with the integer grid.
func ksPomeranzLimits(n int, t float64, A []float64, floors, ceilings []int) {
	ell := int(t)
	z := t - float64(ell)
	w := math.Ceil(t) - t

	switch {
	case z > 0.5:
		for i := 2; i <= 2*n+2; i += 2 {
			floors[i] = i/2 - 2 - ell
		}
		for i := 1; i <= 2*n+2; i += 2 {
			floors[i] = i/2 - 1 - ell
		}
		for i := 2; i <= 2*n+2; i += 2 {
			ceilings[i] = i/2 + ell
		}
		for i := 1; i <= 2*n+2; i += 2 {
			ceilings[i] = i/2 + 1 + ell
		}
	case z > 0:
		for i := 1; i <= 2*n+2; i++ {
			floors[i] = i/2 - 1 - ell
		}
		for i := 2; i <= 2*n+2; i++ {
			ceilings[i] = i/2 + ell
		}
		ceilings[1] = 1 + ell
	default: // t is an integer
		for i := 2; i <= 2*n+2; i += 2 {
			floors[i] = i/2 - 1 - ell
		}
		for i := 1; i <= 2*n+2; i += 2 {
			floors[i] = i/2 - ell
		}
		for i := 2; i <= 2*n+2; i += 2 {
			ceilings[i] = i/2 - 1 + ell
		}
		for i := 1; i <= 2*n+2; i += 2 {
			ceilings[i] = i/2 + ell
		}
	}

	if w < z {
		z = w
	}
	A[0], A[1] = 0, 0
	A[2] = z
	A[3] = 1 - A[2]
	for i := 4; i <= 2*n+1; i++ {
		A[i] = A[i-2] + 1
	}
	A[2*n+2] = float64(n)
}

// ksPomeranzCoeffs precomputes the four power-series coefficient
// vectors H[s][j] = wₛʲ/j! for the four structurally distinct
// interval widths wₛ that occur between consecutive breakpoints:
// 2*A[2]/n, (1-2*A[2])/n, A[2]/n, and 0.
func ksPomeranzCoeffs(n int, A []float64) [4][]float64 {
	var H [4][]float64
	for s := range H {
		H[s] = make([]float64, n+2)
	}

	H[0][0] = 1
	w := 2 * A[2] / float64(n)
	for j := 1; j <= n+1; j++ {
		H[0][j] = w * H[0][j-1] / float64(j)
	}

	H[1][0] = 1
	w = (1 - 2*A[2]) / float64(n)
	for j := 1; j <= n+1; j++ {
		H[1][j] = w * H[1][j-1] / float64(j)
	}

	H[2][0] = 1
	w = A[2] / float64(n)
	for j := 1; j <= n+1; j++ {
		H[2][j] = w * H[2][j-1] / float64(j)
	}

	// H[3] is the degenerate zero-width case: 1, 0, 0, ...
	H[3][0] = 1

	return H
}
