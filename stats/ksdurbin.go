// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The matrix entries stay within double range across O(log n)
// multiplications by rescaling whenever the central entry exceeds
// ksDurbinNorm. The accumulated rescales are tracked as a power of
// ten and reapplied at the end.
const (
	ksDurbinNorm    = 1e140
	ksDurbinInvNorm = 1e-140
	ksDurbinLogNorm = 140
)

// DurbinCDF returns P[D_n <= d] for the two-sided Kolmogorov-Smirnov
// statistic over n samples, computed exactly with Durbin's
// matrix-power method.
//
// This follows Marsaglia, G.; Tsang, W. W.; Wang, J. (2003).
// "Evaluating Kolmogorov's Distribution". Journal of Statistical
// Software 8 (18). It builds an m×m transition matrix H with
// m = 2*ceil(n*d)-1, raises it to the n'th power by recursive
// squaring, and reads the result off the central entry. The cost is
// O(m² log n) with small constant factors, so it is only economical
// when n*d is small; KSDist.CDF applies it below the thresholds from
// Simard and L'Ecuyer where it is known to be both cheap and exact to
// 13-15 significant digits.
func DurbinCDF(n int, d float64) float64 {
	nd := float64(n) * d
	k := int(nd) + 1
	m := 2*k - 1
	h := float64(k) - nd

	// H[i][j] = 1/(i-j+1)! above the subdiagonal band, with the
	// first column and last row adjusted for the fractional part
	// h of n*d.
	H := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 >= 0 {
				H.Set(i, j, 1)
			}
		}
	}
	for i := 0; i < m; i++ {
		H.Set(i, 0, H.At(i, 0)-math.Pow(h, float64(i+1)))
		H.Set(m-1, i, H.At(m-1, i)-math.Pow(h, float64(m-i)))
	}
	if 2*h-1 > 0 {
		H.Set(m-1, 0, H.At(m-1, 0)+math.Pow(2*h-1, float64(m)))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for g := 1; g <= i-j+1; g++ {
				H.Set(i, j, H.At(i, j)/float64(g))
			}
		}
	}

	Q, eQ := ksMatrixPower(H, 0, n)

	// P[D_n <= d] = n!/nⁿ * (Hⁿ)[k-1][k-1]. Fold the n!/nⁿ factor
	// in one i/n term at a time, rescaling whenever the running
	// product threatens to underflow.
	s := Q.At(k-1, k-1)
	for i := 1; i <= n; i++ {
		s = s * float64(i) / float64(n)
		if s < ksDurbinInvNorm {
			s *= ksDurbinNorm
			eQ -= ksDurbinLogNorm
		}
	}
	return s * math.Pow(10, float64(eQ))
}

// ksMatrixPower returns a^n along with a base-10 exponent such that
// the true power is the returned matrix times 10^exponent. eA is the
// exponent already carried by a.
//
// The power is computed by recursive squaring, multiplying by a once
// more at odd levels. After every multiplication the central entry is
// checked against ksDurbinNorm and the whole matrix rescaled if it
// has grown too large, which keeps every entry representable for n
// beyond 10⁵. The input matrix is never modified.
func ksMatrixPower(a *mat.Dense, eA, n int) (*mat.Dense, int) {
	if n == 1 {
		return mat.DenseCopyOf(a), eA
	}
	m, _ := a.Dims()

	v, eV := ksMatrixPower(a, eA, n/2)
	b := mat.NewDense(m, m, nil)
	b.Mul(v, v)
	eB := 2 * eV
	if b.At(m/2, m/2) > ksDurbinNorm {
		b.Scale(ksDurbinInvNorm, b)
		eB += ksDurbinLogNorm
	}
	if n%2 == 0 {
		return b, eB
	}

	v = mat.NewDense(m, m, nil)
	v.Mul(a, b)
	eV = eA + eB
	if v.At(m/2, m/2) > ksDurbinNorm {
		v.Scale(ksDurbinInvNorm, v)
		eV += ksDurbinLogNorm
	}
	return v, eV
}
