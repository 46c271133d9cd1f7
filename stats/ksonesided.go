// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-ksdist/mathx"
)

// OneSidedUpperTail returns P[D_n⁺ >= x], the upper tail of the
// one-sided (signed) Kolmogorov-Smirnov statistic over n samples.
//
// For n <= 200000 this sums Smirnov's stable binomial form
//
//	P[D_n⁺ >= x] = x Σ_j C(n,j) (j/n + x)^(j-1) (1 - j/n - x)^(n-j)
//	             + (1-x)^n
//
// entirely in log space, starting each half of the summation from a
// well-conditioned interior term and updating the log binomial
// coefficient incrementally (Simard and L'Ecuyer 2011, eq. 4). For
// larger n it switches to the Smirnov-Miller asymptotic correction.
//
// Doubling this tail is a good approximation of the two-sided
// survival function when n*x² is large, and is how KSDist.Survival
// evaluates the far tail.
func OneSidedUpperTail(n, x float64) float64 {
	if n > 200000 {
		// Miller's asymptotic correction of the one-sided
		// Smirnov limit.
		t := 6*n*x + 1
		z := t * t / (18 * n)
		v := (1 - (2*z*z-4*z-1)/(18*n)) * math.Exp(-z)
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 1
		}
		return v
	}

	const eps = 1.0e-12
	ni := int(n)

	jmax := int(n * (1 - x))
	if 1-x-float64(jmax)/n <= 0 {
		// The term at jmax vanishes; it would produce log(0).
		jmax--
	}
	// Divide the sum at an interior point so both halves start
	// from a well-conditioned binomial coefficient.
	jdiv := 3
	if n > 3000 {
		jdiv = 2
	}
	jstart := jmax/jdiv + 1

	logBinomial := mathx.Lchoose(ni, jstart)
	logJstart := logBinomial

	sum := 0.0
	for j := jstart; j <= jmax; j++ {
		q := float64(j)/n + x
		term := logBinomial + float64(j-1)*math.Log(q) + (n-float64(j))*math.Log1p(-q)
		t := math.Exp(term)
		sum += t
		logBinomial += math.Log((n - float64(j)) / float64(j+1))
		if t <= sum*eps {
			break
		}
	}

	jstart = jmax / jdiv
	logBinomial = logJstart + math.Log(float64(jstart+1)/(n-float64(jstart)))
	for j := jstart; j > 0; j-- {
		q := float64(j)/n + x
		term := logBinomial + float64(j-1)*math.Log(q) + (n-float64(j))*math.Log1p(-q)
		t := math.Exp(term)
		sum += t
		logBinomial += math.Log(float64(j) / (n - float64(j) + 1))
		if t <= sum*eps {
			break
		}
	}

	return sum*x + math.Exp(n*math.Log1p(-x))
}
