// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrSampleSize is returned by tests that require a non-empty sample.
var ErrSampleSize = errors.New("sample is too small")

// A KSTestResult is the result of a one-sample Kolmogorov-Smirnov
// test.
type KSTestResult struct {
	// N is the size of the input sample.
	N int

	// D is the value of the Kolmogorov-Smirnov statistic: the
	// maximum absolute deviation between the empirical CDF of the
	// sample and the CDF of the reference distribution.
	D float64

	// P is the p-value of the test: the probability of observing
	// a deviation at least as large as D under the null
	// hypothesis that the sample was drawn from the reference
	// distribution.
	P float64
}

// A KSTwoSampleTestResult is the result of a two-sample
// Kolmogorov-Smirnov test.
type KSTwoSampleTestResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// D is the maximum absolute deviation between the empirical
	// CDFs of the two samples.
	D float64

	// P is the p-value of the test under the null hypothesis that
	// the two samples were drawn from the same distribution.
	P float64
}

// KolmogorovSmirnovTest performs a one-sample Kolmogorov-Smirnov test
// of the null hypothesis that the sample xs was drawn from the
// continuous distribution ref.
//
// Unlike the common textbook treatment, which compares the statistic
// against tabulated critical values or the limiting Kolmogorov
// distribution, the p-value here is computed from the exact finite-n
// distribution KSDist, so it is meaningful even for very small
// samples.
//
// This fails with ErrSampleSize if xs is empty.
func KolmogorovSmirnovTest(xs []float64, ref Dist) (*KSTestResult, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrSampleSize
	}

	xs = append([]float64(nil), xs...)
	sort.Float64s(xs)

	// D_n = sup_x |F_emp(x) - F(x)|. The supremum over each step
	// of the empirical CDF is attained just before or at a
	// sample, so it suffices to check F against i/n and (i-1)/n
	// at each sample.
	d := 0.0
	for i, x := range xs {
		f := ref.CDF(x)
		if hi := float64(i+1)/float64(n) - f; hi > d {
			d = hi
		}
		if lo := f - float64(i)/float64(n); lo > d {
			d = lo
		}
	}

	p := KSDist{N: float64(n)}.Survival(d)
	return &KSTestResult{N: n, D: d, P: p}, nil
}

// KolmogorovSmirnovTwoSampleTest performs a two-sample
// Kolmogorov-Smirnov test of the null hypothesis that samples x1 and
// x2 were drawn from the same continuous distribution.
//
// The p-value is computed from KSDist at the effective sample size
// n1*n2/(n1+n2), which is the standard finite-n approximation for the
// two-sample statistic.
//
// This fails with ErrSampleSize if either sample is empty.
func KolmogorovSmirnovTwoSampleTest(x1, x2 []float64) (*KSTwoSampleTestResult, error) {
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return nil, ErrSampleSize
	}

	x1 = append([]float64(nil), x1...)
	x2 = append([]float64(nil), x2...)
	sort.Float64s(x1)
	sort.Float64s(x2)

	d := stat.KolmogorovSmirnov(x1, nil, x2, nil)
	ne := float64(n1) * float64(n2) / float64(n1+n2)
	p := KSDist{N: ne}.Survival(d)
	return &KSTwoSampleTestResult{N1: n1, N2: n2, D: d, P: p}, nil
}
