// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length as Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the weighted sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// GeoMean returns the geometric mean of the Sample. All samples must
// be positive or the result is NaN.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	logs := make([]float64, len(s.Xs))
	for i, x := range s.Xs {
		if x <= 0 {
			return nan
		}
		logs[i] = math.Log(x)
	}
	return math.Exp(stat.Mean(logs, s.Weights))
}

// Variance returns the sample variance of the Sample.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.StdDev(s.Xs, s.Weights)
}

// Quantile returns the value of quantile q of the Sample, using
// linear interpolation between samples (or the empirical quantile if
// the Sample is weighted). q is clamped to [0, 1].
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	q = math.Max(0, math.Min(1, q))

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if s.Weights == nil {
		return stat.Quantile(q, stat.LinInterp, s.Xs, nil)
	}
	return stat.Quantile(q, stat.Empirical, s.Xs, s.Weights)
}

// Bounds returns the minimum and maximum values of the Sample.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Copy returns a deep copy of the Sample.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)
	var weights []float64
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	switch {
	case s.Sorted || sort.Float64sAreSorted(s.Xs):
		// All set
	case s.Weights == nil:
		sort.Float64s(s.Xs)
	default:
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs, weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}
