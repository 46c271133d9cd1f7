// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

func (d NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

// PDF returns the value of the probability density function at x.
func (d NormalDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

// CDF returns the value of the cumulative distribution function at x.
func (d NormalDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

// InvCDF returns the x such that CDF(x) == y. y must be in [0, 1].
func (d NormalDist) InvCDF(y float64) float64 {
	return d.dist().Quantile(y)
}

// Bounds returns the bounds of the region containing essentially all
// of this distribution's weight.
func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}
