// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// bisect returns an x in [low, high] such that f(x) == 0, where f is
// monotone and f(low) and f(high) have opposite signs. If f is
// discontinuous at the root, it returns the location of the
// discontinuity and the second return value is false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance < flow && flow < tolerance {
		return low, true
	}
	if -tolerance < fhigh && fhigh < tolerance {
		return high, true
	}
	if math.Signbit(flow) == math.Signbit(fhigh) {
		panic(fmt.Sprintf("root of f is not bracketed by [low, high]; f(%g)=%g f(%g)=%g", low, flow, high, fhigh))
	}
	for {
		mid := (low + high) / 2
		fmid := f(mid)
		if -tolerance < fmid && fmid < tolerance {
			return mid, true
		}
		if high-low <= tolerance {
			return mid, false
		}
		if math.Signbit(fmid) == math.Signbit(flow) {
			low, flow = mid, fmid
		} else {
			high, fhigh = mid, fmid
		}
	}
}
