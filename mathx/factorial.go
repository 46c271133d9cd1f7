// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const smallFactLimit = 20 // 20! => 62 bits

var smallFact [smallFactLimit + 1]int64

func init() {
	smallFact[0] = 1
	fact := int64(1)
	for n := int64(1); n <= smallFactLimit; n++ {
		fact *= n
		smallFact[n] = fact
	}
}

// Factorial returns n!. For n > 20 the result is approximated with
// the Gamma function and is no longer exact.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n <= smallFactLimit {
		return float64(smallFact[n])
	}
	return math.Exp(LogFactorial(float64(n)))
}

// LogFactorial returns log(n!) computed via the log Gamma function.
// Unlike Factorial, it does not overflow for large n.
func LogFactorial(n float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	r, _ := math.Lgamma(n + 1)
	return r
}
