// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// aeq returns true if expect and got are equal to "%f" precision.
func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqTol returns true if expect and got are equal to within relative
// tolerance tol.
func aeqTol(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= tol*math.Max(math.Abs(expect), math.Abs(got))
}
