// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements statistical distributions and tests built
// around the Kolmogorov-Smirnov statistic.
package stats // import "github.com/aclements/go-ksdist/stats"

import "math"

var nan = math.NaN()
