// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"math"
)

// Extrapolation selects the extrapolation method for values outside
// the sampled domain of a [Distribution].
type Extrapolation int32

const (
	// ExtrapolationConstant holds the outermost sample values constant
	// outside the domain. This is the default for spectral data, where
	// extending the measured boundary is the conservative choice.
	ExtrapolationConstant Extrapolation = iota

	// ExtrapolationLinear continues the straight line through the two
	// outermost sample points on each side.
	ExtrapolationLinear
)

// String satisfies the fmt.Stringer interface.
func (ex Extrapolation) String() string {
	if ex == ExtrapolationLinear {
		return "Linear"
	}
	return "Constant"
}

// Extrapolator computes values outside the domain of a set of sample
// points, from the boundary samples alone. Left and Right, when set to
// non-NaN values, override the extrapolated value below and above the
// domain respectively.
type Extrapolator struct {
	Method Extrapolation

	// Left overrides extrapolated values below the domain when not NaN.
	Left float64

	// Right overrides extrapolated values above the domain when not NaN.
	Right float64

	x0, y0, x1, y1 float64 // leftmost two samples
	xn, yn, xm, ym float64 // rightmost two samples (xm < xn)
}

// NewExtrapolator returns a new extrapolator using the given method
// over the boundary samples of the given points.
func NewExtrapolator(method Extrapolation, x, y []float64) (*Extrapolator, error) {
	if err := checkSamples(x, y, 1); err != nil {
		return nil, err
	}
	n := len(x)
	ex := &Extrapolator{
		Method: method,
		Left:   math.NaN(),
		Right:  math.NaN(),
		x0:     x[0], y0: y[0],
		xn: x[n-1], yn: y[n-1],
	}
	if n == 1 {
		// a single sample extrapolates as a constant in both methods
		ex.x1, ex.y1 = x[0], y[0]
		ex.xm, ex.ym = x[0], y[0]
		ex.Method = ExtrapolationConstant
		return ex, nil
	}
	ex.x1, ex.y1 = x[1], y[1]
	ex.xm, ex.ym = x[n-2], y[n-2]
	if method != ExtrapolationConstant && method != ExtrapolationLinear {
		return nil, fmt.Errorf("spectral: unknown extrapolation method %d", method)
	}
	return ex, nil
}

// Eval returns the extrapolated value at x, which is expected to lie
// outside the sample domain; inside it, the nearer boundary sample
// value is returned.
func (ex *Extrapolator) Eval(x float64) float64 {
	switch {
	case x < ex.x0:
		if !math.IsNaN(ex.Left) {
			return ex.Left
		}
		if ex.Method == ExtrapolationLinear {
			return ex.y0 + (x-ex.x0)*(ex.y1-ex.y0)/(ex.x1-ex.x0)
		}
		return ex.y0
	case x > ex.xn:
		if !math.IsNaN(ex.Right) {
			return ex.Right
		}
		if ex.Method == ExtrapolationLinear {
			return ex.yn + (x-ex.xn)*(ex.yn-ex.ym)/(ex.xn-ex.xm)
		}
		return ex.yn
	}
	if x-ex.x0 < ex.xn-x {
		return ex.y0
	}
	return ex.yn
}
