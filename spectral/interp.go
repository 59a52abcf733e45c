// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"math"
	"sort"
)

// Interpolator computes values between the sample points it was
// constructed over. Eval is pure: the same input always produces the
// same output, and evaluation never modifies the interpolator.
// Behavior outside the sample domain is unspecified; distributions
// delegate that region to an [Extrapolator].
type Interpolator interface {

	// Eval returns the interpolated value at x.
	Eval(x float64) float64
}

// Interpolation selects the interpolation method for a [Distribution].
type Interpolation int32

const (
	// InterpolationDefault selects Sprague interpolation for uniformly
	// spaced wavelengths with at least 6 samples, and cubic spline
	// interpolation otherwise.
	InterpolationDefault Interpolation = iota

	// InterpolationSprague is the fifth-order polynomial interpolation
	// method recommended by CIE 167:2005 for spectral data, requiring
	// uniformly spaced samples.
	InterpolationSprague

	// InterpolationCubicSpline is natural cubic spline interpolation.
	InterpolationCubicSpline

	// InterpolationLinear is piecewise linear interpolation.
	InterpolationLinear
)

// String satisfies the fmt.Stringer interface.
func (in Interpolation) String() string {
	switch in {
	case InterpolationSprague:
		return "Sprague"
	case InterpolationCubicSpline:
		return "CubicSpline"
	case InterpolationLinear:
		return "Linear"
	}
	return "Default"
}

// NewInterpolator returns a new interpolator over the given sample
// points using the given method, resolving [InterpolationDefault]
// based on the spacing of x.
func NewInterpolator(in Interpolation, x, y []float64) (Interpolator, error) {
	if in == InterpolationDefault {
		if _, uniform := uniformInterval(x); uniform && len(x) >= 6 {
			in = InterpolationSprague
		} else {
			in = InterpolationCubicSpline
		}
	}
	switch in {
	case InterpolationSprague:
		return NewSprague(x, y)
	case InterpolationCubicSpline:
		return NewCubicSpline(x, y)
	case InterpolationLinear:
		return NewLinear(x, y)
	}
	return nil, fmt.Errorf("spectral: unknown interpolation method %d", in)
}

// checkSamples validates interpolator sample points: x must be strictly
// increasing, y the same length, with at least min points.
func checkSamples(x, y []float64, min int) error {
	if len(x) != len(y) {
		return fmt.Errorf("spectral: have %d sample points but %d values", len(x), len(y))
	}
	if len(x) < min {
		return fmt.Errorf("spectral: need at least %d sample points, got %d", min, len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return fmt.Errorf("spectral: sample points must be strictly increasing: x[%d]=%g >= x[%d]=%g", i-1, x[i-1], i, x[i])
		}
	}
	return nil
}

// uniformInterval returns the common sample interval and whether the
// points are uniformly spaced, within a 1e-8 absolute tolerance.
func uniformInterval(x []float64) (float64, bool) {
	if len(x) < 2 {
		return 0, true
	}
	iv := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	for i := 1; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-iv) > 1e-8 {
			return 0, false
		}
	}
	return iv, true
}

// segment returns the index i such that x lies between xs[i] and
// xs[i+1], clamped to the outermost segments for x outside the domain.
func segment(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	switch {
	case i <= 0:
		return 0
	case i >= len(xs):
		return len(xs) - 2
	}
	return i - 1
}

////////  Linear

// Linear is a piecewise linear interpolator.
type Linear struct {
	x, y []float64
}

// NewLinear returns a new piecewise linear interpolator over the given
// sample points, which are used directly, not copied.
func NewLinear(x, y []float64) (*Linear, error) {
	if err := checkSamples(x, y, 2); err != nil {
		return nil, err
	}
	return &Linear{x: x, y: y}, nil
}

// Eval returns the interpolated value at x. Outside the sample domain
// it continues the outermost segments.
func (li *Linear) Eval(x float64) float64 {
	i := segment(li.x, x)
	t := (x - li.x[i]) / (li.x[i+1] - li.x[i])
	return li.y[i] + t*(li.y[i+1]-li.y[i])
}

////////  Sprague

// spragueBoundary holds the coefficient rows, each divided by 209,
// producing the two virtual points beyond each end of the data that the
// fifth-order evaluation requires (CIE 167:2005).
var spragueBoundary = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

// Sprague is the fifth-order polynomial interpolator recommended by
// CIE 167:2005 for interpolating uniformly spaced spectral data.
type Sprague struct {
	xmin, interval float64
	n              int

	// yp holds the sample values padded with two virtual points at
	// each end, so every segment has the six neighbors the
	// fifth-order coefficients require.
	yp []float64
}

// NewSprague returns a new Sprague interpolator over the given sample
// points, which must be uniformly spaced with at least 6 samples.
func NewSprague(x, y []float64) (*Sprague, error) {
	if err := checkSamples(x, y, 6); err != nil {
		return nil, err
	}
	iv, uniform := uniformInterval(x)
	if !uniform {
		return nil, fmt.Errorf("spectral: Sprague interpolation requires uniformly spaced sample points")
	}
	n := len(y)
	yp := make([]float64, n+4)
	copy(yp[2:], y)
	for k, row := range spragueBoundary {
		ys := y[:6]
		if k >= 2 {
			ys = y[n-6:]
		}
		sum := 0.0
		for i, c := range row {
			sum += c * ys[i]
		}
		switch k {
		case 0:
			yp[0] = sum / 209
		case 1:
			yp[1] = sum / 209
		case 2:
			yp[n+2] = sum / 209
		case 3:
			yp[n+3] = sum / 209
		}
	}
	return &Sprague{xmin: x[0], interval: iv, n: n, yp: yp}, nil
}

// Eval returns the interpolated value at x.
func (sp *Sprague) Eval(x float64) float64 {
	t := (x - sp.xmin) / sp.interval
	i := int(math.Floor(t))
	if i < 0 {
		i = 0
	} else if i > sp.n-2 {
		i = sp.n - 2
	}
	tx := t - float64(i)
	j := i + 2
	r := sp.yp
	a0 := r[j]
	a1 := (2*r[j-2] - 16*r[j-1] + 16*r[j+1] - 2*r[j+2]) / 24
	a2 := (-r[j-2] + 16*r[j-1] - 30*r[j] + 16*r[j+1] - r[j+2]) / 24
	a3 := (-9*r[j-2] + 39*r[j-1] - 70*r[j] + 66*r[j+1] - 33*r[j+2] + 7*r[j+3]) / 24
	a4 := (13*r[j-2] - 64*r[j-1] + 126*r[j] - 124*r[j+1] + 61*r[j+2] - 12*r[j+3]) / 24
	a5 := (-5*r[j-2] + 25*r[j-1] - 50*r[j] + 50*r[j+1] - 25*r[j+2] + 5*r[j+3]) / 24
	return a0 + tx*(a1+tx*(a2+tx*(a3+tx*(a4+tx*a5))))
}

////////  CubicSpline

// CubicSpline is a natural cubic spline interpolator. With only two
// sample points it degenerates to linear interpolation.
type CubicSpline struct {
	x, y    []float64
	b, c, d []float64
}

// NewCubicSpline returns a new natural cubic spline interpolator over
// the given sample points, which are used directly, not copied.
func NewCubicSpline(x, y []float64) (*CubicSpline, error) {
	if err := checkSamples(x, y, 2); err != nil {
		return nil, err
	}
	n := len(x)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}
	c := make([]float64, n)
	if n > 2 {
		// tridiagonal solve for the second-derivative coefficients,
		// with the natural boundary condition c[0] = c[n-1] = 0
		mu := make([]float64, n-1)
		z := make([]float64, n)
		for i := 1; i < n-1; i++ {
			alpha := 3*(y[i+1]-y[i])/h[i] - 3*(y[i]-y[i-1])/h[i-1]
			l := 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
			mu[i] = h[i] / l
			z[i] = (alpha - h[i-1]*z[i-1]) / l
		}
		for j := n - 2; j >= 1; j-- {
			c[j] = z[j] - mu[j]*c[j+1]
		}
	}
	b := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := range b {
		b[i] = (y[i+1]-y[i])/h[i] - h[i]*(c[i+1]+2*c[i])/3
		d[i] = (c[i+1] - c[i]) / (3 * h[i])
	}
	return &CubicSpline{x: x, y: y, b: b, c: c, d: d}, nil
}

// Eval returns the interpolated value at x.
func (cs *CubicSpline) Eval(x float64) float64 {
	i := segment(cs.x, x)
	dx := x - cs.x[i]
	return cs.y[i] + dx*(cs.b[i]+dx*(cs.c[i]+dx*cs.d[i]))
}
