// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"math"
)

// Shape specifies a regularly spaced range of wavelengths in nanometres,
// from Start to End inclusive, sampled every Interval.
type Shape struct {

	// Start is the first wavelength in nanometres.
	Start float64

	// End is the last wavelength in nanometres. It is included in the
	// range when it lies a whole number of intervals from Start.
	End float64

	// Interval is the sampling interval in nanometres.
	Interval float64
}

// DefaultShape is the default spectral sampling range, 360 to 780
// nanometres at 1 nanometre intervals.
var DefaultShape = Shape{360, 780, 1}

// Count returns the number of wavelengths in the shape range,
// which is 0 for an empty or inverted range.
func (sh Shape) Count() int {
	if sh.Interval <= 0 || sh.End < sh.Start {
		return 0
	}
	return int((sh.End-sh.Start)/sh.Interval+1e-9) + 1
}

// Range returns the wavelengths of the shape, from Start up to End
// inclusive, every Interval. Wavelengths are computed as offsets from
// Start so no floating point error accumulates across the range.
func (sh Shape) Range() []float64 {
	n := sh.Count()
	wls := make([]float64, n)
	for i := range wls {
		wls[i] = sh.Start + float64(i)*sh.Interval
	}
	return wls
}

// Contains returns whether the given wavelength is one of the sampled
// wavelengths of the shape, within a small tolerance.
func (sh Shape) Contains(wl float64) bool {
	if sh.Count() == 0 || wl < sh.Start || wl > sh.End {
		return false
	}
	steps := (wl - sh.Start) / sh.Interval
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// String satisfies the fmt.Stringer interface.
func (sh Shape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", sh.Start, sh.End, sh.Interval)
}
