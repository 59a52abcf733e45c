// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectral provides spectral distributions: values sampled over
// a range of wavelengths in nanometres, with interpolation between the
// samples and extrapolation outside them, following the conventions of
// CIE 167:2005. A [Distribution] carries its interpolation and
// extrapolation methods with it, so evaluation at any wavelength is a
// pure function of the construction inputs.
package spectral

import (
	"fmt"
	"slices"
	"sort"
)

// Distribution is a spectral distribution: values sampled at strictly
// increasing wavelengths in nanometres, evaluated at arbitrary
// wavelengths by interpolating within the sampled domain and
// extrapolating outside it. A Distribution is immutable once
// constructed; all evaluation methods are read-only.
type Distribution struct {

	// Name identifies the distribution, e.g. "5000K Blackbody".
	Name string

	// Wavelengths holds the sampled wavelengths in nanometres,
	// strictly increasing.
	Wavelengths []float64

	// Values holds the distribution value at each wavelength.
	Values []float64

	// Interpolation is the method used between sampled wavelengths.
	Interpolation Interpolation

	// Extrapolation is the method used outside the sampled domain.
	Extrapolation Extrapolation

	interp Interpolator
	extrap *Extrapolator
}

// New returns a new spectral distribution over the given wavelengths
// and values, with the default interpolation (Sprague for uniformly
// spaced wavelengths, cubic spline otherwise) and constant
// extrapolation. The slices are used directly, not copied.
func New(name string, wavelengths, values []float64) (*Distribution, error) {
	return NewWith(name, wavelengths, values, InterpolationDefault, ExtrapolationConstant)
}

// NewWith is like [New] but selects the interpolation and extrapolation
// methods explicitly. It returns an error if the method cannot be
// applied to the given wavelengths, such as Sprague interpolation over
// non-uniform spacing.
func NewWith(name string, wavelengths, values []float64, in Interpolation, ex Extrapolation) (*Distribution, error) {
	sd := &Distribution{
		Name:          name,
		Wavelengths:   wavelengths,
		Values:        values,
		Interpolation: in,
		Extrapolation: ex,
	}
	if len(wavelengths) == 0 {
		return nil, fmt.Errorf("spectral: distribution %q has no wavelengths", name)
	}
	var err error
	if len(wavelengths) == 1 {
		if len(values) != 1 {
			return nil, fmt.Errorf("spectral: have %d sample points but %d values", len(wavelengths), len(values))
		}
	} else {
		sd.interp, err = NewInterpolator(in, wavelengths, values)
		if err != nil {
			return nil, err
		}
	}
	sd.extrap, err = NewExtrapolator(ex, wavelengths, values)
	if err != nil {
		return nil, err
	}
	return sd, nil
}

// NewShaped returns a new spectral distribution with wavelengths from
// the given shape and the given values, one per shape wavelength.
func NewShaped(name string, shape Shape, values []float64) (*Distribution, error) {
	wls := shape.Range()
	if len(values) != len(wls) {
		return nil, fmt.Errorf("spectral: shape %s has %d wavelengths but %d values given", shape, len(wls), len(values))
	}
	return New(name, wls, values)
}

// Len returns the number of sampled wavelengths.
func (sd *Distribution) Len() int { return len(sd.Wavelengths) }

// Domain returns the first and last sampled wavelengths.
func (sd *Distribution) Domain() (min, max float64) {
	return sd.Wavelengths[0], sd.Wavelengths[len(sd.Wavelengths)-1]
}

// Uniform returns whether the sampled wavelengths are uniformly spaced.
func (sd *Distribution) Uniform() bool {
	_, uniform := uniformInterval(sd.Wavelengths)
	return uniform
}

// Shape returns the spectral shape of the distribution. For
// non-uniformly spaced wavelengths the interval is 0.
func (sd *Distribution) Shape() Shape {
	min, max := sd.Domain()
	iv, uniform := uniformInterval(sd.Wavelengths)
	if !uniform {
		iv = 0
	}
	return Shape{Start: min, End: max, Interval: iv}
}

// Value returns the distribution value at the given wavelength in
// nanometres: the sampled value at an exactly sampled wavelength, the
// interpolated value within the sampled domain, and the extrapolated
// value outside it.
func (sd *Distribution) Value(wl float64) float64 {
	i := sort.SearchFloat64s(sd.Wavelengths, wl)
	if i < len(sd.Wavelengths) && sd.Wavelengths[i] == wl {
		return sd.Values[i]
	}
	min, max := sd.Domain()
	if wl < min || wl > max || sd.interp == nil {
		return sd.extrap.Eval(wl)
	}
	return sd.interp.Eval(wl)
}

// ValuesAt returns the distribution values at each wavelength of the
// given shape.
func (sd *Distribution) ValuesAt(shape Shape) []float64 {
	wls := shape.Range()
	vals := make([]float64, len(wls))
	for i, wl := range wls {
		vals[i] = sd.Value(wl)
	}
	return vals
}

// Align returns a new distribution resampled at the wavelengths of the
// given shape, keeping the same name and methods. Wavelengths outside
// the current domain take extrapolated values.
func (sd *Distribution) Align(shape Shape) (*Distribution, error) {
	return NewWith(sd.Name, shape.Range(), sd.ValuesAt(shape), sd.Interpolation, sd.Extrapolation)
}

// Clone returns a copy of the distribution with its own wavelength and
// value storage.
func (sd *Distribution) Clone() *Distribution {
	csd := *sd
	csd.Wavelengths = slices.Clone(sd.Wavelengths)
	csd.Values = slices.Clone(sd.Values)
	return &csd
}

// String satisfies the fmt.Stringer interface.
func (sd *Distribution) String() string {
	return fmt.Sprintf("%s %s: %d samples", sd.Name, sd.Shape(), sd.Len())
}
