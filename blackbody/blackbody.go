// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blackbody implements Planck's law, giving the spectral
// radiance of an ideal blackbody radiator as a function of wavelength
// and temperature, and builds spectral distributions of blackbody
// emission over a wavelength range.
package blackbody

import (
	"fmt"
	"math"

	"cogentcore.org/colour/spectral"
	"cogentcore.org/colour/tensor"
)

const (
	// C1 is the first radiation constant, 2 pi h c^2, in W m^2.
	C1 = 3.741771e-16

	// C2 is the second radiation constant, h c / k, in m K.
	C2 = 1.4388e-2

	// N is the refractive index of the medium, 1 for air.
	N = 1
)

// Constants groups the radiation constants of Planck's law, so
// non-standard values, such as a medium other than air, can be carried
// together through a computation.
type Constants struct {

	// C1 is the first radiation constant in W m^2.
	C1 float64

	// C2 is the second radiation constant in m K.
	C2 float64

	// N is the refractive index of the medium.
	N float64
}

// Standard holds the standard radiation constants for emission into air.
var Standard = Constants{C1, C2, N}

// PlanckLaw returns the spectral radiance of a blackbody, in
// W/(sr m^3), at the given wavelength in metres and temperature in
// kelvin. Inputs are not validated: non-physical values follow IEEE-754
// arithmetic, so a zero temperature yields zero radiance, a zero
// wavelength yields NaN, and negative temperatures yield negative
// radiance.
func (c Constants) PlanckLaw(wavelength, temperature float64) float64 {
	l := wavelength
	t := temperature
	return ((c.C1 * math.Pow(c.N, -2) * math.Pow(l, -5)) / math.Pi) /
		(math.Exp(c.C2/(c.N*l*t)) - 1)
}

// PlanckLawTensor returns the spectral radiance of a blackbody for
// tensors of wavelengths in metres and temperatures in kelvin,
// broadcast elementwise against each other, so a range of wavelengths
// can be evaluated against one temperature, one wavelength against a
// range of temperatures, or full grids of both.
func (c Constants) PlanckLawTensor(wavelength, temperature *tensor.Float64) (*tensor.Float64, error) {
	return tensor.BinaryFunc(c.PlanckLaw, wavelength, temperature)
}

// SD returns the spectral distribution of a blackbody at the given
// temperature in kelvin, sampled at each wavelength of the given
// shape, named for the temperature, e.g. "5000K Blackbody". The
// distribution uses the package defaults of Sprague interpolation
// (for the uniformly spaced shape wavelengths) and constant
// extrapolation.
func (c Constants) SD(temperature float64, shape spectral.Shape) (*spectral.Distribution, error) {
	wls := shape.Range()
	vals := make([]float64, len(wls))
	for i, wl := range wls {
		vals[i] = c.PlanckLaw(wl*1e-9, temperature)
	}
	return spectral.New(fmt.Sprintf("%gK Blackbody", temperature), wls, vals)
}

// PlanckLaw returns the spectral radiance of a blackbody using the
// [Standard] constants. See [Constants.PlanckLaw].
func PlanckLaw(wavelength, temperature float64) float64 {
	return Standard.PlanckLaw(wavelength, temperature)
}

// PlanckLawTensor returns the broadcast spectral radiance of a
// blackbody using the [Standard] constants. See
// [Constants.PlanckLawTensor].
func PlanckLawTensor(wavelength, temperature *tensor.Float64) (*tensor.Float64, error) {
	return Standard.PlanckLawTensor(wavelength, temperature)
}

// SD returns the spectral distribution of a blackbody using the
// [Standard] constants. See [Constants.SD].
func SD(temperature float64, shape spectral.Shape) (*spectral.Distribution, error) {
	return Standard.SD(temperature, shape)
}
