// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmfs provides colour matching functions: the spectral
// sensitivities relating radiant power to tristimulus or camera
// responses, with the ACES Reference Input Capture Device dataset
// embedded.
package cmfs

import (
	"cogentcore.org/colour/spectral"
)

// RGB is a set of RGB colour matching functions: three spectral
// sensitivity distributions over a common set of wavelengths.
type RGB struct {
	Name    string
	R, G, B *spectral.Distribution
}

// NewRGB returns RGB colour matching functions over the given shape,
// from per-channel sensitivity values.
func NewRGB(name string, shape spectral.Shape, r, g, b []float64) (*RGB, error) {
	dr, err := spectral.NewShaped(name+" r", shape, r)
	if err != nil {
		return nil, err
	}
	dg, err := spectral.NewShaped(name+" g", shape, g)
	if err != nil {
		return nil, err
	}
	db, err := spectral.NewShaped(name+" b", shape, b)
	if err != nil {
		return nil, err
	}
	return &RGB{Name: name, R: dr, G: dg, B: db}, nil
}

// Shape returns the spectral shape of the functions.
func (c *RGB) Shape() spectral.Shape { return c.R.Shape() }

// Len returns the number of samples per channel.
func (c *RGB) Len() int { return c.R.Len() }

// Values returns the r, g, b sensitivities at the given wavelength,
// interpolating between samples.
func (c *RGB) Values(wl float64) (r, g, b float64) {
	return c.R.Value(wl), c.G.Value(wl), c.B.Value(wl)
}

// ACESRICD is the ACES Reference Input Capture Device, the ideal
// colorimetric camera of the Academy Color Encoding Specification.
var ACESRICD = mustRGB("ACES RICD", spectral.Shape{Start: 360, End: 830, Interval: 1},
	acesRICDR, acesRICDG, acesRICDB)

func mustRGB(name string, shape spectral.Shape, r, g, b []float64) *RGB {
	c, err := NewRGB(name, shape, r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// SDToRGB integrates a spectral distribution against the colour
// matching functions, returning the exposure values
// sum(sd * cmf * dL) per channel by the rectangular rule over the
// functions' shape. The distribution is aligned to that shape first,
// resampling with its own interpolation and extrapolation methods.
func SDToRGB(sd *spectral.Distribution, c *RGB) (r, g, b float64, err error) {
	sh := c.Shape()
	al, err := sd.Align(sh)
	if err != nil {
		return 0, 0, 0, err
	}
	for i, v := range al.Values {
		r += v * c.R.Values[i]
		g += v * c.G.Values[i]
		b += v * c.B.Values[i]
	}
	return r * sh.Interval, g * sh.Interval, b * sh.Interval, nil
}

// NormalizeG scales exposure values so that the green channel is 1,
// the convention for reporting relative exposures. Values with a zero
// green channel are returned unchanged.
func NormalizeG(r, g, b float64) (nr, ng, nb float64) {
	if g == 0 {
		return r, g, b
	}
	return r / g, 1, b / g
}
