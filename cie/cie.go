// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the basic CIE colorimetry that the higher-level
// colour packages build on: chromaticity and tristimulus conversions,
// standard illuminant white points, 3x3 colourspace transform matrices,
// and the sRGB colourspace. All values are float64, for computational
// accuracy rather than display speed.
package cie

// Chromaticity is a CIE 1931 xy chromaticity coordinate pair, as used
// for illuminant white points.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the tristimulus values of the chromaticity at
// luminance Y = 1.
func (c Chromaticity) XYZ() (x, y, z float64) {
	return XYYToXYZ(c.X, c.Y, 1)
}

// XYZ100 returns the tristimulus values of the chromaticity at
// luminance Y = 100, the scale used by colour appearance models.
func (c Chromaticity) XYZ100() (x, y, z float64) {
	return XYYToXYZ(c.X, c.Y, 100)
}

// XYYToXYZ converts CIE xyY colourspace values (chromaticity x, y and
// luminance Y) to XYZ tristimulus values. A zero y chromaticity has no
// defined tristimulus values and returns zeros.
func XYYToXYZ(x, y, Y float64) (X, YY, Z float64) {
	if y == 0 {
		return 0, 0, 0
	}
	return x * Y / y, Y, (1 - x - y) * Y / y
}

// XYZToXYY converts XYZ tristimulus values to CIE xyY colourspace
// values. Zero-energy tristimulus values take the chromaticity of
// [D65]; see [XYZToXYYWhite] to use another fallback.
func XYZToXYY(X, Y, Z float64) (x, y, YY float64) {
	return XYZToXYYWhite(X, Y, Z, D65)
}

// XYZToXYYWhite converts XYZ tristimulus values to CIE xyY colourspace
// values, using the given white chromaticity for zero-energy inputs,
// which have no chromaticity of their own.
func XYZToXYYWhite(X, Y, Z float64, white Chromaticity) (x, y, YY float64) {
	sum := X + Y + Z
	if sum == 0 {
		return white.X, white.Y, Y
	}
	return X / sum, Y / sum, Y
}

// XYZToXY returns the chromaticity of the given XYZ tristimulus
// values, with [D65] as the zero-energy fallback.
func XYZToXY(X, Y, Z float64) Chromaticity {
	x, y, _ := XYZToXYY(X, Y, Z)
	return Chromaticity{x, y}
}

// XYToXYZ converts a chromaticity to XYZ tristimulus values at
// luminance Y = 1, equivalent to [Chromaticity.XYZ].
func XYToXYZ(c Chromaticity) (X, Y, Z float64) {
	return c.XYZ()
}
