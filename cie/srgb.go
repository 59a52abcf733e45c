// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBLinToXYZMat is the matrix converting linear-light sRGB (Rec. 709
// primaries, [D65] white) to XYZ tristimulus values, on the 0-1 scale.
var SRGBLinToXYZMat = Matrix3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// XYZToSRGBLinMat is the matrix converting XYZ tristimulus values to
// linear-light sRGB, the standard published inverse of
// [SRGBLinToXYZMat].
var XYZToSRGBLinMat = Matrix3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// SRGBToLinearComp converts an sRGB gamma-encoded component to its
// linear-light value.
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light component to its sRGB
// gamma-encoded value.
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma-encoded values to linear-light.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear-light values to sRGB gamma-encoded.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}

// SRGBLinToXYZ converts linear-light sRGB to XYZ tristimulus values,
// on the 0-1 scale.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	return SRGBLinToXYZMat.MulVec(rl, gl, bl)
}

// XYZToSRGBLin converts XYZ tristimulus values on the 0-1 scale to
// linear-light sRGB.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	return XYZToSRGBLinMat.MulVec(x, y, z)
}

// SRGBToXYZ converts sRGB gamma-encoded values to XYZ tristimulus
// values, on the 0-1 scale.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts XYZ tristimulus values on the 0-1 scale to sRGB
// gamma-encoded values. Out-of-gamut tristimulus values produce
// components outside 0-1; see [SRGBToUint8] for display clamping.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// SRGBToXYZ100 converts sRGB gamma-encoded values to XYZ tristimulus
// values on the 0-100 scale used by colour appearance models.
func SRGBToXYZ100(r, g, b float64) (x, y, z float64) {
	x, y, z = SRGBToXYZ(r, g, b)
	return x * 100, y * 100, z * 100
}

// XYZ100ToSRGB converts XYZ tristimulus values on the 0-100 scale to
// sRGB gamma-encoded values.
func XYZ100ToSRGB(x, y, z float64) (r, g, b float64) {
	return XYZToSRGB(x/100, y/100, z/100)
}

// SRGBToUint8 converts sRGB gamma-encoded float values to 8-bit
// display components, rounding and clamping to the representable
// range. NaN components, from non-physical inputs, clamp to 0.
func SRGBToUint8(r, g, b float64) (ur, ug, ub uint8) {
	return compToUint8(r), compToUint8(g), compToUint8(b)
}

func compToUint8(v float64) uint8 {
	v = math.Round(v * 255)
	if !(v > 0) { // NaN clamps to 0
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
