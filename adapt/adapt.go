// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt implements von Kries style chromatic adaptation:
// predicting the corresponding colour of a stimulus when the
// illuminant changes, by scaling in a cone or sharpened sensor space.
package adapt

import (
	"cogentcore.org/colour/cie"
)

// Sensor-space matrices of the standard chromatic adaptation
// transforms, taking XYZ tristimulus values to the space in which the
// von Kries scaling is applied.
var (
	// XYZScaling scales the tristimulus values directly, the
	// "wrong von Kries" transform.
	XYZScaling = cie.Identity3()

	// VonKries is the original transform, using the Hunt-Pointer-Estevez
	// cone space normalized to D65.
	VonKries = cie.Matrix3{
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0.00000, 0.00000, 0.91822},
	}

	// Bradford is the sharpened sensor space of the Bradford transform,
	// used by ICC profile conversion and most colour management.
	Bradford = cie.Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	// CAT02 is the sensor space of the CIECAM02 colour appearance model.
	CAT02 = cie.Matrix3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
)

// Transforms maps chromatic adaptation transform names to their
// sensor-space matrices.
var Transforms = map[string]cie.Matrix3{
	"XYZ Scaling": XYZScaling,
	"Von Kries":   VonKries,
	"Bradford":    Bradford,
	"CAT02":       CAT02,
}

// Matrix returns the chromatic adaptation matrix taking XYZ
// tristimulus values viewed under the src illuminant to corresponding
// values under the dst illuminant, using the given sensor-space
// matrix: inv(M) * diag(dst / src sensor responses) * M. The matrix
// maps the source white point exactly onto the destination white point.
func Matrix(m cie.Matrix3, src, dst cie.Chromaticity) cie.Matrix3 {
	sl, sm, ss := m.MulVec(src.XYZ())
	dl, dm, ds := m.MulVec(dst.XYZ())
	return m.MustInverse().MulDiag(dl/sl, dm/sm, ds/ss).Mul(m)
}

// Adapt converts the XYZ tristimulus values of a stimulus viewed
// under the src illuminant to the corresponding values under the dst
// illuminant, using the given sensor-space matrix (e.g. [Bradford]).
// When converting many stimuli between the same pair of illuminants,
// compute the matrix once with [Matrix] instead.
func Adapt(x, y, z float64, m cie.Matrix3, src, dst cie.Chromaticity) (ax, ay, az float64) {
	return Matrix(m, src, dst).MulVec(x, y, z)
}
