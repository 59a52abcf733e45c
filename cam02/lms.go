// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"math"

	"cogentcore.org/colour/adapt"
	"cogentcore.org/colour/cie"
)

// HPE is the Hunt-Pointer-Estevez cone response transform, applied
// after chromatic adaptation in CIECAM02, normalized to equal energy.
var HPE = cie.Matrix3{
	{0.38971, 0.68898, -0.07868},
	{-0.22981, 1.18340, 0.04641},
	{0.00000, 0.00000, 1.00000},
}

// Sensor-space conversion matrices, computed once from the published
// forward matrices.
var (
	lmsToXYZ = adapt.CAT02.MustInverse()
	lmsToHPE = HPE.Mul(adapt.CAT02.MustInverse())
	hpeToLMS = adapt.CAT02.Mul(HPE.MustInverse())
)

// XYZToLMS converts XYZ tristimulus values to long, medium, short
// sharpened sensor responses, using the CAT02 transform of the
// CIECAM02 color appearance model (MoroneyFairchildHuntEtAl02).
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	return adapt.CAT02.MulVec(x, y, z)
}

// LMSToXYZ converts long, medium, short CAT02 sensor responses back
// to XYZ tristimulus values.
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	return lmsToXYZ.MulVec(l, m, s)
}

// LMSToHPE converts CAT02 sensor responses to Hunt-Pointer-Estevez
// cone responses, the space in which response compression applies.
func LMSToHPE(l, m, s float64) (rp, gp, bp float64) {
	return lmsToHPE.MulVec(l, m, s)
}

// HPEToLMS converts Hunt-Pointer-Estevez cone responses back to CAT02
// sensor responses.
func HPEToLMS(rp, gp, bp float64) (l, m, s float64) {
	return hpeToLMS.MulVec(rp, gp, bp)
}

// ResponseCompression performs the post-adaptation hyperbolic
// response compression on a luminance-adapted cone response
// (F_L * RGB' / 100), extended to negative values by sign symmetry.
func ResponseCompression(val float64) float64 {
	pval := math.Pow(math.Abs(val), 0.42)
	rc := 400 * pval / (27.13 + pval)
	if val < 0 {
		rc = -rc
	}
	return rc + 0.1
}

// InverseResponseCompression inverts [ResponseCompression], returning
// the luminance-adapted cone response from a compressed response.
func InverseResponseCompression(val float64) float64 {
	x := val - 0.1
	ax := math.Abs(x)
	base := max(0, (27.13*ax)/(400-ax))
	rc := math.Pow(base, 1/0.42)
	if x < 0 {
		rc = -rc
	}
	return rc
}
