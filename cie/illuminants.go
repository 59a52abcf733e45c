// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Chromaticity coordinates of the CIE standard illuminants under the
// CIE 1931 2 degree standard observer.
var (
	A   = Chromaticity{0.44757, 0.40745}     // incandescent tungsten, 2856K
	B   = Chromaticity{0.34842, 0.35161}     // direct sunlight (deprecated)
	C   = Chromaticity{0.31006, 0.31616}     // average daylight (deprecated)
	D50 = Chromaticity{0.34570, 0.35850}     // horizon daylight, printing standard
	D55 = Chromaticity{0.33242, 0.34743}     // mid-morning daylight
	D60 = Chromaticity{0.32168, 0.33767}     // ACES white point daylight
	D65 = Chromaticity{0.31270, 0.32900}     // noon daylight, sRGB white point
	D75 = Chromaticity{0.29902, 0.31485}     // north sky daylight
	E   = Chromaticity{1.0 / 3.0, 1.0 / 3.0} // equal energy
)

// Illuminants maps standard illuminant names to their chromaticity
// coordinates under the CIE 1931 2 degree standard observer.
var Illuminants = map[string]Chromaticity{
	"A":   A,
	"B":   B,
	"C":   C,
	"D50": D50,
	"D55": D55,
	"D60": D60,
	"D65": D65,
	"D75": D75,
	"E":   E,
}
