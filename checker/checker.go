// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checker provides colour rendition chart data: the classic
// 24-patch ColorChecker chromaticity datasets and their conversion to
// display colours.
package checker

import (
	"fmt"
	"image/color"

	"cogentcore.org/colour/adapt"
	"cogentcore.org/colour/cie"
)

// Patch is one chart patch, given as CIE xyY colourspace values
// measured under the chart's reference illuminant.
type Patch struct {
	Name string
	XY   cie.Chromaticity
	Y    float64
}

// Checker is a colour rendition chart: a named set of patches
// together with the illuminant their coordinates are referenced to.
type Checker struct {
	Name       string
	Illuminant cie.Chromaticity
	Patches    []Patch
}

// Patch returns the named patch, or an error if the chart has none.
func (c *Checker) Patch(name string) (Patch, error) {
	for _, p := range c.Patches {
		if p.Name == name {
			return p, nil
		}
	}
	return Patch{}, fmt.Errorf("checker.Patch: chart %q has no patch %q", c.Name, name)
}

// SRGB returns the 8-bit sRGB display colours of the chart's patches:
// xyY to XYZ, Bradford adaptation from the chart illuminant to D65,
// then the sRGB matrix and transfer encoding, rounded and clamped.
func (c *Checker) SRGB() []color.RGBA {
	m := adapt.Matrix(adapt.Bradford, c.Illuminant, cie.D65)
	out := make([]color.RGBA, len(c.Patches))
	for i, p := range c.Patches {
		x, y, z := cie.XYYToXYZ(p.XY.X, p.XY.Y, p.Y)
		x, y, z = m.MulVec(x, y, z)
		r, g, b := cie.SRGBToUint8(cie.XYZToSRGB(x, y, z))
		out[i] = color.RGBA{r, g, b, 255}
	}
	return out
}
