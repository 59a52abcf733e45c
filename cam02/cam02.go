// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam02 implements the CIECAM02 color appearance model,
// predicting the perceived attributes of a color under given viewing
// conditions, with the exact analytic inverse back to tristimulus
// values (MoroneyFairchildHuntEtAl02, CIE 159:2004).
package cam02

import (
	"image/color"
	"math"

	"cogentcore.org/colour/cie"
)

// CAM represents a point in the CIECAM02 color model along its
// perceptual dimensions of hue, colorfulness, and brightness,
// well-calibrated to actual human subjective judgments.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// hue quadrature (H) is the hue composition relative to the unique
	// hues red (0), yellow (100), green (200), and blue (300)
	HueQuadrature float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64
}

// RGBA implements the color.Color interface.
func (cam *CAM) RGBA() (r, g, b, a uint32) {
	c := cam.AsRGBA()
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// AsRGBA returns the color as a [color.RGBA] under standard viewing
// conditions, clamping out-of-gamut values.
func (cam *CAM) AsRGBA() color.RGBA {
	x, y, z := cam.XYZ()
	r, g, b := cie.SRGBToUint8(cie.XYZ100ToSRGB(x, y, z))
	return color.RGBA{r, g, b, 255}
}

// FromSRGB returns CAM values from the given sRGB color coordinates,
// under standard viewing conditions. The RGB value range is 0-1, and
// the values have gamma correction.
func FromSRGB(r, g, b float64) *CAM {
	return FromXYZ(cie.SRGBToXYZ100(r, g, b))
}

// FromXYZ returns CAM values from the given XYZ color coordinates,
// under standard viewing conditions. Requires 100-base XYZ.
func FromXYZ(x, y, z float64) *CAM {
	return FromXYZView(x, y, z, NewStdView())
}

// FromXYZView returns CAM values from the given XYZ color
// coordinates, under the given viewing conditions. Requires 100-base
// XYZ coordinates.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	r, g, b := XYZToLMS(x, y, z)

	// chromatic adaptation toward the (possibly discounted) illuminant
	rC := vw.RGBD[0] * r
	gC := vw.RGBD[1] * g
	bC := vw.RGBD[2] * b

	rP, gP, bP := LMSToHPE(rC, gC, bC)

	rA := ResponseCompression(vw.FL * rP / 100)
	gA := ResponseCompression(vw.FL * gP / 100)
	bA := ResponseCompression(vw.FL * bP / 100)

	// opponent dimensions: red-green and yellow-blue
	oa := rA - 12*gA/11 + bA/11
	ob := (rA + gA - 2*bA) / 9

	hue := SanitizeDegrees(math.Atan2(ob, oa) * (180 / math.Pi))

	// achromatic response to color
	ac := (2*rA + gA + bA/20 - 0.305) * vw.NBB

	J := 100 * math.Pow(ac/vw.AW, vw.Surround.C*vw.Z)
	Q := (4 / vw.Surround.C) * math.Sqrt(J/100) * (vw.AW + 4) * vw.FLRoot

	t := (50000.0 / 13 * vw.Surround.NC * vw.NCB * eccentricity(hue) * math.Hypot(oa, ob)) /
		(rA + gA + 21*bA/20)
	C := math.Pow(t, 0.9) * math.Sqrt(J/100) *
		math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)
	M := C * vw.FLRoot
	s := 0.0
	if Q > 0 {
		s = 100 * math.Sqrt(M/Q)
	}

	return &CAM{Hue: hue, HueQuadrature: HueQuadrature(hue), Chroma: C,
		Colorfulness: M, Saturation: s, Brightness: Q, Lightness: J}
}

// FromJCH returns CAM values with all correlates computed from the
// given lightness (j), chroma (c), and hue (h) values, under standard
// viewing conditions.
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, NewStdView())
}

// FromJCHView returns CAM values with all correlates computed from
// the given lightness (j), chroma (c), and hue (h) values, under the
// given viewing conditions.
func FromJCHView(j, c, h float64, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: SanitizeDegrees(h)}
	cam.HueQuadrature = HueQuadrature(cam.Hue)
	cam.Brightness = (4 / vw.Surround.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = c * vw.FLRoot
	if cam.Brightness > 0 {
		cam.Saturation = 100 * math.Sqrt(cam.Colorfulness/cam.Brightness)
	}
	return cam
}

// XYZ returns the CAM color as XYZ coordinates under standard viewing
// conditions. Returns 100-base XYZ coordinates.
func (cam *CAM) XYZ() (x, y, z float64) {
	return cam.XYZView(NewStdView())
}

// XYZView returns the CAM color as XYZ coordinates under the given
// viewing conditions, inverting the model from the lightness, chroma,
// and hue values. Returns 100-base XYZ coordinates.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	t := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		t = math.Pow(
			cam.Chroma/(math.Sqrt(cam.Lightness/100)*
				math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)),
			1/0.9)
	}

	ac := vw.AW * math.Pow(cam.Lightness/100, 1/(vw.Surround.C*vw.Z))
	p2 := ac/vw.NBB + 0.305

	// solve the opponent dimensions back from t and the hue angle;
	// an achromatic color (t = 0) has none
	oa, ob := 0.0, 0.0
	if t != 0 {
		p1 := (50000.0 / 13 * vw.Surround.NC * vw.NCB * eccentricity(cam.Hue)) / t
		hSin, hCos := math.Sincos(cam.Hue * (math.Pi / 180))
		if math.Abs(hSin) >= math.Abs(hCos) {
			p4 := p1 / hSin
			ob = (p2 * (2 + 21.0/20) * (460.0 / 1403)) /
				(p4 + (2+21.0/20)*(220.0/1403)*(hCos/hSin) -
					27.0/1403 + (21.0/20)*(6300.0/1403))
			oa = ob * (hCos / hSin)
		} else {
			p5 := p1 / hCos
			oa = (p2 * (2 + 21.0/20) * (460.0 / 1403)) /
				(p5 + (2+21.0/20)*(220.0/1403) -
					(27.0/1403-(21.0/20)*(6300.0/1403))*(hSin/hCos))
			ob = oa * (hSin / hCos)
		}
	}

	rA := (460*p2 + 451*oa + 288*ob) / 1403
	gA := (460*p2 - 891*oa - 261*ob) / 1403
	bA := (460*p2 - 220*oa - 6300*ob) / 1403

	rP := 100 / vw.FL * InverseResponseCompression(rA)
	gP := 100 / vw.FL * InverseResponseCompression(gA)
	bP := 100 / vw.FL * InverseResponseCompression(bA)

	rC, gC, bC := HPEToLMS(rP, gP, bP)

	// undo the chromatic adaptation
	r := rC / vw.RGBD[0]
	g := gC / vw.RGBD[1]
	b := bC / vw.RGBD[2]

	return LMSToXYZ(r, g, b)
}

// SanitizeDegrees wraps a degree angle into the [0, 360) range.
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Hue quadrature table: the unique hues red, yellow, green, blue, and
// red again, with their eccentricities.
var (
	hueAngles         = [5]float64{20.14, 90.00, 164.25, 237.53, 380.14}
	hueEccentricities = [5]float64{0.8, 0.7, 1.0, 1.2, 0.8}
	hueCompositions   = [5]float64{0, 100, 200, 300, 400}
)

// HueQuadrature returns the hue composition H of the given hue angle
// in degrees: its position between the unique hues red (0), yellow
// (100), green (200), and blue (300, wrapping back to red at 400).
func HueQuadrature(hue float64) float64 {
	hp := SanitizeDegrees(hue)
	if hp < hueAngles[0] {
		hp += 360
	}
	i := 0
	for i < 3 && hp >= hueAngles[i+1] {
		i++
	}
	dl := (hp - hueAngles[i]) / hueEccentricities[i]
	dr := (hueAngles[i+1] - hp) / hueEccentricities[i+1]
	return hueCompositions[i] + 100*dl/(dl+dr)
}

// eccentricity is the hue eccentricity factor e_t.
func eccentricity(hue float64) float64 {
	return (math.Cos(hue*(math.Pi/180)+2) + 3.8) / 4
}
