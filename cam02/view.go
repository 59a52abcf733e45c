// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"math"

	"cogentcore.org/colour/cie"
)

// Surround holds the induction parameters of a CIECAM02 surround:
// the maximum degree of adaptation F, the impact of surround c,
// and the chromatic induction factor Nc.
type Surround struct {
	F  float64
	C  float64
	NC float64
}

// The standard CIECAM02 surround conditions.
var (
	Average = Surround{1.0, 0.69, 1.0}
	Dim     = Surround{0.9, 0.59, 0.9}
	Dark    = Surround{0.8, 0.525, 0.8}
)

// Surrounds maps surround condition names to their parameters.
var Surrounds = map[string]Surround{
	"average": Average,
	"dim":     Dim,
	"dark":    Dark,
}

// View represents the viewing conditions under which a color is being
// perceived, which greatly affect the subjective appearance. The
// first five fields are the inputs; Update computes the rest.
type View struct {

	// tristimulus values of the reference white, on the Y = 100 scale
	WhitePoint [3]float64

	// the luminance of the adapting field L_A in cd/m^2, conventionally
	// 20% of the luminance of a white object in the scene
	Luminance float64

	// the relative luminance factor of the background Y_b, as a
	// percentage of the white point luminance (typically 20)
	BgLuminance float64

	// the surround induction parameters
	Surround Surround

	// whether the illuminant is fully discounted, as when judging
	// surface colors; forces the degree of adaptation to 1
	Discounting bool

	// sensor responses to the white point
	RGBW [3]float64

	// degree of adaptation to the illuminant
	D float64

	// adaptation factors applied to the sensor responses
	RGBD [3]float64

	// luminance-level adaptation factor, from the HuntLiLuo03 equations
	FL float64

	// FL to the 1/4 power
	FLRoot float64

	// ratio of background relative luminance to white relative luminance
	BgYToWhiteY float64

	// base exponential nonlinearity
	Z float64

	// luminance level induction factor
	NBB float64

	// luminance level induction factor
	NCB float64

	// achromatic response to the white point
	AW float64
}

// NewView returns a new view with all parameters initialized based on
// the given major params: white point tristimulus values (Y = 100
// scale), adapting luminance in cd/m^2, background luminance factor,
// surround, and illuminant discounting.
func NewView(whitePoint [3]float64, lum, bgLum float64, sr Surround, discount bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: sr, Discounting: discount}
	vw.Update()
	return vw
}

// TheStdView is the standard viewing conditions view
// returned by NewStdView if already created.
var TheStdView *View

// NewStdView returns a new standard viewing conditions model: D65
// white, adapting luminance of 318.31 cd/m^2 (1000 lux), 20% gray
// background, average surround. Returns TheStdView if already created.
func NewStdView() *View {
	if TheStdView != nil {
		return TheStdView
	}
	wx, wy, wz := cie.D65.XYZ100()
	TheStdView = NewView([3]float64{wx, wy, wz}, 318.31, 20, Average, false)
	return TheStdView
}

// Update updates all the computed values based on the main parameters.
func (vw *View) Update() {
	wy := vw.WhitePoint[1]

	// sensor responses to the test illuminant white
	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])
	vw.RGBW = [3]float64{rW, gW, bW}

	// degree of adaptation to the illuminant; per Li et al, clamp to [0, 1]
	d := 1.0
	if !vw.Discounting {
		d = vw.Surround.F * (1 - (1.0/3.6)*math.Exp((-vw.Luminance-42)/92))
	}
	vw.D = math.Min(1, math.Max(0, d))

	// adaptation factors scaling each sensor response toward full
	// discounting of the illuminant
	vw.RGBD = [3]float64{
		vw.D*(wy/rW) + 1 - vw.D,
		vw.D*(wy/gW) + 1 - vw.D,
		vw.D*(wy/bW) + 1 - vw.D,
	}

	k := 1 / (5*vw.Luminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = 0.2*k4*(5*vw.Luminance) + 0.1*k4F*k4F*math.Cbrt(5*vw.Luminance)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.BgYToWhiteY = vw.BgLuminance / wy

	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(vw.BgYToWhiteY)

	vw.NBB = 0.725 * math.Pow(1/vw.BgYToWhiteY, 0.2)
	vw.NCB = vw.NBB

	// compressed cone responses to the adapted white
	rC, gC, bC := vw.RGBD[0]*rW, vw.RGBD[1]*gW, vw.RGBD[2]*bW
	rP, gP, bP := LMSToHPE(rC, gC, bC)
	rA := ResponseCompression(vw.FL * rP / 100)
	gA := ResponseCompression(vw.FL * gP / 100)
	bA := ResponseCompression(vw.FL * bP / 100)

	vw.AW = (2*rA + gA + bA/20 - 0.305) * vw.NBB
}
