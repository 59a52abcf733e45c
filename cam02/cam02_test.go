// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam02

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/colour/cie"
	"github.com/stretchr/testify/assert"
)

func expect(t *testing.T, ref, val, tol float64) {
	t.Helper()
	if math.Abs(ref-val) > tol {
		t.Errorf("expected value %g, got %g, diff %g", ref, val, math.Abs(ref-val))
	}
}

// refView is the worked example of CIE 159:2004: a D65-like white at
// high adapting luminance with a 20% gray background, average surround.
func refView() *View {
	return NewView([3]float64{95.05, 100.00, 108.88}, 318.31, 20, Average, false)
}

func TestView(t *testing.T) {
	vw := refView()
	// fmt.Printf("%#v\n", vw)
	expect(t, 0.994469, vw.D, 1e-5)
	expect(t, 1.16754, vw.FL, 1e-4)
	expect(t, 1.0395, vw.FLRoot, 1e-3)
	expect(t, 0.2, vw.BgYToWhiteY, 1e-12)
	expect(t, 1.9272135955, vw.Z, 1e-9)
	expect(t, 1.0003040, vw.NBB, 1e-5)
	expect(t, 1.0003040, vw.NCB, 1e-5)

	expect(t, 94.931, vw.RGBW[0], 1e-2)
	expect(t, 103.537, vw.RGBW[1], 1e-2)
	expect(t, 108.718, vw.RGBW[2], 1e-2)

	expect(t, 1.0531, vw.RGBD[0], 1e-2)
	expect(t, 0.9660, vw.RGBD[1], 1e-2)
	expect(t, 0.9203, vw.RGBD[2], 1e-2)
}

func TestViewDiscounting(t *testing.T) {
	vw := NewView([3]float64{95.05, 100.00, 108.88}, 318.31, 20, Average, true)
	assert.Equal(t, 1.0, vw.D)
	for i := 0; i < 3; i++ {
		expect(t, 100/vw.RGBW[i], vw.RGBD[i], 1e-12)
	}
}

func TestStdView(t *testing.T) {
	vw := NewStdView()
	assert.Same(t, vw, NewStdView())
	expect(t, 100, vw.WhitePoint[1], 1e-12)
	expect(t, 0.2, vw.BgYToWhiteY, 1e-12)
	assert.Equal(t, Average, vw.Surround)
}

func TestSurrounds(t *testing.T) {
	assert.Equal(t, Surround{1.0, 0.69, 1.0}, Average)
	assert.Equal(t, Surround{0.9, 0.59, 0.9}, Dim)
	assert.Equal(t, Surround{0.8, 0.525, 0.8}, Dark)
	assert.Equal(t, Average, Surrounds["average"])
	assert.Equal(t, Dim, Surrounds["dim"])
	assert.Equal(t, Dark, Surrounds["dark"])
	assert.Len(t, Surrounds, 3)
}

func TestCAM(t *testing.T) {
	vw := refView()
	cam := FromXYZView(19.01, 20.00, 21.78, vw)
	expect(t, 41.73109113251392, cam.Lightness, 1e-8)
	expect(t, 0.10470775717111, cam.Chroma, 1e-8)
	expect(t, 219.0484326582719, cam.Hue, 1e-8)
	expect(t, 278.06073, cam.HueQuadrature, 1e-4)
	expect(t, 195.37132, cam.Brightness, 1e-4)
	expect(t, 0.10884218, cam.Colorfulness, 1e-6)
	expect(t, 2.36030, cam.Saturation, 1e-3)
}

func TestCAMWhite(t *testing.T) {
	vw := refView()
	cam := FromXYZView(95.05, 100.00, 108.88, vw)
	expect(t, 100, cam.Lightness, 1e-12)
	assert.Less(t, cam.Chroma, 1.0)
	assert.Greater(t, cam.Brightness, 100.0)
}

func TestCAMBlack(t *testing.T) {
	cam := FromXYZ(0, 0, 0)
	expect(t, 0, cam.Lightness, 1e-9)
	expect(t, 0, cam.Chroma, 1e-9)
	expect(t, 0, cam.Brightness, 1e-9)
	expect(t, 0, cam.Saturation, 1e-2)

	x, y, z := cam.XYZ()
	expect(t, 0, x, 1e-6)
	expect(t, 0, y, 1e-6)
	expect(t, 0, z, 1e-6)
}

func TestInverse(t *testing.T) {
	vw := refView()
	cam := &CAM{Lightness: 41.73109113251392, Chroma: 0.10470775717111, Hue: 219.0484326582719}
	x, y, z := cam.XYZView(vw)
	expect(t, 19.01, x, 1e-6)
	expect(t, 20.00, y, 1e-6)
	expect(t, 21.78, z, 1e-6)
}

func TestXYZ(t *testing.T) {
	tests := [][3]float64{
		{1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.4, 0.2, 0.8},
		{0.777, 0.424, 0.521}, {0.01, 0.01, 0.01}, {0, 0, 0},
	}
	for _, test := range tests {
		x, y, z := cie.SRGBToXYZ100(test[0], test[1], test[2])
		cam := FromXYZ(x, y, z)
		xc, yc, zc := cam.XYZ()
		expect(t, x, xc, 1e-8)
		expect(t, y, yc, 1e-8)
		expect(t, z, zc, 1e-8)
	}
}

func TestFromJCH(t *testing.T) {
	vw := refView()
	cam := FromXYZView(28.0, 21.26, 5.27, vw)
	jch := FromJCHView(cam.Lightness, cam.Chroma, cam.Hue, vw)
	expect(t, cam.Brightness, jch.Brightness, 1e-9)
	expect(t, cam.Colorfulness, jch.Colorfulness, 1e-9)
	expect(t, cam.Saturation, jch.Saturation, 1e-9)
	expect(t, cam.HueQuadrature, jch.HueQuadrature, 1e-9)

	x, y, z := jch.XYZView(vw)
	expect(t, 28.0, x, 1e-8)
	expect(t, 21.26, y, 1e-8)
	expect(t, 5.27, z, 1e-8)
}

func TestHueQuadrature(t *testing.T) {
	// the unique hues are exact
	expect(t, 0, HueQuadrature(20.14), 1e-12)
	expect(t, 100, HueQuadrature(90.00), 1e-12)
	expect(t, 200, HueQuadrature(164.25), 1e-12)
	expect(t, 300, HueQuadrature(237.53), 1e-12)

	// below unique red wraps around toward 400
	h := HueQuadrature(10)
	assert.Greater(t, h, 300.0)
	assert.Less(t, h, 400.0)

	expect(t, 278.0607358, HueQuadrature(219.0484326582719), 1e-6)
}

func TestSanitizeDegrees(t *testing.T) {
	expect(t, 0, SanitizeDegrees(0), 1e-12)
	expect(t, 330, SanitizeDegrees(-30), 1e-12)
	expect(t, 10, SanitizeDegrees(370), 1e-12)
	expect(t, 0, SanitizeDegrees(360), 1e-12)
	expect(t, 0, SanitizeDegrees(720), 1e-12)
	expect(t, 0, SanitizeDegrees(-360), 1e-12)
}

func TestResponseCompression(t *testing.T) {
	assert.Equal(t, 0.1, ResponseCompression(0))
	for _, v := range []float64{0.01, 0.5, 1, 2, 10} {
		rc := ResponseCompression(v)
		expect(t, v, InverseResponseCompression(rc), 1e-9)
		// sign symmetry about the 0.1 offset
		expect(t, 0.2-rc, ResponseCompression(-v), 1e-12)
	}
}

func TestLMS(t *testing.T) {
	l, m, s := XYZToLMS(95.05, 100.00, 108.88)
	expect(t, 94.931, l, 1e-2)
	expect(t, 103.537, m, 1e-2)
	expect(t, 108.718, s, 1e-2)

	x, y, z := LMSToXYZ(l, m, s)
	expect(t, 95.05, x, 1e-9)
	expect(t, 100.00, y, 1e-9)
	expect(t, 108.88, z, 1e-9)

	rp, gp, bp := LMSToHPE(l, m, s)
	lb, mb, sb := HPEToLMS(rp, gp, bp)
	expect(t, l, lb, 1e-9)
	expect(t, m, mb, 1e-9)
	expect(t, s, sb, 1e-9)
}

func TestRGBA(t *testing.T) {
	cam := FromSRGB(1, 0, 0)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cam.AsRGBA())
	r, g, b, a := cam.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}
