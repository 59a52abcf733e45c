// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmfs

import (
	"math"
	"testing"

	"cogentcore.org/colour/blackbody"
	"cogentcore.org/colour/spectral"
	"github.com/stretchr/testify/assert"
)

func expect(t *testing.T, ref, val, tol float64) {
	t.Helper()
	if math.Abs(ref-val) > tol {
		t.Errorf("expected value %g, got %g, diff %g", ref, val, math.Abs(ref-val))
	}
}

func TestACESRICD(t *testing.T) {
	assert.Equal(t, "ACES RICD", ACESRICD.Name)
	assert.Equal(t, spectral.Shape{Start: 360, End: 830, Interval: 1}, ACESRICD.Shape())
	assert.Equal(t, 471, ACESRICD.Len())

	// exact sample hits read straight from the table
	r, g, b := ACESRICD.Values(360)
	assert.Equal(t, 1.2e-06, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 5.7e-06, b)

	r, g, b = ACESRICD.Values(550)
	assert.Equal(t, 0.0040564, r)
	assert.Equal(t, 0.0110527, g)
	assert.Equal(t, 8.19e-05, b)

	r, g, b = ACESRICD.Values(700)
	assert.Equal(t, 0.0001063, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)

	r, g, b = ACESRICD.Values(830)
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)
}

func TestACESRICDPeaks(t *testing.T) {
	// channel maxima at their published wavelengths
	tests := []struct {
		sd   *spectral.Distribution
		wl   float64
		peak float64
	}{
		{ACESRICD.R, 599, 0.0099472},
		{ACESRICD.G, 543, 0.0112326},
		{ACESRICD.B, 446, 0.0166801},
	}
	for _, test := range tests {
		assert.Equal(t, test.peak, test.sd.Value(test.wl))
		for _, v := range test.sd.Values {
			assert.LessOrEqual(t, v, test.peak)
		}
	}
}

func TestValuesInterpolated(t *testing.T) {
	// between the 550 and 551 nm samples on the rising red slope
	r, _, _ := ACESRICD.Values(550.5)
	assert.Greater(t, r, 0.00404)
	assert.Less(t, r, 0.00421)
}

func TestSDToRGBFlat(t *testing.T) {
	// the RICD channels are normalized to unit area, so a flat
	// distribution of ones integrates to 1 per channel
	sh := ACESRICD.Shape()
	ones := make([]float64, sh.Count())
	for i := range ones {
		ones[i] = 1
	}
	sd, err := spectral.NewShaped("ones", sh, ones)
	assert.NoError(t, err)

	r, g, b, err := SDToRGB(sd, ACESRICD)
	assert.NoError(t, err)
	expect(t, 0.9999993, r, 1e-9)
	expect(t, 0.9999998, g, 1e-9)
	expect(t, 1.0000003, b, 1e-9)
}

func TestSDToRGBAligned(t *testing.T) {
	// a coarser flat distribution resamples exactly to the same result
	sh := spectral.Shape{Start: 360, End: 830, Interval: 5}
	ones := make([]float64, sh.Count())
	for i := range ones {
		ones[i] = 1
	}
	sd, err := spectral.NewShaped("ones", sh, ones)
	assert.NoError(t, err)

	r, g, b, err := SDToRGB(sd, ACESRICD)
	assert.NoError(t, err)
	expect(t, 0.9999993, r, 1e-9)
	expect(t, 0.9999998, g, 1e-9)
	expect(t, 1.0000003, b, 1e-9)
}

func TestSDToRGBBlackbody(t *testing.T) {
	sd, err := blackbody.SD(5500, spectral.Shape{Start: 360, End: 830, Interval: 1})
	assert.NoError(t, err)

	r, g, b, err := SDToRGB(sd, ACESRICD)
	assert.NoError(t, err)
	assert.Greater(t, r, 0.0)
	assert.Greater(t, g, 0.0)
	assert.Greater(t, b, 0.0)

	nr, ng, nb := NormalizeG(r, g, b)
	assert.Equal(t, 1.0, ng)
	expect(t, r/g, nr, 1e-15)
	expect(t, b/g, nb, 1e-15)

	// a hotter blackbody shifts exposure toward blue
	hot, err := blackbody.SD(10000, spectral.Shape{Start: 360, End: 830, Interval: 1})
	assert.NoError(t, err)
	hr, hg, hb, err := SDToRGB(hot, ACESRICD)
	assert.NoError(t, err)
	hnr, _, hnb := NormalizeG(hr, hg, hb)
	assert.Greater(t, hnb, nb)
	assert.Less(t, hnr, nr)
}

func TestNormalizeG(t *testing.T) {
	r, g, b := NormalizeG(2, 4, 1)
	assert.Equal(t, 0.5, r)
	assert.Equal(t, 1.0, g)
	assert.Equal(t, 0.25, b)

	r, g, b = NormalizeG(2, 0, 1)
	assert.Equal(t, 2.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 1.0, b)
}
