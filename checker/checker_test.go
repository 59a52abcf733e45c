// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"testing"

	"cogentcore.org/colour/cie"
	"github.com/stretchr/testify/assert"
)

func TestDatasets(t *testing.T) {
	assert.Len(t, ColorChecker2005.Patches, 24)
	assert.Len(t, ColorChecker1976.Patches, 24)
	assert.Equal(t, cie.C, ColorChecker2005.Illuminant)
	assert.Equal(t, cie.C, ColorChecker1976.Illuminant)

	assert.Equal(t, "dark skin", ColorChecker2005.Patches[0].Name)
	assert.Equal(t, 0.4316, ColorChecker2005.Patches[0].XY.X)
	assert.Equal(t, 0.3777, ColorChecker2005.Patches[0].XY.Y)
	assert.Equal(t, 0.1008, ColorChecker2005.Patches[0].Y)

	assert.Equal(t, "black 2 (1.5 D)", ColorChecker2005.Patches[23].Name)
	assert.Equal(t, "black", ColorChecker1976.Patches[23].Name)
}

func TestCheckersMap(t *testing.T) {
	assert.Same(t, ColorChecker2005, Checkers["ColorChecker 2005"])
	assert.Same(t, ColorChecker2005, Checkers["cc2005"])
	assert.Same(t, ColorChecker1976, Checkers["ColorChecker 1976"])
	assert.Same(t, ColorChecker1976, Checkers["cc1976"])
	assert.Len(t, Checkers, 4)
}

func TestPatchLookup(t *testing.T) {
	p, err := ColorChecker2005.Patch("red")
	assert.NoError(t, err)
	assert.Equal(t, 0.5686, p.XY.X)

	_, err = ColorChecker2005.Patch("mauve")
	assert.Error(t, err)
}

func TestSRGB(t *testing.T) {
	rgb := ColorChecker1976.SRGB()
	assert.Len(t, rgb, 24)
	for _, c := range rgb {
		assert.Equal(t, uint8(255), c.A)
	}

	// the 1976 neutral patches sit at the illuminant chromaticity, so
	// they come out within a count or two of pure gray
	for i := 18; i < 24; i++ {
		c := rgb[i]
		assert.InDelta(t, int(c.R), int(c.G), 2, "patch %s", ColorChecker1976.Patches[i].Name)
		assert.InDelta(t, int(c.G), int(c.B), 2, "patch %s", ColorChecker1976.Patches[i].Name)
	}

	// white is bright, black is dark, and the tone scale descends
	white, black := rgb[18], rgb[23]
	assert.InDelta(t, 243, int(white.G), 3)
	assert.InDelta(t, 49, int(black.G), 3)
	for i := 19; i < 24; i++ {
		assert.Less(t, int(rgb[i].G), int(rgb[i-1].G))
	}

	// the red patch is strongly red-dominant
	red := rgb[14]
	assert.Greater(t, int(red.R), 165)
	assert.Less(t, int(red.G), 75)
	assert.Less(t, int(red.B), 85)
}

func TestSRGB2005(t *testing.T) {
	rgb := ColorChecker2005.SRGB()
	assert.Len(t, rgb, 24)

	// dark skin is a medium warm brown
	ds := rgb[0]
	assert.Greater(t, int(ds.R), 100)
	assert.Less(t, int(ds.R), 135)
	assert.Greater(t, int(ds.R), int(ds.G))
	assert.Greater(t, int(ds.G), int(ds.B))

	// the tone scale from white 9.5 to black 2 descends
	for i := 19; i < 24; i++ {
		assert.Less(t, int(rgb[i].G), int(rgb[i-1].G))
	}
	assert.Greater(t, int(rgb[18].G), 230)
	assert.Less(t, int(rgb[23].G), 70)
}
