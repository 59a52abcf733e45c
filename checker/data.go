// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import "cogentcore.org/colour/cie"

// ColorChecker2005 is the post-2004 ColorChecker chart, with the
// accurate chromaticity coordinates published after the manufacturing
// change from GretagMacbeth to X-Rite.
var ColorChecker2005 = &Checker{
	Name:       "ColorChecker 2005",
	Illuminant: cie.C,
	Patches: []Patch{
		{"dark skin", cie.Chromaticity{0.4316, 0.3777}, 0.1008},
		{"light skin", cie.Chromaticity{0.4197, 0.3744}, 0.3495},
		{"blue sky", cie.Chromaticity{0.2760, 0.3016}, 0.1836},
		{"foliage", cie.Chromaticity{0.3703, 0.4499}, 0.1325},
		{"blue flower", cie.Chromaticity{0.2999, 0.2856}, 0.2304},
		{"bluish green", cie.Chromaticity{0.2848, 0.3911}, 0.4178},
		{"orange", cie.Chromaticity{0.5295, 0.4055}, 0.3118},
		{"purplish blue", cie.Chromaticity{0.2305, 0.2106}, 0.1126},
		{"moderate red", cie.Chromaticity{0.5012, 0.3273}, 0.1938},
		{"purple", cie.Chromaticity{0.3319, 0.2482}, 0.0637},
		{"yellow green", cie.Chromaticity{0.3984, 0.5008}, 0.4446},
		{"orange yellow", cie.Chromaticity{0.4957, 0.4427}, 0.4357},
		{"blue", cie.Chromaticity{0.2018, 0.1692}, 0.0575},
		{"green", cie.Chromaticity{0.3253, 0.5032}, 0.2318},
		{"red", cie.Chromaticity{0.5686, 0.3303}, 0.1257},
		{"yellow", cie.Chromaticity{0.4697, 0.4734}, 0.5981},
		{"magenta", cie.Chromaticity{0.4159, 0.2688}, 0.2009},
		{"cyan", cie.Chromaticity{0.2131, 0.3023}, 0.1930},
		{"white 9.5 (.05 D)", cie.Chromaticity{0.3469, 0.3608}, 0.9117},
		{"neutral 8 (.23 D)", cie.Chromaticity{0.3440, 0.3584}, 0.5895},
		{"neutral 6.5 (.44 D)", cie.Chromaticity{0.3432, 0.3581}, 0.3632},
		{"neutral 5 (.70 D)", cie.Chromaticity{0.3446, 0.3579}, 0.1915},
		{"neutral 3.5 (1.05 D)", cie.Chromaticity{0.3401, 0.3548}, 0.0883},
		{"black 2 (1.5 D)", cie.Chromaticity{0.3406, 0.3537}, 0.0311},
	},
}

// ColorChecker1976 is the original GretagMacbeth chart as measured in
// the 1976 McCamy, Marcus and Davidson paper.
var ColorChecker1976 = &Checker{
	Name:       "ColorChecker 1976",
	Illuminant: cie.C,
	Patches: []Patch{
		{"dark skin", cie.Chromaticity{0.400, 0.350}, 0.101},
		{"light skin", cie.Chromaticity{0.377, 0.345}, 0.358},
		{"blue sky", cie.Chromaticity{0.247, 0.251}, 0.193},
		{"foliage", cie.Chromaticity{0.337, 0.422}, 0.133},
		{"blue flower", cie.Chromaticity{0.265, 0.240}, 0.243},
		{"bluish green", cie.Chromaticity{0.261, 0.343}, 0.431},
		{"orange", cie.Chromaticity{0.506, 0.407}, 0.301},
		{"purplish blue", cie.Chromaticity{0.211, 0.175}, 0.120},
		{"moderate red", cie.Chromaticity{0.453, 0.306}, 0.198},
		{"purple", cie.Chromaticity{0.285, 0.202}, 0.066},
		{"yellow green", cie.Chromaticity{0.380, 0.489}, 0.443},
		{"orange yellow", cie.Chromaticity{0.473, 0.438}, 0.431},
		{"blue", cie.Chromaticity{0.187, 0.129}, 0.061},
		{"green", cie.Chromaticity{0.305, 0.478}, 0.234},
		{"red", cie.Chromaticity{0.539, 0.313}, 0.120},
		{"yellow", cie.Chromaticity{0.448, 0.470}, 0.591},
		{"magenta", cie.Chromaticity{0.364, 0.233}, 0.198},
		{"cyan", cie.Chromaticity{0.196, 0.252}, 0.198},
		{"white", cie.Chromaticity{0.310, 0.316}, 0.900},
		{"neutral 8", cie.Chromaticity{0.310, 0.316}, 0.591},
		{"neutral 6.5", cie.Chromaticity{0.310, 0.316}, 0.362},
		{"neutral 5", cie.Chromaticity{0.310, 0.316}, 0.198},
		{"neutral 3.5", cie.Chromaticity{0.310, 0.316}, 0.090},
		{"black", cie.Chromaticity{0.310, 0.316}, 0.031},
	},
}

// Checkers maps colour rendition chart names, including the short
// cc2005 and cc1976 aliases, to their datasets.
var Checkers = map[string]*Checker{
	"ColorChecker 2005": ColorChecker2005,
	"cc2005":            ColorChecker2005,
	"ColorChecker 1976": ColorChecker1976,
	"cc1976":            ColorChecker1976,
}
