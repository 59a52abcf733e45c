// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colour demonstrates the colour science packages from the
// command line: blackbody spectra, CIECAM02 appearance correlates,
// and colour rendition charts.
package main

func main() {
	Execute()
}
