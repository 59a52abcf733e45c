// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/spf13/cobra"

	"cogentcore.org/colour/blackbody"
	"cogentcore.org/colour/cie"
	"cogentcore.org/colour/cmfs"
	"cogentcore.org/colour/spectral"
	"cogentcore.org/colour/tensor"
)

var blackbodyCmd = &cobra.Command{
	Use:   "blackbody",
	Short: "Print the spectral radiance of a Planckian radiator",
	Long: `Blackbody samples Planck's law at the given temperature over the
given spectral shape, printing a radiance table, the sampled emission
peak, and the relative exposures of the ACES RICD camera channels.`,
	Args: cobra.NoArgs,
	RunE: runBlackbody,
}

func init() {
	blackbodyCmd.Flags().Float64("temperature", 5000, "radiator temperature in K")
	blackbodyCmd.Flags().Float64("start", spectral.DefaultShape.Start, "first wavelength in nm")
	blackbodyCmd.Flags().Float64("end", spectral.DefaultShape.End, "last wavelength in nm")
	blackbodyCmd.Flags().Float64("interval", spectral.DefaultShape.Interval, "wavelength step in nm")
	blackbodyCmd.Flags().Int("samples", 12, "number of radiance table rows")
	rootCmd.AddCommand(blackbodyCmd)
}

func runBlackbody(cmd *cobra.Command, args []string) error {
	temp, _ := cmd.Flags().GetFloat64("temperature")
	start, _ := cmd.Flags().GetFloat64("start")
	end, _ := cmd.Flags().GetFloat64("end")
	interval, _ := cmd.Flags().GetFloat64("interval")
	samples, _ := cmd.Flags().GetInt("samples")

	shape := spectral.Shape{Start: start, End: end, Interval: interval}
	sd, err := blackbody.SD(temp, shape)
	if err != nil {
		return err
	}

	fmt.Println(titleBox(sd.Name))

	if samples < 2 {
		samples = 2
	}
	rows := make([][]string, 0, samples)
	for i := 0; i < samples; i++ {
		wl := start + float64(i)*(end-start)/float64(samples-1)
		rows = append(rows, []string{
			fmt.Sprintf("%.0f", wl),
			fmt.Sprintf("%.6e", sd.Value(wl)),
		})
	}
	fmt.Print(renderTable([]string{"nm", "W·sr⁻¹·m⁻³"}, rows))

	vals := tensor.NewFromValues(sd.Values...)
	_, maxRad, _, maxIdx := vals.Range()
	peak := sd.Wavelengths[maxIdx]
	slog.Debug("wien peak", "sampled", peak, "analytic", 2.897771955e6/temp)
	fmt.Printf("peak %s at %.0f nm: %.6e W·sr⁻¹·m⁻³\n\n",
		styleHeader.Render("radiance"), peak, maxRad)

	r, g, b, err := cmfs.SDToRGB(sd, cmfs.ACESRICD)
	if err != nil {
		return err
	}
	nr, ng, nb := cmfs.NormalizeG(r, g, b)
	fmt.Print(renderTable([]string{"RICD channel", "exposure", "relative"}, [][]string{
		{"red", fmt.Sprintf("%.6e", r), fmt.Sprintf("%.4f", nr)},
		{"green", fmt.Sprintf("%.6e", g), fmt.Sprintf("%.4f", ng)},
		{"blue", fmt.Sprintf("%.6e", b), fmt.Sprintf("%.4f", nb)},
	}))

	scale := max(nr, ng, nb)
	er, eg, eb := cie.SRGBFromLinear(nr/scale, ng/scale, nb/scale)
	ur, ug, ub := cie.SRGBToUint8(er, eg, eb)
	fmt.Printf("%s %s\n", swatch(color.RGBA{R: ur, G: ug, B: ub, A: 255}),
		styleNote.Render("approximate sRGB of the relative channel exposures"))
	return nil
}
