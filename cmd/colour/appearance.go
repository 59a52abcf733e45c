// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"cogentcore.org/colour/cam02"
	"cogentcore.org/colour/cie"
)

var appearanceCmd = &cobra.Command{
	Use:   "appearance",
	Short: "Compute CIECAM02 appearance correlates of a stimulus",
	Long: `Appearance runs the CIECAM02 forward model on the given CIE XYZ
tristimulus values (0..100 range) under the given viewing conditions,
then runs the inverse model on the resulting lightness, chroma, and hue
as a round-trip check.

Viewing conditions can be given by flags or by a TOML preset file:

	white = "D65"        # illuminant name or "X,Y,Z"
	la = 318.31          # adapting luminance in cd/m²
	yb = 20.0            # relative background luminance
	surround = "average" # average, dim, or dark
	discounting = false

Explicit flags override preset values.`,
	Args: cobra.NoArgs,
	RunE: runAppearance,
}

func init() {
	appearanceCmd.Flags().String("xyz", "", "stimulus XYZ as X,Y,Z")
	appearanceCmd.Flags().String("white", "D65", "reference white: illuminant name or X,Y,Z")
	appearanceCmd.Flags().Float64("la", 318.31, "adapting field luminance in cd/m²")
	appearanceCmd.Flags().Float64("yb", 20, "relative background luminance")
	appearanceCmd.Flags().String("surround", "average", "surround: average, dim, or dark")
	appearanceCmd.Flags().Bool("discount", false, "assume full discounting of the illuminant")
	appearanceCmd.Flags().String("view", "", "TOML view conditions preset file")
	_ = appearanceCmd.MarkFlagRequired("xyz")
	rootCmd.AddCommand(appearanceCmd)
}

func runAppearance(cmd *cobra.Command, args []string) error {
	xyzStr, _ := cmd.Flags().GetString("xyz")
	xyz, err := parseTriple(xyzStr)
	if err != nil {
		return fmt.Errorf("parsing --xyz: %w", err)
	}

	vw, err := buildView(cmd)
	if err != nil {
		return err
	}

	cam := cam02.FromXYZView(xyz[0], xyz[1], xyz[2], vw)

	fmt.Println(titleBox("CIECAM02"))
	fmt.Print(renderTable([]string{"correlate", "value"}, [][]string{
		{"Lightness J", fmt.Sprintf("%.4f", cam.Lightness)},
		{"Chroma C", fmt.Sprintf("%.4f", cam.Chroma)},
		{"Hue angle h", fmt.Sprintf("%.4f°", cam.Hue)},
		{"Hue quadrature H", fmt.Sprintf("%.4f", cam.HueQuadrature)},
		{"Brightness Q", fmt.Sprintf("%.4f", cam.Brightness)},
		{"Colorfulness M", fmt.Sprintf("%.4f", cam.Colorfulness)},
		{"Saturation s", fmt.Sprintf("%.4f", cam.Saturation)},
	}))

	x, y, z := cam.XYZView(vw)
	fmt.Printf("inverse from J, C, h: XYZ = %.4f, %.4f, %.4f\n", x, y, z)
	return nil
}

// viewPreset is the schema of a --view TOML preset file.
type viewPreset struct {
	White       string  `toml:"white"`
	La          float64 `toml:"la"`
	Yb          float64 `toml:"yb"`
	Surround    string  `toml:"surround"`
	Discounting bool    `toml:"discounting"`
}

// loadViewPreset reads and parses a TOML view conditions preset.
func loadViewPreset(path string) (*viewPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading view preset: %w", err)
	}
	var p viewPreset
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// buildView resolves the viewing conditions from the preset file, if
// any, and the command flags, with explicit flags taking precedence.
func buildView(cmd *cobra.Command) (*cam02.View, error) {
	whiteStr, _ := cmd.Flags().GetString("white")
	la, _ := cmd.Flags().GetFloat64("la")
	yb, _ := cmd.Flags().GetFloat64("yb")
	surround, _ := cmd.Flags().GetString("surround")
	discount, _ := cmd.Flags().GetBool("discount")

	if path, _ := cmd.Flags().GetString("view"); path != "" {
		p, err := loadViewPreset(path)
		if err != nil {
			return nil, err
		}
		if p.White != "" && !cmd.Flags().Changed("white") {
			whiteStr = p.White
		}
		if p.La != 0 && !cmd.Flags().Changed("la") {
			la = p.La
		}
		if p.Yb != 0 && !cmd.Flags().Changed("yb") {
			yb = p.Yb
		}
		if p.Surround != "" && !cmd.Flags().Changed("surround") {
			surround = p.Surround
		}
		if !cmd.Flags().Changed("discount") {
			discount = p.Discounting
		}
	}

	white, err := parseWhite(whiteStr)
	if err != nil {
		return nil, fmt.Errorf("parsing white point: %w", err)
	}
	sr, ok := cam02.Surrounds[strings.ToLower(surround)]
	if !ok {
		return nil, fmt.Errorf("surround %q not recognized: use average, dim, or dark", surround)
	}

	vw := cam02.NewView(white, la, yb, sr, discount)
	slog.Debug("view conditions", "D", vw.D, "FL", vw.FL, "NBB", vw.NBB, "NCB", vw.NCB, "AW", vw.AW)
	return vw, nil
}

// parseWhite resolves a reference white given as a CIE standard
// illuminant name, such as "D65", or as an explicit X,Y,Z triple.
func parseWhite(s string) ([3]float64, error) {
	if c, ok := cie.Illuminants[strings.ToUpper(strings.TrimSpace(s))]; ok {
		x, y, z := c.XYZ100()
		return [3]float64{x, y, z}, nil
	}
	return parseTriple(s)
}

// parseTriple parses a comma separated triple of floats, such as
// "19.01,20.00,21.78".
func parseTriple(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("expected three comma separated values, got %q", s)
	}
	var out [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("parsing %q: %w", part, err)
		}
		out[i] = v
	}
	return out, nil
}
