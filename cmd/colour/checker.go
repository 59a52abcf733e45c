// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"cogentcore.org/colour/checker"
)

var checkerCmd = &cobra.Command{
	Use:   "checker",
	Short: "Print or render a colour rendition chart",
	Long: `Checker prints the patches of a colour rendition chart with their
chromaticity coordinates and sRGB renderings, adapted from the chart
reference illuminant to D65. With --png it also renders the classic
six by four chart layout to an image file.`,
	Args: cobra.NoArgs,
	RunE: runChecker,
}

func init() {
	checkerCmd.Flags().String("name", "cc2005", "chart name (see --list)")
	checkerCmd.Flags().String("png", "", "write the chart to this PNG file")
	checkerCmd.Flags().Bool("list", false, "list the available charts")
	rootCmd.AddCommand(checkerCmd)
}

func runChecker(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		names := make([]string, 0, len(checker.Checkers))
		for name := range checker.Checkers {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			c := checker.Checkers[name]
			rows = append(rows, []string{name, c.Name, fmt.Sprintf("%d", len(c.Patches))})
		}
		fmt.Print(renderTable([]string{"key", "chart", "patches"}, rows))
		return nil
	}

	name, _ := cmd.Flags().GetString("name")
	c, ok := checker.Checkers[name]
	if !ok {
		return fmt.Errorf("chart %q not found: run colour checker --list", name)
	}

	fmt.Println(titleBox(c.Name))
	srgb := c.SRGB()
	rows := make([][]string, 0, len(c.Patches))
	for i, p := range c.Patches {
		sc := srgb[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			swatch(sc),
			p.Name,
			fmt.Sprintf("%.4f", p.XY.X),
			fmt.Sprintf("%.4f", p.XY.Y),
			fmt.Sprintf("%.4f", p.Y),
			fmt.Sprintf("#%02x%02x%02x", sc.R, sc.G, sc.B),
		})
	}
	fmt.Print(renderTable([]string{"#", "", "patch", "x", "y", "Y", "sRGB"}, rows))

	if path, _ := cmd.Flags().GetString("png"); path != "" {
		if err := writeCheckerPNG(c, path); err != nil {
			return err
		}
		slog.Info("wrote chart", "path", path)
	}
	return nil
}

// checkerCell is the rendered size of one patch in pixels.
const checkerCell = 80

// writeCheckerPNG renders the chart in the classic six column layout,
// one cell per patch, upscaled without filtering so each patch stays a
// flat field of its exact sRGB color.
func writeCheckerPNG(c *checker.Checker, path string) error {
	cols := 6
	rows := (len(c.Patches) + cols - 1) / cols
	base := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, sc := range c.SRGB() {
		base.SetRGBA(i%cols, i/cols, sc)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*checkerCell, rows*checkerCell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := png.Encode(bw, dst); err != nil {
		return err
	}
	return bw.Flush()
}
