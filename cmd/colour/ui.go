// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cogentcore.org/colour/logx"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // cyan — titles
	colorMuted   = lipgloss.Color("#8C8C8C") // gray — headers, notes
	colorText    = lipgloss.Color("#EEEEEE") // off-white — values
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	styleCell = lipgloss.NewStyle().
			Foreground(colorText)

	styleNote = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// swatchProfile is the termenv color profile used for color swatches.
var swatchProfile = termenv.ColorProfile()

// disableColor turns off all colored output: lipgloss styles, termenv
// swatches, and log level tags.
func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	swatchProfile = termenv.Ascii
	logx.UseColor = false
}

// titleBox renders a bordered title.
func titleBox(title string) string {
	return styleTitle.Render(title)
}

// swatch returns a terminal color block filled with the given color.
// Under a monochrome profile it degrades to blank space.
func swatch(c color.RGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return termenv.String("    ").Background(swatchProfile.Color(hex)).String()
}

// renderTable renders rows of cells under a header row, left aligned,
// with each column padded to its widest cell. Cells may contain ANSI
// escape sequences.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styleHeader.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(styleCell.Render(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad pads the cell with trailing spaces to the given display width.
func pad(cell string, width int) string {
	if n := width - lipgloss.Width(cell); n > 0 {
		return cell + strings.Repeat(" ", n)
	}
	return cell
}
