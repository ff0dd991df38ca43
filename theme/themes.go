// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import "image/color"

// Gray is the default theme: a light gray panel with white grid
// lines and no axis line, so the data ink dominates.
func Gray() Theme {
	return newTheme("gray", map[string]Style{
		PlotBackground:   Rect{Fill: color.White},
		PlotTitle:        Text{Size: 16, HJust: 0, Margin: 8},
		PanelBackground:  Rect{Fill: color.Gray{0xeb}},
		PanelGrid:        Line{Color: color.White, Size: 1},
		AxisLine:         Blank{},
		AxisTicks:        Line{Color: color.Gray{0x33}, Size: 1},
		AxisText:         Text{Color: color.Gray{0x4d}, Size: 11, Margin: 5},
		AxisTitle:        Text{Color: color.Gray{0x11}, Size: 12, HJust: 0.5, Margin: 8},
		LegendBackground: Rect{Fill: color.White},
		LegendKey:        Rect{Fill: color.Gray{0xeb}},
		LegendText:       Text{Color: color.Gray{0x11}, Size: 11},
	})
}

// Minimal strips the panel back to grid lines on a bare background.
func Minimal() Theme {
	return newTheme("minimal", map[string]Style{
		PlotBackground:   Rect{Fill: color.White},
		PlotTitle:        Text{Size: 16, HJust: 0, Margin: 8},
		PanelBackground:  Blank{},
		PanelGrid:        Line{Color: color.Gray{0xe5}, Size: 1},
		AxisLine:         Blank{},
		AxisTicks:        Blank{},
		AxisText:         Text{Color: color.Gray{0x4d}, Size: 11, Margin: 5},
		AxisTitle:        Text{Color: color.Gray{0x11}, Size: 12, HJust: 0.5, Margin: 8},
		LegendBackground: Blank{},
		LegendKey:        Blank{},
		LegendText:       Text{Color: color.Gray{0x11}, Size: 11},
	})
}

// Light is a gray-on-white theme with light panel borders.
func Light() Theme {
	return newTheme("light", map[string]Style{
		PlotBackground:   Rect{Fill: color.White},
		PlotTitle:        Text{Size: 16, HJust: 0, Margin: 8},
		PanelBackground:  Rect{Fill: color.White, Color: color.Gray{0xb3}, Size: 0.5},
		PanelGrid:        Line{Color: color.Gray{0xd9}, Size: 1},
		AxisLine:         Blank{},
		AxisTicks:        Line{Color: color.Gray{0xb3}, Size: 1},
		AxisText:         Text{Color: color.Gray{0x4d}, Size: 11, Margin: 5},
		AxisTitle:        Text{Color: color.Gray{0x11}, Size: 12, HJust: 0.5, Margin: 8},
		LegendBackground: Rect{Fill: color.White},
		LegendKey:        Rect{Fill: color.White, Color: color.Gray{0xb3}, Size: 0.5},
		LegendText:       Text{Color: color.Gray{0x11}, Size: 11},
	})
}

// BW is a high-contrast black-on-white theme suitable for print.
func BW() Theme {
	return newTheme("bw", map[string]Style{
		PlotBackground:   Rect{Fill: color.White},
		PlotTitle:        Text{Size: 16, HJust: 0, Margin: 8, Weight: "bold"},
		PanelBackground:  Rect{Fill: color.White, Color: color.Gray{0x33}, Size: 1},
		PanelGrid:        Line{Color: color.Gray{0xe5}, Size: 1},
		AxisLine:         Blank{},
		AxisTicks:        Line{Color: color.Gray{0x33}, Size: 1},
		AxisText:         Text{Color: color.Gray{0x33}, Size: 11, Margin: 5},
		AxisTitle:        Text{Color: color.Black, Size: 12, HJust: 0.5, Margin: 8},
		LegendBackground: Rect{Fill: color.White},
		LegendKey:        Rect{Fill: color.White},
		LegendText:       Text{Color: color.Black, Size: 11},
	})
}
