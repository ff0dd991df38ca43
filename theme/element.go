// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// A Style is the visual description of one non-data plot element. It
// is a closed set: Rect, Line, Text, or Blank. Each element identifier
// accepts exactly one of the first three kinds; Blank is accepted
// everywhere and suppresses the element from rendering entirely.
type Style interface {
	style()
}

// Rect styles a rectangular region.
type Rect struct {
	// Fill is the interior color. nil means no fill.
	Fill color.Color

	// Color is the border color. nil means no border.
	Color color.Color

	// Size is the border width in pixels.
	Size float64
}

func (Rect) style() {}

// Line styles a line element.
type Line struct {
	// Color is the stroke color. nil means no stroke.
	Color color.Color

	// Size is the stroke width in pixels.
	Size float64

	// Dash is an SVG stroke-dasharray pattern, e.g. "2,3". ""
	// draws a solid line.
	Dash string
}

func (Line) style() {}

// Text styles a text element.
type Text struct {
	// Color is the text color. nil means black.
	Color color.Color

	// Size is the font size in pixels. 0 means the renderer's base
	// font size.
	Size float64

	// Weight is the font weight, e.g. "bold". "" means normal.
	Weight string

	// Angle rotates the text counterclockwise, in degrees.
	Angle float64

	// HJust and VJust position the text's bounding box relative to
	// its anchor point as a fraction of the box: 0 is edge-aligned,
	// 0.5 centered, 1 opposite-edge-aligned. Values outside [0, 1]
	// extrapolate the offset.
	HJust, VJust float64

	// Margin is the gap in pixels between the text and what it
	// annotates.
	Margin float64
}

func (Text) style() {}

// Blank suppresses an element from rendering.
type Blank struct{}

func (Blank) style() {}

// Color returns the color with the given SVG 1.1 name. It panics if
// the name is unknown; like a bad element identifier, a bad color
// name is a configuration error and is reported when the theme is
// built.
func Color(name string) color.Color {
	c, ok := colornames.Map[name]
	if !ok {
		panic(fmt.Sprintf("unknown color name %q", name))
	}
	return c
}
