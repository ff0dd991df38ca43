// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme maps named plot elements to visual styles.
//
// A Theme is a complete mapping from element identifiers (panel
// background, axis text, legend key, and so on) to Style values. A
// custom theme is built by layering overrides on top of a named base
// theme with With or Set; each override replaces its base entry
// wholesale, and elements the overrides do not mention keep the base
// value exactly. Referencing an element identifier the registry does
// not know, or giving an element a style kind it does not accept, is a
// configuration error and panics when the theme is built.
package theme

import (
	"fmt"
	"sort"
)

// Element identifiers.
const (
	PlotBackground   = "plot.background"   // Rect
	PlotTitle        = "plot.title"        // Text
	PanelBackground  = "panel.background"  // Rect
	PanelGrid        = "panel.grid"        // Line
	AxisLine         = "axis.line"         // Line
	AxisTicks        = "axis.ticks"        // Line
	AxisText         = "axis.text"         // Text
	AxisTitle        = "axis.title"        // Text
	LegendBackground = "legend.background" // Rect
	LegendKey        = "legend.key"        // Rect
	LegendText       = "legend.text"       // Text
)

type styleKind int

const (
	kindRect styleKind = iota
	kindLine
	kindText
)

func (k styleKind) String() string {
	switch k {
	case kindRect:
		return "Rect"
	case kindLine:
		return "Line"
	case kindText:
		return "Text"
	}
	return "???"
}

// elements registers every known element identifier with the style
// kind it accepts.
var elements = map[string]styleKind{
	PlotBackground:   kindRect,
	PlotTitle:        kindText,
	PanelBackground:  kindRect,
	PanelGrid:        kindLine,
	AxisLine:         kindLine,
	AxisTicks:        kindLine,
	AxisText:         kindText,
	AxisTitle:        kindText,
	LegendBackground: kindRect,
	LegendKey:        kindRect,
	LegendText:       kindText,
}

// Elements returns the known element identifiers in sorted order.
func Elements() []string {
	ids := make([]string, 0, len(elements))
	for id := range elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func check(id string, s Style) {
	kind, ok := elements[id]
	if !ok {
		panic(fmt.Sprintf("unknown theme element %q", id))
	}
	switch s.(type) {
	case Blank:
		return
	case Rect:
		if kind == kindRect {
			return
		}
	case Line:
		if kind == kindLine {
			return
		}
	case Text:
		if kind == kindText {
			return
		}
	case nil:
		panic(fmt.Sprintf("nil style for theme element %q", id))
	}
	panic(fmt.Sprintf("theme element %q takes a %v style, not %T", id, kind, s))
}

// A Theme is an immutable mapping from element identifiers to styles.
// The zero Theme is not useful; start from one of the base themes.
type Theme struct {
	name string
	m    map[string]Style
}

// Name returns the name of the base theme this theme derives from.
func (t Theme) Name() string { return t.name }

// Element returns the style of the element with the given identifier.
// It panics if id is not a known element.
func (t Theme) Element(id string) Style {
	if _, ok := elements[id]; !ok {
		panic(fmt.Sprintf("unknown theme element %q", id))
	}
	return t.m[id]
}

// Blank reports whether the element with the given identifier is
// suppressed.
func (t Theme) Blank(id string) bool {
	_, blank := t.Element(id).(Blank)
	return blank
}

// With returns a copy of t with each entry of overrides replacing the
// corresponding entry of t wholesale. Elements not mentioned in
// overrides are unchanged. It panics if overrides references an
// unknown element or gives an element a style kind it does not
// accept.
func (t Theme) With(overrides map[string]Style) Theme {
	nm := make(map[string]Style, len(t.m))
	for id, s := range t.m {
		nm[id] = s
	}
	for id, s := range overrides {
		check(id, s)
		nm[id] = s
	}
	return Theme{t.name, nm}
}

// Set is shorthand for With with a single entry.
func (t Theme) Set(id string, s Style) Theme {
	return t.With(map[string]Style{id: s})
}

// newTheme builds a named base theme, verifying that m styles every
// registered element and nothing else.
func newTheme(name string, m map[string]Style) Theme {
	for id, s := range m {
		check(id, s)
	}
	for id := range elements {
		if _, ok := m[id]; !ok {
			panic(fmt.Sprintf("base theme %q does not style element %q", name, id))
		}
	}
	return Theme{name, m}
}
