// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot builds styled plot specifications.
//
// A Plot is an immutable-by-composition description of data-to-visual
// mappings: adding layers, scales, a theme, or statistical reductions
// produces a richer specification and never mutates the underlying
// data tables. Rendering consumes the finished specification and
// writes an SVG image.
package plot

import (
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotstyle/scales"
	"github.com/aclements/go-plotstyle/theme"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plotstyle] ", log.Lshortfile)

// Plot represents a single styled plot.
type Plot struct {
	env *plotEnv

	scales map[string]scales.Scale
	layers []layer

	theme    theme.Theme
	themeSet bool

	title          string
	axisLabels     map[string]string
	autoAxisLabels map[string][]string
}

// NewPlot returns a new Plot backed by data. It has no layers, the
// default gray theme, and all scales are default.
func NewPlot(data table.Grouping) *Plot {
	return &Plot{
		env:            &plotEnv{data: data},
		scales:         make(map[string]scales.Scale),
		axisLabels:     make(map[string]string),
		autoAxisLabels: make(map[string][]string),
	}
}

type plotEnv struct {
	parent *plotEnv
	data   table.Grouping
}

// SetData sets p's current data table. The caller must not modify
// data in this table after this point.
func (p *Plot) SetData(data table.Grouping) *Plot {
	p.env.data = data
	return p
}

// Data returns p's current data table.
func (p *Plot) Data() table.Grouping {
	return p.env.data
}

// Save saves the current data table of p to a stack.
func (p *Plot) Save() *Plot {
	p.env = &plotEnv{parent: p.env, data: p.env.data}
	return p
}

// Restore restores the data table of p from the save stack.
func (p *Plot) Restore() *Plot {
	if p.env.parent == nil {
		panic("unbalanced Save/Restore")
	}
	p.env = p.env.parent
	return p
}

// GroupBy sub-divides all groups such that all of the rows in each
// group have equal values for all of the named columns.
func (p *Plot) GroupBy(cols ...string) *Plot {
	return p.SetData(table.GroupBy(p.Data(), cols...))
}

// SortBy sorts each group of p's data by the named columns.
func (p *Plot) SortBy(cols ...string) *Plot {
	return p.SetData(table.SortBy(p.Data(), cols...))
}

// A Stat transforms a table.Grouping.
type Stat interface {
	F(table.Grouping) table.Grouping
}

// Stat applies each of stats in order to p's data.
func (p *Plot) Stat(stats ...Stat) *Plot {
	data := p.Data()
	for _, stat := range stats {
		data = stat.F(data)
	}
	return p.SetData(data)
}

// A Plotter is an operation that can modify a Plot.
type Plotter interface {
	Apply(*Plot)
}

// Add applies each of plotters to Plot in order.
func (p *Plot) Add(plotters ...Plotter) *Plot {
	for _, plotter := range plotters {
		plotter.Apply(p)
	}
	return p
}

// SetTheme sets the theme used to style all non-data elements of p.
// Plots without an explicit theme use theme.Gray.
func (p *Plot) SetTheme(t theme.Theme) *Plot {
	p.theme, p.themeSet = t, true
	return p
}

// Theme returns p's theme.
func (p *Plot) Theme() theme.Theme {
	if !p.themeSet {
		return theme.Gray()
	}
	return p.theme
}

// SetScale binds a scale to the given visual aesthetic ("x", "y", or
// "stroke"). A channel has exactly one scale, and continuous and
// discrete scales are mutually exclusive per channel: rebinding a
// channel to a scale of the other kind panics. SetScale must be
// called before the layers that use the aesthetic, or the layers will
// have trained the wrong scale.
//
// SetScale returns p for ease of chaining.
func (p *Plot) SetScale(aes string, s scales.Scale) *Plot {
	if old, ok := p.scales[aes]; ok && !sameKind(old, s) {
		panic(fmt.Sprintf("cannot bind %v to aesthetic %q, which already has %v; continuous and discrete scales are mutually exclusive per channel", s, aes, old))
	}
	p.scales[aes] = s
	return p
}

// GetScale returns the scale bound to the given visual aesthetic, or
// nil if the aesthetic is unused.
func (p *Plot) GetScale(aes string) scales.Scale {
	return p.scales[aes]
}

func sameKind(a, b scales.Scale) bool {
	_, ac := a.(*scales.Continuous)
	_, bc := b.(*scales.Continuous)
	return ac == bc
}

// binding is a column bound to an aesthetic through a scale.
type binding struct {
	col   string
	scale scales.Scale
}

// useContinuous binds a column of data to a continuous aesthetic,
// expanding the domain of the aesthetic's scale to include the data
// in col. col may be "", in which case it returns a zero binding.
func (p *Plot) useContinuous(aes, col string, data table.Grouping) binding {
	if col == "" {
		return binding{}
	}
	s, ok := p.scales[aes]
	if !ok {
		s = scales.NewContinuous()
		p.scales[aes] = s
	}
	cs, ok := s.(*scales.Continuous)
	if !ok {
		panic(fmt.Sprintf("aesthetic %q has discrete scale %v; cannot bind continuous column %q", aes, s, col))
	}
	for _, gid := range data.Tables() {
		cs.Train(data.Table(gid).MustColumn(col))
	}
	if aes == "x" || aes == "y" {
		p.autoAxisLabels[aes] = append(p.autoAxisLabels[aes], col)
	}
	return binding{col, cs}
}

// useDiscrete is the discrete counterpart of useContinuous.
func (p *Plot) useDiscrete(aes, col string, data table.Grouping) binding {
	if col == "" {
		return binding{}
	}
	s, ok := p.scales[aes]
	if !ok {
		s = scales.NewDiscrete()
		p.scales[aes] = s
	}
	ds, ok := s.(*scales.Discrete)
	if !ok {
		panic(fmt.Sprintf("aesthetic %q has continuous scale %v; cannot bind discrete column %q", aes, s, col))
	}
	for _, gid := range data.Tables() {
		ds.Train(data.Table(gid).MustColumn(col))
	}
	return binding{col, ds}
}

// AxisLabel returns a Plotter that sets the label of an axis on a
// Plot. By default, Plot constructs automatic axis labels from column
// names, but AxisLabel lets callers override these.
func AxisLabel(axis, label string) Plotter {
	return axisLabel{axis, label}
}

type axisLabel struct {
	axis, label string
}

func (a axisLabel) Apply(p *Plot) {
	p.axisLabels[a.axis] = a.label
}

// Title returns a Plotter that sets the title of a Plot.
func Title(label string) Plotter {
	return titlePlotter{label}
}

type titlePlotter struct {
	label string
}

func (t titlePlotter) Apply(p *Plot) {
	p.title = t.label
}
