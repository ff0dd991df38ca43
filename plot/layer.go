// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

func defaultCols(p *Plot, cols ...*string) {
	dcols := p.Data().Columns()
	for i, colp := range cols {
		if *colp == "" {
			if i >= len(dcols) {
				panic(fmt.Sprintf("cannot get default column %d; table has only %d columns", i, len(dcols)))
			}
			*colp = dcols[i]
		}
	}
}

type markKind int

const (
	markLines markKind = iota
	markPoints
	markLabels
)

// layer is a geometry layer captured at Apply time: the data grouping
// it draws from and its aesthetic bindings.
type layer struct {
	kind   markKind
	data   table.Grouping
	x, y   binding
	stroke binding

	// Label-mark fields.
	text         string
	hjust, vjust float64
	size         float64
}

// LayerLines connects successive data points in each group with a
// path, ordered by the "x" property. If Color names a column, the
// data is grouped by it and each group gets its own stroke color.
type LayerLines struct {
	// X and Y name columns that define the input and response of
	// each point on the path. If these are empty, they default to
	// the first and second columns, respectively.
	X, Y string

	// Color names a column that defines the stroke color of each
	// path. If Color is "", all paths use the default foreground.
	Color string
}

func (l LayerLines) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	defer p.Save().Restore()
	if l.Color != "" {
		p.GroupBy(l.Color)
	}
	p.SortBy(l.X)

	data := p.Data()
	p.layers = append(p.layers, layer{
		kind:   markLines,
		data:   data,
		x:      p.useContinuous("x", l.X, data),
		y:      p.useContinuous("y", l.Y, data),
		stroke: p.useDiscrete("stroke", l.Color, data),
	})
}

// LayerPoints draws a point mark at each data point.
type LayerPoints struct {
	// X and Y name columns that define input and response of each
	// point. If these are empty, they default to the first and
	// second columns, respectively.
	X, Y string

	// Color names a column that defines the fill color of each
	// point. If Color is "", points use the default foreground.
	Color string

	// Size is the point radius in pixels. 0 means 2.5.
	Size float64
}

func (l LayerPoints) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	defer p.Save().Restore()
	if l.Color != "" {
		p.GroupBy(l.Color)
	}

	data := p.Data()
	p.layers = append(p.layers, layer{
		kind:   markPoints,
		data:   data,
		x:      p.useContinuous("x", l.X, data),
		y:      p.useContinuous("y", l.Y, data),
		stroke: p.useDiscrete("stroke", l.Color, data),
		size:   l.Size,
	})
}

// LayerLabels attaches a text annotation to each data point. It is
// the direct-labeling layer: typically its data has first been
// reduced with stat.LastPoint so each series carries one label at its
// most recent point, in place of a legend.
type LayerLabels struct {
	// X and Y name columns that define the point each label is
	// attached to. If they are "", they default to the first and
	// second columns, respectively.
	X, Y string

	// Text names the column that gives the label text. Text is
	// required.
	Text string

	// Color names a column that defines label colors, matching the
	// series colors of other layers grouped by the same column.
	Color string

	// HJust and VJust shift the text's bounding box relative to its
	// data point, as a fraction of the box: 0 is edge-aligned, 0.5
	// centered, 1 opposite-edge-aligned. Values outside [0, 1]
	// extrapolate the offset.
	HJust, VJust float64

	// Size is the font size in pixels. 0 means 11.
	Size float64
}

func (l LayerLabels) Apply(p *Plot) {
	if l.Text == "" {
		panic("LayerLabels requires a Text column")
	}
	defaultCols(p, &l.X, &l.Y)
	defer p.Save().Restore()
	if l.Color != "" {
		p.GroupBy(l.Color)
	}

	data := p.Data()
	p.layers = append(p.layers, layer{
		kind:   markLabels,
		data:   data,
		x:      p.useContinuous("x", l.X, data),
		y:      p.useContinuous("y", l.Y, data),
		stroke: p.useDiscrete("stroke", l.Color, data),
		text:   l.Text,
		hjust:  l.HJust,
		vjust:  l.VJust,
		size:   l.Size,
	})
}
