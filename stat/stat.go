// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stat provides table reductions for direct labeling.
//
// The transforms here reduce a grouped table to the rows a label or
// point layer should annotate, leaving the data of the primary
// geometry untouched. They follow the transform contract of
// plot.Plot.Stat: a pure function from one table.Grouping to a new
// one.
package stat

import (
	"math"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// LastPoint reduces each group to the single row whose ordering
// column X is maximal. With a date or time ordering column this is
// the most recent observation per group, which is where a direct
// label typically goes in place of a legend.
//
// If a group is empty, or its ordering column has no comparable
// values (all NaN), the group reduces to no rows and downstream label
// layers simply render nothing.
type LastPoint struct {
	// X names the ordering column. It must be convertible to
	// []float64 or have type []time.Time.
	X string
}

// F returns g with each group reduced to its last point.
func (s LastPoint) F(g table.Grouping) table.Grouping {
	return reduce(g, s.X, false)
}

// FirstPoint is the mirror image of LastPoint: it reduces each group
// to the single row whose ordering column X is minimal.
type FirstPoint struct {
	// X names the ordering column.
	X string
}

// F returns g with each group reduced to its first point.
func (s FirstPoint) F(g table.Grouping) table.Grouping {
	return reduce(g, s.X, true)
}

func reduce(g table.Grouping, x string, min bool) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			return t
		}
		i, ok := argExtremum(t.MustColumn(x), min)
		if !ok {
			return takeRows(t, nil)
		}
		return takeRows(t, []int{i})
	})
}

// argExtremum returns the index of the extreme value of col, or false
// if col has no comparable values.
func argExtremum(col table.Slice, min bool) (int, bool) {
	switch col := col.(type) {
	case []time.Time:
		if len(col) == 0 {
			return 0, false
		}
		best := 0
		for i, v := range col {
			if min {
				if v.Before(col[best]) {
					best = i
				}
			} else if v.After(col[best]) {
				best = i
			}
		}
		return best, true
	}

	// Anything else must convert to []float64; slice.Convert panics
	// with a *generic.TypeError otherwise.
	var data []float64
	slice.Convert(&data, col)

	best, ok := 0, false
	for i, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if !ok || (min && v < data[best]) || (!min && v > data[best]) {
			best, ok = i, true
		}
	}
	return best, ok
}

// takeRows builds a new table containing the given rows of t, in
// order.
func takeRows(t *table.Table, rows []int) *table.Table {
	var b table.Builder
	for _, col := range t.Columns() {
		cv := reflect.ValueOf(t.Column(col))
		nv := reflect.MakeSlice(cv.Type(), len(rows), len(rows))
		for i, r := range rows {
			nv.Index(i).Set(cv.Index(r))
		}
		b.Add(col, nv.Interface())
	}
	return b.Done()
}
