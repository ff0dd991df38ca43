// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales resolves data domains to visual ranges and label
// text.
//
// A scale associates one visual channel with a domain-to-range
// transform, a label Formatter, and an Expansion policy. Continuous
// and Discrete are the two kinds of scale; a channel uses exactly one
// of them. Both map their domain onto the unit interval [0, 1], which
// a renderer then maps onto pixels or colors.
package scales

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
)

// A Scale maps values of a data column to positions on the unit
// interval and produces tick positions and labels. It is implemented
// by Continuous and Discrete.
type Scale interface {
	// Train expands the domain of this scale to include the data
	// in seq. Training with data of an unsupported type panics
	// with a *generic.TypeError.
	Train(seq table.Slice)

	// Map maps a single domain value to [0, 1].
	Map(x interface{}) float64

	// Ticks returns at most max tick positions in [0, 1] and their
	// label text.
	Ticks(max int) (pos []float64, labels []string)
}

var float64Type = reflect.TypeOf(float64(0))

// Continuous is a linear scale over a cardinal domain. The zero value
// is not useful; use NewContinuous.
type Continuous struct {
	dataMin, dataMax float64

	f      Formatter
	expand *Expansion
}

// NewContinuous returns a continuous linear scale with an untrained
// domain, the default formatter, and the default expansion.
func NewContinuous() *Continuous {
	return &Continuous{dataMin: math.NaN(), dataMax: math.NaN()}
}

func (s *Continuous) String() string {
	lo, hi := s.Domain()
	return fmt.Sprintf("continuous [%g,%g]", lo, hi)
}

// SetFormatter sets the formatter for values on this scale. A nil f
// restores the default formatting.
func (s *Continuous) SetFormatter(f Formatter) *Continuous {
	s.f = f
	return s
}

// SetExpansion sets the domain padding policy for this scale. Scales
// without an explicit expansion use DefaultExpansion.
func (s *Continuous) SetExpansion(e Expansion) *Continuous {
	s.expand = &e
	return s
}

// Include forces the data range of this scale to include v, as if it
// had been trained on it. NaN and infinities are ignored.
func (s *Continuous) Include(v float64) *Continuous {
	s.train1(v)
	return s
}

// Train expands the data range to include seq, which must be
// convertible to []float64. NaN and infinite values are skipped.
func (s *Continuous) Train(seq table.Slice) {
	var data []float64
	slice.Convert(&data, seq)
	for _, v := range data {
		s.train1(v)
	}
}

func (s *Continuous) train1(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if v < s.dataMin || math.IsNaN(s.dataMin) {
		s.dataMin = v
	}
	if v > s.dataMax || math.IsNaN(s.dataMax) {
		s.dataMax = v
	}
}

// DataRange returns the trained extremes of the data, before
// expansion. If the scale is untrained, it returns [-1, 1].
func (s *Continuous) DataRange() (min, max float64) {
	if math.IsNaN(s.dataMin) {
		return -1, 1
	}
	return s.dataMin, s.dataMax
}

// Domain returns the resolved display domain: the data range padded
// by this scale's expansion.
func (s *Continuous) Domain() (lo, hi float64) {
	e := DefaultExpansion
	if s.expand != nil {
		e = *s.expand
	}
	min, max := s.DataRange()
	return e.apply(min, max)
}

// Map maps x onto [0, 1] linearly over the resolved domain. Values
// outside the domain extrapolate beyond the unit interval.
func (s *Continuous) Map(x interface{}) float64 {
	var v float64
	switch x := x.(type) {
	case float64:
		v = x
	default:
		v = reflect.ValueOf(x).Convert(float64Type).Float()
	}
	lo, hi := s.Domain()
	ls := scale.Linear{Min: lo, Max: hi}
	return ls.Map(v)
}

// Ticks returns at most max tick positions and their labels. Tick
// values are chosen at round numbers within the resolved domain.
func (s *Continuous) Ticks(max int) (pos []float64, labels []string) {
	lo, hi := s.Domain()
	ls := scale.Linear{Min: lo, Max: hi}
	o := scale.TickOptions{Max: max}
	major, _ := ls.Ticks(o)

	pos = make([]float64, len(major))
	labels = make([]string, len(major))
	for i, x := range major {
		pos[i] = ls.Map(x)
		if s.f != nil {
			labels[i] = s.f.Format(x)
		} else {
			labels[i] = fmt.Sprintf("%.6g", x)
		}
	}
	return pos, labels
}

// Discrete is an ordinal scale over an ordered set of categories. The
// zero value is not useful; use NewDiscrete.
//
// Categories it has been trained on are ordered by value if the data
// type is sortable, and by first appearance otherwise. Each category
// maps to the center of its equal subdivision of [0, 1].
type Discrete struct {
	allData []slice.T
	f       func(interface{}) string

	ordered table.Slice
	index   map[interface{}]int
}

// NewDiscrete returns a discrete scale with no trained categories.
func NewDiscrete() *Discrete {
	return &Discrete{}
}

// SetFormatter sets the label formatter for category values. A nil f
// restores the default formatting.
func (s *Discrete) SetFormatter(f func(interface{}) string) *Discrete {
	s.f = f
	return s
}

// Train adds the values in seq to the category set.
func (s *Discrete) Train(seq table.Slice) {
	s.allData = append(s.allData, slice.T(seq))
	s.ordered, s.index = nil, nil
}

func (s *Discrete) makeIndex() {
	if s.index != nil {
		return
	}
	s.ordered = slice.NubAppend(s.allData...)
	if slice.CanSort(s.ordered) {
		slice.Sort(s.ordered)
	}
	ov := reflect.ValueOf(s.ordered)
	s.index = make(map[interface{}]int, ov.Len())
	for i, l := 0, ov.Len(); i < l; i++ {
		s.index[ov.Index(i).Interface()] = i
	}
}

// Levels returns the number of distinct categories.
func (s *Discrete) Levels() int {
	s.makeIndex()
	return len(s.index)
}

// Index returns the ordinal of category x, or -1 if x was never
// trained.
func (s *Discrete) Index(x interface{}) int {
	s.makeIndex()
	if i, ok := s.index[x]; ok {
		return i
	}
	return -1
}

// Map maps category x to the center of its subdivision of [0, 1].
func (s *Discrete) Map(x interface{}) float64 {
	s.makeIndex()
	i, ok := s.index[x]
	if !ok {
		panic(fmt.Sprintf("value %v is not in the domain of %v", x, s))
	}
	return (float64(i) + 0.5) / float64(len(s.index))
}

func (s *Discrete) String() string {
	s.makeIndex()
	return fmt.Sprintf("discrete %v", s.ordered)
}

// Ticks returns one tick per category at the category centers. max is
// ignored; a discrete scale has exactly one tick per level.
func (s *Discrete) Ticks(max int) (pos []float64, labels []string) {
	s.makeIndex()
	ov := reflect.ValueOf(s.ordered)
	n := ov.Len()
	pos = make([]float64, n)
	labels = make([]string, n)
	for i := 0; i < n; i++ {
		pos[i] = (float64(i) + 0.5) / float64(n)
		if s.f != nil {
			labels[i] = s.f(ov.Index(i).Interface())
		} else {
			labels[i] = fmt.Sprintf("%v", ov.Index(i).Interface())
		}
	}
	return pos, labels
}
