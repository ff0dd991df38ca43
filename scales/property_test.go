// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Formatting the same value twice with a fixed configuration yields
// identical text.
func TestPropFormatDeterminism(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("currency formatting is deterministic", prop.ForAll(
		func(v float64, acc int) bool {
			f := Currency{Symbol: "$", Accuracy: float64(acc) / 100}
			return f.Format(v) == f.Format(v)
		},
		gen.Float64Range(-1e12, 1e12),
		gen.IntRange(0, 1000),
	))

	properties.Property("percent formatting is deterministic", prop.ForAll(
		func(v float64) bool {
			f := Percent{Accuracy: 0.1}
			return f.Format(v) == f.Format(v)
		},
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}

// The resolved display domain is the data range padded per side by
// mult*span + add.
func TestPropExpansion(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("symmetric expansion", prop.ForAll(
		func(a, b, m, c float64) bool {
			min, max := math.Min(a, b), math.Max(a, b)
			s := NewContinuous()
			s.Include(min).Include(max)
			s.SetExpansion(Expansion{MultLo: m, AddLo: c, MultHi: m, AddHi: c})

			span := max - min
			lo, hi := s.Domain()
			return lo == min-(m*span+c) && hi == max+(m*span+c)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 100),
	))

	properties.Property("asymmetric expansion pads sides independently", prop.ForAll(
		func(a, b, mLo, mHi float64) bool {
			min, max := math.Min(a, b), math.Max(a, b)
			s := NewContinuous()
			s.Include(min).Include(max)
			s.SetExpansion(Expansion{MultLo: mLo, MultHi: mHi})

			span := max - min
			lo, hi := s.Domain()
			return lo == min-mLo*span && hi == max+mHi*span
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

// Map is monotonic and sends the resolved domain ends to 0 and 1.
func TestPropMapMonotonic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("domain ends map to the unit interval", prop.ForAll(
		func(a, b float64) bool {
			if a == b {
				return true
			}
			min, max := math.Min(a, b), math.Max(a, b)
			s := NewContinuous()
			s.Include(min).Include(max)
			s.SetExpansion(ExpandNone())
			return s.Map(min) == 0 && s.Map(max) == 1
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("map preserves order", prop.ForAll(
		func(x, y float64) bool {
			s := NewContinuous()
			s.Include(-1e6).Include(1e6)
			if x > y {
				x, y = y, x
			}
			return s.Map(x) <= s.Map(y)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
