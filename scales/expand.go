// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

// An Expansion pads the resolved domain of a continuous scale beyond
// the extremes of its data, so geometry does not sit exactly on the
// panel edge. Each side is padded independently by a fraction of the
// domain span plus a constant in domain units.
type Expansion struct {
	MultLo, AddLo float64
	MultHi, AddHi float64
}

// DefaultExpansion is used by scales with no explicit expansion.
var DefaultExpansion = ExpandMult(0.05)

// ExpandMult returns a symmetric multiplicative Expansion.
func ExpandMult(m float64) Expansion {
	return Expansion{MultLo: m, MultHi: m}
}

// ExpandAdd returns a symmetric additive Expansion.
func ExpandAdd(a float64) Expansion {
	return Expansion{AddLo: a, AddHi: a}
}

// ExpandNone returns an Expansion that adds no padding.
func ExpandNone() Expansion {
	return Expansion{}
}

// apply pads the domain [min, max].
func (e Expansion) apply(min, max float64) (lo, hi float64) {
	span := max - min
	lo = min - (e.MultLo*span + e.AddLo)
	hi = max + (e.MultHi*span + e.AddHi)
	return
}
