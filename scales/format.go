// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"strings"

	"github.com/shopspring/decimal"
)

// A Formatter produces the label text for values on a scale.
//
// Formatters are pure: for a fixed formatter configuration, formatting
// the same value always yields the same text.
type Formatter interface {
	Format(v float64) string
}

// Func adapts a plain function to a Formatter.
type Func func(v float64) string

// Format calls f.
func (f Func) Format(v float64) string { return f(v) }

// Currency formats values as monetary amounts: an optional currency
// symbol prefix, digit grouping, and an optional unit suffix.
//
// A value is first multiplied by Scale (0 means 1), which is typically
// paired with Suffix to rescale units, e.g. Scale 0.001 and Suffix "K"
// displays thousands. Currency{Scale: 1e-3, Suffix: "K"} formats
// 123456 as "123K".
type Currency struct {
	// Symbol is prepended to the formatted number. It may be "".
	Symbol string

	// Accuracy is the rounding granularity. Values are rounded to
	// the nearest multiple of Accuracy and printed with as many
	// decimal places as Accuracy has. 0 means 1.
	Accuracy float64

	// Scale is multiplied into the value before rounding. 0 means 1.
	Scale float64

	// Suffix is appended to the formatted number.
	Suffix string
}

func (f Currency) Format(v float64) string {
	s := group(roundTo(rescale(v, f.Scale), f.Accuracy))
	// The sign goes before the currency symbol.
	if strings.HasPrefix(s, "-") {
		return "-" + f.Symbol + s[1:] + f.Suffix
	}
	return f.Symbol + s + f.Suffix
}

// Percent formats fractions as percentages: the value is multiplied by
// 100 and a "%" sign is appended. Percent{Accuracy: 0.1} formats
// 0.5134 as "51.3%".
type Percent struct {
	// Accuracy is the rounding granularity after the multiply by
	// 100. 0 means 1.
	Accuracy float64

	// Scale is an extra factor multiplied into the value before the
	// multiply by 100. 0 means 1.
	Scale float64

	// Suffix replaces the trailing "%" if non-empty.
	Suffix string
}

func (f Percent) Format(v float64) string {
	suffix := f.Suffix
	if suffix == "" {
		suffix = "%"
	}
	return group(roundTo(rescale(v, f.Scale)*100, f.Accuracy)) + suffix
}

// Comma formats values with digit grouping only.
type Comma struct {
	// Accuracy is the rounding granularity. 0 means 1.
	Accuracy float64

	// Scale is multiplied into the value before rounding. 0 means 1.
	Scale float64

	// Suffix is appended to the formatted number.
	Suffix string
}

func (f Comma) Format(v float64) string {
	return group(roundTo(rescale(v, f.Scale), f.Accuracy)) + f.Suffix
}

func rescale(v, scale float64) float64 {
	if scale == 0 {
		return v
	}
	return v * scale
}

// roundTo rounds v to the nearest multiple of accuracy and renders it
// with the same number of decimal places as accuracy. The arithmetic
// is exact decimal arithmetic so that, e.g., accuracy 0.1 never leaks
// binary floating point noise into label text.
func roundTo(v, accuracy float64) string {
	if accuracy <= 0 {
		accuracy = 1
	}
	acc := decimal.NewFromFloat(accuracy)
	d := decimal.NewFromFloat(v).Div(acc).Round(0).Mul(acc)
	return d.StringFixed(decimalPlaces(acc))
}

// decimalPlaces returns the number of digits after the decimal point
// in acc's shortest representation.
func decimalPlaces(acc decimal.Decimal) int32 {
	if e := acc.Exponent(); e < 0 {
		return -e
	}
	return 0
}

// group inserts "," separators between every three digits of the
// integer part of the plain decimal number s.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	ip, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		ip, frac = s[:i], s[i:]
	}
	if len(ip) <= 3 {
		return sign + ip + frac
	}
	var b strings.Builder
	b.Grow(len(ip) + len(ip)/3)
	pre := len(ip) % 3
	if pre > 0 {
		b.WriteString(ip[:pre])
	}
	for i := pre; i < len(ip); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ip[i : i+3])
	}
	return sign + b.String() + frac
}
