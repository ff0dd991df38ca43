// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	for _, test := range []struct {
		f    Currency
		v    float64
		want string
	}{
		{Currency{}, 123456, "123,456"},
		{Currency{Symbol: "$"}, 123456, "$123,456"},
		{Currency{Scale: 0.001, Suffix: "K"}, 123456, "123K"},
		{Currency{Symbol: "$", Scale: 0.001, Suffix: "K"}, 123456, "$123K"},
		{Currency{Symbol: "$", Scale: 1e-9, Suffix: "B", Accuracy: 0.1}, 12.3e9, "$12.3B"},
		{Currency{Symbol: "€", Accuracy: 0.01}, 1234.5, "€1,234.50"},
		{Currency{Symbol: "$"}, -1234567, "-$1,234,567"},
		{Currency{Symbol: "$"}, 0, "$0"},
		{Currency{Accuracy: 5}, 12, "10"},
	} {
		got := test.f.Format(test.v)
		assert.Equal(t, test.want, got, "%+v.Format(%v)", test.f, test.v)
	}
}

func TestPercent(t *testing.T) {
	for _, test := range []struct {
		f    Percent
		v    float64
		want string
	}{
		{Percent{Accuracy: 0.1}, 0.5134, "51.3%"},
		{Percent{}, 0.5134, "51%"},
		{Percent{Accuracy: 0.01}, 0.5134, "51.34%"},
		{Percent{Accuracy: 0.1}, 1, "100.0%"},
		{Percent{Accuracy: 0.1}, -0.056, "-5.6%"},
		{Percent{Suffix: " pct"}, 0.25, "25 pct"},
		{Percent{Accuracy: 0.1}, 12.345, "1,234.5%"},
	} {
		got := test.f.Format(test.v)
		assert.Equal(t, test.want, got, "%+v.Format(%v)", test.f, test.v)
	}
}

func TestComma(t *testing.T) {
	for _, test := range []struct {
		f    Comma
		v    float64
		want string
	}{
		{Comma{}, 1234567, "1,234,567"},
		{Comma{}, 999, "999"},
		{Comma{}, 1000, "1,000"},
		{Comma{}, -1000, "-1,000"},
		{Comma{Accuracy: 0.01}, 1234.5678, "1,234.57"},
		{Comma{Scale: 1e-6, Suffix: "M"}, 2500000, "3M"},
		{Comma{Scale: 1e-6, Suffix: "M", Accuracy: 0.1}, 2500000, "2.5M"},
		{Comma{}, 0, "0"},
	} {
		got := test.f.Format(test.v)
		assert.Equal(t, test.want, got, "%+v.Format(%v)", test.f, test.v)
	}
}

// Negative or zero accuracy falls back to whole numbers.
func TestAccuracyFallback(t *testing.T) {
	assert.Equal(t, "52%", Percent{Accuracy: -1}.Format(0.523))
	assert.Equal(t, "1,234", Comma{Accuracy: 0}.Format(1234.4))
}

func TestFunc(t *testing.T) {
	var f Formatter = Func(func(v float64) string { return "x" })
	assert.Equal(t, "x", f.Format(3))
}
