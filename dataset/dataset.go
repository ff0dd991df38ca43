// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset bundles the sample data the example plots are
// built from.
//
// The data is a small synthetic panel of quarterly streaming-service
// revenue, shaped like the tables data desks work with: one row per
// (service, quarter), tidy columns, no missing values. It is
// constructed in code; there is no loading or parsing step.
package dataset

import "github.com/aclements/go-gg/table"

// Service names, in palette order.
var services = []string{"Streamflix", "Hopper+", "VistaTV", "Kanal"}

// Launch revenue in USD per quarter and compound quarterly growth for
// each service. The wiggle term keeps the lines from looking like
// exponentials drawn with a ruler.
var params = []struct {
	base   float64
	growth float64
	wiggle float64
}{
	{4.2e9, 0.035, 0.04},
	{0.9e9, 0.090, 0.07},
	{1.6e9, 0.055, 0.05},
	{2.4e9, 0.015, 0.03},
}

const (
	startYear = 2019
	quarters  = 24
)

// StreamingRevenue returns the bundled sample table: quarterly
// revenue of four streaming services from 2019 through 2024.
//
// Columns:
//
//	service  string   service name
//	year     float64  calendar year with the quarter as a fraction
//	                  (2019, 2019.25, ...)
//	revenue  float64  quarterly revenue in USD
//	share    float64  revenue share of the quarter, in [0, 1]
//
// The table is freshly built on each call, so callers may hand it to
// transforms without worrying about sharing.
func StreamingRevenue() *table.Table {
	n := len(services) * quarters
	service := make([]string, 0, n)
	year := make([]float64, 0, n)
	revenue := make([]float64, 0, n)

	totals := make([]float64, quarters)
	for si, svc := range services {
		p := params[si]
		v := p.base
		for q := 0; q < quarters; q++ {
			r := v * (1 + p.wiggle*wiggle(si, q))
			service = append(service, svc)
			year = append(year, startYear+float64(q)/4)
			revenue = append(revenue, r)
			totals[q] += r
			v *= 1 + p.growth
		}
	}

	share := make([]float64, 0, n)
	for i := range revenue {
		share = append(share, revenue[i]/totals[i%quarters])
	}

	return table.NewBuilder(nil).
		Add("service", service).
		Add("year", year).
		Add("revenue", revenue).
		Add("share", share).
		Done()
}

// wiggle is a deterministic pseudo-noise term in [-1, 1].
func wiggle(series, q int) float64 {
	x := uint32(series*31 + q*17 + 7)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(int32(x%2001)-1000) / 1000
}
