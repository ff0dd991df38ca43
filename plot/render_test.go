// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotstyle/scales"
	"github.com/aclements/go-plotstyle/stat"
	"github.com/aclements/go-plotstyle/theme"
	"github.com/stretchr/testify/assert"
)

func renderString(t *testing.T, p *Plot) string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 400, 300); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	return buf.String()
}

func TestWriteSVGDefaultTheme(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})
	out := renderString(t, p)

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	// Gray panel with white grid lines.
	assert.Contains(t, out, "fill:#ebebeb")
	assert.Contains(t, out, "stroke:#ffffff")
	// A tick label on the year axis.
	assert.Contains(t, out, ">2020</text>")
	// One path per series.
	assert.Equal(t, 2, strings.Count(out, "stroke:#4c72b0;fill:none")+strings.Count(out, "stroke:#55a868;fill:none"))
}

func TestWriteSVGFormattedAxis(t *testing.T) {
	tab := table.NewBuilder(nil).
		Add("year", []float64{2020, 2021, 2022}).
		Add("revenue", []float64{1e9, 2e9, 4e9}).
		Done()

	p := NewPlot(tab)
	p.SetScale("y", scales.NewContinuous().
		SetFormatter(scales.Currency{Symbol: "$", Scale: 1e-9, Suffix: "B", Accuracy: 0.5}))
	p.Add(LayerLines{X: "year", Y: "revenue"})
	out := renderString(t, p)

	assert.Contains(t, out, "$")
	assert.Contains(t, out, "B</text>")
}

func TestWriteSVGBlankSuppresses(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value"})
	p.SetTheme(theme.Gray().With(map[string]theme.Style{
		theme.PanelGrid:       theme.Blank{},
		theme.PanelBackground: theme.Blank{},
	}))
	out := renderString(t, p)

	assert.NotContains(t, out, "stroke:#ffffff")
	assert.NotContains(t, out, "fill:#ebebeb")
}

func TestWriteSVGDirectLabels(t *testing.T) {
	p := NewPlot(table.GroupBy(testTable(), "series"))
	p.SetTheme(theme.Gray().With(map[string]theme.Style{
		theme.LegendBackground: theme.Blank{},
		theme.LegendKey:        theme.Blank{},
		theme.LegendText:       theme.Blank{},
	}))
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})

	p.Save()
	p.Stat(stat.LastPoint{X: "year"})
	p.Add(LayerLabels{X: "year", Y: "value", Text: "series", Color: "series", HJust: 1.1, VJust: 0.5})
	p.Restore()

	out := renderString(t, p)
	assert.Contains(t, out, ">A</text>")
	assert.Contains(t, out, ">B</text>")
}

// A reduction that selects nothing yields an empty label layer and
// rendering proceeds without labels.
func TestWriteSVGEmptyLabelLayer(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value"})

	p.Save()
	p.SetData(table.FilterEq(p.Data(), "year", 9999.0))
	p.Add(LayerLabels{X: "year", Y: "value", Text: "series"})
	p.Restore()

	out := renderString(t, p)
	assert.Contains(t, out, "</svg>")
	assert.NotContains(t, out, ">A</text>")
}

func TestWriteSVGLegend(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})
	out := renderString(t, p)
	// Legend entries for both series.
	assert.Contains(t, out, ">A</text>")
	assert.Contains(t, out, ">B</text>")

	p2 := NewPlot(testTable())
	p2.Add(LayerLines{X: "year", Y: "value", Color: "series"})
	p2.SetTheme(theme.Gray().With(map[string]theme.Style{
		theme.LegendBackground: theme.Blank{},
		theme.LegendKey:        theme.Blank{},
		theme.LegendText:       theme.Blank{},
	}))
	out2 := renderString(t, p2)
	assert.NotContains(t, out2, ">A</text>")
}

func TestWriteSVGTitle(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value"})
	p.Add(Title("Streaming wars"), AxisLabel("y", "Revenue"))
	out := renderString(t, p)
	assert.Contains(t, out, ">Streaming wars</text>")
	assert.Contains(t, out, ">Revenue</text>")
}
