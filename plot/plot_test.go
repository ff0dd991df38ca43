// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotstyle/scales"
	"github.com/aclements/go-plotstyle/theme"
	"github.com/stretchr/testify/assert"
)

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func testTable() *table.Table {
	return table.NewBuilder(nil).
		Add("year", []float64{2020, 2021, 2022, 2020, 2021, 2022}).
		Add("value", []float64{1, 2, 3, 10, 20, 30}).
		Add("series", []string{"A", "A", "A", "B", "B", "B"}).
		Done()
}

func TestLayerTrainsScales(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})

	x := p.GetScale("x").(*scales.Continuous)
	min, max := x.DataRange()
	assert.Equal(t, 2020.0, min)
	assert.Equal(t, 2022.0, max)

	y := p.GetScale("y").(*scales.Continuous)
	min, max = y.DataRange()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 30.0, max)

	stroke := p.GetScale("stroke").(*scales.Discrete)
	assert.Equal(t, 2, stroke.Levels())
}

func TestLayerDefaultColumns(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerPoints{})

	// The first two columns are the default x and y.
	x := p.GetScale("x").(*scales.Continuous)
	min, max := x.DataRange()
	assert.Equal(t, 2020.0, min)
	assert.Equal(t, 2022.0, max)
}

func TestScaleKindExclusive(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})

	shouldPanic(t, "mutually exclusive", func() {
		p.SetScale("y", scales.NewDiscrete())
	})

	p2 := NewPlot(testTable())
	p2.SetScale("x", scales.NewDiscrete())
	shouldPanic(t, `cannot bind continuous column "year"`, func() {
		p2.Add(LayerLines{X: "year", Y: "value"})
	})
}

func TestSetScaleKeepsConfiguration(t *testing.T) {
	p := NewPlot(testTable())
	s := scales.NewContinuous().SetFormatter(scales.Percent{Accuracy: 0.1})
	p.SetScale("y", s)
	p.Add(LayerLines{X: "year", Y: "value"})

	assert.Same(t, s, p.GetScale("y"))
	min, max := s.DataRange()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 30.0, max)
}

func TestSaveRestore(t *testing.T) {
	p := NewPlot(testTable())
	orig := p.Data()

	p.Save()
	p.GroupBy("series")
	assert.Len(t, p.Data().Tables(), 2)
	p.Restore()
	assert.Equal(t, orig, p.Data())

	shouldPanic(t, "unbalanced", func() { p.Restore() })
}

// Layers group and sort on a saved copy of the data environment; the
// plot's own data is untouched.
func TestLayersDoNotDisturbData(t *testing.T) {
	p := NewPlot(testTable())
	orig := p.Data()
	p.Add(LayerLines{X: "year", Y: "value", Color: "series"})
	assert.Equal(t, orig, p.Data())
}

func TestLabelsRequireText(t *testing.T) {
	p := NewPlot(testTable())
	shouldPanic(t, "requires a Text column", func() {
		p.Add(LayerLabels{X: "year", Y: "value"})
	})
}

func TestThemeDefault(t *testing.T) {
	p := NewPlot(testTable())
	assert.Equal(t, "gray", p.Theme().Name())
	p.SetTheme(theme.Minimal())
	assert.Equal(t, "minimal", p.Theme().Name())
}

func TestTitleAndAxisLabels(t *testing.T) {
	p := NewPlot(testTable())
	p.Add(LayerLines{X: "year", Y: "value"})
	assert.Equal(t, "year", p.axisLabel("x"))
	assert.Equal(t, "value", p.axisLabel("y"))

	p.Add(AxisLabel("y", "Revenue"), Title("Streaming wars"))
	assert.Equal(t, "Revenue", p.axisLabel("y"))
	assert.Equal(t, "Streaming wars", p.title)
}
