// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotstyle/scales"
	"github.com/aclements/go-plotstyle/theme"
	"github.com/ajstarks/svgo"
)

const (
	outerPad = 6.0
	tickLen  = 4.0
)

// seriesPalette is the default qualitative palette for series colors.
var seriesPalette = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb2, 0xff},
	color.RGBA{0xcc, 0xb9, 0x74, 0xff},
	color.RGBA{0x64, 0xb5, 0xcd, 0xff},
}

// foreground is the data ink color for layers with no color binding.
var foreground color.Color = color.Gray{0x33}

// seriesColor returns the color for series i of n. Beyond the
// qualitative palette it falls back to even samples of the Viridis
// ramp.
func seriesColor(i, n int) color.Color {
	if n <= len(seriesPalette) {
		return seriesPalette[i]
	}
	if n < 2 {
		n = 2
	}
	return palette.Viridis.Map(float64(i) / float64(n-1))
}

type textMetrics struct {
	width   float64
	leading float64
}

// measureString returns approximate metrics in pixels of s rendered
// at font pixel size pxSize. Real text measurement needs the font;
// these estimates only size margins, so close is good enough.
func measureString(pxSize float64, s string) textMetrics {
	return textMetrics{
		width:   0.5 * pxSize * float64(utf8.RuneCountInString(s)),
		leading: 1.25 * pxSize,
	}
}

// textOffset converts a fractional box justification into a baseline
// offset from the anchor point. HJust 0 puts the left edge of the
// text at the anchor, 1 the right edge; VJust 0 rests the text on the
// anchor, 1 hangs it below. Out-of-range fractions extrapolate.
func textOffset(tm textMetrics, size, hjust, vjust float64) (dx, dy float64) {
	return -hjust * tm.width, vjust * 0.72 * size
}

func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func rectStyle(st theme.Rect) string {
	s := "fill:" + cssColor(st.Fill)
	if st.Color != nil && st.Size > 0 {
		s += fmt.Sprintf(";stroke:%s;stroke-width:%.6g", cssColor(st.Color), st.Size)
	}
	return s
}

func lineStyle(st theme.Line) string {
	size := st.Size
	if size == 0 {
		size = 1
	}
	s := fmt.Sprintf("stroke:%s;fill:none;stroke-width:%.6g", cssColor(st.Color), size)
	if st.Dash != "" {
		s += ";stroke-dasharray:" + st.Dash
	}
	return s
}

func textSize(st theme.Text) float64 {
	if st.Size > 0 {
		return st.Size
	}
	return 11
}

func textStyle(st theme.Text) string {
	c := st.Color
	if c == nil {
		c = color.Black
	}
	s := fmt.Sprintf("fill:%s;font-size:%.6gpx", cssColor(c), textSize(st))
	if st.Weight != "" {
		s += ";font-weight:" + st.Weight
	}
	return s
}

// textElt returns the Text style of element id and whether the
// element is drawn at all.
func textElt(th theme.Theme, id string) (theme.Text, bool) {
	st, ok := th.Element(id).(theme.Text)
	return st, ok
}

// WriteSVG renders p as an SVG image of the given pixel size.
func (p *Plot) WriteSVG(w io.Writer, width, height int) error {
	th := p.Theme()

	xscale := p.scales["x"]
	if xscale == nil {
		xscale = scales.NewContinuous()
	}
	yscale := p.scales["y"]
	if yscale == nil {
		yscale = scales.NewContinuous()
	}

	maxXTicks := width / 80
	if maxXTicks < 2 {
		maxXTicks = 2
	}
	maxYTicks := height / 40
	if maxYTicks < 2 {
		maxYTicks = 2
	}
	xpos, xlabels := xscale.Ticks(maxXTicks)
	ypos, ylabels := yscale.Ticks(maxYTicks)

	axisText, drawAxisText := textElt(th, theme.AxisText)
	axisTitle, drawAxisTitle := textElt(th, theme.AxisTitle)
	titleStyle, drawTitle := textElt(th, theme.PlotTitle)
	drawTitle = drawTitle && p.title != ""
	drawTicks := !th.Blank(theme.AxisTicks)

	xlabel, ylabel := p.axisLabel("x"), p.axisLabel("y")

	// Legend.
	stroke, _ := p.scales["stroke"].(*scales.Discrete)
	legendText, drawLegendText := textElt(th, theme.LegendText)
	drawLegend := stroke != nil &&
		!(th.Blank(theme.LegendKey) && th.Blank(theme.LegendText))
	var legendLabels []string
	var legendW float64
	if drawLegend {
		_, legendLabels = stroke.Ticks(0)
		const keySize, keyGap = 14.0, 5.0
		legendW = keySize + keyGap
		if drawLegendText {
			maxw := 0.0
			for _, l := range legendLabels {
				if tm := measureString(textSize(legendText), l); tm.width > maxw {
					maxw = tm.width
				}
			}
			legendW += maxw
		}
		legendW += 10
	}

	// Margins around the panel.
	top := outerPad
	if drawTitle {
		top += measureString(textSize(titleStyle), p.title).leading + titleStyle.Margin
	}
	bottom := outerPad
	if drawTicks {
		bottom += tickLen
	}
	if drawAxisText {
		bottom += measureString(textSize(axisText), "0").leading + axisText.Margin
	}
	if drawAxisTitle && xlabel != "" {
		bottom += measureString(textSize(axisTitle), xlabel).leading + axisTitle.Margin
	}
	left := outerPad
	if drawAxisTitle && ylabel != "" {
		left += measureString(textSize(axisTitle), ylabel).leading + axisTitle.Margin
	}
	if drawAxisText {
		maxw := 0.0
		for _, l := range ylabels {
			if tm := measureString(textSize(axisText), l); tm.width > maxw {
				maxw = tm.width
			}
		}
		left += maxw + axisText.Margin
	}
	if drawTicks {
		left += tickLen
	}
	right := outerPad + legendW

	px0, py0 := left, top
	px1, py1 := float64(width)-right, float64(height)-bottom
	mapX := func(pos float64) float64 { return px0 + pos*(px1-px0) }
	mapY := func(pos float64) float64 { return py1 - pos*(py1-py0) }

	canvas := svg.New(w)
	canvas.Start(width, height, `font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	defer canvas.End()

	// Plot background.
	if st, ok := th.Element(theme.PlotBackground).(theme.Rect); ok {
		canvas.Rect(0, 0, width, height, rectStyle(st))
	}

	// Title.
	if drawTitle {
		tm := measureString(textSize(titleStyle), p.title)
		ax := px0 + titleStyle.HJust*(px1-px0)
		dx, _ := textOffset(tm, textSize(titleStyle), titleStyle.HJust, 0)
		canvas.Text(round(ax+dx), round(outerPad+0.72*textSize(titleStyle)), p.title, textStyle(titleStyle))
	}

	// Panel background.
	if st, ok := th.Element(theme.PanelBackground).(theme.Rect); ok {
		canvas.Rect(round(px0), round(py0), round(px1-px0), round(py1-py0), rectStyle(st))
	}

	// Grid.
	if st, ok := th.Element(theme.PanelGrid).(theme.Line); ok {
		var path []string
		for _, pos := range xpos {
			path = append(path, fmt.Sprintf("M%.6g %.6gV%.6g", mapX(pos), py0, py1))
		}
		for _, pos := range ypos {
			path = append(path, fmt.Sprintf("M%.6g %.6gH%.6g", px0, mapY(pos), px1))
		}
		canvas.Path(wrapPath(strings.Join(path, "")), lineStyle(st))
	}

	// Clip the data marks to the panel area.
	canvas.ClipPath(`id="panel-clip"`)
	canvas.Rect(round(px0), round(py0), round(px1-px0), round(py1-py0))
	canvas.ClipEnd()
	canvas.Group(`clip-path="url(#panel-clip)"`)
	for _, l := range p.layers {
		p.renderLayer(canvas, l, stroke, mapX, mapY)
	}
	canvas.Gend()

	// Axis line along the left and bottom panel edges.
	if st, ok := th.Element(theme.AxisLine).(theme.Line); ok {
		canvas.Path(fmt.Sprintf("M%.6g %.6gV%.6gH%.6g", px0, py0, py1, px1), lineStyle(st))
	}

	// Scale ticks.
	if st, ok := th.Element(theme.AxisTicks).(theme.Line); ok {
		var path []string
		for _, pos := range xpos {
			path = append(path, fmt.Sprintf("M%.6g %.6gv%.6g", mapX(pos), py1, tickLen))
		}
		for _, pos := range ypos {
			path = append(path, fmt.Sprintf("M%.6g %.6gh%.6g", px0, mapY(pos), -tickLen))
		}
		canvas.Path(wrapPath(strings.Join(path, "")), lineStyle(st))
	}

	// Tick labels.
	if drawAxisText {
		size := textSize(axisText)
		for i, pos := range xpos {
			x, y := mapX(pos), py1+tickLen+axisText.Margin+0.72*size
			tm := measureString(size, xlabels[i])
			attrs := []string{textStyle(axisText)}
			if axisText.Angle != 0 {
				attrs = append(attrs, fmt.Sprintf(`transform="rotate(%.6g %d %d)"`, -axisText.Angle, round(x), round(y)))
			}
			canvas.Text(round(x-0.5*tm.width), round(y), xlabels[i], attrs...)
		}
		for i, pos := range ypos {
			tm := measureString(size, ylabels[i])
			x, y := px0-tickLen-axisText.Margin-tm.width, mapY(pos)+0.35*size
			canvas.Text(round(x), round(y), ylabels[i], textStyle(axisText))
		}
	}

	// Axis titles.
	if drawAxisTitle {
		size := textSize(axisTitle)
		if xlabel != "" {
			tm := measureString(size, xlabel)
			ax := px0 + axisTitle.HJust*(px1-px0)
			canvas.Text(round(ax-axisTitle.HJust*tm.width), round(float64(height)-outerPad-0.28*size), xlabel, textStyle(axisTitle))
		}
		if ylabel != "" {
			tm := measureString(size, ylabel)
			ax := py1 - axisTitle.HJust*(py1-py0)
			x, y := outerPad+0.72*size, ax+axisTitle.HJust*tm.width
			canvas.Text(round(x), round(y), ylabel,
				textStyle(axisTitle),
				fmt.Sprintf(`transform="rotate(-90 %d %d)"`, round(x), round(y)))
		}
	}

	// Legend.
	if drawLegend {
		p.renderLegend(canvas, th, legendLabels, px1+10, py0)
	}

	return nil
}

// axisLabel returns the label for an axis: the explicit label if one
// was set, else the distinct bound column names.
func (p *Plot) axisLabel(axis string) string {
	if l, ok := p.axisLabels[axis]; ok {
		return l
	}
	auto := p.autoAxisLabels[axis]
	if len(auto) == 0 {
		return ""
	}
	return strings.Join(slice.Nub(auto).([]string), ", ")
}

// layerColor returns the stroke color for group gid of layer l.
func layerColor(l layer, stroke *scales.Discrete, gid table.GroupID) color.Color {
	if l.stroke.scale == nil || stroke == nil {
		return foreground
	}
	t := l.data.Table(gid)
	if t.Len() == 0 {
		return foreground
	}
	v := reflect.ValueOf(t.MustColumn(l.stroke.col)).Index(0).Interface()
	return seriesColor(stroke.Index(v), stroke.Levels())
}

func (p *Plot) renderLayer(canvas *svg.SVG, l layer, stroke *scales.Discrete, mapX, mapY func(float64) float64) {
	for _, gid := range l.data.Tables() {
		t := l.data.Table(gid)
		if t.Len() == 0 {
			continue
		}
		xs := mapCol(t, l.x, mapX)
		ys := mapCol(t, l.y, mapY)
		c := layerColor(l, stroke, gid)

		switch l.kind {
		case markLines:
			var path strings.Builder
			for i := range xs {
				if i == 0 {
					fmt.Fprintf(&path, "M%.6g %.6g", xs[i], ys[i])
				} else {
					fmt.Fprintf(&path, "L%.6g %.6g", xs[i], ys[i])
				}
			}
			canvas.Path(wrapPath(path.String()), fmt.Sprintf("stroke:%s;fill:none;stroke-width:2", cssColor(c)))

		case markPoints:
			r := l.size
			if r == 0 {
				r = 2.5
			}
			for i := range xs {
				canvas.Circle(round(xs[i]), round(ys[i]), round(r), "fill:"+cssColor(c))
			}

		case markLabels:
			size := l.size
			if size == 0 {
				size = 11
			}
			labels := t.MustColumn(l.text)
			lv := reflect.ValueOf(labels)
			for i := range xs {
				text := fmt.Sprint(lv.Index(i).Interface())
				tm := measureString(size, text)
				dx, dy := textOffset(tm, size, l.hjust, l.vjust)
				canvas.Text(round(xs[i]+dx), round(ys[i]+dy), text,
					fmt.Sprintf("fill:%s;font-size:%.6gpx", cssColor(c), size))
			}
		}
	}
}

// mapCol maps the values of a bound column through its scale and then
// through the panel coordinate mapping.
func mapCol(t *table.Table, b binding, toPx func(float64) float64) []float64 {
	cv := reflect.ValueOf(t.MustColumn(b.col))
	out := make([]float64, cv.Len())
	for i := range out {
		out[i] = toPx(b.scale.Map(cv.Index(i).Interface()))
	}
	return out
}

func (p *Plot) renderLegend(canvas *svg.SVG, th theme.Theme, labels []string, x, y float64) {
	const keySize, keyGap, rowSep = 14.0, 5.0, 6.0

	keyStyle, drawKey := th.Element(theme.LegendKey).(theme.Rect)
	textSt, drawText := textElt(th, theme.LegendText)
	if st, ok := th.Element(theme.LegendBackground).(theme.Rect); ok {
		w := keySize + 8
		if drawText {
			maxw := 0.0
			for _, l := range labels {
				if tm := measureString(textSize(textSt), l); tm.width > maxw {
					maxw = tm.width
				}
			}
			w += keyGap + maxw
		}
		h := float64(len(labels))*(keySize+rowSep) - rowSep + 8
		canvas.Rect(round(x-4), round(y-4), round(w), round(h), rectStyle(st))
	}
	for i, label := range labels {
		ky := y + float64(i)*(keySize+rowSep)
		if drawKey {
			canvas.Rect(round(x), round(ky), round(keySize), round(keySize), rectStyle(keyStyle))
		}
		c := seriesColor(i, len(labels))
		canvas.Line(round(x), round(ky+keySize/2), round(x+keySize), round(ky+keySize/2),
			fmt.Sprintf("stroke:%s;stroke-width:2", cssColor(c)))
		if drawText {
			canvas.Text(round(x+keySize+keyGap), round(ky+keySize/2+0.35*textSize(textSt)), label, textStyle(textSt))
		}
	}
}

func round(x float64) int {
	return int(x + 0.5)
}

// wrapPath wraps path data p to avoid exceeding SVG's recommended
// line length limit of 255 characters.
func wrapPath(p string) string {
	const width = 70
	if len(p) <= width {
		return p
	}
	// Chop up p until we get below the width limit.
	parts := make([]string, 0, 16)
	for len(p) > width {
		// Find the last command or space before exceeding width.
		lastCmd, lastSpace := 0, 0
		for i, ch := range p {
			if i >= width && (lastCmd != 0 || lastSpace != 0) {
				break
			}
			if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
				lastCmd = i
			} else if ch == ' ' {
				lastSpace = i
			}
		}
		split := len(p)
		// Prefer splitting at commands, but take spaces in
		// case it's a huge command.
		if lastCmd != 0 {
			split = lastCmd
		} else if lastSpace != 0 {
			split = lastSpace
		}
		parts, p = append(parts, p[:split]), p[split:]
	}
	if len(p) > 0 {
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}
