// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stylepreview renders a set of styled demonstration plots to
// SVG files.
//
// Each preview exercises one part of the styling layer on the bundled
// streaming revenue data: the stock themes, wholesale theme overrides,
// axis label formatting, and direct series labels. With no arguments
// it renders every preview; otherwise it renders only the named ones.
//
// Flags may also be supplied in the STYLEPREVIEWFLAGS environment
// variable, using shell quoting.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotstyle/dataset"
	"github.com/aclements/go-plotstyle/plot"
	"github.com/aclements/go-plotstyle/scales"
	"github.com/aclements/go-plotstyle/stat"
	"github.com/aclements/go-plotstyle/theme"
	"github.com/kballard/go-shellquote"
)

var baseThemes = map[string]func() theme.Theme{
	"gray":    theme.Gray,
	"minimal": theme.Minimal,
	"light":   theme.Light,
	"bw":      theme.BW,
}

var previews = map[string]func(base theme.Theme) *plot.Plot{
	"lines":    linesPreview,
	"custom":   customPreview,
	"currency": currencyPreview,
	"share":    sharePreview,
	"labels":   labelsPreview,
}

func main() {
	log.SetPrefix("stylepreview: ")
	log.SetFlags(0)

	if env := os.Getenv("STYLEPREVIEWFLAGS"); env != "" {
		extra, err := shellquote.Split(env)
		if err != nil {
			log.Fatalf("parsing $STYLEPREVIEWFLAGS: %v", err)
		}
		os.Args = append(append([]string{os.Args[0]}, extra...), os.Args[1:]...)
	}

	var (
		flagOut    = flag.String("o", ".", "write SVG files to `dir`")
		flagWidth  = flag.Int("width", 600, "image width in `pixels`")
		flagHeight = flag.Int("height", 400, "image height in `pixels`")
		flagTheme  = flag.String("theme", "gray", "base `theme`: gray, minimal, light, or bw")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [previews...]\n\nPreviews: %s\n\n", os.Args[0], allPreviews())
		flag.PrintDefaults()
	}
	flag.Parse()

	baseFn, ok := baseThemes[*flagTheme]
	if !ok {
		log.Fatalf("unknown theme %q; themes are gray, minimal, light, and bw", *flagTheme)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = allPreviews()
	}
	for _, name := range names {
		fn, ok := previews[name]
		if !ok {
			log.Fatalf("unknown preview %q; previews are %v", name, allPreviews())
		}
		path := filepath.Join(*flagOut, name+".svg")
		if err := render(path, fn(baseFn()), *flagWidth, *flagHeight); err != nil {
			log.Fatal(err)
		}
		fmt.Println(path)
	}
}

func allPreviews() []string {
	names := make([]string, 0, len(previews))
	for name := range previews {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func render(path string, p *plot.Plot, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.WriteSVG(f, width, height)
}

// linesPreview plots the revenue series with the stock theme and
// default label formatting.
func linesPreview(base theme.Theme) *plot.Plot {
	p := plot.NewPlot(dataset.StreamingRevenue())
	p.SetTheme(base)
	p.Add(plot.LayerLines{X: "year", Y: "revenue", Color: "service"})
	p.Add(plot.Title("Quarterly streaming revenue"))
	return p
}

// customPreview overrides a handful of elements on the base theme and
// blanks the tick marks.
func customPreview(base theme.Theme) *plot.Plot {
	p := plot.NewPlot(dataset.StreamingRevenue())
	p.SetTheme(base.With(map[string]theme.Style{
		theme.PanelBackground: theme.Rect{Fill: theme.Color("whitesmoke")},
		theme.PanelGrid:       theme.Line{Color: theme.Color("white"), Size: 1.5},
		theme.AxisTicks:       theme.Blank{},
		theme.PlotTitle:       theme.Text{Size: 18, Weight: "bold", HJust: 0.5, Margin: 10},
	}))
	p.Add(plot.LayerLines{X: "year", Y: "revenue", Color: "service"})
	p.Add(plot.Title("Quarterly streaming revenue"))
	return p
}

// currencyPreview formats the revenue axis as billions of dollars.
func currencyPreview(base theme.Theme) *plot.Plot {
	p := plot.NewPlot(dataset.StreamingRevenue())
	p.SetTheme(base)
	p.SetScale("y", scales.NewContinuous().
		SetFormatter(scales.Currency{Symbol: "$", Scale: 1e-9, Suffix: "B", Accuracy: 0.1}).
		Include(0))
	p.Add(plot.LayerLines{X: "year", Y: "revenue", Color: "service"})
	p.Add(plot.Title("Quarterly streaming revenue"), plot.AxisLabel("y", "Revenue"))
	return p
}

// sharePreview formats the share axis as percentages.
func sharePreview(base theme.Theme) *plot.Plot {
	p := plot.NewPlot(dataset.StreamingRevenue())
	p.SetTheme(base)
	p.SetScale("y", scales.NewContinuous().
		SetFormatter(scales.Percent{Accuracy: 1}).
		Include(0))
	p.Add(plot.LayerLines{X: "year", Y: "share", Color: "service"})
	p.Add(plot.Title("Revenue share"), plot.AxisLabel("y", "Share of quarter"))
	return p
}

// labelsPreview replaces the legend with a label at the end of each
// line. The x scale gets extra room on the high side so the labels
// stay inside the panel.
func labelsPreview(base theme.Theme) *plot.Plot {
	p := plot.NewPlot(table.GroupBy(dataset.StreamingRevenue(), "service"))
	p.SetTheme(base.With(map[string]theme.Style{
		theme.LegendBackground: theme.Blank{},
		theme.LegendKey:        theme.Blank{},
		theme.LegendText:       theme.Blank{},
	}))
	p.SetScale("x", scales.NewContinuous().
		SetExpansion(scales.Expansion{MultLo: 0.05, MultHi: 0.2}))
	p.Add(plot.LayerLines{X: "year", Y: "revenue", Color: "service"})

	p.Save()
	p.Stat(stat.LastPoint{X: "year"})
	p.Add(plot.LayerLabels{X: "year", Y: "revenue", Text: "service", Color: "service", HJust: -0.15, VJust: 0.35})
	p.Restore()
	return p
}
