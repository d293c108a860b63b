// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of the written images.
const DPI = 300

const pointRad = 3

var (
	red  = color.NRGBA{0xD6, 0x27, 0x28, 0xFF}
	blue = color.NRGBA{0x1F, 0x77, 0xB4, 0xFF}
)

// WritePerformance draws the four panels of p as a 2x2 grid and writes
// it to path as a 12x8 inch PNG.
func WritePerformance(path string, p *Panels) error {
	colors, err := seriesColors()
	if err != nil {
		return err
	}

	timePl := newPlot("Time Complexity Analysis\n(Log-Log Scale)", "Array Size", "Time (ns)")
	if err := addSeries(timePl, logPoints(p.TimeVsSize), colors); err != nil {
		return err
	}
	setLogScale(timePl)

	cmpPl := newPlot("Comparison Count Analysis", "Array Size", "Number of Comparisons")
	if err := addSeries(cmpPl, p.Comparisons, colors); err != nil {
		return err
	}

	accPl := newPlot("Memory Access Patterns", "Array Size", "Array Accesses")
	if err := addSeries(accPl, p.Access, colors); err != nil {
		return err
	}

	distPl, err := boxPlot(p.Distribution, colors)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{
		{timePl, cmpPl},
		{accPl, distPl},
	}
	c := newCanvas(12*vg.Inch, 8*vg.Inch)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
	return writePNG(path, c)
}

// WriteTheory draws th and writes it to path as a 10x6 inch PNG.
// The theoretical curve is a red dashed line and the measured curve
// a blue line with markers.
func WriteTheory(path string, th *Theory) error {
	pl := newPlot("Theoretical vs Actual Performance\n(Linear Complexity Validation)", "Array Size (n)", "Time (ns)")
	pl.Legend.Top = true
	pl.Legend.Left = true

	if len(th.Theoretical) > 0 {
		l, err := plotter.NewLine(th.Theoretical)
		if err != nil {
			return err
		}
		l.Color = red
		l.Width = vg.Points(2)
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		pl.Add(l)
		pl.Legend.Add("Theoretical O(n)", l)
	}
	if len(th.Actual) > 0 {
		l, s, err := plotter.NewLinePoints(th.Actual)
		if err != nil {
			return err
		}
		style(l, s, blue)
		pl.Add(l, s)
		pl.Legend.Add("Actual Performance", l, s)
	}

	c := newCanvas(10*vg.Inch, 6*vg.Inch)
	pl.Draw(draw.New(c))
	return writePNG(path, c)
}

func newPlot(title, x, y string) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = x
	pl.Y.Label.Text = y

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 0xE0}
	grid.Horizontal.Color = color.Gray{Y: 0xE0}
	pl.Add(grid)
	return pl
}

// seriesColors returns the colors assigned to series in order. Series
// beyond the last color reuse the palette from the start.
func seriesColors() ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", 9)
	if err != nil {
		return nil, err
	}
	return pal.Colors(), nil
}

func style(l *plotter.Line, s *plotter.Scatter, c color.Color) {
	l.Color = c
	l.Width = vg.Points(1.5)
	s.Color = c
	s.Shape = draw.CircleGlyph{}
	s.Radius = vg.Points(pointRad)
}

func addSeries(pl *plot.Plot, series []Series, colors []color.Color) error {
	pl.Legend.Top = true
	pl.Legend.Left = true
	for i, ser := range series {
		if len(ser.XYs) == 0 {
			continue
		}
		l, s, err := plotter.NewLinePoints(ser.XYs)
		if err != nil {
			return fmt.Errorf("series %s: %w", ser.Label, err)
		}
		style(l, s, colors[i%len(colors)])
		pl.Add(l, s)
		pl.Legend.Add(ser.Label, l, s)
	}
	return nil
}

// logPoints returns series without the points that cannot be shown on
// log-log axes.
func logPoints(series []Series) []Series {
	out := make([]Series, len(series))
	for i, ser := range series {
		out[i].Label = ser.Label
		for _, pt := range ser.XYs {
			if pt.X > 0 && pt.Y > 0 && !math.IsInf(pt.Y, 0) {
				out[i].XYs = append(out[i].XYs, pt)
			}
		}
	}
	return out
}

// setLogScale switches both axes of pl to a log scale. It leaves an
// axis linear if the data range of pl gives it nothing to show.
func setLogScale(pl *plot.Plot) {
	for _, ax := range []*plot.Axis{&pl.X, &pl.Y} {
		if math.IsInf(ax.Min, 0) || math.IsInf(ax.Max, 0) || ax.Min <= 0 {
			continue
		}
		if ax.Min == ax.Max {
			ax.Min /= 2
			ax.Max *= 2
		}
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{}
	}
}

func boxPlot(groups []BoxGroup, colors []color.Color) (*plot.Plot, error) {
	if len(groups) == 0 {
		return newPlot("", "InputType", "Time(ns)"), nil
	}
	pl := newPlot(fmt.Sprintf("Performance Distribution\n(Size = %d)", ReferenceSize), "InputType", "Time(ns)")

	w := vg.Points(20)
	var nominalX []string
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(w, float64(i), g.Values)
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", g.Label, err)
		}
		b.BoxStyle.Color = color.Black
		b.FillColor = colors[i%len(colors)]
		b.GlyphStyle.Radius = vg.Points(pointRad)
		pl.Add(b)
		nominalX = append(nominalX, g.Label)
	}
	pl.NominalX(nominalX...)

	pl.X.Tick.Label.Rotation = math.Pi / 4
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XRight
	return pl, nil
}

func newCanvas(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))
}

func writePNG(path string, c *vgimg.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
