// Package plots renders the study figures: wall shear distributions,
// centerline profiles, benchmark overlays, field maps and residual
// histories.
package plots

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// newPlot returns a titled plot with grid lines and axis labels.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// logY puts the vertical axis on a log scale.
func logY(p *plot.Plot) {
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

// xys zips coordinate and value slices into plot points.
func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

// itof widens iteration counters for plotting.
func itof(iters []int) []float64 {
	out := make([]float64, len(iters))
	for i, it := range iters {
		out[i] = float64(it)
	}
	return out
}

// addLine draws a colored line and registers it in the legend when
// labeled.
func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(1.5)
	ln.LineStyle.Color = c
	p.Add(ln)
	if label != "" {
		p.Legend.Add(label, ln)
	}
	return nil
}

// addLinePoints draws a line with small glyphs at the samples.
func addLinePoints(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	ln, sc, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(1.5)
	ln.LineStyle.Color = c
	sc.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(1.5), Shape: draw.CircleGlyph{}}
	p.Add(ln, sc)
	if label != "" {
		p.Legend.Add(label, ln, sc)
	}
	return nil
}

// addScatter draws glyph markers for one series.
func addScatter(p *plot.Plot, pts plotter.XYs, st draw.GlyphStyle, label string) error {
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle = st
	p.Add(sc)
	if label != "" {
		p.Legend.Add(label, sc)
	}
	return nil
}

var ruleColor = color.Gray{Y: 120}

// vRule draws a dashed vertical guide spanning [ymin, ymax].
func vRule(p *plot.Plot, x, ymin, ymax float64) error {
	ln, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return err
	}
	ln.LineStyle.Color = ruleColor
	ln.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(ln)
	return nil
}

// hRule draws a dashed horizontal guide spanning [xmin, xmax], for
// residual targets.
func hRule(p *plot.Plot, y, xmin, xmax float64, c color.Color, label string) error {
	ln, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}})
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(1.5)
	ln.LineStyle.Color = c
	ln.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(ln)
	if label != "" {
		p.Legend.Add(label, ln)
	}
	return nil
}

// save writes one plot as its own PNG.
func save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return p.Save(w, h, path)
}

// writePage tiles the plots onto one PNG page, row major. Short rows
// leave blank tiles on the right.
func writePage(rows [][]*plot.Plot, panelW, panelH vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	nrows := len(rows)
	ncols := 0
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	grid := make([][]*plot.Plot, nrows)
	for i, row := range rows {
		grid[i] = make([]*plot.Plot, ncols)
		copy(grid[i], row)
	}

	img := vgimg.New(vg.Length(ncols)*panelW, vg.Length(nrows)*panelH)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: nrows, Cols: ncols,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		for j, p := range grid[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
