package plots

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/radiel-health/cavitypost/fluent"
)

const (
	vectorGrid = 25  // decimation cells per axis for the vector figure
	streamGrid = 100 // raster nodes per axis for streamline tracing
	streamRows = 8   // tracer seeds per axis
)

// SpeedField renders the velocity magnitude of an interior export as
// a colored point cloud in the cavity plane.
func SpeedField(tbl *fluent.Table, re int, path string) error {
	cols, err := tbl.Cols("x", "y")
	if err != nil {
		return err
	}
	v, err := tbl.VelocityMagnitude()
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Velocity Magnitude (Re=%d)", re)
	return scalarField(cols[0], cols[1], v, title, moreland.Kindlmann(), path)
}

// PressureField renders the static pressure of an interior export,
// through a diverging colormap.
func PressureField(tbl *fluent.Table, re int, path string) error {
	cols, err := tbl.Cols("x", "y", "pressure")
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Pressure Field (Re=%d)", re)
	return scalarField(cols[0], cols[1], cols[2], title, moreland.SmoothBlueRed(), path)
}

func scalarField(x, y, v []float64, title string, cmap palette.ColorMap, path string) error {
	if len(x) == 0 {
		return errors.New("field figure: no samples")
	}
	vmin, vmax := floats.Min(v), floats.Max(v)
	if vmin == vmax {
		vmax = vmin + 1
	}
	cmap.SetMin(vmin)
	cmap.SetMax(vmax)

	p := newPlot(fmt.Sprintf("%s  range [%.3e, %.3e]", title, vmin, vmax), "x (m)", "y (m)")
	sc, err := plotter.NewScatter(xys(x, y))
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cmap.At(v[i])
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(1.3), Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)

	w, h := equalAxes(p, x, y)
	return save(p, w, h, path)
}

// VelocityVectors draws the velocity field as segments from
// grid-decimated samples, colored by speed and scaled to the
// decimation cell.
func VelocityVectors(tbl *fluent.Table, re int, path string) error {
	cols, err := tbl.Cols("x", "y", "velocity_x", "velocity_y")
	if err != nil {
		return err
	}
	x, y, vx, vy := cols[0], cols[1], cols[2], cols[3]
	if len(x) == 0 {
		return errors.New("vector figure: no samples")
	}

	keep := Decimate(x, y, vectorGrid, vectorGrid)
	speeds := make([]float64, len(x))
	for i := range x {
		speeds[i] = math.Hypot(vx[i], vy[i])
	}
	smax := floats.Max(speeds)
	if smax == 0 {
		smax = 1
	}
	cmap := moreland.Kindlmann()
	cmap.SetMin(0)
	cmap.SetMax(smax)

	cell := math.Min(
		(floats.Max(x)-floats.Min(x))/vectorGrid,
		(floats.Max(y)-floats.Min(y))/vectorGrid)
	scale := 0.9 * cell / smax

	p := newPlot(fmt.Sprintf("Velocity Vectors (Re=%d)", re), "x (m)", "y (m)")
	for _, i := range keep {
		c, err := cmap.At(speeds[i])
		if err != nil {
			c = color.Black
		}
		seg, err := plotter.NewLine(plotter.XYs{
			{X: x[i], Y: y[i]},
			{X: x[i] + vx[i]*scale, Y: y[i] + vy[i]*scale},
		})
		if err != nil {
			return err
		}
		seg.LineStyle.Width = vg.Points(1)
		seg.LineStyle.Color = c
		p.Add(seg)
	}

	w, h := equalAxes(p, x, y)
	return save(p, w, h, path)
}

// Streamlines seeds a uniform grid of tracers and integrates them
// through the binned velocity field, each line colored by its mean
// speed.
func Streamlines(tbl *fluent.Table, re int, path string) error {
	cols, err := tbl.Cols("x", "y", "velocity_x", "velocity_y")
	if err != nil {
		return err
	}
	x, y, vx, vy := cols[0], cols[1], cols[2], cols[3]

	rx, err := NewRaster(x, y, vx, streamGrid, streamGrid)
	if err != nil {
		return err
	}
	ry, err := NewRaster(x, y, vy, streamGrid, streamGrid)
	if err != nil {
		return err
	}
	field := VectorField{VX: rx, VY: ry}

	speeds := make([]float64, len(x))
	for i := range x {
		speeds[i] = math.Hypot(vx[i], vy[i])
	}
	smax := floats.Max(speeds)
	if smax == 0 {
		smax = 1
	}
	cmap := moreland.Kindlmann()
	cmap.SetMin(0)
	cmap.SetMax(smax)

	xmin, xmax := floats.Min(x), floats.Max(x)
	ymin, ymax := floats.Min(y), floats.Max(y)
	h := math.Min(xmax-xmin, ymax-ymin) / 200
	p := newPlot(fmt.Sprintf("Streamlines (Re=%d)", re), "x (m)", "y (m)")

	for i := 0; i < streamRows; i++ {
		for j := 0; j < streamRows; j++ {
			sx := xmin + (xmax-xmin)*(float64(i)+0.5)/streamRows
			sy := ymin + (ymax-ymin)*(float64(j)+0.5)/streamRows
			pts := Streamline(field, sx, sy, h, 2000)
			if len(pts) < 8 {
				continue
			}
			c, errAt := cmap.At(meanSpeed(field, pts))
			if errAt != nil {
				c = color.Black
			}
			ln, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			ln.LineStyle.Width = vg.Points(0.8)
			ln.LineStyle.Color = c
			p.Add(ln)
		}
	}

	w, hh := equalAxes(p, x, y)
	return save(p, w, hh, path)
}

// meanSpeed averages the field speed over the path vertices.
func meanSpeed(f VectorField, pts plotter.XYs) float64 {
	var sum float64
	var n int
	for _, pt := range pts {
		vx, vy, ok := f.At(pt.X, pt.Y)
		if !ok {
			continue
		}
		sum += math.Hypot(vx, vy)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// equalAxes pins both axes to the sample bounding box and returns a
// panel size with the same proportions, so the cavity keeps its
// shape.
func equalAxes(p *plot.Plot, x, y []float64) (w, h vg.Length) {
	xmin, xmax := floats.Min(x), floats.Max(x)
	ymin, ymax := floats.Min(y), floats.Max(y)
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	const base = 6 * vg.Inch
	spanX, spanY := xmax-xmin, ymax-ymin
	if spanX <= 0 || spanY <= 0 {
		return base, base
	}
	if spanX >= spanY {
		return base, base * vg.Length(spanY/spanX)
	}
	return base * vg.Length(spanX/spanY), base
}
