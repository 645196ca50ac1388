package plots

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/radiel-health/cavitypost/centerline"
)

// Track is one labeled curve in a multi-series panel.
type Track struct {
	Label string
	X, Y  []float64
}

// CenterlineProfiles draws the two centerline velocity profiles of one
// case side by side: u against y on the left, v against x on the
// right.
func CenterlineProfiles(vert, horiz centerline.Profile, re int, path string) error {
	left := newPlot(
		fmt.Sprintf("Vertical Centerline u-velocity (Re=%d)", re),
		"u-velocity (m/s)", "y-coordinate (m)")
	if err := addLine(left, xys(vert.Vel, vert.Coord), continuityColor, ""); err != nil {
		return err
	}

	right := newPlot(
		fmt.Sprintf("Horizontal Centerline v-velocity (Re=%d)", re),
		"x-coordinate (m)", "v-velocity (m/s)")
	if err := addLine(right, xys(horiz.Coord, horiz.Vel), targetColor, ""); err != nil {
		return err
	}

	return writePage([][]*plot.Plot{{left, right}}, 6*vg.Inch, 5*vg.Inch, path)
}

// ProfileFamily draws centerline curve families, one series per case:
// u(y) on the left, v(x) on the right. The u tracks carry velocity on
// X and coordinate on Y; the v tracks the reverse.
func ProfileFamily(uTracks, vTracks []Track, suffix, path string) error {
	left := newPlot(
		"Vertical Centerline u-velocity "+suffix,
		"u-velocity (m/s)", "y-coordinate (m)")
	for i, t := range uTracks {
		if err := addLine(left, xys(t.X, t.Y), plotutil.Color(i), t.Label); err != nil {
			return err
		}
	}

	right := newPlot(
		"Horizontal Centerline v-velocity "+suffix,
		"x-coordinate (m)", "v-velocity (m/s)")
	for i, t := range vTracks {
		if err := addLine(right, xys(t.X, t.Y), plotutil.Color(i), t.Label); err != nil {
			return err
		}
	}

	left.Legend.Top = true
	left.Legend.Left = true
	right.Legend.Top = true
	return writePage([][]*plot.Plot{{left, right}}, 6*vg.Inch, 5*vg.Inch, path)
}

// AspectRatioComparison draws centerline profiles across aspect
// ratios at one Reynolds number. The v panel expects x pre-normalized
// by the cavity width.
func AspectRatioComparison(uTracks, vTracks []Track, re int, path string) error {
	left := newPlot(
		fmt.Sprintf("Vertical Centerline u-velocity (Re = %d)", re),
		"u-velocity (m/s)", "y-coordinate (m)")
	for i, t := range uTracks {
		pts := xys(t.X, t.Y)
		if err := addLine(left, pts, plotutil.Color(i), t.Label); err != nil {
			return err
		}
		st := draw.GlyphStyle{Color: plotutil.Color(i), Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
		if err := addScatter(left, every(pts, 10), st, ""); err != nil {
			return err
		}
	}

	right := newPlot(
		fmt.Sprintf("Horizontal Centerline v-velocity (Re = %d)", re),
		"Normalized x-coordinate (x/W)", "v-velocity (m/s)")
	for i, t := range vTracks {
		pts := xys(t.X, t.Y)
		if err := addLine(right, pts, plotutil.Color(i), t.Label); err != nil {
			return err
		}
		st := draw.GlyphStyle{Color: plotutil.Color(i), Radius: vg.Points(2), Shape: draw.BoxGlyph{}}
		if err := addScatter(right, every(pts, 10), st, ""); err != nil {
			return err
		}
	}

	left.Legend.Top = true
	left.Legend.Left = true
	right.Legend.Top = true
	return writePage([][]*plot.Plot{{left, right}}, 6*vg.Inch, 5*vg.Inch, path)
}

// VortexMigration draws the primary vortex center location against
// Reynolds number, one series per aspect ratio: x on the left panel,
// y on the right.
func VortexMigration(xTracks, yTracks []Track, path string) error {
	left := newPlot("Primary Vortex Center X-location",
		"Reynolds Number", "Vortex Center X-coordinate (m)")
	for i, t := range xTracks {
		if err := addLinePoints(left, xys(t.X, t.Y), plotutil.Color(i), t.Label); err != nil {
			return err
		}
	}

	right := newPlot("Primary Vortex Center Y-location",
		"Reynolds Number", "Vortex Center Y-coordinate (m)")
	for i, t := range yTracks {
		if err := addLinePoints(right, xys(t.X, t.Y), plotutil.Color(i), t.Label); err != nil {
			return err
		}
	}

	left.Legend.Top = true
	right.Legend.Top = true
	return writePage([][]*plot.Plot{{left, right}}, 6*vg.Inch, 5*vg.Inch, path)
}

// every thins glyph markers to one in n samples.
func every(pts plotter.XYs, n int) plotter.XYs {
	if n <= 1 {
		return pts
	}
	out := make(plotter.XYs, 0, len(pts)/n+1)
	for i := 0; i < len(pts); i += n {
		out = append(out, pts[i])
	}
	return out
}
