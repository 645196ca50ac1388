package plots

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/radiel-health/cavitypost/surface"
)

// wallColors keys the figure legend: moving lid red, then blue, green
// and purple counterclockwise.
var wallColors = map[surface.Wall]color.Color{
	surface.Top:    color.RGBA{R: 214, G: 39, B: 40, A: 255},
	surface.Right:  color.RGBA{R: 31, G: 119, B: 180, A: 255},
	surface.Bottom: color.RGBA{R: 44, G: 160, B: 44, A: 255},
	surface.Left:   color.RGBA{R: 148, G: 103, B: 189, A: 255},
}

// logFloor keeps zero shear values drawable on a log axis.
const logFloor = 1e-12

// WallShear draws the perimeter shear distribution of one case: the
// signed profile on top, absolute values on a log scale underneath,
// with the corner positions ruled.
func WallShear(g surface.Geometry, profiles []surface.Profile, stats surface.Stats, re int, path string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("wall shear figure: no profiles")
	}

	top := newPlot(
		fmt.Sprintf("Wall Shear Stress Distribution (Re=%d)", re),
		"Surface coordinate s [m]  (s=0 at top-left corner, counterclockwise)",
		"Wall Shear Stress [Pa]")
	bottom := newPlot(
		fmt.Sprintf("Absolute Wall Shear (log scale)  max=%.4e Pa  mean=%.4e Pa  peak at s=%.3f m",
			stats.Max, stats.Mean, stats.PeakS),
		"Surface coordinate s [m]", "|Wall Shear Stress| [Pa]")

	lo, hi := math.Inf(1), math.Inf(-1)
	alo, ahi := math.Inf(1), math.Inf(-1)
	for _, pr := range profiles {
		if len(pr.S) == 0 {
			continue
		}
		abs := make([]float64, len(pr.Value))
		for i, v := range pr.Value {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			abs[i] = math.Max(math.Abs(v), logFloor)
			alo = math.Min(alo, abs[i])
			ahi = math.Max(ahi, abs[i])
		}
		c := wallColors[pr.Wall]
		if err := addLinePoints(top, xys(pr.S, pr.Value), c, pr.Wall.String()); err != nil {
			return err
		}
		if err := addLinePoints(bottom, xys(pr.S, abs), c, pr.Wall.String()); err != nil {
			return err
		}
	}
	if lo > hi {
		return fmt.Errorf("wall shear figure: profiles are empty")
	}

	for _, corner := range g.Corners() {
		if err := vRule(top, corner, lo, hi); err != nil {
			return err
		}
		if err := vRule(bottom, corner, alo, ahi); err != nil {
			return err
		}
	}
	logY(bottom)
	top.Legend.Top = true
	bottom.Legend.Top = true

	return writePage([][]*plot.Plot{{top}, {bottom}}, 7*vg.Inch, 4*vg.Inch, path)
}
