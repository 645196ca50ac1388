package plots

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/radiel-health/cavitypost/convergence"
	"github.com/radiel-health/cavitypost/fluent"
)

// detailWindow is how many trailing iterations the zoomed residual
// panels show.
const detailWindow = 500

var (
	continuityColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	xVelColor       = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	yVelColor       = color.RGBA{R: 200, G: 60, B: 200, A: 255}
	targetColor     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Residuals draws the convergence history of one case: continuity and
// velocity residuals over the full run on top, the last iterations
// underneath, with the strict targets ruled.
func Residuals(h *fluent.ResidualHistory, crit convergence.Criteria, re int, path string) error {
	if h.Len() == 0 {
		return fmt.Errorf("residual figure: empty history")
	}

	iters := itof(h.Iter)
	zoom := h.Len() - detailWindow
	if zoom < 0 {
		zoom = 0
	}

	cont, err := residualPanel(
		fmt.Sprintf("Convergence History - Re = %d", re),
		iters, crit.StrictContinuity,
		series{"Continuity", h.Continuity, continuityColor})
	if err != nil {
		return err
	}
	vel, err := residualPanel(
		"Velocity Residuals",
		iters, crit.StrictVelocity,
		series{"X-Velocity", h.XVelocity, xVelColor},
		series{"Y-Velocity", h.YVelocity, yVelColor})
	if err != nil {
		return err
	}
	contZoom, err := residualPanel(
		fmt.Sprintf("Last %d Iterations (Detail)", h.Len()-zoom),
		iters[zoom:], crit.StrictContinuity,
		series{"Continuity", h.Continuity[zoom:], continuityColor})
	if err != nil {
		return err
	}
	velZoom, err := residualPanel(
		fmt.Sprintf("Last %d Iterations (Detail)", h.Len()-zoom),
		iters[zoom:], crit.StrictVelocity,
		series{"X-Velocity", h.XVelocity[zoom:], xVelColor},
		series{"Y-Velocity", h.YVelocity[zoom:], yVelColor})
	if err != nil {
		return err
	}

	return writePage([][]*plot.Plot{{cont, vel}, {contZoom, velZoom}}, 5*vg.Inch, 3.5*vg.Inch, path)
}

type series struct {
	label string
	vals  []float64
	col   color.Color
}

// residualPanel draws labeled residual curves on a log axis with the
// target level ruled in red.
func residualPanel(title string, iters []float64, target float64, ss ...series) (*plot.Plot, error) {
	p := newPlot(title, "Iteration", "Residual")
	for _, s := range ss {
		if err := addLine(p, xys(iters, s.vals), s.col, s.label); err != nil {
			return nil, err
		}
	}
	if len(iters) > 0 {
		label := fmt.Sprintf("Target (%.0e)", target)
		if err := hRule(p, target, iters[0], iters[len(iters)-1], targetColor, label); err != nil {
			return nil, err
		}
	}
	logY(p)
	p.Legend.Top = true
	return p, nil
}
