package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/plots"
	"github.com/radiel-health/cavitypost/settings"
	"github.com/radiel-health/cavitypost/surface"
)

var wallshearCmd = &cobra.Command{
	Use:   "wallshear",
	Short: "Plot wall shear stress along the cavity perimeter",
	Long: `Wallshear reads the moving and stationary wall exports of every case,
maps the samples onto the counterclockwise perimeter coordinate starting
at the top-left corner, and writes a two-panel figure (linear and log
scale) with the peak location into each case's plots directory.`,
	Args: cobra.NoArgs,
	RunE: runWallshear,
}

func runWallshear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}

	errs := newRunner().Run(cases, func(c cavitypost.Case) error {
		return wallshearCase(cfg, c)
	})
	return finishSweep(cmd, cases, errs)
}

func wallshearCase(cfg settings.Config, c cavitypost.Case) error {
	files := c.Files()
	if files.MovingWall == "" && files.StationaryWalls == "" {
		return fmt.Errorf("no wall exports")
	}

	var xs, ys, shear []float64
	for _, path := range []string{files.MovingWall, files.StationaryWalls} {
		if path == "" {
			continue
		}
		tbl, err := fluent.ReadTable(path)
		if err != nil {
			return err
		}
		coords, err := tbl.Cols("x", "y")
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		v, err := wallShearColumn(tbl)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		xs = append(xs, coords[0]...)
		ys = append(ys, coords[1]...)
		shear = append(shear, v...)
	}

	g := cfg.SurfaceFor(c)
	profiles := g.Profiles(xs, ys, shear)
	if len(profiles) == 0 {
		return fmt.Errorf("no samples on the cavity walls")
	}
	stats := surface.Summarize(profiles)
	logger.Info("wall shear",
		zap.String("case", c.ID()),
		zap.Float64("max_pa", stats.Max),
		zap.Float64("mean_pa", stats.Mean),
		zap.Float64("peak_s_m", stats.PeakS),
	)
	return plots.WallShear(g, profiles, stats, c.Re, plotPath(c, fmt.Sprintf("wall_shear_Re%d.png", c.Re)))
}

// wallShearColumn prefers the exported magnitude and falls back to the
// component columns.
func wallShearColumn(tbl *fluent.Table) ([]float64, error) {
	if v, err := tbl.Col("wall_shear_magnitude"); err == nil {
		return v, nil
	}
	comps, err := tbl.Cols("wall_shear_x", "wall_shear_y")
	if err != nil {
		return nil, fmt.Errorf("no wall shear columns: %w", err)
	}
	v := make([]float64, len(comps[0]))
	for i := range v {
		v[i] = math.Hypot(comps[0][i], comps[1][i])
	}
	return v, nil
}
