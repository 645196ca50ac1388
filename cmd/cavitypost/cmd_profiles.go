package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/centerline"
	"github.com/radiel-health/cavitypost/plots"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Plot centerline velocity profiles and vortex migration",
	Long: `Profiles reads the vertical and horizontal centerline exports of every
case and writes a per-case u/v profile figure. Across the sweep it then
overlays the profiles per aspect ratio, compares aspect ratios that
share a Reynolds number, and tracks the primary vortex center location
over Reynolds number.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		results []caseProfiles
	)
	errs := newRunner().Run(cases, func(c cavitypost.Case) error {
		cp, err := loadCenterlines(c)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("velocity_profiles_Re%d.png", c.Re)
		if err := plots.CenterlineProfiles(cp.vert, cp.horiz, c.Re, plotPath(c, name)); err != nil {
			return err
		}
		mu.Lock()
		results = append(results, cp)
		mu.Unlock()
		return nil
	})

	// The workers append in completion order.
	sort.Slice(results, func(i, j int) bool {
		if results[i].c.AspectRatio != results[j].c.AspectRatio {
			return results[i].c.AspectRatio < results[j].c.AspectRatio
		}
		return results[i].c.Re < results[j].c.Re
	})

	dir := analysisDir(cfg)
	if err := familyFigures(cmd, results, dir); err != nil {
		return err
	}
	if err := comparisonFigures(cmd, results, dir); err != nil {
		return err
	}
	if err := migrationFigure(cmd, results, dir); err != nil {
		return err
	}
	return finishSweep(cmd, cases, errs)
}

// displayAR maps the flat square layout onto aspect ratio 1 so both
// results layouts land in the same series.
func displayAR(c cavitypost.Case) float64 {
	if c.AspectRatio > 0 {
		return c.AspectRatio
	}
	return 1
}

// aspectRatios returns the distinct display aspect ratios in order.
func aspectRatios(results []caseProfiles) []float64 {
	var ars []float64
	for _, r := range results {
		ar := displayAR(r.c)
		if len(ars) == 0 || ars[len(ars)-1] != ar {
			ars = append(ars, ar)
		}
	}
	return ars
}

// familyFigures overlays every Reynolds number of one aspect ratio.
func familyFigures(cmd *cobra.Command, results []caseProfiles, dir string) error {
	for _, ar := range aspectRatios(results) {
		var uTracks, vTracks []plots.Track
		for _, r := range results {
			if displayAR(r.c) != ar {
				continue
			}
			label := fmt.Sprintf("Re=%d", r.c.Re)
			uTracks = append(uTracks, plots.Track{Label: label, X: r.vert.Vel, Y: r.vert.Coord})
			vTracks = append(vTracks, plots.Track{Label: label, X: r.horiz.Coord, Y: r.horiz.Vel})
		}
		path := filepath.Join(dir, fmt.Sprintf("velocity_profiles_AR%g.png", ar))
		if err := plots.ProfileFamily(uTracks, vTracks, fmt.Sprintf("(AR %g:1)", ar), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}
	return nil
}

// comparisonFigures overlays the aspect ratios sharing a Reynolds
// number, with the horizontal coordinate normalized by cavity width.
func comparisonFigures(cmd *cobra.Command, results []caseProfiles, dir string) error {
	byRe := map[int][]caseProfiles{}
	for _, r := range results {
		byRe[r.c.Re] = append(byRe[r.c.Re], r)
	}
	res := make([]int, 0, len(byRe))
	for re := range byRe {
		res = append(res, re)
	}
	sort.Ints(res)

	for _, re := range res {
		group := byRe[re]
		seen := map[float64]bool{}
		for _, r := range group {
			seen[displayAR(r.c)] = true
		}
		if len(seen) < 2 {
			continue
		}
		var uTracks, vTracks []plots.Track
		for _, r := range group {
			label := fmt.Sprintf("AR=%g:1", displayAR(r.c))
			xNorm := make([]float64, len(r.horiz.Coord))
			floats.ScaleTo(xNorm, 1/r.c.Width(), r.horiz.Coord)
			uTracks = append(uTracks, plots.Track{Label: label, X: r.vert.Vel, Y: r.vert.Coord})
			vTracks = append(vTracks, plots.Track{Label: label, X: xNorm, Y: r.horiz.Vel})
		}
		path := filepath.Join(dir, fmt.Sprintf("AR_comparison_Re%d.png", re))
		if err := plots.AspectRatioComparison(uTracks, vTracks, re, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}
	return nil
}

// migrationFigure tracks the primary vortex center across the sweep,
// one series per aspect ratio. Cases where either centerline lacks a
// zero crossing are left out.
func migrationFigure(cmd *cobra.Command, results []caseProfiles, dir string) error {
	var xTracks, yTracks []plots.Track
	for _, ar := range aspectRatios(results) {
		var res, vx, vy []float64
		for _, r := range results {
			if displayAR(r.c) != ar {
				continue
			}
			v := centerline.VortexCenter(r.vert, r.horiz)
			if !v.FoundX || !v.FoundY {
				logger.Debug("no vortex center", zap.String("case", r.c.ID()))
				continue
			}
			res = append(res, float64(r.c.Re))
			vx = append(vx, v.X)
			vy = append(vy, v.Y)
		}
		if len(res) == 0 {
			continue
		}
		label := fmt.Sprintf("AR %g:1", ar)
		xTracks = append(xTracks, plots.Track{Label: label, X: res, Y: vx})
		yTracks = append(yTracks, plots.Track{Label: label, X: res, Y: vy})
	}
	if len(xTracks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no vortex centers found; migration figure skipped")
		return nil
	}
	path := filepath.Join(dir, "vortex_center_migration.png")
	if err := plots.VortexMigration(xTracks, yTracks, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
