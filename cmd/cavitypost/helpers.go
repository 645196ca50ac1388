package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/centerline"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/settings"
)

// loadConfig resolves the effective settings: defaults, then the YAML
// file, then the environment, then the command line.
func loadConfig() (settings.Config, error) {
	cfg, err := settings.Load(rootFlags.config)
	if err != nil {
		return cfg, err
	}
	if rootFlags.results != "" {
		cfg.ResultsDir = rootFlags.results
	}
	return cfg, nil
}

// discoverCases loads the sweep from the results tree, failing when it
// holds no recognizable case directories.
func discoverCases(cfg settings.Config) ([]cavitypost.Case, error) {
	cases, err := cavitypost.Discover(cfg.ResultsDir)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases found under %s", cfg.ResultsDir)
	}
	return cases, nil
}

func newRunner() *cavitypost.Runner {
	return &cavitypost.Runner{Workers: rootFlags.workers, Log: logger}
}

// finishSweep prints the sweep outcome. Per-case failures are listed but
// do not fail the command; an unusable results tree already has.
func finishSweep(cmd *cobra.Command, cases []cavitypost.Case, errs cavitypost.ErrorList) error {
	out := cmd.OutOrStdout()
	for _, err := range errs {
		if err != nil {
			fmt.Fprintln(out, " ", err)
		}
	}
	fmt.Fprintln(out, cavitypost.Summarize(cases, errs))
	return nil
}

// analysisDir is where the cross-case artifacts of the tree live.
func analysisDir(cfg settings.Config) string {
	return filepath.Join(cfg.ResultsDir, "analysis")
}

// plotPath places a figure in the per-case plots directory.
func plotPath(c cavitypost.Case, name string) string {
	return filepath.Join(c.Dir, "plots", name)
}

// caseProfiles bundles the centerline exports of one case.
type caseProfiles struct {
	c     cavitypost.Case
	vert  centerline.Profile
	horiz centerline.Profile
}

// loadCenterlines reads both centerline exports of a case. The vertical
// centerline carries u over y, the horizontal one v over x.
func loadCenterlines(c cavitypost.Case) (caseProfiles, error) {
	files := c.Files()
	if files.VerticalCenterline == "" || files.HorizontalCenterline == "" {
		return caseProfiles{}, fmt.Errorf("missing centerline exports")
	}
	vert, err := readProfile(files.VerticalCenterline, "y", "velocity_x")
	if err != nil {
		return caseProfiles{}, err
	}
	horiz, err := readProfile(files.HorizontalCenterline, "x", "velocity_y")
	if err != nil {
		return caseProfiles{}, err
	}
	return caseProfiles{c: c, vert: vert, horiz: horiz}, nil
}

func readProfile(path, coordCol, velCol string) (centerline.Profile, error) {
	tbl, err := fluent.ReadTable(path)
	if err != nil {
		return centerline.Profile{}, err
	}
	cols, err := tbl.Cols(coordCol, velCol)
	if err != nil {
		return centerline.Profile{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return centerline.New(cols[0], cols[1]), nil
}
