package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/convergence"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/plots"
	"github.com/radiel-health/cavitypost/report"
)

var convergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Classify solver convergence from the console logs",
	Long: `Convergence parses the residual history out of each case's console log,
classifies the run against the strict and practical thresholds, and
writes a residual history figure per case. The classification summary
is printed and saved to the analysis directory. Runs whose log holds
one residual line or none are flagged as false convergence.`,
	Args: cobra.NoArgs,
	RunE: runConvergence,
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}
	crit := cfg.Convergence.Criteria()

	var (
		mu     sync.Mutex
		status = map[string]convergence.Status{}
	)
	errs := newRunner().Run(cases, func(c cavitypost.Case) error {
		files := c.Files()
		if files.ConsoleLog == "" {
			return fmt.Errorf("no console log")
		}
		h, err := fluent.ReadResiduals(files.ConsoleLog)
		if err != nil {
			return err
		}
		st := crit.Classify(h)
		// A history this short has nothing to plot.
		if h.Len() >= 2 {
			fig := plotPath(c, fmt.Sprintf("convergence_Re%d.png", c.Re))
			if err := plots.Residuals(h, crit, c.Re, fig); err != nil {
				return err
			}
		}
		mu.Lock()
		status[c.ID()] = st
		mu.Unlock()
		return nil
	})

	var entries []convergence.Entry
	for _, c := range cases {
		st, ok := status[c.ID()]
		if !ok {
			continue
		}
		entries = append(entries, convergence.Entry{Label: c.ID(), Status: st})
	}
	text := convergence.FormatSummary(entries)
	fmt.Fprint(cmd.OutOrStdout(), text)

	out := filepath.Join(analysisDir(cfg), "convergence_summary.txt")
	if err := report.WriteText(out, text); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", out)
	return finishSweep(cmd, cases, errs)
}
