package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/ghia"
	"github.com/radiel-health/cavitypost/plots"
	"github.com/radiel-health/cavitypost/report"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare centerline profiles against Ghia et al. (1982)",
	Long: `Benchmark normalizes the centerline velocity profiles by the lid
velocity, resamples them onto the Ghia et al. (1982) stations, and
reports RMS and maximum errors with an accuracy grade per case. Cases
at Reynolds numbers without tabulated data are skipped. A comparison
figure per case and a combined CSV land in the analysis directory.`,
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}

	var matched []cavitypost.Case
	for _, c := range cases {
		if _, err := ghia.Lookup(c.Re); err != nil {
			logger.Debug("no benchmark table", zap.String("case", c.ID()))
			continue
		}
		matched = append(matched, c)
	}
	if len(matched) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no cases at a benchmarked Reynolds number")
		return nil
	}

	dir := analysisDir(cfg)
	var (
		mu      sync.Mutex
		results []ghia.Result
	)
	errs := newRunner().Run(matched, func(c cavitypost.Case) error {
		tbl, err := ghia.Lookup(c.Re)
		if err != nil {
			return err
		}
		cp, err := loadCenterlines(c)
		if err != nil {
			return err
		}
		res, err := ghia.Compare(tbl, cp.vert, cp.horiz, cfg.LidVelocity(c.Re))
		if err != nil {
			return err
		}
		fig := filepath.Join(dir, fmt.Sprintf("benchmark_comparison_Re%d.png", c.Re))
		if err := plots.BenchmarkComparison(tbl, res, fig); err != nil {
			return err
		}
		mu.Lock()
		results = append(results, res)
		mu.Unlock()
		return nil
	})

	sort.Slice(results, func(i, j int) bool { return results[i].Re < results[j].Re })
	fmt.Fprint(cmd.OutOrStdout(), ghia.FormatResults(results))

	if len(results) > 0 {
		csvPath := filepath.Join(dir, "benchmark_comparison.csv")
		if err := report.WriteBenchmarkCSV(csvPath, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", csvPath)
	}
	return finishSweep(cmd, matched, errs)
}
