package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write the study summary report and wall shear CSV",
	Long: `Summary walks the metadata of every case and writes the detailed study
report, grouped by aspect ratio, listing runtime and lid velocity per
run. Cases without metadata are listed as not completed. The average
wall shear values from the WSS report files are collected into a CSV
next to the results.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	text := report.DetailedSummary(cases)
	fmt.Fprint(out, text)
	path := filepath.Join(analysisDir(cfg), "detailed_summary.txt")
	if err := report.WriteText(path, text); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSaved %s\n", path)

	rows := report.CollectWSS(cases)
	if len(rows) == 0 {
		fmt.Fprintln(out, "no WSS report files found; CSV skipped")
		return nil
	}
	csvPath := filepath.Join(cfg.ResultsDir, "WSS_summary.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	if err := report.WriteWSSCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s\n", csvPath)
	return nil
}
