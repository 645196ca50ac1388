// Package report writes the sweep-level text and CSV artifacts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/ghia"
)

// DetailedSummary renders the completion report: one block per aspect
// ratio, one line per case with the runtime and lid velocity the
// solver recorded, NOT COMPLETED where metadata is missing.
func DetailedSummary(cases []cavitypost.Case) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "CFD SIMULATION RESULTS SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	started := false
	prev := -1.0
	for _, c := range cases {
		if !started || c.AspectRatio != prev {
			ar := c.AspectRatio
			if ar == 0 {
				ar = 1
			}
			fmt.Fprintf(&b, "\nAspect Ratio: %g:1 (Width = %.1fm × Height = 1.0m)\n", ar, c.Width())
			fmt.Fprintln(&b, strings.Repeat("-", 80))
			prev = c.AspectRatio
			started = true
		}
		fmt.Fprintln(&b, caseLine(c))
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

func caseLine(c cavitypost.Case) string {
	path := c.Files().Metadata
	if path == "" {
		return fmt.Sprintf("  Re=%4d: NOT COMPLETED", c.Re)
	}
	meta, err := fluent.ReadMetadata(path)
	if err != nil {
		return fmt.Sprintf("  Re=%4d: NOT COMPLETED", c.Re)
	}
	return fmt.Sprintf("  Re=%4d: Runtime=%10s, Lid Velocity=%s",
		c.Re, meta.Lookup("Runtime"), meta.Lookup("Lid Velocity"))
}

// WSSRow is one solver-reported wall shear average in the sweep CSV.
// OK is false when the case file could not be parsed; the CSV cell
// stays blank then.
type WSSRow struct {
	Re  int
	WSS float64
	OK  bool
}

// CollectWSS gathers the wall shear averages of the sweep from the
// per-case WSS_*.txt reports. Cases without such a file are skipped;
// rows come back sorted by Reynolds number.
func CollectWSS(cases []cavitypost.Case) []WSSRow {
	var rows []WSSRow
	for _, c := range cases {
		matches, err := filepath.Glob(filepath.Join(c.Dir, "WSS_*.txt"))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		v, err := fluent.ReadWallShearAverage(matches[0])
		rows = append(rows, WSSRow{Re: c.Re, WSS: v, OK: err == nil})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Re < rows[j].Re })
	return rows
}

// WriteWSSCSV writes the sweep rows as WSS_summary.csv.
func WriteWSSCSV(w io.Writer, rows []WSSRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Re", "WSS_avg"}); err != nil {
		return err
	}
	for _, r := range rows {
		val := ""
		if r.OK {
			val = strconv.FormatFloat(r.WSS, 'g', -1, 64)
		}
		if err := cw.Write([]string{strconv.Itoa(r.Re), val}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes a rendered report, creating the parent directory.
func WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteBenchmarkCSV writes the Ghia comparison rows to path.
func WriteBenchmarkCSV(path string, results []ghia.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ghia.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
