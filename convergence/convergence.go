// Package convergence classifies solver runs from their residual
// histories.
package convergence

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/radiel-health/cavitypost/fluent"
)

// Status is the convergence classification of one run.
type Status int

const (
	Unknown Status = iota
	FalseConvergence
	Converged
	PracticallyConverged
	Plateaued
	NotConverged
)

func (s Status) String() string {
	switch s {
	case FalseConvergence:
		return "FALSE_CONVERGENCE"
	case Converged:
		return "CONVERGED"
	case PracticallyConverged:
		return "PRACTICALLY_CONVERGED"
	case Plateaued:
		return "PLATEAUED"
	case NotConverged:
		return "NOT_CONVERGED"
	}
	return "UNKNOWN"
}

// Marker returns the summary symbol: converged runs get a check,
// plateaued and undecidable runs a warning, the rest a cross.
func (s Status) Marker() string {
	switch s {
	case Converged, PracticallyConverged:
		return "✓"
	case Plateaued, Unknown:
		return "⚠"
	}
	return "✗"
}

// Criteria holds the residual thresholds of the classification.
type Criteria struct {
	// Strict targets, met when the residual minima drop below them.
	StrictContinuity float64
	StrictVelocity   float64
	// Practical targets for the final residuals of a plateaued run.
	FinalContinuity float64
	FinalVelocity   float64
	// Plateau detection: relative spread of the last PlateauWindow
	// rows must stay below PlateauSpread for every residual.
	PlateauWindow int
	PlateauSpread float64
}

// Default is the criteria set of the study.
var Default = Criteria{
	StrictContinuity: 1e-6,
	StrictVelocity:   1e-9,
	FinalContinuity:  2e-5,
	FinalVelocity:    3e-8,
	PlateauWindow:    100,
	PlateauSpread:    0.1,
}

// Classify buckets a residual history. One usable row or fewer means
// the transcript only held the restart sentinel, which a truncated run
// reports as converged: FalseConvergence. Histories shorter than the
// plateau window cannot be judged and come back Unknown.
func (c Criteria) Classify(h *fluent.ResidualHistory) Status {
	if h == nil || h.Len() <= 1 {
		return FalseConvergence
	}
	if h.Len() < c.PlateauWindow {
		return Unknown
	}

	if floats.Min(h.Continuity) < c.StrictContinuity &&
		floats.Min(h.XVelocity) < c.StrictVelocity &&
		floats.Min(h.YVelocity) < c.StrictVelocity {
		return Converged
	}

	plateaued := c.plateaued(h.Continuity) &&
		c.plateaued(h.XVelocity) &&
		c.plateaued(h.YVelocity)

	n := h.Len()
	practical := h.Continuity[n-1] < c.FinalContinuity &&
		h.XVelocity[n-1] < c.FinalVelocity &&
		h.YVelocity[n-1] < c.FinalVelocity

	switch {
	case practical && plateaued:
		return PracticallyConverged
	case plateaued:
		return Plateaued
	}
	return NotConverged
}

func (c Criteria) plateaued(vals []float64) bool {
	window := vals[len(vals)-c.PlateauWindow:]
	mean := stat.Mean(window, nil)
	return stat.StdDev(window, nil)/mean < c.PlateauSpread
}

// Entry pairs a case label with its classification for the sweep
// summary.
type Entry struct {
	Label  string
	Status Status
}

// FormatSummary renders the sweep summary: one marked line per case
// and the status breakdown.
func FormatSummary(entries []Entry) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "CONVERGENCE SUMMARY")
	fmt.Fprintln(&b, rule)

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Status.String()]++
		fmt.Fprintf(&b, "%s: %s %s\n", e.Label, e.Status.Marker(), e.Status)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Status breakdown:")
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %d\n", name, counts[name])
	}
	return b.String()
}
