package ghia

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"

	"github.com/radiel-health/cavitypost/centerline"
)

// Errors holds the deviation norms of one velocity component against
// the benchmark stations, in fractions of the lid velocity.
type Errors struct {
	Max  float64
	Mean float64
	L2   float64 // sqrt of the mean squared deviation
}

// Result is the benchmark comparison of one case. CfdU and CfdV hold
// the normalized solution resampled onto the benchmark stations, for
// plotting next to the tabulated values.
type Result struct {
	Re         int
	U, V       Errors
	CfdU, CfdV []float64
}

// Grade buckets a deviation by the study's interpretation thresholds.
type Grade int

const (
	Excellent Grade = iota
	Good
	Acceptable
	NeedsRefinement
)

func (g Grade) String() string {
	switch g {
	case Excellent:
		return "EXCELLENT"
	case Good:
		return "GOOD"
	case Acceptable:
		return "ACCEPTABLE"
	}
	return "NEEDS REFINEMENT"
}

// GradeOf interprets a maximum deviation: below 1% of the lid velocity
// is excellent, below 5% good, below 10% acceptable.
func GradeOf(maxErr float64) Grade {
	switch {
	case maxErr < 0.01:
		return Excellent
	case maxErr < 0.05:
		return Good
	case maxErr < 0.10:
		return Acceptable
	}
	return NeedsRefinement
}

// Grade returns the grade of the worse velocity component.
func (r Result) Grade() Grade {
	return GradeOf(math.Max(r.U.Max, r.V.Max))
}

// Compare normalizes the centerline profiles, resamples them onto the
// benchmark stations and measures the deviation per component. The
// profiles must be coordinate-ordered, as centerline.New builds them.
func Compare(tbl Table, vertical, horizontal centerline.Profile, uLid float64) (Result, error) {
	vn := vertical.Normalize(uLid)
	hn := horizontal.Normalize(uLid)

	cfdU, err := resample(vn.Coord, vn.Vel, tbl.Y)
	if err != nil {
		return Result{}, fmt.Errorf("vertical centerline: %w", err)
	}
	cfdV, err := resample(hn.Coord, hn.Vel, tbl.X)
	if err != nil {
		return Result{}, fmt.Errorf("horizontal centerline: %w", err)
	}

	return Result{
		Re:   tbl.Re,
		U:    norms(cfdU, tbl.U),
		V:    norms(cfdV, tbl.V),
		CfdU: cfdU,
		CfdV: cfdV,
	}, nil
}

// resample evaluates a piecewise-linear fit of (xs, ys) at the
// stations. Duplicate abscissae collapse to their first sample;
// stations outside the data range clamp to the boundary values.
func resample(xs, ys []float64, stations []float64) ([]float64, error) {
	ux, uy := dedupe(xs, ys)
	if len(ux) < 2 {
		return nil, fmt.Errorf("%d distinct samples, need at least 2", len(ux))
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(ux, uy); err != nil {
		return nil, err
	}

	out := make([]float64, len(stations))
	for i, s := range stations {
		switch {
		case s <= ux[0]:
			out[i] = uy[0]
		case s >= ux[len(ux)-1]:
			out[i] = uy[len(uy)-1]
		default:
			out[i] = pl.Predict(s)
		}
	}
	return out, nil
}

func dedupe(xs, ys []float64) ([]float64, []float64) {
	var ux, uy []float64
	for i := range xs {
		if len(ux) > 0 && xs[i] <= ux[len(ux)-1] {
			continue
		}
		ux = append(ux, xs[i])
		uy = append(uy, ys[i])
	}
	return ux, uy
}

func norms(got, want []float64) Errors {
	diffs := make([]float64, len(want))
	for i := range diffs {
		diffs[i] = math.Abs(got[i] - want[i])
	}
	return Errors{
		Max:  floats.Max(diffs),
		Mean: stat.Mean(diffs, nil),
		L2:   math.Sqrt(floats.Dot(diffs, diffs) / float64(len(diffs))),
	}
}

// FormatResults renders the comparison table the sweep prints, with
// the threshold legend underneath.
func FormatResults(results []Result) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "BENCHMARK COMPARISON RESULTS")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-10s %-12s %-12s %-12s %-12s %-12s %-12s\n",
		"Re", "U Max Err", "U Mean Err", "U L2 Err", "V Max Err", "V Mean Err", "V L2 Err")
	fmt.Fprintln(&b, strings.Repeat("-", 80))
	for _, r := range results {
		fmt.Fprintf(&b, "%-10d %-12.6f %-12.6f %-12.6f %-12.6f %-12.6f %-12.6f\n",
			r.Re, r.U.Max, r.U.Mean, r.U.L2, r.V.Max, r.V.Mean, r.V.L2)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Error interpretation (dimensionless units):")
	fmt.Fprintln(&b, "  < 0.01 (1% of lid velocity):  EXCELLENT")
	fmt.Fprintln(&b, "  < 0.05 (5% of lid velocity):  GOOD")
	fmt.Fprintln(&b, "  < 0.10 (10% of lid velocity): ACCEPTABLE")
	fmt.Fprintln(&b, "  > 0.10 (10% of lid velocity): NEEDS REFINEMENT")
	fmt.Fprintln(&b, rule)
	return b.String()
}

// WriteCSV writes the comparison rows in the benchmark_comparison.csv
// column order.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Re",
		"U_max_error", "U_mean_error", "U_L2_error",
		"V_max_error", "V_mean_error", "V_L2_error",
	}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			strconv.Itoa(r.Re),
			formatFloat(r.U.Max), formatFloat(r.U.Mean), formatFloat(r.U.L2),
			formatFloat(r.V.Max), formatFloat(r.V.Mean), formatFloat(r.V.L2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
