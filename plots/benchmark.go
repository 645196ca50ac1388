package plots

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/radiel-health/cavitypost/ghia"
)

// BenchmarkComparison overlays the resampled solution on the Ghia et
// al. (1982) stations, one panel per velocity component. The result
// must carry the resampled curves ghia.Compare fills in.
func BenchmarkComparison(tbl ghia.Table, r ghia.Result, path string) error {
	if len(r.CfdU) != tbl.Stations() || len(r.CfdV) != tbl.Stations() {
		return fmt.Errorf("benchmark figure: result has %d/%d samples, table has %d stations",
			len(r.CfdU), len(r.CfdV), tbl.Stations())
	}

	ref := draw.GlyphStyle{Color: targetColor, Radius: vg.Points(3), Shape: draw.RingGlyph{}}

	left := newPlot(
		fmt.Sprintf("U-Velocity at X=0.5 (Re=%d)", tbl.Re),
		"U Velocity (normalized)", "Y (normalized)")
	if err := addScatter(left, xys(tbl.U, tbl.Y), ref, "Ghia et al. (1982)"); err != nil {
		return err
	}
	if err := addLine(left, xys(r.CfdU, tbl.Y), continuityColor, "Current CFD"); err != nil {
		return err
	}

	right := newPlot(
		fmt.Sprintf("V-Velocity at Y=0.5 (Re=%d)", tbl.Re),
		"X (normalized)", "V Velocity (normalized)")
	if err := addScatter(right, xys(tbl.X, tbl.V), ref, "Ghia et al. (1982)"); err != nil {
		return err
	}
	if err := addLine(right, xys(tbl.X, r.CfdV), continuityColor, "Current CFD"); err != nil {
		return err
	}

	left.Legend.Top = true
	left.Legend.Left = true
	right.Legend.Top = true
	return writePage([][]*plot.Plot{{left, right}}, 6*vg.Inch, 5*vg.Inch, path)
}
