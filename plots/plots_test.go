package plots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/radiel-health/cavitypost/centerline"
	"github.com/radiel-health/cavitypost/convergence"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/ghia"
	"github.com/radiel-health/cavitypost/surface"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWallShearFigure(t *testing.T) {
	profiles := []surface.Profile{
		{Wall: surface.Top, S: []float64{0.1, 0.5, 0.9}, Value: []float64{2, 5, 3}},
		{Wall: surface.Right, S: []float64{1.2, 1.8}, Value: []float64{-0.5, 0.2}},
		{Wall: surface.Bottom, S: []float64{2.3, 2.7}, Value: []float64{0.1, -0.1}},
	}
	stats := surface.Summarize(profiles)

	path := filepath.Join(t.TempDir(), "figs", "wall_shear_Re100.png")
	require.NoError(t, WallShear(surface.Unit, profiles, stats, 100, path))
	assertPNG(t, path)
}

func TestWallShearFigureEmpty(t *testing.T) {
	err := WallShear(surface.Unit, nil, surface.Stats{}, 100, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestResidualFigure(t *testing.T) {
	h := &fluent.ResidualHistory{}
	for i := 0; i < 150; i++ {
		h.Iter = append(h.Iter, i+1)
		h.Continuity = append(h.Continuity, 1e-3/float64(i+1))
		h.XVelocity = append(h.XVelocity, 1e-5/float64(i+1))
		h.YVelocity = append(h.YVelocity, 2e-5/float64(i+1))
	}
	path := filepath.Join(t.TempDir(), "convergence_Re400.png")
	require.NoError(t, Residuals(h, convergence.Default, 400, path))
	assertPNG(t, path)

	err := Residuals(&fluent.ResidualHistory{}, convergence.Default, 400, path)
	assert.Error(t, err)
}

func TestCenterlineFigures(t *testing.T) {
	vert := centerline.New(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0, -0.1, 0.05, 0.2, 1})
	horiz := centerline.New(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0, 0.1, 0, -0.1, 0})
	dir := t.TempDir()

	perCase := filepath.Join(dir, "velocity_profiles_Re100.png")
	require.NoError(t, CenterlineProfiles(vert, horiz, 100, perCase))
	assertPNG(t, perCase)

	uTracks := []Track{
		{Label: "Re=100", X: vert.Vel, Y: vert.Coord},
		{Label: "Re=400", X: horiz.Vel, Y: horiz.Coord},
	}
	vTracks := []Track{
		{Label: "Re=100", X: horiz.Coord, Y: horiz.Vel},
	}

	family := filepath.Join(dir, "velocity_profiles_AR2.png")
	require.NoError(t, ProfileFamily(uTracks, vTracks, "(AR 2:1)", family))
	assertPNG(t, family)

	comparison := filepath.Join(dir, "AR_comparison_Re400.png")
	require.NoError(t, AspectRatioComparison(uTracks, vTracks, 400, comparison))
	assertPNG(t, comparison)

	migration := filepath.Join(dir, "vortex_center_migration.png")
	xTracks := []Track{{Label: "AR=1:1", X: []float64{100, 400, 1000}, Y: []float64{0.62, 0.57, 0.53}}}
	yTracks := []Track{{Label: "AR=1:1", X: []float64{100, 400, 1000}, Y: []float64{0.74, 0.61, 0.57}}}
	require.NoError(t, VortexMigration(xTracks, yTracks, migration))
	assertPNG(t, migration)
}

func TestBenchmarkFigure(t *testing.T) {
	tbl := ghia.Re100
	r := ghia.Result{
		Re:   100,
		CfdU: append([]float64(nil), tbl.U...),
		CfdV: append([]float64(nil), tbl.V...),
	}
	path := filepath.Join(t.TempDir(), "benchmark_comparison_Re100.png")
	require.NoError(t, BenchmarkComparison(tbl, r, path))
	assertPNG(t, path)

	r.CfdU = r.CfdU[:3]
	assert.Error(t, BenchmarkComparison(tbl, r, path))
}

// fieldTable lays a rotating velocity field on an n by n lattice.
func fieldTable(n int) *fluent.Table {
	cols := []string{"x", "y", "velocity_x", "velocity_y", "pressure"}
	var rows []float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			px := float64(i) / float64(n-1)
			py := float64(j) / float64(n-1)
			rows = append(rows, px, py, -(py - 0.5), px-0.5, px*py)
		}
	}
	return &fluent.Table{
		Columns: cols,
		Data:    mat.NewDense(n*n, len(cols), rows),
	}
}

func TestFieldFigures(t *testing.T) {
	tbl := fieldTable(20)
	dir := t.TempDir()

	cases := map[string]func(*fluent.Table, int, string) error{
		"velocity_magnitude_Re100.png": SpeedField,
		"pressure_Re100.png":           PressureField,
		"velocity_vectors_Re100.png":   VelocityVectors,
		"streamlines_Re100.png":        Streamlines,
	}
	for name, figure := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, figure(tbl, 100, path), name)
		assertPNG(t, path)
	}
}

func TestFieldFiguresMissingColumn(t *testing.T) {
	tbl := &fluent.Table{
		Columns: []string{"x", "y"},
		Data:    mat.NewDense(1, 2, []float64{0, 0}),
	}
	assert.Error(t, SpeedField(tbl, 100, filepath.Join(t.TempDir(), "x.png")))
	assert.Error(t, VelocityVectors(tbl, 100, filepath.Join(t.TempDir(), "y.png")))
}
