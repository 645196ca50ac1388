package fluent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTableComma(t *testing.T) {
	path := writeFile(t, "wall.csv",
		`"x-coordinate","y-coordinate","x-velocity","y-velocity","wall-shear"
0.0, 1.0, 0.1, 0.0, 2.5e-3
0.5, 1.0, 0.2, -0.1, 3.0e-3
1.0, 1.0, 0.3, 0.1, 3.5e-3
`)

	tbl, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "velocity_x", "velocity_y", "wall_shear_magnitude"}, tbl.Columns)
	assert.Equal(t, 3, tbl.Len())

	x, err := tbl.Col("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, x)

	tau, err := tbl.Col("wall_shear_magnitude")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.5e-3, 3.0e-3, 3.5e-3}, tau, 1e-12)

	_, err = tbl.Col("pressure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"pressure"`)
}

func TestReadTableWhitespace(t *testing.T) {
	path := writeFile(t, "wall.dat",
		`nodenumber    x-coordinate    y-coordinate    pressure
1    0.0    0.0    101325.0
2    0.0    0.5    101320.0
`)

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"node_id", "x", "y", "pressure"}, tbl.Columns)

	p, err := tbl.Col("pressure")
	require.NoError(t, err)
	assert.Equal(t, []float64{101325, 101320}, p)
}

func TestReadTableDuplicateColumns(t *testing.T) {
	// Some journals export the coordinate block twice.
	path := writeFile(t, "dup.csv",
		`x-coordinate,y-coordinate,x-coordinate,pressure
1.0,2.0,9.0,4.0
`)

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "pressure"}, tbl.Columns)

	x, err := tbl.Col("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, x, "first occurrence wins")
}

func TestReadTableHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "x-coordinate,y-coordinate\n")

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.True(t, tbl.Has("x"))

	x, err := tbl.Col("x")
	require.NoError(t, err)
	assert.Empty(t, x)
}

func TestReadTableRaggedRow(t *testing.T) {
	path := writeFile(t, "bad.csv", "x-coordinate,y-coordinate\n1.0,2.0\n3.0\n")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row has 1 values, header has 2")
}

func TestReadTableBadNumber(t *testing.T) {
	path := writeFile(t, "bad.csv", "x-coordinate\nnot-a-number\n")
	_, err := ReadTable(path)
	require.Error(t, err)
}

func TestReadTableMissing(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestVelocityMagnitude(t *testing.T) {
	t.Run("from export", func(t *testing.T) {
		path := writeFile(t, "m.csv", "velocity-magnitude,x-velocity,y-velocity\n5.0,3.0,4.0\n")
		tbl, err := ReadTable(path)
		require.NoError(t, err)
		mag, err := tbl.VelocityMagnitude()
		require.NoError(t, err)
		assert.Equal(t, []float64{5}, mag)
	})

	t.Run("synthesized", func(t *testing.T) {
		path := writeFile(t, "m.csv", "x-velocity,y-velocity\n3.0,4.0\n0.0,0.0\n")
		tbl, err := ReadTable(path)
		require.NoError(t, err)
		mag, err := tbl.VelocityMagnitude()
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{5, 0}, mag, 1e-12)
	})

	t.Run("unavailable", func(t *testing.T) {
		path := writeFile(t, "m.csv", "pressure\n1.0\n")
		tbl, err := ReadTable(path)
		require.NoError(t, err)
		_, err = tbl.VelocityMagnitude()
		assert.Error(t, err)
	})
}

func TestCanonicalName(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"x-coordinate"`, "x"},
		{"  Wall-Shear ", "wall_shear_magnitude"},
		{"cellnumber", "cell_id"},
		{"custom-field", "custom-field"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanonicalName(c.in), c.in)
	}
}
