package xdmf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSurface() *Surface {
	return &Surface{
		X: []float64{0, 0.5, 1},
		Y: []float64{1, 1, 1},
		Z: []float64{0, 0, 0},
		Fields: []Field{
			{Name: "wall_id", Ints: []int32{1, 1, 1}},
			{Name: "pressure", Floats: []float64{3, 2, 1}},
		},
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleSurface(), "Re100_moving_wall.h5")

	assert.Equal(t, "3.0", doc.Version)

	grid := doc.Domain.Grid
	assert.Equal(t, "Wall_Surface", grid.Name)
	assert.Equal(t, "Uniform", grid.GridType)
	assert.Equal(t, "Polyvertex", grid.Topology.TopologyType)
	assert.Equal(t, "3", grid.Topology.NodesPerElement)

	assert.Equal(t, "X_Y_Z", grid.Geometry.GeometryType)
	require.Len(t, grid.Geometry.DataItems, 3)
	assert.Equal(t, "Re100_moving_wall.h5:/coord_x", grid.Geometry.DataItems[0].Ref)
	assert.Equal(t, "Float", grid.Geometry.DataItems[0].NumberType)
	assert.Equal(t, "8", grid.Geometry.DataItems[0].Precision)

	require.Len(t, grid.Attributes, 2)
	wallID := grid.Attributes[0]
	assert.Equal(t, "wall_id", wallID.Name)
	assert.Equal(t, "Scalar", wallID.AttributeType)
	assert.Equal(t, "Node", wallID.Center)
	assert.Equal(t, "Int", wallID.DataItem.NumberType)
	assert.Equal(t, "4", wallID.DataItem.Precision)
	assert.Equal(t, "3", wallID.DataItem.Dimensions)
	assert.Equal(t, "Re100_moving_wall.h5:/wall_id", wallID.DataItem.Ref)

	pressure := grid.Attributes[1]
	assert.Equal(t, "Float", pressure.DataItem.NumberType)
	assert.Equal(t, "8", pressure.DataItem.Precision)
}

func TestWriteReadDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.xdmf")
	s := sampleSurface()

	require.NoError(t, WriteXDMF(path, "surface.h5", s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<?xml version="1.0" ?>`)
	assert.Contains(t, string(raw), `<Xdmf Version="3.0">`)

	got, err := ReadDocument(path)
	require.NoError(t, err)

	want := BuildDocument(s, "surface.h5")
	if diff := cmp.Diff(want.Domain, got.Domain); diff != "" {
		t.Errorf("descriptor round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDocumentErrors(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.xdmf"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.xdmf")
	require.NoError(t, os.WriteFile(bad, []byte("<Xdmf><unclosed"), 0o644))
	_, err = ReadDocument(bad)
	assert.Error(t, err)
}
