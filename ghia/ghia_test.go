package ghia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiel-health/cavitypost"
)

func TestTables(t *testing.T) {
	for _, tbl := range Tables() {
		assert.Equal(t, 17, tbl.Stations(), "Re=%d", tbl.Re)
		assert.Len(t, tbl.U, 17)
		assert.Len(t, tbl.X, 17)
		assert.Len(t, tbl.V, 17)

		// No-slip at the bottom, lid speed at the top.
		assert.Zero(t, tbl.U[0])
		assert.Equal(t, 1.0, tbl.U[16])
		// v vanishes on both side walls.
		assert.Zero(t, tbl.V[0])
		assert.Zero(t, tbl.V[16])
	}
}

func TestLookup(t *testing.T) {
	tbl, err := Lookup(1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, tbl.Re)
	assert.InDelta(t, -0.38289, tbl.U[5], 1e-12)

	_, err = Lookup(500)
	require.Error(t, err)
	var missing cavitypost.Missing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"100", "1000"}, missing.Options)
	assert.Contains(t, err.Error(), "Re=500")
}
