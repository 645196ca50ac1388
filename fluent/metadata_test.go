package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetadata(t *testing.T) {
	path := writeFile(t, "metadata.txt",
		`Reynolds Number: 400
Runtime: 0:42:17
Lid Velocity: 0.0004016 m/s

some note without a colon-free format
`)

	m, err := ReadMetadata(path)
	require.NoError(t, err)

	assert.Equal(t, "0:42:17", m.Lookup("Runtime"))
	assert.Equal(t, "0.0004016 m/s", m.Lookup("Lid Velocity"))
	assert.Equal(t, "N/A", m.Lookup("Mesh"))
}

func TestReadMetadataMissing(t *testing.T) {
	_, err := ReadMetadata("nope/metadata.txt")
	assert.Error(t, err)
}

func TestReadWallShearAverage(t *testing.T) {
	path := writeFile(t, "WSS_Re400.txt",
		`Wall Shear Stress report
"moving_wall"  1.2345e-05

Net  1.8210e-05
`)

	v, err := ReadWallShearAverage(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.8210e-05, v, 1e-12)
}

func TestReadWallShearAverageBad(t *testing.T) {
	t.Run("unparseable", func(t *testing.T) {
		path := writeFile(t, "WSS.txt", "Net value pending\n")
		_, err := ReadWallShearAverage(path)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		path := writeFile(t, "WSS.txt", "\n\n")
		_, err := ReadWallShearAverage(path)
		assert.Error(t, err)
	})
}
