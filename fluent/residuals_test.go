package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `
Reading mesh...
  iter  continuity  x-velocity  y-velocity     time/iter
     1  1.0000e+00  3.2000e-01  4.1000e-01  0:00:12  999
     2  4.5000e-01  1.2000e-01  1.9000e-01  0:00:11  998
     3  0.0000e+00  0.0000e+00  0.0000e+00  0:00:11  997
     4  1.2000e-03  3.4000e-05  0.0000e+00  0:00:10  996
Writing data file...
`

func TestReadResiduals(t *testing.T) {
	path := writeFile(t, "console.log", sampleTranscript)

	h, err := ReadResiduals(path)
	require.NoError(t, err)

	// The all-zero restart row is dropped.
	require.Equal(t, 3, h.Len())
	assert.Equal(t, []int{1, 2, 4}, h.Iter)
	assert.InDeltaSlice(t, []float64{1.0, 0.45, 1.2e-3}, h.Continuity, 1e-12)
	assert.InDeltaSlice(t, []float64{0.32, 0.12, 3.4e-5}, h.XVelocity, 1e-12)

	// The surviving zero is floored so log plots stay finite.
	assert.Equal(t, 1e-15, h.YVelocity[2])
}

func TestReadResidualsNoRows(t *testing.T) {
	path := writeFile(t, "console.log", "Reading mesh...\nDone.\n")

	h, err := ReadResiduals(path)
	require.NoError(t, err)
	assert.Zero(t, h.Len())
}

func TestReadResidualsMissingFile(t *testing.T) {
	_, err := ReadResiduals("does/not/exist.log")
	assert.Error(t, err)
}
