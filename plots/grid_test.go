package plots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterBinsAndFills(t *testing.T) {
	x := []float64{0, 1, 0}
	y := []float64{0, 0, 1}
	v := []float64{1, 2, 3}
	r, err := NewRaster(x, y, v, 2, 2)
	require.NoError(t, err)

	nx, ny := r.Dims()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 2, ny)
	assert.Equal(t, 1.0, r.Z(0, 0))
	assert.Equal(t, 2.0, r.Z(1, 0))
	assert.Equal(t, 3.0, r.Z(0, 1))
	// The unsampled corner borrows its nearest filled neighbor.
	assert.Equal(t, 2.0, r.Z(1, 1))

	assert.Equal(t, 0.0, r.X(0))
	assert.Equal(t, 1.0, r.X(1))
	assert.Equal(t, 1.0, r.Y(1))
}

func TestRasterAveragesSharedNodes(t *testing.T) {
	x := []float64{0, 0.04, 1, 0, 1}
	y := []float64{0, 0, 0, 1, 1}
	v := []float64{1, 3, 5, 7, 9}
	r, err := NewRaster(x, y, v, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.Z(0, 0))
	assert.Equal(t, 5.0, r.Z(1, 0))
}

func TestRasterBilinear(t *testing.T) {
	var x, y, v []float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			px, py := float64(i)/2, float64(j)/2
			x = append(x, px)
			y = append(y, py)
			v = append(v, px+10*py)
		}
	}
	r, err := NewRaster(x, y, v, 3, 3)
	require.NoError(t, err)

	// Bilinear interpolation reproduces a linear field exactly.
	got, ok := r.At(0.3, 0.7)
	require.True(t, ok)
	assert.InDelta(t, 7.3, got, 1e-12)

	_, ok = r.At(1.2, 0.5)
	assert.False(t, ok)
	_, ok = r.At(0.5, -0.1)
	assert.False(t, ok)
}

func TestRasterErrors(t *testing.T) {
	_, err := NewRaster([]float64{0, 1}, []float64{0}, []float64{1, 2}, 2, 2)
	assert.Error(t, err)

	_, err = NewRaster(nil, nil, nil, 2, 2)
	assert.Error(t, err)

	_, err = NewRaster([]float64{0, 1}, []float64{0, 1}, []float64{1, 2}, 1, 2)
	assert.Error(t, err)

	_, err = NewRaster([]float64{0.5, 0.5}, []float64{0, 1}, []float64{1, 2}, 2, 2)
	assert.Error(t, err)
}

func TestDecimate(t *testing.T) {
	var x, y []float64
	for i := 0; i < 100; i++ {
		x = append(x, float64(i)/99)
		y = append(y, 0.5)
	}
	keep := Decimate(x, y, 10, 1)
	assert.Len(t, keep, 10)
	assert.Equal(t, 0, keep[0])

	assert.Nil(t, Decimate(nil, nil, 10, 10))
}

func TestStreamlineCirclesTheCenter(t *testing.T) {
	var x, y, vx, vy []float64
	for j := 0; j < 40; j++ {
		for i := 0; i < 40; i++ {
			px := float64(i) / 39
			py := float64(j) / 39
			x = append(x, px)
			y = append(y, py)
			vx = append(vx, -(py - 0.5))
			vy = append(vy, px-0.5)
		}
	}
	rx, err := NewRaster(x, y, vx, 40, 40)
	require.NoError(t, err)
	ry, err := NewRaster(x, y, vy, 40, 40)
	require.NoError(t, err)
	field := VectorField{VX: rx, VY: ry}

	pts := Streamline(field, 0.8, 0.5, 0.01, 500)
	require.Greater(t, len(pts), 100)
	for _, pt := range pts {
		assert.InDelta(t, 0.3, math.Hypot(pt.X-0.5, pt.Y-0.5), 0.02)
	}
}

func TestStreamlineStopsAtBoundary(t *testing.T) {
	var x, y, vx, vy []float64
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			x = append(x, float64(i)/9)
			y = append(y, float64(j)/9)
			vx = append(vx, 1)
			vy = append(vy, 0)
		}
	}
	rx, err := NewRaster(x, y, vx, 10, 10)
	require.NoError(t, err)
	ry, err := NewRaster(x, y, vy, 10, 10)
	require.NoError(t, err)

	pts := Streamline(VectorField{VX: rx, VY: ry}, 0.5, 0.5, 0.05, 1000)
	assert.Greater(t, len(pts), 8)
	assert.Less(t, len(pts), 13)
	assert.InDelta(t, 1.0, pts[len(pts)-1].X, 0.1)
}

func TestStreamlineStallsAtRest(t *testing.T) {
	var x, y, zero []float64
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			x = append(x, float64(i))
			y = append(y, float64(j))
			zero = append(zero, 0)
		}
	}
	rx, err := NewRaster(x, y, zero, 5, 5)
	require.NoError(t, err)

	pts := Streamline(VectorField{VX: rx, VY: rx}, 2, 2, 0.1, 100)
	assert.Len(t, pts, 1)
}
