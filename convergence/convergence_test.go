package convergence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radiel-health/cavitypost/fluent"
)

// hist builds an n-row residual history at constant levels; callers
// mutate rows to shape the case.
func hist(n int, cont, xv, yv float64) *fluent.ResidualHistory {
	h := &fluent.ResidualHistory{}
	for i := 0; i < n; i++ {
		h.Iter = append(h.Iter, i+1)
		h.Continuity = append(h.Continuity, cont)
		h.XVelocity = append(h.XVelocity, xv)
		h.YVelocity = append(h.YVelocity, yv)
	}
	return h
}

func TestClassifyFalseConvergence(t *testing.T) {
	assert.Equal(t, FalseConvergence, Default.Classify(nil))
	assert.Equal(t, FalseConvergence, Default.Classify(&fluent.ResidualHistory{}))
	assert.Equal(t, FalseConvergence, Default.Classify(hist(1, 1e-3, 1e-4, 1e-4)))
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, Unknown, Default.Classify(hist(99, 1e-3, 1e-4, 1e-4)))
}

func TestClassifyConverged(t *testing.T) {
	// A single dip below the strict targets converges the run, however
	// noisy the tail.
	h := hist(150, 1e-2, 1e-3, 1e-3)
	h.Continuity[10] = 5e-7
	h.XVelocity[10] = 5e-10
	h.YVelocity[10] = 5e-10
	h.Continuity[140] = 1e-1 // noise in the plateau window

	assert.Equal(t, Converged, Default.Classify(h))
}

func TestClassifyPracticallyConverged(t *testing.T) {
	// Flat tail below the practical targets, minima above the strict
	// ones.
	h := hist(200, 1e-5, 1e-8, 1e-8)
	assert.Equal(t, PracticallyConverged, Default.Classify(h))
}

func TestClassifyPlateaued(t *testing.T) {
	// Flat but too high for the practical targets.
	h := hist(200, 1e-3, 1e-5, 1e-5)
	assert.Equal(t, Plateaued, Default.Classify(h))
}

func TestClassifyNotConverged(t *testing.T) {
	// Oscillating tail: neither plateaued nor below any target.
	h := hist(200, 1e-3, 1e-4, 1e-4)
	for i := 100; i < 200; i += 2 {
		h.Continuity[i] = 1e-1
		h.XVelocity[i] = 1e-2
		h.YVelocity[i] = 1e-2
	}
	assert.Equal(t, NotConverged, Default.Classify(h))
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, "✓", Converged.Marker())
	assert.Equal(t, "✓", PracticallyConverged.Marker())
	assert.Equal(t, "⚠", Plateaued.Marker())
	assert.Equal(t, "⚠", Unknown.Marker())
	assert.Equal(t, "✗", NotConverged.Marker())
	assert.Equal(t, "✗", FalseConvergence.Marker())
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary([]Entry{
		{Label: "Re  100", Status: Converged},
		{Label: "Re  150", Status: Converged},
		{Label: "Re 3000", Status: NotConverged},
	})

	assert.Contains(t, out, "CONVERGENCE SUMMARY")
	assert.Contains(t, out, "Re  100: ✓ CONVERGED")
	assert.Contains(t, out, "Re 3000: ✗ NOT_CONVERGED")
	assert.Contains(t, out, "  CONVERGED: 2")
	assert.Contains(t, out, "  NOT_CONVERGED: 1")

	// Breakdown is alphabetical.
	assert.Less(t,
		strings.Index(out, "  CONVERGED: 2"),
		strings.Index(out, "  NOT_CONVERGED: 1"))
}
