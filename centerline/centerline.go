// Package centerline works with the velocity profiles Fluent exports
// along the cavity mid-lines, and the derived quantities the study
// reports: normalized profiles and the primary vortex center.
package centerline

import (
	"gonum.org/v1/gonum/floats"
)

// Water at 20 C and the unit cavity, the reference conditions of the
// study. LidVelocity with these values recovers the lid speed a run
// was configured with from its Reynolds number.
const (
	Viscosity = 1.004e-6 // kinematic, m^2/s
	RefLength = 1.0      // cavity side, m
)

// LidVelocity returns U = Re*nu/L.
func LidVelocity(re, nu, l float64) float64 {
	return re * nu / l
}

// Profile is a velocity component sampled along one centerline: the
// vertical line carries u(y), the horizontal line v(x). Samples are
// ordered by coordinate.
type Profile struct {
	Coord []float64
	Vel   []float64
}

// New builds a profile from unordered samples, sorting both slices by
// coordinate. The inputs are not modified.
func New(coord, vel []float64) Profile {
	c := append([]float64(nil), coord...)
	inds := make([]int, len(c))
	floats.Argsort(c, inds)
	v := make([]float64, len(vel))
	for i, idx := range inds {
		v[i] = vel[idx]
	}
	return Profile{Coord: c, Vel: v}
}

// Len returns the number of samples.
func (p Profile) Len() int { return len(p.Coord) }

// Normalize returns the profile in benchmark form: coordinates min-max
// scaled to [0,1], velocities divided by the lid velocity. A degenerate
// coordinate range scales to zeros.
func (p Profile) Normalize(uLid float64) Profile {
	n := Profile{
		Coord: make([]float64, p.Len()),
		Vel:   make([]float64, p.Len()),
	}
	if p.Len() == 0 {
		return n
	}
	min := floats.Min(p.Coord)
	span := floats.Max(p.Coord) - min
	for i := range p.Coord {
		if span > 0 {
			n.Coord[i] = (p.Coord[i] - min) / span
		}
		n.Vel[i] = p.Vel[i] / uLid
	}
	return n
}

// Vortex is the primary vortex center estimated from the centerline
// profiles. Either coordinate may be missing when its profile never
// changes sign.
type Vortex struct {
	X, Y           float64
	FoundX, FoundY bool
}

// VortexCenter locates the primary vortex: the first zero crossing of u
// along the vertical centerline gives y, the first zero crossing of v
// along the horizontal centerline gives x.
func VortexCenter(vertical, horizontal Profile) Vortex {
	var vc Vortex
	vc.Y, vc.FoundY = firstZeroCrossing(vertical.Coord, vertical.Vel)
	vc.X, vc.FoundX = firstZeroCrossing(horizontal.Coord, horizontal.Vel)
	return vc
}

// firstZeroCrossing returns the midpoint of the first pair of samples
// whose values change sign. An exact zero counts as a sign change.
func firstZeroCrossing(coord, val []float64) (float64, bool) {
	for i := 1; i < len(val); i++ {
		if sign(val[i-1]) != sign(val[i]) {
			return (coord[i-1] + coord[i]) / 2, true
		}
	}
	return 0, false
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
