package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Profile is one wall's samples of a scalar quantity, ordered by the
// perimeter coordinate.
type Profile struct {
	Wall  Wall
	S     []float64
	Value []float64
}

// Profiles splits wall samples by wall and orders each wall's series by
// arc length. Off-wall points are dropped. Walls without samples are
// omitted; present walls come back in perimeter order.
func (g Geometry) Profiles(x, y, value []float64) []Profile {
	byWall := map[Wall]*Profile{}
	for i := range x {
		w := g.Classify(x[i], y[i])
		if w == None {
			continue
		}
		p := byWall[w]
		if p == nil {
			p = &Profile{Wall: w}
			byWall[w] = p
		}
		p.S = append(p.S, g.Coordinate(x[i], y[i]))
		p.Value = append(p.Value, value[i])
	}

	var out []Profile
	for _, w := range []Wall{Top, Right, Bottom, Left} {
		p := byWall[w]
		if p == nil {
			continue
		}
		sortByS(p)
		out = append(out, *p)
	}
	return out
}

func sortByS(p *Profile) {
	inds := make([]int, len(p.S))
	floats.Argsort(p.S, inds)
	sorted := make([]float64, len(p.Value))
	for i, idx := range inds {
		sorted[i] = p.Value[idx]
	}
	p.Value = sorted
}

// Stats summarizes the magnitude of a wall quantity across profiles.
type Stats struct {
	Max  float64 // largest |value|
	Min  float64 // smallest |value|
	Mean float64 // mean |value|
	// Peak is the signed value where |value| is largest, PeakS its
	// perimeter coordinate.
	Peak  float64
	PeakS float64
	N     int
}

// Summarize computes magnitude statistics over all profiles combined.
// Empty input yields a zero Stats.
func Summarize(profiles []Profile) Stats {
	var s Stats
	var abs []float64
	first := true
	for _, p := range profiles {
		for i, v := range p.Value {
			a := math.Abs(v)
			abs = append(abs, a)
			if first || a > s.Max {
				s.Max = a
				s.Peak = v
				s.PeakS = p.S[i]
				first = false
			}
		}
		s.N += len(p.Value)
	}
	if s.N == 0 {
		return Stats{}
	}
	s.Min = floats.Min(abs)
	s.Mean = stat.Mean(abs, nil)
	return s
}
