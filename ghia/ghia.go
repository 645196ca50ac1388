// Package ghia embeds the lid-driven cavity benchmark solutions of
// Ghia, Ghia & Shin (1982) and measures how far a run's centerline
// profiles deviate from them.
package ghia

import (
	"fmt"

	"github.com/radiel-health/cavitypost"
)

// Table holds one benchmark solution: u(y) along the vertical
// centerline at x=0.5 and v(x) along the horizontal centerline at
// y=0.5, all dimensionless.
type Table struct {
	Re int

	Y, U []float64
	X, V []float64
}

// Stations returns the number of benchmark points per component.
func (t Table) Stations() int { return len(t.Y) }

// Re100 is the Ghia et al. (1982) solution on the 129x129 grid.
var Re100 = Table{
	Re: 100,
	Y: []float64{
		0.0000, 0.0547, 0.0625, 0.0703, 0.1016, 0.1719, 0.2813,
		0.4531, 0.5000, 0.6172, 0.7344, 0.8516, 0.9531, 0.9609,
		0.9688, 0.9766, 1.0000,
	},
	U: []float64{
		0.00000, -0.03717, -0.04192, -0.04775, -0.06434, -0.10150,
		-0.15662, -0.21090, -0.20581, -0.13641, 0.00332, 0.23151,
		0.68717, 0.73722, 0.78871, 0.84123, 1.00000,
	},
	X: []float64{
		0.0000, 0.0625, 0.0703, 0.0781, 0.0938, 0.1563, 0.2266,
		0.2344, 0.5000, 0.8047, 0.8594, 0.9063, 0.9453, 0.9531,
		0.9609, 0.9688, 1.0000,
	},
	V: []float64{
		0.00000, 0.09233, 0.10091, 0.10890, 0.12317, 0.16077, 0.17507,
		0.17527, 0.05454, -0.24533, -0.22445, -0.16914, -0.10313,
		-0.08864, -0.07391, -0.05906, 0.00000,
	},
}

// Re1000 is the Ghia et al. (1982) solution on the 129x129 grid.
var Re1000 = Table{
	Re: 1000,
	Y: []float64{
		0.0000, 0.0547, 0.0625, 0.0703, 0.1016, 0.1719, 0.2813,
		0.4531, 0.5000, 0.6172, 0.7344, 0.8516, 0.9531, 0.9609,
		0.9688, 0.9766, 1.0000,
	},
	U: []float64{
		0.00000, -0.18109, -0.20196, -0.22220, -0.29730, -0.38289,
		-0.27805, -0.10648, -0.06080, 0.05702, 0.18719, 0.33304,
		0.46604, 0.51117, 0.57492, 0.65928, 1.00000,
	},
	X: []float64{
		0.0000, 0.0625, 0.0703, 0.0781, 0.0938, 0.1563, 0.2266,
		0.2344, 0.5000, 0.8047, 0.8594, 0.9063, 0.9453, 0.9531,
		0.9609, 0.9688, 1.0000,
	},
	V: []float64{
		0.00000, 0.27485, 0.29012, 0.30353, 0.32627, 0.37095, 0.33075,
		0.32235, 0.02526, -0.31966, -0.42665, -0.51550, -0.39188,
		-0.33714, -0.27669, -0.21388, 0.00000,
	},
}

// Tables returns the embedded benchmark solutions in Reynolds order.
func Tables() []Table { return []Table{Re100, Re1000} }

// Lookup returns the benchmark table for a Reynolds number.
func Lookup(re int) (Table, error) {
	for _, t := range Tables() {
		if t.Re == re {
			return t, nil
		}
	}
	return Table{}, cavitypost.Missing{
		Prefix:  fmt.Sprintf("no benchmark table for Re=%d", re),
		Options: []string{"100", "1000"},
	}
}
