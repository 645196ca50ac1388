// Package surface maps points on the cavity walls to a single perimeter
// arc-length coordinate, so wall quantities from separate exports plot
// on one axis.
package surface

import "math"

// Wall names one side of the cavity. Top is the moving lid.
type Wall int

const (
	None Wall = iota
	Top
	Right
	Bottom
	Left
)

func (w Wall) String() string {
	switch w {
	case Top:
		return "moving lid"
	case Right:
		return "right wall"
	case Bottom:
		return "bottom wall"
	case Left:
		return "left wall"
	}
	return "off-wall"
}

// Geometry is the cavity box: width W in x, height H in y, lid at y=H.
type Geometry struct {
	Width  float64
	Height float64
	// Tol is the wall identification tolerance. Zero means the 0.01 m
	// default. Must stay below half the smallest side or the wall
	// masks overlap away from the corners.
	Tol float64
}

// Unit is the square cavity of the Reynolds sweep.
var Unit = Geometry{Width: 1, Height: 1}

const defaultTol = 0.01

func (g Geometry) tol() float64 {
	if g.Tol > 0 {
		return g.Tol
	}
	return defaultTol
}

// Perimeter returns the total arc length of the cavity walls.
func (g Geometry) Perimeter() float64 {
	return 2 * (g.Width + g.Height)
}

// Corners returns the arc lengths of the three wall transitions past
// s=0: top to right, right to bottom, bottom to left.
func (g Geometry) Corners() [3]float64 {
	return [3]float64{
		g.Width,
		g.Width + g.Height,
		2*g.Width + g.Height,
	}
}

// Classify returns the wall a point lies on within tolerance. Corner
// points within two tolerances resolve in the order top, right,
// bottom, left.
func (g Geometry) Classify(x, y float64) Wall {
	tol := g.tol()
	switch {
	case math.Abs(y-g.Height) < tol:
		return Top
	case math.Abs(x-g.Width) < tol:
		return Right
	case math.Abs(y) < tol:
		return Bottom
	case math.Abs(x) < tol:
		return Left
	}
	return None
}

// Coordinate maps a wall point to its arc length s, measured
// counterclockwise around the cavity from the top-left corner: along
// the lid s=x, down the right wall to W+H, back along the bottom to
// 2W+H, up the left wall to the perimeter. Off-wall points map to NaN.
func (g Geometry) Coordinate(x, y float64) float64 {
	switch g.Classify(x, y) {
	case Top:
		return x
	case Right:
		return g.Width + (g.Height - y)
	case Bottom:
		return g.Width + g.Height + (g.Width - x)
	case Left:
		return 2*g.Width + g.Height + y
	}
	return math.NaN()
}
