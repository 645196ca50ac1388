package plots

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// Raster is a regular nx by ny node grid over scattered samples. Node
// values are the mean of the samples binned to the node; nodes no
// sample reaches borrow the nearest filled value, so the field stays
// defined over the whole bounding box. It implements plotter.GridXYZ.
type Raster struct {
	x0, y0 float64
	dx, dy float64
	nx, ny int
	vals   []float64
}

// NewRaster bins the samples (x, y, v) onto an nx by ny grid spanning
// their bounding box.
func NewRaster(x, y, v []float64, nx, ny int) (*Raster, error) {
	if len(x) != len(y) || len(x) != len(v) {
		return nil, fmt.Errorf("raster: mismatched slice lengths %d, %d, %d", len(x), len(y), len(v))
	}
	if len(x) == 0 {
		return nil, errors.New("raster: no samples")
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("raster: %dx%d grid is too small", nx, ny)
	}
	xmin, xmax := floats.Min(x), floats.Max(x)
	ymin, ymax := floats.Min(y), floats.Max(y)
	if xmax == xmin || ymax == ymin {
		return nil, errors.New("raster: samples are collinear")
	}

	r := &Raster{
		x0: xmin, y0: ymin,
		dx: (xmax - xmin) / float64(nx-1),
		dy: (ymax - ymin) / float64(ny-1),
		nx: nx, ny: ny,
		vals: make([]float64, nx*ny),
	}
	counts := make([]int, nx*ny)
	for i := range x {
		c := r.node(x[i], y[i])
		r.vals[c] += v[i]
		counts[c]++
	}
	for i, n := range counts {
		if n > 0 {
			r.vals[i] /= float64(n)
		}
	}
	r.fill(counts)
	return r, nil
}

// node returns the index of the node nearest to the point.
func (r *Raster) node(px, py float64) int {
	i := clampInt(int(math.Round((px-r.x0)/r.dx)), 0, r.nx-1)
	j := clampInt(int(math.Round((py-r.y0)/r.dy)), 0, r.ny-1)
	return j*r.nx + i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fill floods empty nodes from their filled neighbors, breadth first,
// so every node ends up with the value of its nearest sampled node.
func (r *Raster) fill(counts []int) {
	queue := make([]int, 0, len(counts))
	for i, n := range counts {
		if n > 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		ci, cj := c%r.nx, c/r.nx
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			ni, nj := ci+d[0], cj+d[1]
			if ni < 0 || ni >= r.nx || nj < 0 || nj >= r.ny {
				continue
			}
			n := nj*r.nx + ni
			if counts[n] > 0 {
				continue
			}
			r.vals[n] = r.vals[c]
			counts[n] = 1
			queue = append(queue, n)
		}
	}
}

// Dims, X, Y and Z implement plotter.GridXYZ.
func (r *Raster) Dims() (c, rows int) { return r.nx, r.ny }

func (r *Raster) X(c int) float64 { return r.x0 + float64(c)*r.dx }

func (r *Raster) Y(rows int) float64 { return r.y0 + float64(rows)*r.dy }

func (r *Raster) Z(c, rows int) float64 { return r.vals[rows*r.nx+c] }

// At bilinearly interpolates the raster at a point. ok is false
// outside the bounding box.
func (r *Raster) At(px, py float64) (v float64, ok bool) {
	fx := (px - r.x0) / r.dx
	fy := (py - r.y0) / r.dy
	if fx < 0 || fy < 0 || fx > float64(r.nx-1) || fy > float64(r.ny-1) {
		return 0, false
	}
	i := clampInt(int(fx), 0, r.nx-2)
	j := clampInt(int(fy), 0, r.ny-2)
	tx := fx - float64(i)
	ty := fy - float64(j)

	v00 := r.vals[j*r.nx+i]
	v10 := r.vals[j*r.nx+i+1]
	v01 := r.vals[(j+1)*r.nx+i]
	v11 := r.vals[(j+1)*r.nx+i+1]
	v = v00*(1-tx)*(1-ty) + v10*tx*(1-ty) + v01*(1-tx)*ty + v11*tx*ty
	return v, true
}

// VectorField pairs the component rasters of one velocity field. Both
// rasters must share their grid.
type VectorField struct {
	VX, VY *Raster
}

// At samples both components at a point.
func (f VectorField) At(px, py float64) (vx, vy float64, ok bool) {
	vx, ok = f.VX.At(px, py)
	if !ok {
		return 0, 0, false
	}
	vy, ok = f.VY.At(px, py)
	if !ok {
		return 0, 0, false
	}
	return vx, vy, true
}

// stallSpeed stops streamline integration inside recirculation cores.
const stallSpeed = 1e-12

// Streamline traces the field direction from a seed with fourth order
// Runge-Kutta steps of arc length h, until the path leaves the
// raster, stalls or reaches maxSteps.
func Streamline(f VectorField, x0, y0, h float64, maxSteps int) plotter.XYs {
	dir := func(px, py float64) (float64, float64, bool) {
		vx, vy, ok := f.At(px, py)
		if !ok {
			return 0, 0, false
		}
		n := math.Hypot(vx, vy)
		if n < stallSpeed {
			return 0, 0, false
		}
		return vx / n, vy / n, true
	}

	pts := plotter.XYs{{X: x0, Y: y0}}
	x, y := x0, y0
	for step := 0; step < maxSteps; step++ {
		k1x, k1y, ok := dir(x, y)
		if !ok {
			break
		}
		k2x, k2y, ok := dir(x+h/2*k1x, y+h/2*k1y)
		if !ok {
			break
		}
		k3x, k3y, ok := dir(x+h/2*k2x, y+h/2*k2y)
		if !ok {
			break
		}
		k4x, k4y, ok := dir(x+h*k3x, y+h*k3y)
		if !ok {
			break
		}
		x += h / 6 * (k1x + 2*k2x + 2*k3x + k4x)
		y += h / 6 * (k1y + 2*k2y + 2*k3y + k4y)
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Decimate keeps at most one sample per cell of an nx by ny grid over
// the samples' bounding box and returns the kept indices in input
// order. It thins dense exports before vector plotting.
func Decimate(x, y []float64, nx, ny int) []int {
	if len(x) == 0 || nx < 1 || ny < 1 {
		return nil
	}
	xmin, xmax := floats.Min(x), floats.Max(x)
	ymin, ymax := floats.Min(y), floats.Max(y)

	cell := func(v, lo, hi float64, n int) int {
		if hi == lo {
			return 0
		}
		return clampInt(int(float64(n)*(v-lo)/(hi-lo)), 0, n-1)
	}

	seen := make(map[int]bool)
	var keep []int
	for i := range x {
		c := cell(y[i], ymin, ymax, ny)*nx + cell(x[i], xmin, xmax, nx)
		if seen[c] {
			continue
		}
		seen[c] = true
		keep = append(keep, i)
	}
	return keep
}
