// Package xdmf converts wall exports to HDF5 data files with XDMF
// descriptors for ParaView, and verifies emitted pairs.
package xdmf

import (
	"fmt"

	"github.com/radiel-health/cavitypost/fluent"
)

// Field is one per-point scalar array of a surface. Exactly one of
// Floats and Ints is populated.
type Field struct {
	Name   string
	Floats []float64
	Ints   []int32
}

// IsInt reports whether the field carries integer data.
func (f Field) IsInt() bool { return f.Ints != nil }

func (f Field) len() int {
	if f.IsInt() {
		return len(f.Ints)
	}
	return len(f.Floats)
}

// Surface is a point cloud on a cavity wall with its scalar fields.
// Field order is preserved from construction so descriptors come out
// deterministic.
type Surface struct {
	X, Y, Z []float64
	Fields  []Field
}

// Len returns the number of points.
func (s *Surface) Len() int { return len(s.X) }

// Field returns the named field and whether it exists.
func (s *Surface) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// scalarFields are the float columns a wall export may carry, in the
// order they appear in the emitted files.
var scalarFields = []string{
	"velocity_x", "velocity_y", "velocity_magnitude",
	"wall_shear_x", "wall_shear_y", "wall_shear_magnitude",
	"pressure",
}

// WallKind tags a surface as the moving lid or the stationary walls.
type WallKind int

const (
	Stationary WallKind = iota
	Moving
)

// FromTable builds a surface from a wall export: coordinates with z=0,
// synthesized wall_id and wall_type markers, then every scalar field
// the export carries. An export without points cannot be visualized
// and is an error.
func FromTable(tbl *fluent.Table, wallID int32, kind WallKind) (*Surface, error) {
	if !tbl.Has("x") || !tbl.Has("y") {
		return nil, fmt.Errorf("missing coordinate columns (have %v)", tbl.Columns)
	}
	n := tbl.Len()
	if n == 0 {
		return nil, fmt.Errorf("no points in export")
	}

	xy, err := tbl.Cols("x", "y")
	if err != nil {
		return nil, err
	}
	s := &Surface{X: xy[0], Y: xy[1], Z: make([]float64, n)}

	wallType := int32(0)
	if kind == Moving {
		wallType = 1
	}
	s.Fields = append(s.Fields,
		Field{Name: "wall_id", Ints: fullInt(n, wallID)},
		Field{Name: "wall_type", Ints: fullInt(n, wallType)},
	)

	for _, name := range scalarFields {
		if !tbl.Has(name) {
			continue
		}
		col, err := tbl.Col(name)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: name, Floats: col})
	}

	if tbl.Has("cell_id") {
		col, err := tbl.Col("cell_id")
		if err != nil {
			return nil, err
		}
		ids := make([]int32, n)
		for i, v := range col {
			ids[i] = int32(v)
		}
		s.Fields = append(s.Fields, Field{Name: "cell_id", Ints: ids})
	}
	return s, nil
}

// Merge concatenates the moving lid surface with the stationary walls.
// The field union is taken: a surface missing a field contributes
// zeros of the matching type. Moving-wall points come first.
func Merge(moving, stationary *Surface) *Surface {
	out := &Surface{
		X: concat(moving.X, stationary.X),
		Y: concat(moving.Y, stationary.Y),
		Z: concat(moving.Z, stationary.Z),
	}

	for _, mf := range moving.Fields {
		sf, ok := stationary.Field(mf.Name)
		if !ok {
			sf = zeroLike(mf, stationary.Len())
		}
		out.Fields = append(out.Fields, concatFields(mf, sf))
	}
	for _, sf := range stationary.Fields {
		if _, ok := moving.Field(sf.Name); ok {
			continue
		}
		out.Fields = append(out.Fields, concatFields(zeroLike(sf, moving.Len()), sf))
	}
	return out
}

func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func fullInt(n int, v int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func zeroLike(f Field, n int) Field {
	if f.IsInt() {
		return Field{Name: f.Name, Ints: make([]int32, n)}
	}
	return Field{Name: f.Name, Floats: make([]float64, n)}
}

func concatFields(a, b Field) Field {
	if a.IsInt() {
		out := make([]int32, 0, len(a.Ints)+len(b.Ints))
		out = append(out, a.Ints...)
		return Field{Name: a.Name, Ints: append(out, b.Ints...)}
	}
	return Field{Name: a.Name, Floats: concat(a.Floats, b.Floats)}
}
