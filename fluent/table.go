// Package fluent parses the artifacts a Fluent cavity run leaves in its
// case directory: CSV surface and line exports, the console transcript,
// and the run metadata file.
package fluent

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is a numeric table loaded from a Fluent CSV export. Column names
// are canonicalized on read, so callers always ask for "x" or
// "velocity_x" regardless of how the export spelled them.
type Table struct {
	Columns []string
	Data    *mat.Dense // nil when the file held no data rows
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t.Data == nil {
		return 0
	}
	r, _ := t.Data.Dims()
	return r
}

// Has reports whether the table carries the named column.
func (t *Table) Has(name string) bool {
	return t.index(name) >= 0
}

// Col returns a copy of the named column.
func (t *Table) Col(name string) ([]float64, error) {
	idx := t.index(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not in table (have %s)", name, strings.Join(t.Columns, ", "))
	}
	col := make([]float64, t.Len())
	for i := range col {
		col[i] = t.Data.At(i, idx)
	}
	return col, nil
}

// Cols returns copies of the named columns, in order.
func (t *Table) Cols(names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		col, err := t.Col(name)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}

// VelocityMagnitude returns the velocity magnitude column, synthesizing
// it from the components when the export lacks it.
func (t *Table) VelocityMagnitude() ([]float64, error) {
	if t.Has("velocity_magnitude") {
		return t.Col("velocity_magnitude")
	}
	vs, err := t.Cols("velocity_x", "velocity_y")
	if err != nil {
		return nil, fmt.Errorf("no velocity magnitude and no components: %w", err)
	}
	mag := make([]float64, t.Len())
	for i := range mag {
		mag[i] = math.Hypot(vs[0][i], vs[1][i])
	}
	return mag, nil
}

func (t *Table) index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// exportNames maps Fluent export headings to canonical column names.
var exportNames = map[string]string{
	"x-coordinate":       "x",
	"y-coordinate":       "y",
	"z-coordinate":       "z",
	"x-velocity":         "velocity_x",
	"y-velocity":         "velocity_y",
	"z-velocity":         "velocity_z",
	"velocity-magnitude": "velocity_magnitude",
	"pressure":           "pressure",
	"x-wall-shear":       "wall_shear_x",
	"y-wall-shear":       "wall_shear_y",
	"z-wall-shear":       "wall_shear_z",
	"wall-shear":         "wall_shear_magnitude",
	"cellnumber":         "cell_id",
	"nodenumber":         "node_id",
}

// CanonicalName lower-cases a heading, strips quotes and whitespace, and
// maps known Fluent export names to their canonical form. Unknown names
// pass through cleaned.
func CanonicalName(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.Trim(s, `"`)
	s = strings.ToLower(strings.TrimSpace(s))
	if mapped, ok := exportNames[s]; ok {
		return mapped
	}
	return s
}

// ReadTable loads a Fluent CSV export. The header splits on comma,
// falling back to whitespace when no comma is present; data rows must
// match the header width. Duplicate canonical columns keep the first
// occurrence, which absorbs the double-export quirk of some journals.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := scanHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Map the canonical name of each kept file column to its position,
	// dropping later duplicates.
	var cols []string
	var keep []int
	seen := make(map[string]bool)
	for i, raw := range header {
		name := CanonicalName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cols = append(cols, name)
		keep = append(keep, i)
	}

	var rows [][]float64
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		strs := splitLine(text, false)
		if len(strs) != len(header) {
			return nil, fmt.Errorf("%s:%d: row has %d values, header has %d", path, line, len(strs), len(header))
		}
		row := make([]float64, len(keep))
		for j, idx := range keep {
			v, err := strconv.ParseFloat(strs[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: parsing %q: %w", path, line, strs[idx], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: scanning data: %w", path, err)
	}

	t := &Table{Columns: cols}
	if len(rows) > 0 {
		flat := make([]float64, 0, len(rows)*len(cols))
		for _, row := range rows {
			flat = append(flat, row...)
		}
		t.Data = mat.NewDense(len(rows), len(cols), flat)
	}
	return t, nil
}

func scanHeader(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		return splitLine(text, true), nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no header line")
}

// splitLine splits on comma, falling back to whitespace for
// space-separated exports. Quotes around headings are trimmed.
func splitLine(text string, trimQuote bool) []string {
	strs := strings.Split(text, ",")
	if len(strs) == 1 {
		strs = strings.Fields(text)
	}
	for i, s := range strs {
		s = strings.TrimSpace(s)
		if trimQuote {
			s = strings.TrimPrefix(s, "\"")
			s = strings.TrimSuffix(s, "\"")
		}
		strs[i] = s
	}
	return strs
}
