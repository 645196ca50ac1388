package xdmf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/radiel-health/cavitypost/fluent"
)

// Conversion reports what one case conversion produced.
type Conversion struct {
	MovingPoints     int
	StationaryPoints int
	// Files holds the six emitted file names, descriptor after data
	// file, moving then stationary then combined.
	Files []string
}

// TotalPoints returns the point count of the combined surface.
func (c *Conversion) TotalPoints() int {
	return c.MovingPoints + c.StationaryPoints
}

// ConvertDir converts one case directory: the moving wall and
// stationary walls exports each become an HDF5+XDMF pair, plus a
// combined pair holding both point sets with zero-padded field gaps.
func ConvertDir(dir string, re int) (*Conversion, error) {
	movingCSV := filepath.Join(dir, fmt.Sprintf("moving_wall_full_Re%d.csv", re))
	statCSV := filepath.Join(dir, fmt.Sprintf("stat_walls_full_Re%d.csv", re))
	if _, err := os.Stat(statCSV); err != nil {
		alt := filepath.Join(dir, fmt.Sprintf("stationary_walls_full_Re%d.csv", re))
		if _, err := os.Stat(alt); err == nil {
			statCSV = alt
		}
	}

	moving, err := loadSurface(movingCSV, 1, Moving)
	if err != nil {
		return nil, fmt.Errorf("moving wall: %w", err)
	}
	stationary, err := loadSurface(statCSV, 0, Stationary)
	if err != nil {
		return nil, fmt.Errorf("stationary walls: %w", err)
	}

	conv := &Conversion{
		MovingPoints:     moving.Len(),
		StationaryPoints: stationary.Len(),
	}

	pairs := []struct {
		stem    string
		surface *Surface
	}{
		{fmt.Sprintf("Re%d_moving_wall", re), moving},
		{fmt.Sprintf("Re%d_stat_walls", re), stationary},
		{fmt.Sprintf("Re%d_combined", re), Merge(moving, stationary)},
	}
	for _, p := range pairs {
		h5Name := p.stem + ".h5"
		if err := p.surface.WriteHDF5(filepath.Join(dir, h5Name)); err != nil {
			return nil, err
		}
		xdmfName := p.stem + ".xdmf"
		if err := WriteXDMF(filepath.Join(dir, xdmfName), h5Name, p.surface); err != nil {
			return nil, err
		}
		conv.Files = append(conv.Files, xdmfName, h5Name)
	}
	return conv, nil
}

func loadSurface(csvPath string, wallID int32, kind WallKind) (*Surface, error) {
	tbl, err := fluent.ReadTable(csvPath)
	if err != nil {
		return nil, err
	}
	return FromTable(tbl, wallID, kind)
}
