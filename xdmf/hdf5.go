package xdmf

import (
	"fmt"

	"github.com/scigolib/hdf5"
)

// WriteHDF5 writes the surface to an HDF5 file: the three coordinate
// arrays, then one dataset per field.
func (s *Surface) WriteHDF5(path string) error {
	f, err := hdf5.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	coords := map[string][]float64{
		coordNames[0]: s.X,
		coordNames[1]: s.Y,
		coordNames[2]: s.Z,
	}
	for _, name := range coordNames {
		if err := f.WriteDataset("/"+name, coords[name]); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	for _, field := range s.Fields {
		var err error
		if field.IsInt() {
			err = f.WriteDataset("/"+field.Name, field.Ints)
		} else {
			err = f.WriteDataset("/"+field.Name, field.Floats)
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", field.Name, err)
		}
	}
	return nil
}

// datasetPaths opens an HDF5 file and returns the dataset paths it
// holds, normalized without the leading slash.
func datasetPaths(path string) (map[string]bool, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	paths := make(map[string]bool)
	f.Walk(func(p string, obj hdf5.Object) {
		if _, ok := obj.(*hdf5.Dataset); ok {
			paths[normalizePath(p)] = true
		}
	})
	return paths, nil
}

func normalizePath(p string) string {
	for len(p) > 0 && p[0] == '/' {
		p = p[1:]
	}
	return p
}
