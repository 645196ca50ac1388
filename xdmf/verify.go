package xdmf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// VerifyStatus classifies the outcome of checking one descriptor.
type VerifyStatus int

const (
	Valid VerifyStatus = iota
	MissingH5
	XMLError
	H5Error
)

func (s VerifyStatus) String() string {
	switch s {
	case Valid:
		return "OK"
	case MissingH5:
		return "missing HDF5 file"
	case XMLError:
		return "XML error"
	}
	return "HDF5 error"
}

// FileReport is the verification outcome of one descriptor.
type FileReport struct {
	Path     string
	Status   VerifyStatus
	Detail   string
	Points   int
	Datasets int
}

// Line renders the per-file verification line.
func (r FileReport) Line() string {
	name := filepath.Join(filepath.Base(filepath.Dir(r.Path)), filepath.Base(r.Path))
	if r.Status == Valid {
		return fmt.Sprintf("  ✓ %s: OK (%d points, %d datasets)", name, r.Points, r.Datasets)
	}
	return fmt.Sprintf("  ✗ %s: %s - %s", name, r.Status, r.Detail)
}

// VerifyFile checks one descriptor: the XML must parse, every HDF
// reference must name an existing data file and a dataset inside it,
// the geometry must carry all coordinate arrays, and the declared
// dimensions must agree with the topology.
func VerifyFile(xdmfPath string) FileReport {
	r := FileReport{Path: xdmfPath}

	doc, err := ReadDocument(xdmfPath)
	if err != nil {
		r.Status, r.Detail = XMLError, err.Error()
		return r
	}

	n, err := strconv.Atoi(doc.Domain.Grid.Topology.NodesPerElement)
	if err != nil {
		r.Status, r.Detail = XMLError, "bad NodesPerElement: "+doc.Domain.Grid.Topology.NodesPerElement
		return r
	}
	r.Points = n

	items := append([]DataItem{}, doc.Domain.Grid.Geometry.DataItems...)
	for _, a := range doc.Domain.Grid.Attributes {
		items = append(items, a.DataItem)
	}

	type ref struct{ file, dataset string }
	var refs []ref
	for _, item := range items {
		if item.Format != "HDF" {
			continue
		}
		file, dataset, ok := strings.Cut(strings.TrimSpace(item.Ref), ":")
		if !ok {
			r.Status, r.Detail = XMLError, "malformed HDF reference: "+item.Ref
			return r
		}
		if item.Dimensions != strconv.Itoa(n) {
			r.Status = XMLError
			r.Detail = fmt.Sprintf("%s: dimensions %s disagree with %d nodes", dataset, item.Dimensions, n)
			return r
		}
		refs = append(refs, ref{file: file, dataset: normalizePath(dataset)})
	}
	if len(refs) == 0 {
		r.Status, r.Detail = XMLError, "no HDF5 reference found"
		return r
	}

	// The emitted descriptors reference a single data file beside them.
	h5Path := filepath.Join(filepath.Dir(xdmfPath), refs[0].file)
	if _, err := os.Stat(h5Path); err != nil {
		r.Status, r.Detail = MissingH5, refs[0].file
		return r
	}

	datasets, err := datasetPaths(h5Path)
	if err != nil {
		r.Status, r.Detail = H5Error, err.Error()
		return r
	}
	r.Datasets = len(datasets)

	for _, name := range coordNames {
		if !datasets[name] {
			r.Status, r.Detail = H5Error, "missing coordinate dataset "+name
			return r
		}
	}
	for _, ref := range refs {
		if !datasets[ref.dataset] {
			r.Status, r.Detail = H5Error, "missing dataset "+ref.dataset
			return r
		}
	}

	r.Status = Valid
	return r
}

// VerifyTree verifies every descriptor under the case folders of a
// results tree, both layouts, at most limit files at a time.
func VerifyTree(resultsDir string, limit int) ([]FileReport, error) {
	paths, err := filepath.Glob(filepath.Join(resultsDir, "Re*", "*.xdmf"))
	if err != nil {
		return nil, err
	}
	matrix, err := filepath.Glob(filepath.Join(resultsDir, "AR_*x1", "Re_*", "*.xdmf"))
	if err != nil {
		return nil, err
	}
	paths = append(paths, matrix...)
	sort.Strings(paths)

	reports := make([]FileReport, len(paths))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			reports[i] = VerifyFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// VerifySummary aggregates a verification sweep.
type VerifySummary struct {
	Total     int
	Valid     int
	MissingH5 int
	XMLErrors int
	H5Errors  int
}

// Summarize counts report outcomes.
func Summarize(reports []FileReport) VerifySummary {
	s := VerifySummary{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case Valid:
			s.Valid++
		case MissingH5:
			s.MissingH5++
		case XMLError:
			s.XMLErrors++
		case H5Error:
			s.H5Errors++
		}
	}
	return s
}

// Format renders the verification summary block.
func (s VerifySummary) Format() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "VERIFICATION SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total XDMF files checked: %d\n", s.Total)
	fmt.Fprintf(&b, "Valid files: %d\n", s.Valid)
	fmt.Fprintf(&b, "Missing HDF5 files: %d\n", s.MissingH5)
	fmt.Fprintf(&b, "XML parsing errors: %d\n", s.XMLErrors)
	fmt.Fprintf(&b, "HDF5 access errors: %d\n", s.H5Errors)
	if s.Total > 0 && s.Valid == s.Total {
		fmt.Fprintln(&b, "\nAll files verified successfully. Ready for ParaView.")
	} else if s.Total > 0 {
		fmt.Fprintf(&b, "\n%d files have issues.\n", s.Total-s.Valid)
	}
	return b.String()
}
