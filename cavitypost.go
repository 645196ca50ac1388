package cavitypost

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Case identifies one simulation case inside a results tree.
type Case struct {
	// Reynolds number of the run.
	Re int
	// AspectRatio is the cavity width for the AR_{w}x1 matrix layout.
	// Zero for the flat Re{n} layout (square cavity).
	AspectRatio float64
	// Dir is the case directory holding the Fluent exports.
	Dir string
}

// ID returns the case name used in logs and reports, matching the
// directory naming of the two results layouts.
func (c Case) ID() string {
	if c.AspectRatio > 0 {
		return fmt.Sprintf("AR_%gx1/Re_%d", c.AspectRatio, c.Re)
	}
	return fmt.Sprintf("Re%d", c.Re)
}

// Width returns the cavity width in meters. The flat layout is the unit
// square; the matrix layout encodes width in the aspect ratio.
func (c Case) Width() float64 {
	if c.AspectRatio > 0 {
		return c.AspectRatio
	}
	return 1
}

var (
	flatCaseRe   = regexp.MustCompile(`^Re(\d+)(?:-\d+\w*)?$`)
	matrixDirRe  = regexp.MustCompile(`^AR_(\d+(?:\.\d+)?)x1$`)
	matrixCaseRe = regexp.MustCompile(`^Re_(\d+)$`)
)

// Discover scans a results directory for simulation cases. Both layouts
// may coexist: flat Re{n} directories (rerun suffixes such as Re3000-2
// allowed) and an AR_{w}x1/Re_{n} matrix. Directories that match neither
// pattern are skipped. Cases come back sorted by aspect ratio, then
// Reynolds number.
func Discover(resultsDir string) ([]Case, error) {
	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		return nil, fmt.Errorf("reading results dir: %w", err)
	}

	var cases []Case
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if m := flatCaseRe.FindStringSubmatch(name); m != nil {
			re, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			cases = append(cases, Case{Re: re, Dir: filepath.Join(resultsDir, name)})
			continue
		}
		if m := matrixDirRe.FindStringSubmatch(name); m != nil {
			ar, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			sub, err := discoverMatrix(filepath.Join(resultsDir, name), ar)
			if err != nil {
				return nil, err
			}
			cases = append(cases, sub...)
		}
	}

	sort.Slice(cases, func(i, j int) bool {
		if cases[i].AspectRatio != cases[j].AspectRatio {
			return cases[i].AspectRatio < cases[j].AspectRatio
		}
		return cases[i].Re < cases[j].Re
	})
	return cases, nil
}

func discoverMatrix(arDir string, ar float64) ([]Case, error) {
	entries, err := os.ReadDir(arDir)
	if err != nil {
		return nil, fmt.Errorf("reading aspect ratio dir: %w", err)
	}
	var cases []Case
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := matrixCaseRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		re, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		cases = append(cases, Case{
			Re:          re,
			AspectRatio: ar,
			Dir:         filepath.Join(arDir, entry.Name()),
		})
	}
	return cases, nil
}

// FileSet holds the resolved artifact paths of a case. A path is empty
// when no file under any known spelling exists; each command decides
// which artifacts it requires.
type FileSet struct {
	Interior             string
	MovingWall           string
	StationaryWalls      string
	VerticalCenterline   string
	HorizontalCenterline string
	ConsoleLog           string
	Metadata             string
}

// Files resolves the Fluent export paths of the case. The exports were
// written by several journal revisions, so some artifacts exist under
// more than one spelling; the first existing candidate wins.
func (c Case) Files() FileSet {
	re := c.Re
	return FileSet{
		Interior:   firstExisting(c.Dir, fmt.Sprintf("interior_full_Re%d.csv", re)),
		MovingWall: firstExisting(c.Dir, fmt.Sprintf("moving_wall_full_Re%d.csv", re)),
		StationaryWalls: firstExisting(c.Dir,
			fmt.Sprintf("stat_walls_full_Re%d.csv", re),
			fmt.Sprintf("stationary_walls_full_Re%d.csv", re)),
		VerticalCenterline: firstExisting(c.Dir,
			fmt.Sprintf("vertical_centerline_Re%d.csv", re),
			fmt.Sprintf("vertical_centerline_Re_%d.csv", re)),
		HorizontalCenterline: firstExisting(c.Dir,
			fmt.Sprintf("horizontal_centerline_Re%d.csv", re),
			fmt.Sprintf("horizontal_centerline_Re_%d.csv", re)),
		ConsoleLog: firstExisting(c.Dir, "console.log"),
		Metadata:   firstExisting(c.Dir, "metadata.txt"),
	}
}

func firstExisting(dir string, names ...string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
