// Package journal generates Fluent batch journals for a Reynolds
// sweep.
package journal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/radiel-health/cavitypost/centerline"
)

// DefaultTemplate is the embedded journal skeleton. The lid velocity
// is set from the target Reynolds number; the export surfaces match
// the file names the post-processing commands look for.
const DefaultTemplate = `; Fluent batch journal - lid-driven cavity
; Re = {{.Re}}, U_lid = {{printf "%.6g" .LidVelocity}} m/s

/file/read-case {{.Mesh}}

/define/models/viscous/laminar yes
/define/boundary-conditions/wall moving_wall 0 no 0 no yes yes no {{printf "%.6g" .LidVelocity}} no 0

/solve/monitors/residual/convergence-criteria 1e-6 1e-9 1e-9
/solve/initialize/initialize-flow yes
/solve/iterate {{.Iterations}}

/file/export/ascii interior_full_Re{{.Re}}.csv interior () no x-velocity y-velocity velocity-magnitude pressure quit yes
/file/export/ascii moving_wall_full_Re{{.Re}}.csv moving_wall () no x-velocity y-velocity velocity-magnitude pressure x-wall-shear y-wall-shear wall-shear quit yes
/file/export/ascii stat_walls_full_Re{{.Re}}.csv stationary_walls () no x-velocity y-velocity velocity-magnitude pressure x-wall-shear y-wall-shear wall-shear quit yes
/file/export/ascii vertical_centerline_Re{{.Re}}.csv vertical_centerline () no x-velocity y-velocity quit yes
/file/export/ascii horizontal_centerline_Re{{.Re}}.csv horizontal_centerline () no x-velocity y-velocity quit yes

/report/surface-integrals/area-weighted-avg moving_wall () wall-shear yes "WSS_Re{{.Re}}.txt"

exit ok
`

// Params fills the journal template for one run.
type Params struct {
	Re          int
	Mesh        string
	LidVelocity float64
	Iterations  int
}

// Config drives generation across a sweep. Zero fields fall back to
// the study defaults.
type Config struct {
	Mesh       string
	Iterations int
	Viscosity  float64
	RefLength  float64
	// TemplatePath overrides the embedded template.
	TemplatePath string
}

const (
	defaultMesh       = "lidDrivenCavityFlow.msh"
	defaultIterations = 2000
)

func (c Config) load() (*template.Template, error) {
	text := DefaultTemplate
	if c.TemplatePath != "" {
		data, err := os.ReadFile(c.TemplatePath)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}
	return template.New("journal").Parse(text)
}

// Generate renders one journal per Reynolds number into outDir as
// run_Re{n}.jou and returns the written paths.
func Generate(cfg Config, res []int, outDir string) ([]string, error) {
	tmpl, err := cfg.load()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0700); err != nil {
		return nil, err
	}

	mesh := cfg.Mesh
	if mesh == "" {
		mesh = defaultMesh
	}
	iters := cfg.Iterations
	if iters == 0 {
		iters = defaultIterations
	}
	nu := cfg.Viscosity
	if nu == 0 {
		nu = centerline.Viscosity
	}
	l := cfg.RefLength
	if l == 0 {
		l = centerline.RefLength
	}

	var files []string
	for _, re := range res {
		p := Params{
			Re:          re,
			Mesh:        mesh,
			LidVelocity: centerline.LidVelocity(float64(re), nu, l),
			Iterations:  iters,
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, p); err != nil {
			return files, fmt.Errorf("journal for Re=%d: %w", re, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("run_Re%d.jou", re))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

// Sweep enumerates Reynolds numbers from first to last inclusive in
// steps of step.
func Sweep(first, last, step int) []int {
	if step <= 0 || last < first {
		return nil
	}
	var res []int
	for re := first; re <= last; re += step {
		res = append(res, re)
	}
	return res
}
