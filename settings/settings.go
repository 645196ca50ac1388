// Package settings loads run configuration for the post-processing
// commands.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/centerline"
	"github.com/radiel-health/cavitypost/convergence"
	"github.com/radiel-health/cavitypost/journal"
	"github.com/radiel-health/cavitypost/surface"
)

// ResultsEnv overrides the configured results directory when set.
const ResultsEnv = "CAVITYPOST_RESULTS"

// Config collects everything the commands need to know about a study.
type Config struct {
	ResultsDir string `yaml:"results_dir"`

	Geometry    GeometryConfig    `yaml:"geometry"`
	Fluid       FluidConfig       `yaml:"fluid"`
	Sweep       SweepConfig       `yaml:"sweep"`
	Convergence ConvergenceConfig `yaml:"convergence"`
	Journal     JournalConfig     `yaml:"journal"`
}

// GeometryConfig describes the cavity of the flat results layout.
// Matrix cases carry their width in the directory name instead.
type GeometryConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Tolerance float64 `yaml:"wall_tolerance"`
}

// FluidConfig holds the working fluid constants the lid velocity is
// derived from.
type FluidConfig struct {
	Viscosity float64 `yaml:"viscosity"`
	RefLength float64 `yaml:"ref_length"`
}

// SweepConfig selects the Reynolds numbers of a study, either as an
// explicit list or as an inclusive range.
type SweepConfig struct {
	Reynolds []int `yaml:"reynolds"`
	First    int   `yaml:"first"`
	Last     int   `yaml:"last"`
	Step     int   `yaml:"step"`
}

// Numbers returns the sweep, the explicit list winning over the range.
func (s SweepConfig) Numbers() []int {
	if len(s.Reynolds) > 0 {
		return s.Reynolds
	}
	return journal.Sweep(s.First, s.Last, s.Step)
}

// ConvergenceConfig overrides the residual classification thresholds.
// Zero fields keep the defaults.
type ConvergenceConfig struct {
	StrictContinuity float64 `yaml:"strict_continuity"`
	StrictVelocity   float64 `yaml:"strict_velocity"`
	FinalContinuity  float64 `yaml:"final_continuity"`
	FinalVelocity    float64 `yaml:"final_velocity"`
	PlateauWindow    int     `yaml:"plateau_window"`
	PlateauSpread    float64 `yaml:"plateau_spread"`
}

// Criteria folds the overrides onto convergence.Default.
func (c ConvergenceConfig) Criteria() convergence.Criteria {
	crit := convergence.Default
	if c.StrictContinuity > 0 {
		crit.StrictContinuity = c.StrictContinuity
	}
	if c.StrictVelocity > 0 {
		crit.StrictVelocity = c.StrictVelocity
	}
	if c.FinalContinuity > 0 {
		crit.FinalContinuity = c.FinalContinuity
	}
	if c.FinalVelocity > 0 {
		crit.FinalVelocity = c.FinalVelocity
	}
	if c.PlateauWindow > 0 {
		crit.PlateauWindow = c.PlateauWindow
	}
	if c.PlateauSpread > 0 {
		crit.PlateauSpread = c.PlateauSpread
	}
	return crit
}

// JournalConfig drives Fluent journal generation.
type JournalConfig struct {
	Template   string `yaml:"template"`
	Mesh       string `yaml:"mesh"`
	Iterations int    `yaml:"iterations"`
	OutputDir  string `yaml:"output_dir"`
}

// Default returns the study defaults: unit cavity, water viscosity,
// the full Reynolds sweep.
func Default() Config {
	return Config{
		ResultsDir: "results",
		Geometry:   GeometryConfig{Width: 1, Height: 1, Tolerance: 0.01},
		Fluid: FluidConfig{
			Viscosity: centerline.Viscosity,
			RefLength: centerline.RefLength,
		},
		Sweep: SweepConfig{First: 100, Last: 3250, Step: 50},
		Convergence: ConvergenceConfig{
			StrictContinuity: convergence.Default.StrictContinuity,
			StrictVelocity:   convergence.Default.StrictVelocity,
			FinalContinuity:  convergence.Default.FinalContinuity,
			FinalVelocity:    convergence.Default.FinalVelocity,
			PlateauWindow:    convergence.Default.PlateauWindow,
			PlateauSpread:    convergence.Default.PlateauSpread,
		},
		Journal: JournalConfig{
			Mesh:       "lidDrivenCavityFlow.msh",
			Iterations: 2000,
			OutputDir:  "journals",
		},
	}
}

// Load overlays a YAML file, when given, on the defaults, then applies
// the environment override.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if env := os.Getenv(ResultsEnv); env != "" {
		cfg.ResultsDir = env
	}
	return cfg, nil
}

// Surface returns the wall geometry of the configured cavity.
func (c Config) Surface() surface.Geometry {
	return surface.Geometry{
		Width:  c.Geometry.Width,
		Height: c.Geometry.Height,
		Tol:    c.Geometry.Tolerance,
	}
}

// SurfaceFor widens the configured cavity to the aspect ratio of a
// matrix case.
func (c Config) SurfaceFor(cs cavitypost.Case) surface.Geometry {
	g := c.Surface()
	if cs.AspectRatio > 0 {
		g.Width = cs.Width()
	}
	return g
}

// LidVelocity derives the lid speed of a case from its Reynolds
// number and the configured fluid.
func (c Config) LidVelocity(re int) float64 {
	return centerline.LidVelocity(float64(re), c.Fluid.Viscosity, c.Fluid.RefLength)
}
