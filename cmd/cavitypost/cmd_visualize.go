package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/fluent"
	"github.com/radiel-health/cavitypost/plots"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render interior field figures for every case",
	Long: `Visualize reads the interior export of every case and writes four
figures into the case's plots directory: velocity magnitude, pressure,
a decimated velocity vector field, and streamlines traced through the
interpolated flow field.`,
	Args: cobra.NoArgs,
	RunE: runVisualize,
}

func runVisualize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}

	errs := newRunner().Run(cases, func(c cavitypost.Case) error {
		files := c.Files()
		if files.Interior == "" {
			return fmt.Errorf("no interior export")
		}
		tbl, err := fluent.ReadTable(files.Interior)
		if err != nil {
			return err
		}

		figures := []struct {
			name string
			draw func(*fluent.Table, int, string) error
		}{
			{"velocity_magnitude_Re%d.png", plots.SpeedField},
			{"pressure_Re%d.png", plots.PressureField},
			{"velocity_vectors_Re%d.png", plots.VelocityVectors},
			{"streamlines_Re%d.png", plots.Streamlines},
		}
		for _, fig := range figures {
			path := plotPath(c, fmt.Sprintf(fig.name, c.Re))
			if err := fig.draw(tbl, c.Re, path); err != nil {
				return fmt.Errorf("%s: %w", fmt.Sprintf(fig.name, c.Re), err)
			}
		}
		return nil
	})
	return finishSweep(cmd, cases, errs)
}
