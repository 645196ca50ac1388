package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radiel-health/cavitypost"
	"github.com/radiel-health/cavitypost/xdmf"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert wall exports to HDF5+XDMF for ParaView",
	Long: `Convert turns the moving wall and stationary walls exports of every
case into HDF5 data files with XDMF descriptors: one pair per wall
export plus a combined pair holding both point sets. ParaView opens
the descriptors directly. Existing conversions are overwritten.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cases, err := discoverCases(cfg)
	if err != nil {
		return err
	}

	errs := newRunner().Run(cases, func(c cavitypost.Case) error {
		conv, err := xdmf.ConvertDir(c.Dir, c.Re)
		if err != nil {
			return err
		}
		logger.Info("converted",
			zap.String("case", c.ID()),
			zap.Int("points", conv.TotalPoints()),
			zap.Int("files", len(conv.Files)),
		)
		return nil
	})
	return finishSweep(cmd, cases, errs)
}
