package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost/xdmf"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the converted XDMF/HDF5 files",
	Long: `Verify checks every XDMF descriptor in the results tree: the XML must
parse, every referenced HDF5 file must exist, and the dataset shapes
inside must match what the descriptor declares. One line per file,
then a summary. Broken files are reported, not fixed.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reports, err := xdmf.VerifyTree(cfg.ResultsDir, rootFlags.workers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintf(out, "no XDMF files under %s; run convert first\n", cfg.ResultsDir)
		return nil
	}
	for _, r := range reports {
		fmt.Fprintln(out, r.Line())
	}
	fmt.Fprint(out, xdmf.Summarize(reports).Format())
	return nil
}
