// Cavitypost is the batch post-processor for lid-driven cavity sweeps.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config    string
	results   string
	workers   int
	verbose   bool
	doprofile bool
}

// logger is shared by every subcommand. It is built in PersistentPreRunE
// so the --verbose flag has already been parsed.
var logger *zap.Logger

// profiler holds the running CPU profile between the pre and post hooks.
var profiler interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:   "cavitypost",
	Short: "Post-processing for lid-driven cavity CFD sweeps",
	Long: `Cavitypost walks a tree of Fluent case exports from a lid-driven cavity
Reynolds sweep and produces wall shear and centerline figures, benchmark
comparisons against Ghia et al. (1982), convergence reports, and
ParaView-ready XDMF/HDF5 conversions.

Each subcommand is an independent batch pass over the results tree. The
tree location comes from --results, the CAVITYPOST_RESULTS environment
variable, or a YAML settings file given with --config.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if rootFlags.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if rootFlags.doprofile {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.config, "config", "", "Path to a YAML settings file")
	pf.StringVar(&rootFlags.results, "results", "", "Results tree root (overrides settings and $CAVITYPOST_RESULTS)")
	pf.IntVar(&rootFlags.workers, "workers", 0, "Concurrent cases per batch (0 = number of CPUs)")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&rootFlags.doprofile, "profile", false, "Write a CPU profile of the run")

	rootCmd.AddCommand(wallshearCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(convergenceCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
