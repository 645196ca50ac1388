package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radiel-health/cavitypost/journal"
)

var journalFlags struct {
	out        string
	template   string
	mesh       string
	iterations int
	first      int
	last       int
	step       int
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Generate Fluent journal files for the Reynolds sweep",
	Long: `Journal writes one Fluent TUI journal file per Reynolds number of the
sweep. Each journal loads the mesh, sets the lid velocity derived from
the Reynolds number, iterates, and exports the files the other
subcommands consume. The sweep and solver settings come from the
settings file; flags override individual values.`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	f := journalCmd.Flags()
	f.StringVarP(&journalFlags.out, "out", "o", "", "Output directory (default from settings)")
	f.StringVar(&journalFlags.template, "template", "", "Journal template file (default built in)")
	f.StringVar(&journalFlags.mesh, "mesh", "", "Mesh file name referenced by the journals")
	f.IntVar(&journalFlags.iterations, "iterations", 0, "Iteration cap per run")
	f.IntVar(&journalFlags.first, "first", 0, "First Reynolds number of the sweep")
	f.IntVar(&journalFlags.last, "last", 0, "Last Reynolds number of the sweep")
	f.IntVar(&journalFlags.step, "step", 0, "Reynolds number step")
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jc := cfg.Journal
	if journalFlags.template != "" {
		jc.Template = journalFlags.template
	}
	if journalFlags.mesh != "" {
		jc.Mesh = journalFlags.mesh
	}
	if journalFlags.iterations > 0 {
		jc.Iterations = journalFlags.iterations
	}

	// A range flag discards any explicit list from the settings file.
	sweep := cfg.Sweep
	if journalFlags.first > 0 || journalFlags.last > 0 || journalFlags.step > 0 {
		sweep.Reynolds = nil
	}
	if journalFlags.first > 0 {
		sweep.First = journalFlags.first
	}
	if journalFlags.last > 0 {
		sweep.Last = journalFlags.last
	}
	if journalFlags.step > 0 {
		sweep.Step = journalFlags.step
	}
	res := sweep.Numbers()
	if len(res) == 0 {
		return fmt.Errorf("empty Reynolds sweep")
	}

	outDir := jc.OutputDir
	if journalFlags.out != "" {
		outDir = journalFlags.out
	}
	files, err := journal.Generate(journal.Config{
		Mesh:         jc.Mesh,
		Iterations:   jc.Iterations,
		Viscosity:    cfg.Fluid.Viscosity,
		RefLength:    cfg.Fluid.RefLength,
		TemplatePath: jc.Template,
	}, res, outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d journals to %s (Re %d..%d)\n",
		len(files), outDir, res[0], res[len(res)-1])
	return nil
}
