package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/modtidy/pkg/modfile"
	"github.com/zeozeozeo/modtidy/pkg/tidy"
)

type tidyFlags struct {
	outputDir  string
	suffix     string
	jobs       int
	pad        int
	truncate   bool
	keepUnused bool
	dryRun     bool
}

func newTidyCmd(a *app) *cobra.Command {
	var flags tidyFlags

	cmd := &cobra.Command{
		Use:   "tidy <file>...",
		Short: "Drop unused patterns and samples and trim sample data",
		Long: `Tidy loads every file, applies the steps enabled in the configuration
and writes the result. Without --output-dir or --suffix each file is
overwritten in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTidy(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "write results into this directory")
	cmd.Flags().StringVar(&flags.suffix, "suffix", "", "append this to every output file name, before the extension")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files processed at once")
	cmd.Flags().IntVar(&flags.pad, "pad", 0, "pad samples to a multiple of this many bytes")
	cmd.Flags().BoolVar(&flags.truncate, "truncate", false, "drop sample data after the loop end")
	cmd.Flags().BoolVar(&flags.keepUnused, "keep-unused", false, "keep patterns and samples the song never plays")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report what would change without writing anything")
	return cmd
}

func (a *app) runTidy(cmd *cobra.Command, args []string, flags tidyFlags) error {
	cfg := *a.cfg
	f := cmd.Flags()
	if f.Changed("output-dir") {
		cfg.Output.Dir = flags.outputDir
	}
	if f.Changed("suffix") {
		cfg.Output.Suffix = flags.suffix
	}
	if f.Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if f.Changed("pad") {
		cfg.Tidy.PadBlockSize = flags.pad
	}
	if f.Changed("truncate") {
		cfg.Tidy.TruncateToLoop = flags.truncate
	}
	if flags.keepUnused {
		cfg.Tidy.RemoveUnusedPatterns = false
		cfg.Tidy.RemoveUnusedSamples = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := a.store
	if flags.dryRun {
		// writes land in memory, reads still see the real files
		store = &modfile.Store{Fs: afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(a.store.Fs), afero.NewMemMapFs())}
	}

	jobs := make([]tidy.Job, 0, len(args))
	for _, input := range args {
		jobs = append(jobs, tidy.Job{Input: input, Output: cfg.OutputPath(input)})
	}

	opts := tidy.OptionsFromConfig(cfg.Tidy, a.logger)
	results, err := tidy.Batch(cmd.Context(), store, jobs, opts, cfg.Jobs)
	printResults(cmd.OutOrStdout(), results, flags.dryRun)
	return err
}

func printResults(w io.Writer, results []tidy.Result, dryRun bool) {
	total := 0
	for _, r := range results {
		rep := r.Report
		total += rep.Saved()
		fmt.Fprintf(w, "%s %s patterns %d → %d, samples cleared %d, %s\n",
			PathStyle.Render(r.Job.Input),
			SubtitleStyle.Render("→ "+r.Job.Output),
			rep.PatternsBefore, rep.PatternsAfter,
			rep.SamplesCleared,
			savedText(rep.Saved()))
	}
	if len(results) > 1 {
		fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("%d files,", len(results)))+" "+savedText(total))
	}
	if dryRun {
		fmt.Fprintln(w, SubtitleStyle.Render("dry run, nothing written"))
	}
}

func savedText(saved int) string {
	if saved < 0 {
		return ValueStyle.Render(fmt.Sprintf("%d bytes added", -saved))
	}
	return SuccessStyle.Render(fmt.Sprintf("%d bytes saved", saved))
}
