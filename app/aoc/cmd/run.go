package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/aoc/input"
	"github.com/viant/aoc/runner"
	_ "github.com/viant/aoc/solutions"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run registered solutions against cached or downloaded inputs",
	RunE:  runSolutions,
}

func init() {
	runCmd.Flags().IntVarP(&options.Year, "year", "y", 0, "event year")
	runCmd.Flags().IntSliceVarP(&options.Days, "day", "d", nil, "puzzle day, repeatable; all registered days when omitted")
	runCmd.Flags().IntSliceVarP(&options.Parts, "part", "p", []int{1, 2}, "puzzle parts to solve")
	runCmd.Flags().StringVarP(&options.Format, "format", "f", runner.FormatText, "report format (text, yaml)")
	runCmd.Flags().DurationVar(&options.Timeout, "timeout", 10*time.Minute, "overall time limit")
	_ = runCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(runCmd)
}

func runSolutions(cmd *cobra.Command, _ []string) error {
	ctx, cancel := setupContext()
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, options.Timeout)
	defer cancelTimeout()

	loader := input.NewLoader(config)
	r := runner.New(nil, loader, runner.WithParts(options.Parts...))
	results, err := r.Run(ctx, options.Year, options.Days...)
	if err != nil {
		return err
	}
	return runner.Report(cmd.OutOrStdout(), results, options.Format)
}
