package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/aoc/input"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache puzzle inputs",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().IntVarP(&options.Year, "year", "y", 0, "event year")
	fetchCmd.Flags().IntSliceVarP(&options.Days, "day", "d", nil, "puzzle day, repeatable")
	fetchCmd.Flags().BoolVar(&options.Force, "force", false, "download even when cached")
	_ = fetchCmd.MarkFlagRequired("year")
	_ = fetchCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx, cancel := setupContext()
	defer cancel()

	fs := afs.New()
	loader := input.NewLoader(config, input.WithFS(fs))
	for _, day := range options.Days {
		if options.Force {
			data, err := loader.Fetch(ctx, options.Year, day)
			if err != nil {
				return err
			}
			if err = fs.Upload(ctx, loader.CacheURL(options.Year, day), os.FileMode(0644), bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to cache input: %w", err)
			}
		} else if _, err := loader.Load(ctx, options.Year, day); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.CacheURL(options.Year, day))
	}
	return nil
}
