package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	gitCommit = "unknown"
)

// SetVersionInfo records build metadata for the version command
func SetVersionInfo(v, commit string) {
	version, gitCommit = v, commit
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aoc %s (%s)\n", version, gitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
