package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/aoc/input"
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code input fetcher and solution runner",
	Long: `aoc downloads and caches puzzle inputs from adventofcode.com and runs
the registered solutions against them.`,
	PersistentPreRunE: loadRootConfig,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(cmd *cobra.Command, _ []string) error {
	logger := logrus.StandardLogger()
	level, err := logrus.ParseLevel(options.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())

	if err := godotenv.Load(options.EnvFile); err != nil {
		logger.WithField("file", options.EnvFile).Debug("no .env file found, using environment variables")
	}
	configURL := options.ConfigURL
	if configURL == "" {
		if found, ok := input.FindConfig("."); ok {
			configURL = found
			logger.WithField("file", found).Debug("using config")
		}
	}
	cfg, err := input.LoadConfig(cmd.Context(), configURL)
	if err != nil {
		return err
	}
	if options.CacheURL != "" {
		cfg.CacheURL = options.CacheURL
	}
	config = cfg
	return nil
}

// setupContext returns a context cancelled on the first interrupt
func setupContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigURL, "config", "c", "", "YAML config location (local path or afs URL), defaults to the nearest aoc.yaml")
	flags.StringVar(&options.EnvFile, "env-file", ".env", "dotenv file with "+input.SessionEnv)
	flags.StringVar(&options.CacheURL, "cache", "", "input cache location, overrides config")
	flags.StringVar(&options.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
