package cmd

import (
	"time"

	"github.com/viant/aoc/input"
)

// config is resolved by the root command before any subcommand runs
var config *input.Config

var options = Options{}

// Options holds command line flags
type Options struct {
	ConfigURL string
	EnvFile   string
	CacheURL  string
	LogLevel  string

	Year    int
	Days    []int
	Parts   []int
	Format  string
	Timeout time.Duration
	Force   bool
}
