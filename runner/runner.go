package runner

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// InputSource provides puzzle inputs
type InputSource interface {
	Load(ctx context.Context, year, day int) (string, error)
}

// Result represents a single solved (or failed) puzzle part
type Result struct {
	Year    int           `yaml:"year"`
	Day     int           `yaml:"day"`
	Part    int           `yaml:"part"`
	Answer  string        `yaml:"answer,omitempty"`
	Elapsed time.Duration `yaml:"elapsed"`
	Err     error         `yaml:"-"`
	Error   string        `yaml:"error,omitempty"`
}

// Runner solves registered puzzles
type Runner struct {
	registry    *Registry
	inputs      InputSource
	logger      logrus.FieldLogger
	concurrency int
	parts       []int
}

// New creates a runner, a nil registry means the default one
func New(registry *Registry, inputs InputSource, options ...Option) *Runner {
	if registry == nil {
		registry = Default()
	}
	ret := &Runner{registry: registry, inputs: inputs, concurrency: runtime.NumCPU(), parts: []int{1, 2}}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logrus.StandardLogger()
	}
	ret.logger = ret.logger.WithField("component", "runner")
	return ret
}

// Run solves the given days of year concurrently, all registered days when none are given.
// Solver failures are reported in Result.Err; input or registry failures abort the run.
func (r *Runner) Run(ctx context.Context, year int, days ...int) ([]*Result, error) {
	if len(days) == 0 {
		days = r.registry.Days(year)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no solutions registered for %d", year)
	}
	group, ctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		group.SetLimit(r.concurrency)
	}
	results := make([][]*Result, len(days))
	for i, day := range days {
		group.Go(func() error {
			dayResults, err := r.runDay(ctx, year, day)
			if err != nil {
				return err
			}
			results[i] = dayResults
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var flat []*Result
	for _, dayResults := range results {
		flat = append(flat, dayResults...)
	}
	sort.SliceStable(flat, func(i, j int) bool {
		if flat[i].Day != flat[j].Day {
			return flat[i].Day < flat[j].Day
		}
		return flat[i].Part < flat[j].Part
	})
	return flat, nil
}

func (r *Runner) runDay(ctx context.Context, year, day int) ([]*Result, error) {
	key := Key{Year: year, Day: day}
	solution, ok := r.registry.Lookup(year, day)
	if !ok {
		return nil, fmt.Errorf("no solution registered for %v", key)
	}
	text, err := r.inputs.Load(ctx, year, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load input for %v: %w", key, err)
	}
	var results []*Result
	for _, part := range r.parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var solve Solver
		switch part {
		case 1:
			solve = solution.Part1
		case 2:
			solve = solution.Part2
		default:
			return nil, fmt.Errorf("invalid part: %d", part)
		}
		result := &Result{Year: year, Day: day, Part: part}
		started := time.Now()
		answer, err := safeSolve(solve, text)
		result.Elapsed = time.Since(started)
		if err != nil {
			result.Err = err
			result.Error = err.Error()
			r.logger.WithFields(logrus.Fields{"puzzle": key.String(), "part": part}).WithError(err).Warn("part failed")
		} else {
			result.Answer = fmt.Sprint(answer)
			r.logger.WithFields(logrus.Fields{"puzzle": key.String(), "part": part, "elapsed": result.Elapsed}).Debug("part solved")
		}
		results = append(results, result)
	}
	return results, nil
}

func safeSolve(solve Solver, input string) (answer any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("solver panic: %v", r)
		}
	}()
	return solve(input)
}
