package runner

import (
	"github.com/sirupsen/logrus"
)

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger, logrus.StandardLogger by default
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConcurrency limits the number of days solved at once
func WithConcurrency(limit int) Option {
	return func(r *Runner) {
		r.concurrency = limit
	}
}

// WithParts restricts which parts (1, 2) are solved
func WithParts(parts ...int) Option {
	return func(r *Runner) {
		r.parts = parts
	}
}
