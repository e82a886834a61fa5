package tactful

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-tactful/document"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	threshold   float64
	concurrency int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		threshold:   document.DefaultThreshold,
		concurrency: runtime.NumCPU(),
		logger:      slog.Default(),
	}
}

// WithThreshold sets the boundary probability a fragment must exceed to end
// a sentence (default: 0.5).
func WithThreshold(t float64) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// WithConcurrency sets how many texts SegmentAll processes at once
// (default: runtime.NumCPU()).
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
