// SPDX-License-Identifier: MIT

package sweep

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ramsey/distance"
)

// DefaultWorkers evaluates points one after another.
const DefaultWorkers = 1

const panicWorkersInvalid = "sweep: WithWorkers: n must be >= 1"

type config struct {
	exact    bool
	workers  int
	log      zerolog.Logger
	distance []distance.Option
}

// Option configures Run.
type Option func(*config)

// WithExact also computes FirstOrderExact for every point.
func WithExact() Option {
	return func(c *config) { c.exact = true }
}

// WithWorkers evaluates up to n points concurrently. The Evolver must then
// be safe for concurrent use; *evolution.Evolution is.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithDistance forwards options to every distance.Compare call.
func WithDistance(opts ...distance.Option) Option {
	return func(c *config) { c.distance = append(c.distance, opts...) }
}

func newConfig(opts []Option) config {
	c := config{workers: DefaultWorkers, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
