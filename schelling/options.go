// SPDX-License-Identifier: MIT
// Package: schelling
//
// options.go: functional options for model construction and runs.
//
// Contract:
//   • Option configures New; RunOption configures a single Run.
//   • Option constructors panic on nil inputs (WithRand, WithObserver,
//     WithLogger); value problems (layers < 1) surface as ErrConfiguration
//     from Run, never as panics.
//   • Determinism is explicit: the only RNG is the one set here.

package schelling

import (
	"io"
	"log/slog"
	"math/rand"
)

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option customizes a Model at construction.
type Option func(*modelConfig)

// modelConfig holds construction-time knobs. Later options override earlier ones.
type modelConfig struct {
	rng      *rand.Rand
	observer Observer
	logger   *slog.Logger
}

func newModelConfig(opts ...Option) modelConfig {
	cfg := modelConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if cfg.observer == nil {
		cfg.observer = NopObserver{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand. Equal seeds reproduce equal runs.
func WithSeed(seed int64) Option {
	return func(c *modelConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw of the model. Panics on nil.
// r must not be shared with another goroutine while the model runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("schelling: WithRand(nil)")
	}
	return func(c *modelConfig) {
		c.rng = r
	}
}

// WithObserver registers the visualization collaborator. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("schelling: WithObserver(nil)")
	}
	return func(c *modelConfig) {
		c.observer = o
	}
}

// WithLogger sets the logger for run and pass events. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("schelling: WithLogger(nil)")
	}
	return func(c *modelConfig) {
		c.logger = l
	}
}

// RunOption customizes a single Run.
type RunOption func(*runConfig)

type runConfig struct {
	layers     int
	aloneHappy bool
}

func newRunConfig(opts ...RunOption) runConfig {
	cfg := runConfig{
		layers:     1,
		aloneHappy: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLayers sets the radius of the relocation neighborhood (default 1).
// The segregation index always uses radius 1.
func WithLayers(layers int) RunOption {
	return func(c *runConfig) {
		c.layers = layers
	}
}

// WithAloneHappy sets the ratio of an agent with no occupied neighbor:
// 1 when true (default), 0 when false.
func WithAloneHappy(happy bool) RunOption {
	return func(c *runConfig) {
		c.aloneHappy = happy
	}
}
