// SPDX-License-Identifier: MIT

// Package config loads decoupling sweep parameters from the environment.
//
// Variables carry the RAMSEY_ prefix and may come from .env files, which
// never override variables already set in the process environment:
//
//	RAMSEY_PULSE=X  RAMSEY_EPS=0.001  RAMSEY_TAU=1
//	RAMSEY_N_FROM=0 RAMSEY_N_TO=10    RAMSEY_N_STEP=2
//	RAMSEY_SCALE=10 (required)
//
// The noise of the demo model is x(t) = Ax·sin(ωx·t) and
// z(t) = Cz + Az·sin(ωz·t).
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ramsey/evolution"
	"github.com/katalvlaran/ramsey/noise"
	"github.com/katalvlaran/ramsey/pulse"
	"github.com/katalvlaran/ramsey/quadrature"
	"github.com/katalvlaran/ramsey/sweep"
)

// Prefix is prepended to every variable name.
const Prefix = "RAMSEY_"

// ErrInvalidConfig indicates a missing or out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything a sweep needs.
type Config struct {
	Pulse    pulse.Axis `env:"PULSE" envDefault:"X"`
	StepSize float64    `env:"EPS" envDefault:"0.001"`
	Tau      float64    `env:"TAU" envDefault:"1"`
	NFrom    int        `env:"N_FROM" envDefault:"0"`
	NTo      int        `env:"N_TO" envDefault:"10"`
	NStep    int        `env:"N_STEP" envDefault:"2"`
	Scale    float64    `env:"SCALE,required"`

	Exact        bool `env:"EXACT"`
	TauWindows   bool `env:"TAU_WINDOWS"`
	Workers      int  `env:"WORKERS" envDefault:"1"`
	SweepWorkers int  `env:"SWEEP_WORKERS" envDefault:"1"`

	NoiseXAmplitude float64 `env:"NOISE_X_AMPLITUDE" envDefault:"0"`
	NoiseXOmega     float64 `env:"NOISE_X_OMEGA" envDefault:"0"`
	NoiseZOffset    float64 `env:"NOISE_Z_OFFSET" envDefault:"0"`
	NoiseZAmplitude float64 `env:"NOISE_Z_AMPLITUDE" envDefault:"0"`
	NoiseZOmega     float64 `env:"NOISE_Z_OMEGA" envDefault:"0"`

	QuadNodes     int     `env:"QUAD_NODES" envDefault:"32"`
	QuadTolerance float64 `env:"QUAD_TOLERANCE" envDefault:"1e-8"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (or ./.env when none is given and it
// exists), parses RAMSEY_* variables and validates the result.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges that env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Pulse.Valid(), "pulse %s: unknown axis", c.Pulse)
	check(positive(c.StepSize), "eps=%v must be positive", c.StepSize)
	check(positive(c.Tau), "tau=%v must be positive", c.Tau)
	check(finite(c.Scale), "scale=%v must be finite", c.Scale)
	check(c.Workers >= 1, "workers=%d must be >= 1", c.Workers)
	check(c.SweepWorkers >= 1, "sweep workers=%d must be >= 1", c.SweepWorkers)
	check(c.QuadNodes >= 1, "quadrature nodes=%d must be >= 1", c.QuadNodes)
	check(positive(c.QuadTolerance), "quadrature tolerance=%v must be positive", c.QuadTolerance)
	for _, v := range []float64{c.NoiseXAmplitude, c.NoiseXOmega, c.NoiseZOffset, c.NoiseZAmplitude, c.NoiseZOmega} {
		check(finite(v), "noise parameter %v must be finite", v)
	}
	if _, err := c.SequenceLengths(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}

	return lvl, nil
}

// SequenceLengths expands the N range.
func (c Config) SequenceLengths() ([]int, error) {
	return sweep.Range(c.NFrom, c.NTo, c.NStep)
}

// NoiseModel builds the sinusoidal noise model described by the NOISE_*
// variables.
func (c Config) NoiseModel() (noise.Model, error) {
	return noise.New(
		noise.Sine(c.NoiseXAmplitude, c.NoiseXOmega, 0),
		noise.Sum(noise.Constant(c.NoiseZOffset), noise.Sine(c.NoiseZAmplitude, c.NoiseZOmega, 0)),
	)
}

// Integrator returns the quadrature configured by QUAD_*.
func (c Config) Integrator() *quadrature.Integrator {
	return quadrature.New(
		quadrature.WithNodes(c.QuadNodes),
		quadrature.WithTolerance(c.QuadTolerance),
	)
}

// EvolutionOptions translates the configuration into evolution options.
func (c Config) EvolutionOptions(log zerolog.Logger) []evolution.Option {
	opts := []evolution.Option{
		evolution.WithStepSize(c.StepSize),
		evolution.WithScale(c.Scale),
		evolution.WithWorkers(c.Workers),
		evolution.WithIntegrator(c.Integrator()),
		evolution.WithLogger(log),
	}
	if c.TauWindows {
		opts = append(opts, evolution.WithTauWindows())
	}

	return opts
}

// SweepOptions translates the configuration into sweep options.
func (c Config) SweepOptions(log zerolog.Logger) []sweep.Option {
	opts := []sweep.Option{
		sweep.WithWorkers(c.SweepWorkers),
		sweep.WithLogger(log),
	}
	if c.Exact {
		opts = append(opts, sweep.WithExact())
	}

	return opts
}

// Evolution builds the configured pulse, noise model and Evolution.
func (c Config) Evolution(log zerolog.Logger) (*evolution.Evolution, error) {
	p, err := pulse.New(c.Pulse)
	if err != nil {
		return nil, err
	}
	m, err := c.NoiseModel()
	if err != nil {
		return nil, err
	}

	return evolution.New(p, m, c.EvolutionOptions(log)...)
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
