// Package config loads the parameters of one simulation run from YAML files
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/schelling/internal/logging"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid run configuration")

// MaxSize bounds the lattice side so that Size² fits comfortably in an int.
const MaxSize = 1 << 15

// RunConfig describes a single simulation run.
type RunConfig struct {
	// Size is the lattice side length L.
	Size int `json:"size" yaml:"size"`

	// PerType is the number of agents of every type.
	PerType int `json:"per_type" yaml:"per_type"`

	// Types is the number of agent types.
	Types int `json:"types" yaml:"types"`

	// MaxIter caps the number of relocation passes.
	MaxIter int `json:"max_iter" yaml:"max_iter"`

	// Threshold applies one satisfaction threshold to every type.
	// Ignored when Thresholds is set.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Thresholds sets a per-type threshold; its length must equal Types.
	Thresholds []float64 `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`

	// Layers is the relocation neighborhood radius.
	Layers int `json:"layers" yaml:"layers"`

	// AloneHappy decides whether an agent without occupied neighbors stays.
	AloneHappy bool `json:"alone_happy" yaml:"alone_happy"`

	// Seed seeds the run's random source.
	Seed int64 `json:"seed" yaml:"seed"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig configures the command's logger.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" additionally logs every observer snapshot.
	Level string `json:"level" yaml:"level"`
}

// Default returns the classic demonstration run: three types of 100 agents
// on a 20×20 torus, each wanting at least 40% like neighbors.
func Default() *RunConfig {
	return &RunConfig{
		Size:       20,
		PerType:    100,
		Types:      3,
		MaxIter:    100,
		Threshold:  0.4,
		Layers:     1,
		AloneHappy: true,
		Seed:       1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns Default, overlaid with the file at path when path is not
// empty, then with environment overrides.
func Load(path string) (*RunConfig, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their Default values.
func LoadFromFile(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// ThresholdList returns the per-type thresholds, expanding the scalar
// Threshold to Types entries when Thresholds is empty.
func (c *RunConfig) ThresholdList() []float64 {
	if len(c.Thresholds) > 0 {
		return append([]float64(nil), c.Thresholds...)
	}
	js := make([]float64, c.Types)
	for i := range js {
		js[i] = c.Threshold
	}
	return js
}

// Validate checks that the configuration describes a runnable model.
func (c *RunConfig) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d], got %d", ErrInvalid, MaxSize, c.Size)
	}
	if c.Types < 1 {
		return fmt.Errorf("%w: types must be positive, got %d", ErrInvalid, c.Types)
	}
	if c.PerType < 1 {
		return fmt.Errorf("%w: per_type must be positive, got %d", ErrInvalid, c.PerType)
	}
	if c.PerType > c.Size*c.Size/c.Types {
		return fmt.Errorf("%w: %d types of %d agents do not fit on a %dx%d lattice",
			ErrInvalid, c.Types, c.PerType, c.Size, c.Size)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: max_iter must be at least 1, got %d", ErrInvalid, c.MaxIter)
	}
	if c.Layers < 1 {
		return fmt.Errorf("%w: layers must be at least 1, got %d", ErrInvalid, c.Layers)
	}
	if len(c.Thresholds) > 0 && len(c.Thresholds) != c.Types {
		return fmt.Errorf("%w: %d thresholds for %d types", ErrInvalid, len(c.Thresholds), c.Types)
	}
	for t, j := range c.ThresholdList() {
		if !(j >= 0 && j <= 1) {
			return fmt.Errorf("%w: threshold of type %d must be between 0 and 1, got %v", ErrInvalid, t, j)
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s (valid: info, debug, trace, or empty for default)",
			ErrInvalid, c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Malformed numbers are reported rather than silently ignored.
func applyEnvOverrides(config *RunConfig) error {
	if v := os.Getenv("SCHELLING_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SCHELLING_SEED: %w", err)
		}
		config.Seed = n
	}

	if v := os.Getenv("SCHELLING_MAX_ITER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCHELLING_MAX_ITER: %w", err)
		}
		config.MaxIter = n
	}

	if v := os.Getenv("SCHELLING_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	return nil
}
