// Package config loads the YAML experiment file driving the regexplore CLI.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Config is one experiment: a dataset, the models to compare and an
// optional grid search.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Seed    *uint64       `yaml:"seed"` // unset means a fresh split on every run
	Logging LoggingConfig `yaml:"logging"`
	Models  []ModelConfig `yaml:"models"`
	Grid    GridConfig    `yaml:"grid"`
	Output  OutputConfig  `yaml:"output"`
}

// DataConfig locates the training table and, for blending, the rows to predict.
type DataConfig struct {
	Train    string   `yaml:"train"`
	Predict  string   `yaml:"predict"`
	Target   string   `yaml:"target"`
	Features []string `yaml:"features"` // empty means every non-target column
	// LogTarget applies log1p to the target after loading.
	LogTarget bool `yaml:"log_target"`
}

// LoggingConfig configures pkg/log.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ModelConfig names a model built by sklearn/estimators.
type ModelConfig struct {
	Name   string                 `yaml:"name"`
	Kind   string                 `yaml:"kind"`
	Params map[string]interface{} `yaml:"params"`
	// Scale standardises the features before fitting.
	Scale bool `yaml:"scale"`
}

// GridConfig describes a grid search over one model kind.
type GridConfig struct {
	Kind    string                     `yaml:"kind"`
	Params  []map[string][]interface{} `yaml:"params"`
	NJobs   int                        `yaml:"n_jobs"`
	Verbose int                        `yaml:"verbose"`
	Scale   bool                       `yaml:"scale"`
}

// OutputConfig lists optional output files. Empty paths are skipped.
type OutputConfig struct {
	ScoreChart  string `yaml:"score_chart"`
	GridChart   string `yaml:"grid_chart"`
	Predictions string `yaml:"predictions"`
}

// DefaultConfig returns the defaults applied before the file is decoded.
func DefaultConfig() *Config {
	return &Config{
		Data:    DataConfig{LogTarget: true},
		Logging: LoggingConfig{Level: "info"},
		Grid:    GridConfig{NJobs: 5, Verbose: 2},
	}
}

// Load reads and validates the experiment file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return Parse(data)
}

// Parse decodes and validates an experiment document.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("REGEXPLORE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv("REGEXPLORE_TRAIN"); path != "" {
		c.Data.Train = path
	}
}

// Validate checks the fields every subcommand relies on.
func (c *Config) Validate() error {
	if c.Data.Train == "" {
		return errors.NewValidationError("data.train", "is required", c.Data.Train)
	}
	if c.Data.Target == "" {
		return errors.NewValidationError("data.target", "is required", c.Data.Target)
	}
	names := make(map[string]bool, len(c.Models))
	for i, m := range c.Models {
		if m.Kind == "" {
			return errors.NewValidationError(fmt.Sprintf("models[%d].kind", i), "is required", m.Kind)
		}
		if m.Name == "" {
			return errors.NewValidationError(fmt.Sprintf("models[%d].name", i), "is required", m.Name)
		}
		if names[m.Name] {
			return errors.NewValidationError(fmt.Sprintf("models[%d].name", i), "duplicate model name", m.Name)
		}
		names[m.Name] = true
	}
	for i, grid := range c.Grid.Params {
		for k, values := range grid {
			if len(values) == 0 {
				return errors.NewValidationError(fmt.Sprintf("grid.params[%d].%s", i, k), "needs at least one value", values)
			}
		}
	}
	if len(c.Grid.Params) > 0 && c.Grid.Kind == "" {
		return errors.NewValidationError("grid.kind", "is required when grid.params is set", c.Grid.Kind)
	}
	if c.Grid.NJobs == 0 || c.Grid.NJobs < -1 {
		return errors.NewValidationError("grid.n_jobs", "must be positive or -1", c.Grid.NJobs)
	}
	return nil
}

// Rand returns a source seeded from Seed, or nil when no seed is set.
func (c *Config) Rand() *rand.Rand {
	if c.Seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*c.Seed, *c.Seed))
}
