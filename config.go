package clusters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InitStrategy selects how initial means are chosen.
type InitStrategy string

const (
	// InitRandom draws every mean uniformly from the data, with replacement.
	InitRandom InitStrategy = "random"

	// InitKMeansPlusPlus spreads the means with D^2 weighting.
	InitKMeansPlusPlus InitStrategy = "kmeans++"
)

const (
	DefaultClusters       = 2
	DefaultIterations     = 200
	DefaultTolerance      = 1e-3
	DefaultRegularization = 1e-6
)

// Config is the constructor-time configuration of a GaussianMixtureModel.
// It is fixed for the lifetime of the model.
type Config struct {
	Clusters       int          `yaml:"k"`
	Iterations     int          `yaml:"max_iterations"`
	Tolerance      float64      `yaml:"tolerance"`
	Regularization float64      `yaml:"regularization"`
	Init           InitStrategy `yaml:"init"`
	Workers        int          `yaml:"workers"`

	// Seed makes initialization reproducible. A nil seed is drawn from the clock.
	Seed *uint64 `yaml:"seed,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Clusters:       DefaultClusters,
		Iterations:     DefaultIterations,
		Tolerance:      DefaultTolerance,
		Regularization: DefaultRegularization,
		Init:           InitRandom,
		Workers:        1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Clusters < 1:
		return ErrZeroClusters
	case c.Iterations < 1:
		return ErrZeroIterations
	case c.Tolerance < 0:
		return ErrNegativeTol
	case c.Regularization < 0:
		return ErrNegativeReg
	}

	switch c.Init {
	case "", InitRandom, InitKMeansPlusPlus:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInit, c.Init)
	}

	return nil
}
