// Package config loads the wordlex configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the wordlex CLI configuration.
type Config struct {
	Solver    SolverConfig   `yaml:"solver"`
	Bench     BenchConfig    `yaml:"bench"`
	Wordlists WordlistConfig `yaml:"wordlists"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// SolverConfig holds engine settings.
type SolverConfig struct {
	// HardMode restricts guesses to words that are still viable answers.
	HardMode bool `yaml:"hard_mode"`
	// Classifier selects the feedback rule: naive (default) or strict.
	Classifier string `yaml:"classifier"`
	// Workers is the search parallelism; 0 uses all CPUs.
	Workers int `yaml:"workers"`
	// FirstGuess pins the opening guess instead of computing it.
	FirstGuess string `yaml:"first_guess"`
	// MaxPoolSample caps the candidates consulted per entropy computation;
	// 0 scores the full pool.
	MaxPoolSample int `yaml:"max_pool_sample"`
	// Weights tunes the scoring bias terms. Omit the block for the built-in
	// defaults; a present block is taken literally, so zeroes run pure
	// entropy.
	Weights *WeightsConfig `yaml:"weights"`
}

// WeightsConfig mirrors the scorer bias coefficients.
type WeightsConfig struct {
	InPoolBonus   float64 `yaml:"in_pool_bonus"`
	Prior         float64 `yaml:"prior"`
	PositionFreq  float64 `yaml:"position_freq"`
	RepeatPenalty float64 `yaml:"repeat_penalty"`
}

// BenchConfig holds benchmark sweep settings.
type BenchConfig struct {
	// Limit caps the number of answers swept; 0 sweeps everything.
	Limit int `yaml:"limit"`
	// Parallel is the number of concurrent episodes; 0 or 1 is sequential.
	Parallel int `yaml:"parallel"`
}

// WordlistConfig points at custom vocabulary files; empty paths use the
// embedded defaults.
type WordlistConfig struct {
	Guesses string `yaml:"guesses"`
	Answers string `yaml:"answers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Solver.Classifier == "" {
		c.Solver.Classifier = "naive"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Solver.Classifier {
	case "naive", "strict":
		// ok
	default:
		return fmt.Errorf("solver.classifier must be \"naive\" or \"strict\", got %q", c.Solver.Classifier)
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("solver.workers must not be negative, got %d", c.Solver.Workers)
	}
	if c.Solver.MaxPoolSample < 0 {
		return fmt.Errorf("solver.max_pool_sample must not be negative, got %d", c.Solver.MaxPoolSample)
	}
	if c.Bench.Limit < 0 {
		return fmt.Errorf("bench.limit must not be negative, got %d", c.Bench.Limit)
	}
	if c.Bench.Parallel < 0 {
		return fmt.Errorf("bench.parallel must not be negative, got %d", c.Bench.Parallel)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
