package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/pocketdim/internal/lattice"
)

const (
	DefaultDimension = 3
	DefaultRounds    = 6
	DefaultDataDir   = ".pocketdim"
	DefaultLogLevel  = "info"
)

type Config struct {
	Dimension int           `yaml:"dimension"`
	Rounds    int           `yaml:"rounds"`
	Workers   int           `yaml:"workers"`
	Input     string        `yaml:"input"`
	DataDir   string        `yaml:"data_dir"`
	Verify    bool          `yaml:"verify"`
	Logging   LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	// Level is "info", "debug" or "trace".
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Dimension: DefaultDimension,
		Rounds:    DefaultRounds,
		Workers:   runtime.NumCPU(),
		DataDir:   DefaultDataDir,
		Logging:   LoggingConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base, so keys the file leaves
// out keep base's values. base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadOver] failed to read file: %s", path)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "[LoadOver] failed to unmarshal data from file: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[LoadOver] %s", path)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "[Save] failed to write file: %s", path)
}

// Validate reports values the simulator would reject, as lattice.ErrConfig.
func (c *Config) Validate() error {
	if err := lattice.CheckDimension(c.Dimension); err != nil {
		return err
	}
	if err := lattice.CheckRounds(c.Rounds); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.Wrapf(lattice.ErrConfig, "workers must be non-negative, got %d", c.Workers)
	}
	return nil
}
