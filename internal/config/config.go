package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ListConfig struct {
	Pattern   string `yaml:"pattern,omitempty"`
	Recursive bool   `yaml:"recursive,omitempty"`
}

type TransferConfig struct {
	Overwrite     bool   `yaml:"overwrite,omitempty"`
	PreserveTimes bool   `yaml:"preserve_times,omitempty"`
	ReleaseWait   string `yaml:"release_wait,omitempty"`
}

type ProjectConfig struct {
	List     ListConfig     `yaml:"list"`
	Transfer TransferConfig `yaml:"transfer"`
	Verbose  bool           `yaml:"verbose,omitempty"`
}

const ConfigFileName = "fsio.yaml"

// Environment variables consulted by applyEnv. They override values
// from the config file, which in turn override the built-in defaults.
const (
	EnvPattern     = "FSIO_PATTERN"
	EnvRecursive   = "FSIO_RECURSIVE"
	EnvOverwrite   = "FSIO_OVERWRITE"
	EnvReleaseWait = "FSIO_RELEASE_WAIT"
	EnvVerbose     = "FSIO_VERBOSE"
)

// Default returns the configuration used when no fsio.yaml is present.
func Default() *ProjectConfig {
	return &ProjectConfig{
		List: ListConfig{
			Pattern: fsio.DefaultWildcard,
		},
		Transfer: TransferConfig{
			PreserveTimes: true,
			ReleaseWait:   fsio.DefaultReleaseTimeout.String(),
		},
	}
}

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads fsio.yaml from sourcePath, falling back to the
// built-in defaults when the file is absent. Environment overrides are
// applied in both cases.
func LoadOrDefault(sourcePath string) (*ProjectConfig, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReleaseWait parses the configured release wait duration.
func (c *ProjectConfig) ReleaseWait() (time.Duration, error) {
	if c.Transfer.ReleaseWait == "" {
		return fsio.DefaultReleaseTimeout, nil
	}
	d, err := time.ParseDuration(c.Transfer.ReleaseWait)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid release_wait %q: %v",
			fsio.ErrInvalidConfig, c.Transfer.ReleaseWait, err)
	}
	return d, nil
}

func (c *ProjectConfig) Validate() error {
	if _, err := c.ReleaseWait(); err != nil {
		return err
	}
	return nil
}

func (c *ProjectConfig) applyEnv() error {
	if v := os.Getenv(EnvPattern); v != "" {
		c.List.Pattern = v
	}
	if v := os.Getenv(EnvReleaseWait); v != "" {
		c.Transfer.ReleaseWait = v
		if _, err := c.ReleaseWait(); err != nil {
			return err
		}
	}
	for _, b := range []struct {
		env    string
		target *bool
	}{
		{EnvRecursive, &c.List.Recursive},
		{EnvOverwrite, &c.Transfer.Overwrite},
		{EnvVerbose, &c.Verbose},
	} {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q",
				fsio.ErrInvalidConfig, b.env, v)
		}
		*b.target = parsed
	}
	return nil
}
