package config

import (
	"fmt"
	"os"
	"time"

	"golang-ifconf/internal/pkg/interfaces"
	"golang-ifconf/internal/pkg/logging"
	"golang-ifconf/internal/pkg/preferences"

	"gopkg.in/yaml.v3"
)

const defaultLockTimeout = 5 * time.Second

// FilesConfig holds the paths of the managed files
type FilesConfig struct {
	Interfaces  string `yaml:"interfaces"`
	Preferences string `yaml:"preferences"`
}

// LockConfig controls the advisory lock taken around writes
type LockConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// ProbeConfig controls the optional DHCP probe
type ProbeConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Files   FilesConfig       `yaml:"files"`
	Lock    LockConfig        `yaml:"lock"`
	Probe   ProbeConfig       `yaml:"probe"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
		},
		Files: FilesConfig{
			Interfaces:  interfaces.DefaultPath,
			Preferences: preferences.DefaultPath,
		},
		Lock: LockConfig{
			Timeout: defaultLockTimeout,
		},
		Probe: ProbeConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Files.Interfaces == "" {
		return fmt.Errorf("files.interfaces: path is required")
	}
	if c.Files.Preferences == "" {
		return fmt.Errorf("files.preferences: path is required")
	}
	if c.Files.Interfaces == c.Files.Preferences {
		return fmt.Errorf("files.interfaces and files.preferences must differ")
	}
	if c.Lock.Timeout <= 0 {
		return fmt.Errorf("lock.timeout must be positive, got %s", c.Lock.Timeout)
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be positive, got %s", c.Probe.Timeout)
	}
	return nil
}
