package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultConfigPath = "configs/aoc.yaml"
	DefaultInputFile  = "input.txt"
	DefaultLogLevel   = "info"
)

// Config holds the run settings shared by every puzzle command.
type Config struct {
	InputFile string       `yaml:"input_file"`
	LogLevel  string       `yaml:"log_level"`
	Marker    MarkerConfig `yaml:"marker"`
}

// MarkerConfig sets the window lengths used by the day 6 marker finder.
type MarkerConfig struct {
	Packet  int `yaml:"packet"`
	Message int `yaml:"message"`
}

// Load reads the YAML file pointed at by AOC_CONFIG_PATH (or the default
// path), applies environment overrides and defaults, and validates the result.
// A missing config file is not an error.
func Load() (*Config, error) {
	path := getEnv("AOC_CONFIG_PATH", DefaultConfigPath)

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.InputFile = getEnv("AOC_INPUT_FILE", c.InputFile)
	c.LogLevel = getEnv("AOC_LOG_LEVEL", c.LogLevel)
}

func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Marker.Packet == 0 {
		cfg.Marker.Packet = 4
	}
	if cfg.Marker.Message == 0 {
		cfg.Marker.Message = 14
	}
}

func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("input file is not configured")
	}
	if c.Marker.Packet < 0 || c.Marker.Message < 0 {
		return fmt.Errorf("marker lengths must be positive, got packet=%d message=%d", c.Marker.Packet, c.Marker.Message)
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
