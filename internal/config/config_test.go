package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_Success(t *testing.T) {
	configPath := writeConfig(t, `input_file: puzzles/day06.txt
log_level: debug
marker:
  packet: 5
`)
	t.Setenv("AOC_CONFIG_PATH", configPath)
	t.Setenv("AOC_INPUT_FILE", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "puzzles/day06.txt", cfg.InputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Marker.Packet)
	// Message should fall back to the default
	assert.Equal(t, 14, cfg.Marker.Message)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("AOC_INPUT_FILE", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultInputFile, cfg.InputFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, MarkerConfig{Packet: 4, Message: 14}, cfg.Marker)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", writeConfig(t, "input_file: from-yaml.txt\nlog_level: warn\n"))
	t.Setenv("AOC_INPUT_FILE", "from-env.txt")
	t.Setenv("AOC_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.InputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", writeConfig(t, "marker:\n  packet: [1, 2\n"))

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{InputFile: "", Marker: MarkerConfig{Packet: 4, Message: 14}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{InputFile: "input.txt", Marker: MarkerConfig{Packet: -1, Message: 14}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{InputFile: "input.txt", Marker: MarkerConfig{Packet: 4, Message: 14}}
	assert.NoError(t, cfg.Validate())
}
