// Package config loads gomirror settings. Precedence is built-in
// defaults, then the YAML config file, then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gomirror/pkg/mesh"
)

// Config holds all tool settings.
type Config struct {
	Mirror  MirrorConfig  `yaml:"mirror"`
	Logging LoggingConfig `yaml:"logging"`
}

// MirrorConfig holds pipeline and output defaults.
type MirrorConfig struct {
	Epsilon       float64 `yaml:"epsilon"`
	VertexNormals bool    `yaml:"vertex_normals"`
	Jobs          int     `yaml:"jobs"`
	ASCII         bool    `yaml:"ascii"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mirror: MirrorConfig{
			Epsilon:       mesh.DefaultEpsilon,
			VertexNormals: true,
			Jobs:          1,
			ASCII:         false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Load loads configuration from the given path, or from the standard
// locations when path is empty. A missing file is not an error; defaults
// are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile looks for the config in standard locations.
func findConfigFile() string {
	candidates := []string{"./gomirror.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "gomirror", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Options converts the mirror settings into pipeline options.
func (c *Config) Options() mesh.Options {
	return mesh.Options{
		Epsilon:       c.Mirror.Epsilon,
		VertexNormals: c.Mirror.VertexNormals,
		Parallelism:   c.Mirror.Jobs,
	}
}
