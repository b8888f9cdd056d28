// Package config loads the optional petrel.yml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultOutputDir is where generated recipe documents land unless
// overridden by flag or config.
const DefaultOutputDir = ".rewrite"

// Config holds project-level settings. Every field has a working zero
// default; a missing petrel.yml is not an error.
type Config struct {
	OutputDir        string
	TargetVersion    string // pinned Gradle target, overrides the built-in default
	GradleVersion    string // pinned detected version, skips the connector entirely
	DisabledPatterns []string
	Workers          int
}

// Default returns the configuration used when no petrel.yml exists.
func Default() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
	}
}

// Load reads petrel.yml from the project root, with PETREL_* environment
// variable overrides. A missing file yields defaults.
func Load(root string) (*Config, error) {
	if _, err := os.Stat(filepath.Join(root, "petrel.yml")); os.IsNotExist(err) {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigName("petrel")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.AutomaticEnv()
	v.SetEnvPrefix("PETREL")

	v.SetDefault("output.dir", DefaultOutputDir)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read petrel.yml: %w", err)
	}

	return &Config{
		OutputDir:        v.GetString("output.dir"),
		TargetVersion:    v.GetString("gradle.target"),
		GradleVersion:    v.GetString("gradle.version"),
		DisabledPatterns: v.GetStringSlice("patterns.disabled"),
		Workers:          v.GetInt("scan.workers"),
	}, nil
}
