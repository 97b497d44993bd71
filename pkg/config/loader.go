// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name Loader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
	required   bool
}

// NewLoader creates a Loader that reads from .commit-semver.yaml in the current directory.
// A missing file yields the defaults.
func NewLoader() Loader {
	return &fileLoader{
		configPath: ".commit-semver.yaml",
	}
}

// NewLoaderWithPath creates a Loader that reads from the given path.
// The file was asked for explicitly, so it must exist.
func NewLoaderWithPath(configPath string) Loader {
	return &fileLoader{
		configPath: configPath,
		required:   true,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	MessagesDir    *string `yaml:"messagesDir"`
	CompletedDir   *string `yaml:"completedDir"`
	DebounceMs     *int    `yaml:"debounceMs"`
	ServerPort     *int    `yaml:"serverPort"`
	InitialVersion *string `yaml:"initialVersion"`
}

// Load reads the config file, merges with defaults, validates, and returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	// Start with defaults
	cfg := Defaults()

	// Try to read config file
	// #nosec G304 -- configPath is a fixed name or an operator flag, not request input
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) && !l.required {
			// Default config file doesn't exist - return defaults
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	// Parse YAML into partial config to preserve defaults for missing fields
	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	// Merge non-nil values onto defaults
	if partial.MessagesDir != nil {
		cfg.MessagesDir = *partial.MessagesDir
	}
	if partial.CompletedDir != nil {
		cfg.CompletedDir = *partial.CompletedDir
	}
	if partial.DebounceMs != nil {
		cfg.DebounceMs = *partial.DebounceMs
	}
	if partial.ServerPort != nil {
		cfg.ServerPort = *partial.ServerPort
	}
	if partial.InitialVersion != nil {
		cfg.InitialVersion = *partial.InitialVersion
	}

	// Validate merged config
	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}
