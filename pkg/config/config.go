// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/commit-semver/pkg/semver"
)

// Config holds the commit-semver configuration.
type Config struct {
	MessagesDir    string `yaml:"messagesDir"`
	CompletedDir   string `yaml:"completedDir"`
	DebounceMs     int    `yaml:"debounceMs"`
	ServerPort     int    `yaml:"serverPort"`
	InitialVersion string `yaml:"initialVersion"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		MessagesDir:    "messages",
		CompletedDir:   "messages/completed",
		DebounceMs:     500,
		ServerPort:     8080,
		InitialVersion: "v0.1.0",
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("messagesDir", validation.NotEmptyString(c.MessagesDir)),
		validation.Name("completedDir", validation.NotEmptyString(c.CompletedDir)),
		validation.Name("debounceMs", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.DebounceMs <= 0 {
				return errors.Errorf(ctx, "debounceMs must be positive, got %d", c.DebounceMs)
			}
			return nil
		})),
		validation.Name("serverPort", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.ServerPort <= 0 || c.ServerPort > 65535 {
				return errors.Errorf(ctx, "serverPort must be between 1 and 65535, got %d", c.ServerPort)
			}
			return nil
		})),
		validation.Name("initialVersion", validation.HasValidationFunc(func(ctx context.Context) error {
			if _, err := semver.Parse(ctx, c.InitialVersion); err != nil {
				return errors.Wrapf(ctx, err, "parse initialVersion '%s'", c.InitialVersion)
			}
			return nil
		})),
	}.Validate(ctx)
}
