// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/commit-semver/pkg/version"
)

// VersionCommand executes the version subcommand.
type VersionCommand interface {
	Run(ctx context.Context, args []string) error
}

// versionCommand implements VersionCommand.
type versionCommand struct {
	out    io.Writer
	getter version.Getter
}

// NewVersionCommand creates a new VersionCommand writing to out.
func NewVersionCommand(out io.Writer, getter version.Getter) VersionCommand {
	return &versionCommand{
		out:    out,
		getter: getter,
	}
}

// Run prints the build version.
func (v *versionCommand) Run(ctx context.Context, args []string) error {
	fmt.Fprintln(v.out, v.getter.Get())
	return nil
}
