// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/commit-semver/pkg/semver"
)

// NextCommand executes the next subcommand.
//
//counterfeiter:generate -o ../../mocks/next-command.go --fake-name NextCommand . NextCommand
type NextCommand interface {
	Run(ctx context.Context, args []string) error
}

// nextCommand implements NextCommand.
type nextCommand struct {
	out io.Writer
}

// NewNextCommand creates a new NextCommand writing to out.
func NewNextCommand(out io.Writer) NextCommand {
	return &nextCommand{
		out: out,
	}
}

// Run classifies the comment, bumps the version and prints the result.
func (n *nextCommand) Run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("next", flag.ContinueOnError)
	versionArg := flags.String("version", "", "the current version, e.g. v1.2.3")
	commentArg := flags.String("comment", "", "the commit comment to classify")
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(ctx, err, "parse arguments")
	}

	if *versionArg == "" {
		return errors.Errorf(ctx, "version is required")
	}
	if *commentArg == "" {
		return errors.Errorf(ctx, "comment is required")
	}

	nextVersion, err := semver.NextVersionForComment(ctx, *versionArg, *commentArg)
	if err != nil {
		return errors.Wrap(ctx, err, "compute next version")
	}

	fmt.Fprintln(n.out, nextVersion)
	return nil
}
