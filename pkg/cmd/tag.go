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

	"github.com/bborbe/commit-semver/pkg/git"
)

// TagCommand executes the tag subcommand.
//
//counterfeiter:generate -o ../../mocks/tag-command.go --fake-name TagCommand . TagCommand
type TagCommand interface {
	Run(ctx context.Context, args []string) error
}

// tagCommand implements TagCommand.
type tagCommand struct {
	out      io.Writer
	releaser git.Releaser
}

// NewTagCommand creates a new TagCommand writing to out.
func NewTagCommand(out io.Writer, releaser git.Releaser) TagCommand {
	return &tagCommand{
		out:      out,
		releaser: releaser,
	}
}

// Run computes the next version from the latest tag and the commit
// comment, creates the tag and optionally pushes it.
func (t *tagCommand) Run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("tag", flag.ContinueOnError)
	commentArg := flags.String("comment", "", "the commit comment, defaults to the HEAD commit subject")
	pushArg := flags.Bool("push", false, "push the created tag to origin")
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(ctx, err, "parse arguments")
	}

	commitComment := *commentArg
	if commitComment == "" {
		subject, err := t.releaser.HeadSubject(ctx)
		if err != nil {
			return errors.Wrap(ctx, err, "get head subject")
		}
		commitComment = subject
	}

	nextVersion, err := t.releaser.NextVersion(ctx, commitComment)
	if err != nil {
		return errors.Wrap(ctx, err, "compute next version")
	}

	if err := t.releaser.CreateTag(ctx, nextVersion); err != nil {
		return errors.Wrap(ctx, err, "create tag")
	}

	if *pushArg {
		if err := t.releaser.PushTag(ctx, nextVersion); err != nil {
			return errors.Wrap(ctx, err, "push tag")
		}
	}

	fmt.Fprintln(t.out, nextVersion)
	return nil
}
