// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/commit-semver/pkg/comment"
)

// ClassifyCommand executes the classify subcommand.
//
//counterfeiter:generate -o ../../mocks/classify-command.go --fake-name ClassifyCommand . ClassifyCommand
type ClassifyCommand interface {
	Run(ctx context.Context, args []string) error
}

// classifyCommand implements ClassifyCommand.
type classifyCommand struct {
	out io.Writer
}

// NewClassifyCommand creates a new ClassifyCommand writing to out.
func NewClassifyCommand(out io.Writer) ClassifyCommand {
	return &classifyCommand{
		out: out,
	}
}

// Run parses the comment flag, classifies it and prints the result.
func (c *classifyCommand) Run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("classify", flag.ContinueOnError)
	commentArg := flags.String("comment", "", "the commit comment to classify")
	jsonOutput := flags.Bool("json", false, "print the classification as json")
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(ctx, err, "parse arguments")
	}

	if *commentArg == "" {
		return errors.Errorf(ctx, "comment is required")
	}

	semanticComment, err := comment.Parse(ctx, *commentArg)
	if err != nil {
		return errors.Wrap(ctx, err, "classify comment")
	}

	if *jsonOutput {
		if err := json.NewEncoder(c.out).Encode(semanticComment); err != nil {
			return errors.Wrap(ctx, err, "encode classification")
		}
		return nil
	}

	fmt.Fprintf(c.out, "kind: %s\n", semanticComment.Type.Kind.Name())
	fmt.Fprintf(c.out, "breaking: %t\n", semanticComment.Type.IsBreaking())
	fmt.Fprintf(c.out, "comment: %s\n", semanticComment.Comment)
	return nil
}
