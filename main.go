// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bborbe/commit-semver/pkg/cmd"
	"github.com/bborbe/commit-semver/pkg/config"
	"github.com/bborbe/commit-semver/pkg/git"
	"github.com/bborbe/commit-semver/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "classify":
		return cmd.NewClassifyCommand(os.Stdout).Run(ctx, args)
	case "next":
		return cmd.NewNextCommand(os.Stdout).Run(ctx, args)
	case "tag":
		cfg, err := config.NewLoader().Load(ctx)
		if err != nil {
			return err
		}
		releaser := git.NewReleaser(cfg.InitialVersion)
		return cmd.NewTagCommand(os.Stdout, releaser).Run(ctx, args)
	case "watch":
		return cmd.NewWatchCommand().Run(ctx, args)
	case "version":
		getter := version.NewGetter(version.Version)
		return cmd.NewVersionCommand(os.Stdout, getter).Run(ctx, args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: commit-semver <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  classify  classify a commit comment")
	fmt.Fprintln(os.Stderr, "  next      compute the next version for a comment")
	fmt.Fprintln(os.Stderr, "  tag       create the next version tag in the current repository")
	fmt.Fprintln(os.Stderr, "  watch     run the classification daemon")
	fmt.Fprintln(os.Stderr, "  version   print the build version")
}
