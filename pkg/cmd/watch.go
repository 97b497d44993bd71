// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"

	"github.com/bborbe/commit-semver/pkg/config"
	"github.com/bborbe/commit-semver/pkg/git"
	"github.com/bborbe/commit-semver/pkg/lock"
	"github.com/bborbe/commit-semver/pkg/message"
	"github.com/bborbe/commit-semver/pkg/processor"
	"github.com/bborbe/commit-semver/pkg/runner"
	"github.com/bborbe/commit-semver/pkg/server"
	"github.com/bborbe/commit-semver/pkg/watcher"
)

// WatchCommand executes the watch subcommand.
type WatchCommand interface {
	Run(ctx context.Context, args []string) error
}

// watchCommand implements WatchCommand.
type watchCommand struct{}

// NewWatchCommand creates a new WatchCommand.
func NewWatchCommand() WatchCommand {
	return &watchCommand{}
}

// Run starts the classification daemon: it loads the configuration,
// wires watcher, processor and HTTP server together and runs them
// until the context is cancelled.
func (w *watchCommand) Run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("watch", flag.ContinueOnError)
	configArg := flags.String("config", "", "path to the config file")
	if err := flags.Parse(args); err != nil {
		return errors.Wrap(ctx, err, "parse arguments")
	}

	loader := config.NewLoader()
	if *configArg != "" {
		loader = config.NewLoaderWithPath(*configArg)
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "load config")
	}

	messageManager := message.NewManager(cfg.MessagesDir, cfg.CompletedDir)
	releaser := git.NewReleaser(cfg.InitialVersion)

	ready := make(chan struct{}, 1)
	messageWatcher := watcher.NewWatcher(
		cfg.MessagesDir,
		ready,
		time.Duration(cfg.DebounceMs)*time.Millisecond,
	)
	messageProcessor := processor.NewProcessor(messageManager, releaser, ready)

	router := server.NewRouter(messageManager)
	httpServer := server.NewServer(
		libhttp.NewServer(fmt.Sprintf(":%d", cfg.ServerPort), router),
	)

	return runner.NewRunner(
		cfg.MessagesDir,
		cfg.CompletedDir,
		lock.NewLocker("."),
		messageWatcher,
		messageProcessor,
		httpServer,
	).Run(ctx)
}
