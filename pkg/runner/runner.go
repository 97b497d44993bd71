// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/commit-semver/pkg/lock"
	"github.com/bborbe/commit-semver/pkg/processor"
	"github.com/bborbe/commit-semver/pkg/server"
	"github.com/bborbe/commit-semver/pkg/watcher"
)

// Runner orchestrates the classification daemon.
type Runner interface {
	Run(ctx context.Context) error
}

// runner implements Runner.
type runner struct {
	messagesDir  string
	completedDir string
	locker       lock.Locker
	watcher      watcher.Watcher
	processor    processor.Processor
	server       server.Server
}

// NewRunner creates a new Runner.
func NewRunner(
	messagesDir string,
	completedDir string,
	locker lock.Locker,
	watcher watcher.Watcher,
	processor processor.Processor,
	server server.Server,
) Runner {
	return &runner{
		messagesDir:  messagesDir,
		completedDir: completedDir,
		locker:       locker,
		watcher:      watcher,
		processor:    processor,
		server:       server,
	}
}

// Run executes the daemon:
// 1. Acquire instance lock to prevent concurrent runs
// 2. Create the messages and completed directories
// 3. Run watcher, processor and server in parallel using run.CancelOnFirstError
func (r *runner) Run(ctx context.Context) error {
	// Acquire instance lock
	if err := r.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if err := r.locker.Release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("commit-semver: failed to release lock: %v", err)
		}
	}()

	log.Printf("commit-semver: acquired lock .commit-semver.lock")

	// Set up signal handling
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create directories if they don't exist
	if err := r.createDirectories(ctx); err != nil {
		return errors.Wrap(ctx, err, "create directories")
	}

	log.Printf("commit-semver: watching %s for commit messages...", r.messagesDir)

	// Run watcher, processor, and server in parallel
	// If any fails, context cancels the others automatically
	runners := []run.Func{
		r.watcher.Watch,
		r.processor.Process,
	}
	if r.server != nil {
		runners = append(runners, r.server.ListenAndServe)
	}
	return run.CancelOnFirstError(ctx, runners...)
}

// createDirectories creates the messages and completed directories if they don't exist.
func (r *runner) createDirectories(ctx context.Context) error {
	dirs := []string{r.messagesDir, r.completedDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.Wrapf(ctx, err, "create directory %s", dir)
		}
	}
	return nil
}
