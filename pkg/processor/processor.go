// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package processor

import (
	"context"
	stderrors "errors"
	"log"
	"path/filepath"
	"time"

	"github.com/bborbe/errors"

	"github.com/bborbe/commit-semver/pkg/comment"
	"github.com/bborbe/commit-semver/pkg/git"
	"github.com/bborbe/commit-semver/pkg/message"
)

// Processor classifies pending message files.
//
//counterfeiter:generate -o ../../mocks/processor.go --fake-name Processor . Processor
type Processor interface {
	Process(ctx context.Context) error
}

// processor implements Processor.
type processor struct {
	messageManager message.Manager
	releaser       git.Releaser
	ready          <-chan struct{}
}

// NewProcessor creates a new Processor.
func NewProcessor(
	messageManager message.Manager,
	releaser git.Releaser,
	ready <-chan struct{},
) Processor {
	return &processor{
		messageManager: messageManager,
		releaser:       releaser,
		ready:          ready,
	}
}

// Process starts classifying pending messages.
// It handles existing pending messages on startup, then listens for signals from the watcher.
func (p *processor) Process(ctx context.Context) error {
	log.Printf("commit-semver: processor started")

	// Classify any existing pending messages first
	if err := p.classifyPending(ctx); err != nil {
		return errors.Wrap(ctx, err, "classify existing pending messages")
	}

	// Listen for ready signals from watcher
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("commit-semver: processor shutting down")
			return nil

		case <-p.ready:
			// Watcher saw file changes, check for new pending messages
			if err := p.classifyPending(ctx); err != nil {
				return errors.Wrap(ctx, err, "classify pending messages")
			}

		case <-ticker.C:
			// Periodic scan for pending messages (in case we missed a signal)
			if err := p.classifyPending(ctx); err != nil {
				return errors.Wrap(ctx, err, "periodic scan")
			}
		}
	}
}

// classifyPending scans for and classifies any existing pending messages.
func (p *processor) classifyPending(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Scan for pending messages
		pending, err := p.messageManager.ListPending(ctx)
		if err != nil {
			return errors.Wrap(ctx, err, "list pending messages")
		}

		// No more pending messages - done
		if len(pending) == 0 {
			return nil
		}

		// Pick first message (already sorted alphabetically)
		if err := p.classifyMessage(ctx, pending[0]); err != nil {
			return errors.Wrap(ctx, err, "classify message")
		}
	}
}

// classifyMessage classifies a single message file and stamps its frontmatter.
// Unclassifiable messages are marked rejected; only infrastructure errors abort.
func (p *processor) classifyMessage(ctx context.Context, msg message.Message) error {
	subject, err := p.messageManager.Subject(ctx, msg.Path)
	if err != nil {
		if stderrors.Is(err, message.ErrEmptyMessage) {
			return p.reject(ctx, msg.Path, err)
		}
		return errors.Wrap(ctx, err, "get message subject")
	}

	if _, err := comment.Parse(ctx, subject); err != nil {
		return p.reject(ctx, msg.Path, err)
	}

	nextVersion, err := p.releaser.NextVersion(ctx, subject)
	if err != nil {
		return errors.Wrap(ctx, err, "compute next version")
	}

	if err := p.messageManager.SetVersion(ctx, msg.Path, nextVersion); err != nil {
		return errors.Wrap(ctx, err, "set version")
	}

	classifiedAt := time.Now().UTC().Format(time.RFC3339)
	if err := p.messageManager.SetClassifiedAt(ctx, msg.Path, classifiedAt); err != nil {
		return errors.Wrap(ctx, err, "set classifiedAt")
	}

	if err := p.messageManager.MoveToCompleted(ctx, msg.Path); err != nil {
		return errors.Wrap(ctx, err, "move to completed")
	}

	log.Printf("commit-semver: classified %s -> %s", filepath.Base(msg.Path), nextVersion)
	return nil
}

// reject marks a message file as rejected.
func (p *processor) reject(ctx context.Context, path string, cause error) error {
	log.Printf("commit-semver: rejecting %s: %v", filepath.Base(path), cause)
	if err := p.messageManager.SetStatus(ctx, path, message.StatusRejected); err != nil {
		return errors.Wrap(ctx, err, "set rejected status")
	}
	return nil
}
