// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/commit-semver/pkg/semver"
)

// Releaser determines and creates semantic version tags based on
// commit comments.
//
//counterfeiter:generate -o ../../mocks/releaser.go --fake-name Releaser . Releaser
type Releaser interface {
	LatestTag(ctx context.Context) (string, error)
	HeadSubject(ctx context.Context) (string, error)
	NextVersion(ctx context.Context, commitComment string) (string, error)
	CreateTag(ctx context.Context, tag string) error
	PushTag(ctx context.Context, tag string) error
}

// releaser implements Releaser using the git binary.
type releaser struct {
	initialVersion string
	dir            string
}

// NewReleaser creates a Releaser operating on the current directory.
// initialVersion is used when the repository has no tags yet.
func NewReleaser(initialVersion string) Releaser {
	return &releaser{
		initialVersion: initialVersion,
	}
}

// NewReleaserForDir creates a Releaser operating on the given repository directory.
func NewReleaserForDir(initialVersion string, dir string) Releaser {
	return &releaser{
		initialVersion: initialVersion,
		dir:            dir,
	}
}

// LatestTag returns the latest reachable tag. Returns an empty string
// if the repository has no tags.
func (r *releaser) LatestTag(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--abbrev=0")
	cmd.Dir = r.dir
	output, err := cmd.Output()
	if err != nil {
		// No tags exist yet
		return "", nil
	}
	return strings.TrimSpace(string(output)), nil
}

// HeadSubject returns the subject line of the HEAD commit.
func (r *releaser) HeadSubject(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--pretty=%s")
	cmd.Dir = r.dir
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(ctx, err, "run git log")
	}
	return strings.TrimSpace(string(output)), nil
}

// NextVersion returns the next version for the repository: the initial
// version when no tag exists, otherwise the latest tag bumped according
// to the commit comment classification.
func (r *releaser) NextVersion(ctx context.Context, commitComment string) (string, error) {
	latestTag, err := r.LatestTag(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "get latest tag")
	}
	if latestTag == "" {
		return r.initialVersion, nil
	}
	return semver.NextVersionForComment(ctx, latestTag, commitComment)
}

// CreateTag creates a tag on HEAD.
func (r *releaser) CreateTag(ctx context.Context, tag string) error {
	// #nosec G204 -- tag is generated by version bumping
	cmd := exec.CommandContext(ctx, "git", "tag", tag)
	cmd.Dir = r.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "run git tag: %s", stderr.String())
	}
	return nil
}

// PushTag pushes a tag to the remote repository.
func (r *releaser) PushTag(ctx context.Context, tag string) error {
	// #nosec G204 -- tag is generated by version bumping
	cmd := exec.CommandContext(ctx, "git", "push", "origin", tag)
	cmd.Dir = r.dir
	if err := cmd.Run(); err != nil {
		return errors.Wrap(ctx, err, "run git push tag")
	}
	return nil
}
