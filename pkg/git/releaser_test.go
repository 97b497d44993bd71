// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/git"
)

var _ = Describe("Releaser", func() {
	var (
		ctx      context.Context
		repoDir  string
		releaser git.Releaser
	)

	runGit := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = repoDir
		output, err := cmd.CombinedOutput()
		Expect(err).NotTo(HaveOccurred(), string(output))
	}

	commitFile := func(name string, subject string) {
		path := filepath.Join(repoDir, name)
		Expect(os.WriteFile(path, []byte(name), 0600)).To(Succeed())
		runGit("add", name)
		runGit("commit", "-m", subject)
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		repoDir, err = os.MkdirTemp("", "releaser-test-*")
		Expect(err).NotTo(HaveOccurred())

		runGit("init", "-q")
		runGit("config", "user.email", "test@example.com")
		runGit("config", "user.name", "Test")

		releaser = git.NewReleaserForDir("v0.1.0", repoDir)
	})

	AfterEach(func() {
		_ = os.RemoveAll(repoDir)
	})

	Describe("LatestTag", func() {
		It("returns empty string when no tags exist", func() {
			commitFile("a.txt", "fix: initial commit")

			tag, err := releaser.LatestTag(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal(""))
		})

		It("returns the latest tag", func() {
			commitFile("a.txt", "fix: initial commit")
			runGit("tag", "v1.2.3")

			tag, err := releaser.LatestTag(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal("v1.2.3"))
		})
	})

	Describe("HeadSubject", func() {
		It("returns the subject of the HEAD commit", func() {
			commitFile("a.txt", "feat! breaking feature.")

			subject, err := releaser.HeadSubject(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject).To(Equal("feat! breaking feature."))
		})
	})

	Describe("NextVersion", func() {
		It("returns the initial version when no tags exist", func() {
			commitFile("a.txt", "fix: initial commit")

			next, err := releaser.NextVersion(ctx, "fix: initial commit")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal("v0.1.0"))
		})

		It("bumps patch for a non breaking fix", func() {
			commitFile("a.txt", "fix: initial commit")
			runGit("tag", "v1.2.3")

			next, err := releaser.NextVersion(ctx, "fix: some fix.")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal("v1.2.4"))
		})

		It("bumps major for a breaking comment", func() {
			commitFile("a.txt", "fix: initial commit")
			runGit("tag", "v2.3.5")

			next, err := releaser.NextVersion(ctx, "feat! breaking feature.")
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal("v3.0.0"))
		})

		It("fails for an unclassifiable comment", func() {
			commitFile("a.txt", "fix: initial commit")
			runGit("tag", "v1.0.0")

			_, err := releaser.NextVersion(ctx, "wop! some work around.")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateTag", func() {
		It("creates a tag on HEAD", func() {
			commitFile("a.txt", "fix: initial commit")

			Expect(releaser.CreateTag(ctx, "v0.1.0")).To(Succeed())

			tag, err := releaser.LatestTag(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal("v0.1.0"))
		})

		It("fails when the tag already exists", func() {
			commitFile("a.txt", "fix: initial commit")
			runGit("tag", "v0.1.0")

			Expect(releaser.CreateTag(ctx, "v0.1.0")).NotTo(Succeed())
		})
	})
})
