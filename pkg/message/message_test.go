// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package message_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/message"
)

var _ = Describe("Message", func() {
	var (
		ctx          context.Context
		tempDir      string
		messagesDir  string
		completedDir string
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		tempDir, err = os.MkdirTemp("", "message-test-*")
		Expect(err).NotTo(HaveOccurred())

		messagesDir = filepath.Join(tempDir, "messages")
		completedDir = filepath.Join(messagesDir, "completed")
		Expect(os.MkdirAll(messagesDir, 0750)).To(Succeed())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	writeMessage := func(name string, content string) string {
		path := filepath.Join(messagesDir, name)
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	Describe("ListPending", func() {
		It("lists .msg files without terminal status", func() {
			writeMessage("001-fix.msg", "fix: fix here\n")
			writeMessage("002-feat.msg", "---\nstatus: pending\n---\nfeat: feature here\n")

			pending, err := message.ListPending(ctx, messagesDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(2))
			Expect(filepath.Base(pending[0].Path)).To(Equal("001-fix.msg"))
			Expect(filepath.Base(pending[1].Path)).To(Equal("002-feat.msg"))
		})

		It("skips classified and rejected files", func() {
			writeMessage("001-done.msg", "---\nstatus: classified\n---\nfix: done\n")
			writeMessage("002-bad.msg", "---\nstatus: rejected\n---\nnonsense\n")
			writeMessage("003-open.msg", "fix: open\n")

			pending, err := message.ListPending(ctx, messagesDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(filepath.Base(pending[0].Path)).To(Equal("003-open.msg"))
		})

		It("skips directories and non .msg files", func() {
			writeMessage("readme.md", "# not a message\n")
			Expect(os.MkdirAll(filepath.Join(messagesDir, "sub.msg"), 0750)).To(Succeed())

			pending, err := message.ListPending(ctx, messagesDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(BeEmpty())
		})

		It("sorts alphabetically by filename", func() {
			writeMessage("b.msg", "fix: b\n")
			writeMessage("a.msg", "fix: a\n")

			pending, err := message.ListPending(ctx, messagesDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Base(pending[0].Path)).To(Equal("a.msg"))
			Expect(filepath.Base(pending[1].Path)).To(Equal("b.msg"))
		})
	})

	Describe("Subject", func() {
		It("returns the first non-empty body line", func() {
			path := writeMessage("001.msg", "---\nstatus: pending\n---\n\nfeat! breaking feature.\n\nlonger body\n")

			subject, err := message.Subject(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject).To(Equal("feat! breaking feature."))
		})

		It("works without frontmatter", func() {
			path := writeMessage("002.msg", "fix: fix here\n")

			subject, err := message.Subject(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject).To(Equal("fix: fix here"))
		})

		It("returns ErrEmptyMessage for empty body", func() {
			path := writeMessage("003.msg", "---\nstatus: pending\n---\n\n  \n")

			_, err := message.Subject(ctx, path)
			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, message.ErrEmptyMessage)).To(BeTrue())
		})
	})

	Describe("SetStatus", func() {
		It("adds frontmatter to a file without one", func() {
			path := writeMessage("001.msg", "fix: fix here\n")

			Expect(message.SetStatus(ctx, path, message.StatusClassified)).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("status: classified"))
			Expect(string(content)).To(ContainSubstring("fix: fix here"))
		})

		It("updates existing frontmatter and preserves other fields", func() {
			path := writeMessage("002.msg", "---\nstatus: pending\nversion: v1.2.3\n---\nfix: fix here\n")

			Expect(message.SetStatus(ctx, path, message.StatusRejected)).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("status: rejected"))
			Expect(string(content)).To(ContainSubstring("version: v1.2.3"))
		})
	})

	Describe("SetVersion", func() {
		It("writes the computed version into the frontmatter", func() {
			path := writeMessage("001.msg", "---\nstatus: pending\n---\nfeat: feature here\n")

			Expect(message.SetVersion(ctx, path, "v1.3.0")).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("version: v1.3.0"))
		})
	})

	Describe("SetClassifiedAt", func() {
		It("writes the timestamp into the frontmatter", func() {
			path := writeMessage("001.msg", "fix: fix here\n")

			Expect(message.SetClassifiedAt(ctx, path, "2026-08-30T12:00:00Z")).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring(`classifiedAt: "2026-08-30T12:00:00Z"`))
		})
	})

	Describe("frontmatter rewrite", func() {
		It("preserves the body byte for byte across sequential updates", func() {
			path := writeMessage("001.msg", "fix: fix here\n")

			Expect(message.SetVersion(ctx, path, "v1.2.4")).To(Succeed())
			Expect(message.SetClassifiedAt(ctx, path, "2026-08-30T12:00:00Z")).To(Succeed())
			Expect(message.SetStatus(ctx, path, message.StatusRejected)).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal(
				"---\n" +
					"status: rejected\n" +
					"version: v1.2.4\n" +
					"classifiedAt: \"2026-08-30T12:00:00Z\"\n" +
					"---\n" +
					"fix: fix here\n",
			))
		})

		It("keeps a multi-line body stable when rewritten twice", func() {
			path := writeMessage(
				"001.msg",
				"---\nstatus: pending\n---\nfeat: feature here\n\nmore details\n",
			)

			Expect(message.SetVersion(ctx, path, "v2.0.0")).To(Succeed())
			Expect(message.SetVersion(ctx, path, "v2.1.0")).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal(
				"---\n" +
					"status: pending\n" +
					"version: v2.1.0\n" +
					"---\n" +
					"feat: feature here\n\nmore details\n",
			))
		})
	})

	Describe("MoveToCompleted", func() {
		It("sets terminal status and moves the file", func() {
			path := writeMessage("001.msg", "---\nstatus: pending\n---\nfix: fix here\n")

			Expect(message.MoveToCompleted(ctx, path, completedDir)).To(Succeed())

			_, err := os.Stat(path)
			Expect(os.IsNotExist(err)).To(BeTrue())

			moved := filepath.Join(completedDir, "001.msg")
			content, err := os.ReadFile(moved)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("status: classified"))
		})
	})

	Describe("Manager", func() {
		It("lists, stamps and completes via the directory bound manager", func() {
			writeMessage("001.msg", "refact: this is a refactor.\n")
			manager := message.NewManager(messagesDir, completedDir)

			pending, err := manager.ListPending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))

			subject, err := manager.Subject(ctx, pending[0].Path)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject).To(Equal("refact: this is a refactor."))

			Expect(manager.SetVersion(ctx, pending[0].Path, "v2.3.6")).To(Succeed())
			Expect(manager.MoveToCompleted(ctx, pending[0].Path)).To(Succeed())

			remaining, err := manager.ListPending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(BeEmpty())
		})
	})
})
