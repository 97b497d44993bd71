// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/cmd"
	"github.com/bborbe/commit-semver/pkg/semver"
)

var _ = Describe("NextCommand", func() {
	var (
		ctx     context.Context
		out     *bytes.Buffer
		nextCmd cmd.NextCommand
	)

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		nextCmd = cmd.NewNextCommand(out)
	})

	It("prints the next version for a breaking feature", func() {
		err := nextCmd.Run(ctx, []string{"--version", "v2.3.5", "--comment", "feat! breaking feature."})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("v3.0.0\n"))
	})

	It("prints the next version for a breaking fix", func() {
		err := nextCmd.Run(ctx, []string{"--version", "v30.3.5", "--comment", "fix! this is a breaking fix."})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("v31.0.0\n"))
	})

	It("prints the next version for a non breaking refactoring", func() {
		err := nextCmd.Run(ctx, []string{"--version", "v2.3.5", "--comment", "refact: this is a refactor."})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("v2.3.6\n"))
	})

	It("fails without version", func() {
		err := nextCmd.Run(ctx, []string{"--comment", "fix: some fix."})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("version is required"))
	})

	It("fails without comment", func() {
		err := nextCmd.Run(ctx, []string{"--version", "v1.0.0"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("comment is required"))
	})

	It("fails for invalid version format", func() {
		err := nextCmd.Run(ctx, []string{"--version", "version-1", "--comment", "fix: some fix."})
		Expect(err).To(HaveOccurred())
		Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
	})
})
