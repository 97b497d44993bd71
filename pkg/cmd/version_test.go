// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/mocks"
	"github.com/bborbe/commit-semver/pkg/cmd"
)

var _ = Describe("VersionCommand", func() {
	var out *bytes.Buffer
	var getter *mocks.VersionGetter

	BeforeEach(func() {
		out = &bytes.Buffer{}
		getter = &mocks.VersionGetter{}
	})

	It("prints the version", func() {
		getter.GetReturns("v1.2.3")

		command := cmd.NewVersionCommand(out, getter)
		Expect(command.Run(context.Background(), nil)).To(Succeed())

		Expect(out.String()).To(Equal("v1.2.3\n"))
	})
})
