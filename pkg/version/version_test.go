// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/version"
)

var _ = Describe("Getter", func() {
	It("returns the provided version", func() {
		getter := version.NewGetter("v1.2.3")
		Expect(getter.Get()).To(Equal("v1.2.3"))
	})

	It("defaults to dev when built without ldflags", func() {
		getter := version.NewGetter(version.Version)
		Expect(getter.Get()).To(Equal("dev"))
	})
})
