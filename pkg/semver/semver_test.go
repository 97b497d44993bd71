// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/comment"
	"github.com/bborbe/commit-semver/pkg/semver"
)

var _ = Describe("SemanticVersion", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Parse", func() {
		Context("with valid versions", func() {
			It("parses v1.2.3", func() {
				version, err := semver.Parse(ctx, "v1.2.3")
				Expect(err).To(BeNil())
				Expect(version.Major).To(Equal(1))
				Expect(version.Minor).To(Equal(2))
				Expect(version.Patch).To(Equal(3))
			})

			It("parses v40.2.8", func() {
				version, err := semver.Parse(ctx, "v40.2.8")
				Expect(err).To(BeNil())
				Expect(version.Major).To(Equal(40))
				Expect(version.Minor).To(Equal(2))
				Expect(version.Patch).To(Equal(8))
			})

			It("parses v0.0.0", func() {
				version, err := semver.Parse(ctx, "v0.0.0")
				Expect(err).To(BeNil())
				Expect(version).To(Equal(semver.SemanticVersion{}))
			})

			It("parses v1.300.3", func() {
				version, err := semver.Parse(ctx, "v1.300.3")
				Expect(err).To(BeNil())
				Expect(version.Minor).To(Equal(300))
			})
		})

		Context("with invalid versions", func() {
			It("returns ErrInvalidVersionFormat for version-1", func() {
				_, err := semver.Parse(ctx, "version-1")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("version-1"))
			})

			It("returns ErrInvalidVersionFormat for missing prefix", func() {
				_, err := semver.Parse(ctx, "1.2.3")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
			})

			It("returns ErrInvalidVersionFormat for incomplete version v1.2", func() {
				_, err := semver.Parse(ctx, "v1.2")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
			})

			It("returns ErrInvalidVersionFormat for extra group v1.2.3.4", func() {
				_, err := semver.Parse(ctx, "v1.2.3.4")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
			})

			It("returns ErrInvalidVersionFormat for non numeric group", func() {
				_, err := semver.Parse(ctx, "v1.two.3")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
			})

			It("returns ErrInvalidVersionFormat for empty string", func() {
				_, err := semver.Parse(ctx, "")
				Expect(err).NotTo(BeNil())
			})
		})

		Context("with overflowing groups", func() {
			It("returns ErrNumberConversion for a component beyond integer range", func() {
				_, err := semver.Parse(ctx, "v99999999999999999999999999.0.0")
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrNumberConversion)).To(BeTrue())
			})
		})
	})

	Describe("String", func() {
		It("converts {1, 2, 3} to v1.2.3", func() {
			version := semver.SemanticVersion{Major: 1, Minor: 2, Patch: 3}
			Expect(version.String()).To(Equal("v1.2.3"))
		})

		It("round-trips parse and format", func() {
			version, err := semver.Parse(ctx, "v10.20.30")
			Expect(err).To(BeNil())
			Expect(version.String()).To(Equal("v10.20.30"))
		})
	})

	Describe("Bump", func() {
		It("BumpPatch increments patch", func() {
			version := semver.SemanticVersion{Major: 1, Minor: 2, Patch: 3}
			Expect(version.BumpPatch().String()).To(Equal("v1.2.4"))
		})

		It("BumpMinor increments minor and resets patch", func() {
			version := semver.SemanticVersion{Major: 1, Minor: 2, Patch: 3}
			Expect(version.BumpMinor().String()).To(Equal("v1.3.0"))
		})

		It("BumpMajor increments major and resets minor and patch", func() {
			version := semver.SemanticVersion{Major: 1, Minor: 2, Patch: 3}
			Expect(version.BumpMajor().String()).To(Equal("v2.0.0"))
		})
	})

	Describe("Less", func() {
		It("orders by major first", func() {
			v1 := semver.SemanticVersion{Major: 0, Minor: 99, Patch: 99}
			v2 := semver.SemanticVersion{Major: 1, Minor: 0, Patch: 0}
			Expect(v1.Less(v2)).To(BeTrue())
			Expect(v2.Less(v1)).To(BeFalse())
		})

		It("orders by minor when major is equal", func() {
			v1 := semver.SemanticVersion{Major: 1, Minor: 9, Patch: 0}
			v2 := semver.SemanticVersion{Major: 1, Minor: 10, Patch: 0}
			Expect(v1.Less(v2)).To(BeTrue())
		})

		It("returns false for equal versions", func() {
			v1 := semver.SemanticVersion{Major: 1, Minor: 2, Patch: 3}
			Expect(v1.Less(v1)).To(BeFalse())
		})
	})

	Describe("NextVersion", func() {
		parse := func(commitComment string) comment.SemanticComment {
			result, err := comment.Parse(context.Background(), commitComment)
			Expect(err).To(BeNil())
			return result
		}

		Context("with non breaking changes", func() {
			It("bumps patch for a fix", func() {
				next, err := semver.NextVersion(ctx, "v2.3.5", parse("fix: this is a fix"))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v2.3.6"))
			})

			It("bumps patch for a refactoring", func() {
				next, err := semver.NextVersion(ctx, "v2.3.5", parse("refact: this is a refactor."))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v2.3.6"))
			})

			It("bumps minor and resets patch for a feature", func() {
				next, err := semver.NextVersion(ctx, "v2.3.5", parse("feat: this is a feature"))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v2.4.0"))
			})
		})

		Context("with breaking changes", func() {
			It("bumps major for a breaking feature", func() {
				next, err := semver.NextVersion(ctx, "v2.3.5", parse("feat! breaking feature."))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v3.0.0"))
			})

			It("bumps major for a breaking fix", func() {
				next, err := semver.NextVersion(ctx, "v30.3.5", parse("fix! this is a breaking fix."))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v31.0.0"))
			})

			It("bumps major for a breaking refactoring", func() {
				next, err := semver.NextVersion(ctx, "v2.3.5", parse("refact! breaking refactor."))
				Expect(err).To(BeNil())
				Expect(next).To(Equal("v3.0.0"))
			})
		})

		Context("with invalid current version", func() {
			It("returns ErrInvalidVersionFormat", func() {
				_, err := semver.NextVersion(ctx, "version-1", parse("fix: this is a fix"))
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
			})
		})
	})

	Describe("NextVersionForComment", func() {
		It("classifies and bumps in one call", func() {
			next, err := semver.NextVersionForComment(ctx, "v2.3.5", "feat! breaking feature.")
			Expect(err).To(BeNil())
			Expect(next).To(Equal("v3.0.0"))
		})

		It("propagates comment parse errors", func() {
			_, err := semver.NextVersionForComment(ctx, "v2.3.5", "wop! some work around.")
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, comment.ErrUnexpectedSemanticType)).To(BeTrue())
		})

		It("propagates version parse errors", func() {
			_, err := semver.NextVersionForComment(ctx, "v34.34", "fix: this is a fix")
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, semver.ErrInvalidVersionFormat)).To(BeTrue())
		})
	})
})
