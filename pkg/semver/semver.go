// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bborbe/errors"

	"github.com/bborbe/commit-semver/pkg/comment"
)

// ErrInvalidVersionFormat is returned when a version string does not
// match v<major>.<minor>.<patch>.
var ErrInvalidVersionFormat = stderrors.New("invalid version format")

// ErrNumberConversion is returned when a matched version group fails
// integer conversion, e.g. on overflow.
var ErrNumberConversion = stderrors.New("version number conversion failed")

var versionRegexp = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

// SemanticVersion represents a parsed semantic version.
type SemanticVersion struct {
	Major int
	Minor int
	Patch int
}

// Parse parses "vX.Y.Z" into a SemanticVersion.
func Parse(ctx context.Context, version string) (SemanticVersion, error) {
	matches := versionRegexp.FindStringSubmatch(version)
	if matches == nil {
		return SemanticVersion{}, errors.Wrapf(ctx, ErrInvalidVersionFormat, "'%s'", version)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return SemanticVersion{}, errors.Wrapf(ctx, ErrNumberConversion, "major '%s'", matches[1])
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return SemanticVersion{}, errors.Wrapf(ctx, ErrNumberConversion, "minor '%s'", matches[2])
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return SemanticVersion{}, errors.Wrapf(ctx, ErrNumberConversion, "patch '%s'", matches[3])
	}

	return SemanticVersion{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

// String returns the "vX.Y.Z" representation.
func (v SemanticVersion) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpPatch returns a new version with patch incremented.
func (v SemanticVersion) BumpPatch() SemanticVersion {
	return SemanticVersion{
		Major: v.Major,
		Minor: v.Minor,
		Patch: v.Patch + 1,
	}
}

// BumpMinor returns a new version with minor incremented and patch reset to 0.
func (v SemanticVersion) BumpMinor() SemanticVersion {
	return SemanticVersion{
		Major: v.Major,
		Minor: v.Minor + 1,
		Patch: 0,
	}
}

// BumpMajor returns a new version with major incremented and minor and patch reset to 0.
func (v SemanticVersion) BumpMajor() SemanticVersion {
	return SemanticVersion{
		Major: v.Major + 1,
		Minor: 0,
		Patch: 0,
	}
}

// Less returns true if v is lower than other.
func (v SemanticVersion) Less(other SemanticVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Next applies the bump rule selected by the semantic comment:
// any breaking change bumps major, a non breaking feat bumps minor,
// a non breaking fix or refact bumps patch.
func (v SemanticVersion) Next(change comment.SemanticComment) SemanticVersion {
	if change.Type.IsBreaking() {
		return v.BumpMajor()
	}
	switch change.Type.Kind {
	case comment.KindFeature:
		return v.BumpMinor()
	default:
		return v.BumpPatch()
	}
}

// NextVersion parses currentVersion, applies the bump rule for change
// and returns the serialized next version.
func NextVersion(
	ctx context.Context,
	currentVersion string,
	change comment.SemanticComment,
) (string, error) {
	version, err := Parse(ctx, currentVersion)
	if err != nil {
		return "", errors.Wrap(ctx, err, "parse current version")
	}
	return version.Next(change).String(), nil
}

// NextVersionForComment classifies the comment and returns the next
// version for currentVersion.
func NextVersionForComment(
	ctx context.Context,
	currentVersion string,
	commitComment string,
) (string, error) {
	change, err := comment.Parse(ctx, commitComment)
	if err != nil {
		return "", errors.Wrap(ctx, err, "parse comment")
	}
	return NextVersion(ctx, currentVersion, change)
}
