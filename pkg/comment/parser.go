// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comment

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/bborbe/errors"
)

// ErrInvalidCommentFormat is returned when a comment has no valid
// <token>: or <token>! prefix.
var ErrInvalidCommentFormat = stderrors.New("invalid comment format")

// ErrUnexpectedSemanticType is returned when the prefix token is not
// one of fix, feat or refact.
var ErrUnexpectedSemanticType = stderrors.New("unexpected semantic type")

// Parse parses a commit comment into a SemanticComment.
//
// Expected format:
//
//	<kind>: this is a non breaking change.
//	<kind>! this is a breaking change.
//
// Where <kind> is one of fix, feat or refact. The delimiter character
// is not part of the description and surrounding whitespace is trimmed.
func Parse(ctx context.Context, comment string) (SemanticComment, error) {
	prefix, isBreaking, description, ok := splitPrefix(comment)
	if !ok {
		return SemanticComment{}, errors.Wrapf(ctx, ErrInvalidCommentFormat, "parse comment '%s'", comment)
	}

	kind, err := parseKind(ctx, prefix)
	if err != nil {
		return SemanticComment{}, err
	}

	return NewSemanticComment(
		strings.TrimSpace(description),
		SemanticType{
			Kind:     kind,
			Metadata: Metadata{IsBreaking: isBreaking},
		},
	), nil
}

// parseKind maps a prefix token onto a Kind. The match is case-sensitive.
func parseKind(ctx context.Context, prefix string) (Kind, error) {
	switch kind := Kind(strings.TrimSpace(prefix)); kind {
	case KindFix, KindFeature, KindRefactoring:
		return kind, nil
	default:
		return "", errors.Wrapf(ctx, ErrUnexpectedSemanticType, "'%s'", prefix)
	}
}

// splitPrefix scans for the first ':' or '!' terminating a run of one or
// more word characters starting at index 0. Any ':' or '!' after the first
// delimiter belongs to the description and is inert.
func splitPrefix(comment string) (string, bool, string, bool) {
	for i := 0; i < len(comment); i++ {
		c := comment[i]
		if c == ':' || c == '!' {
			if i == 0 {
				return "", false, "", false
			}
			return comment[:i], c == '!', comment[i+1:], true
		}
		if !isWordChar(c) {
			return "", false, "", false
		}
	}
	return "", false, "", false
}

// isWordChar reports whether c is alphanumeric or underscore.
func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}
