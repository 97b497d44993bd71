// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comment

import (
	"context"
	"encoding/json"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Kind classifies the intent of a commit comment.
const (
	KindFix         Kind = "fix"
	KindFeature     Kind = "feat"
	KindRefactoring Kind = "refact"
)

// AvailableKinds contains all valid kind values.
var AvailableKinds = Kinds{KindFix, KindFeature, KindRefactoring}

// Kind is a string-based enum for the comment prefix vocabulary.
type Kind string

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Validate(ctx context.Context) error {
	if !AvailableKinds.Contains(k) {
		return errors.Wrapf(ctx, validation.Error, "unknown kind '%s'", k)
	}
	return nil
}

func (k Kind) Ptr() *Kind {
	return &k
}

// Name returns the variant name used in the JSON representation.
func (k Kind) Name() string {
	switch k {
	case KindFix:
		return "Fix"
	case KindFeature:
		return "Feature"
	case KindRefactoring:
		return "Refactoring"
	default:
		return string(k)
	}
}

// Kinds is a collection of Kind values.
type Kinds []Kind

func (k Kinds) Contains(kind Kind) bool {
	return collection.Contains(k, kind)
}

// Metadata holds metadata about a semantic type.
type Metadata struct {
	IsBreaking bool `json:"is_breaking"`
}

// SemanticType pairs a change kind with its metadata.
// Equality is structural: kind and breaking flag must match.
type SemanticType struct {
	Kind     Kind
	Metadata Metadata
}

// IsBreaking returns true if the change breaks API or behavior.
func (s SemanticType) IsBreaking() bool {
	return s.Metadata.IsBreaking
}

// MarshalJSON serializes the type as {"<Variant>": {"is_breaking": bool}}.
func (s SemanticType) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Metadata{
		s.Kind.Name(): s.Metadata,
	})
}

// UnmarshalJSON deserializes the {"<Variant>": {"is_breaking": bool}} form.
func (s *SemanticType) UnmarshalJSON(data []byte) error {
	var variants map[string]Metadata
	if err := json.Unmarshal(data, &variants); err != nil {
		return err
	}
	for name, metadata := range variants {
		for _, kind := range AvailableKinds {
			if kind.Name() == name {
				s.Kind = kind
				s.Metadata = metadata
				return nil
			}
		}
		return errors.Errorf(context.Background(), "unknown semantic type '%s'", name)
	}
	return errors.Errorf(context.Background(), "empty semantic type")
}

// SemanticComment is the parsed form of a commit comment: the trimmed
// description text paired with its semantic type.
type SemanticComment struct {
	Comment string       `json:"comment"`
	Type    SemanticType `json:"semantic_type"`
}

// NewSemanticComment creates a SemanticComment.
func NewSemanticComment(comment string, semanticType SemanticType) SemanticComment {
	return SemanticComment{
		Comment: comment,
		Type:    semanticType,
	}
}
