// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"

	"github.com/bborbe/commit-semver/pkg/comment"
)

// ClassifyRequest represents the request body for POST /api/v1/classify.
type ClassifyRequest struct {
	Comment string `json:"comment"`
}

// NewClassifyHandler creates a handler for the /api/v1/classify endpoint.
// It responds with the semantic classification of the given commit comment.
func NewClassifyHandler() libhttp.WithError {
	return libhttp.WithErrorFunc(
		func(ctx context.Context, resp http.ResponseWriter, req *http.Request) error {
			if req.Method != http.MethodPost {
				return libhttp.WrapWithStatusCode(
					errors.New(ctx, "method not allowed"),
					http.StatusMethodNotAllowed,
				)
			}

			var classifyRequest ClassifyRequest
			if err := json.NewDecoder(req.Body).Decode(&classifyRequest); err != nil {
				return libhttp.WrapWithStatusCode(
					errors.Wrap(ctx, err, "decode request body"),
					http.StatusBadRequest,
				)
			}

			if classifyRequest.Comment == "" {
				return libhttp.WrapWithStatusCode(
					errors.New(ctx, "missing comment parameter"),
					http.StatusBadRequest,
				)
			}

			semanticComment, err := comment.Parse(ctx, classifyRequest.Comment)
			if err != nil {
				return libhttp.WrapWithStatusCode(
					errors.Wrap(ctx, err, "classify comment"),
					http.StatusUnprocessableEntity,
				)
			}

			resp.Header().Set("Content-Type", "application/json")
			return json.NewEncoder(resp).Encode(semanticComment)
		},
	)
}
