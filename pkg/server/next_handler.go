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

	"github.com/bborbe/commit-semver/pkg/semver"
)

// NextRequest represents the request body for POST /api/v1/next.
type NextRequest struct {
	Version string `json:"version"`
	Comment string `json:"comment"`
}

// NextResponse represents the response for POST /api/v1/next.
type NextResponse struct {
	Version string `json:"version"`
}

// NewNextHandler creates a handler for the /api/v1/next endpoint.
// It responds with the next semantic version for the given version and commit comment.
func NewNextHandler() libhttp.WithError {
	return libhttp.WithErrorFunc(
		func(ctx context.Context, resp http.ResponseWriter, req *http.Request) error {
			if req.Method != http.MethodPost {
				return libhttp.WrapWithStatusCode(
					errors.New(ctx, "method not allowed"),
					http.StatusMethodNotAllowed,
				)
			}

			var nextRequest NextRequest
			if err := json.NewDecoder(req.Body).Decode(&nextRequest); err != nil {
				return libhttp.WrapWithStatusCode(
					errors.Wrap(ctx, err, "decode request body"),
					http.StatusBadRequest,
				)
			}

			if nextRequest.Version == "" {
				return libhttp.WrapWithStatusCode(
					errors.New(ctx, "missing version parameter"),
					http.StatusBadRequest,
				)
			}
			if nextRequest.Comment == "" {
				return libhttp.WrapWithStatusCode(
					errors.New(ctx, "missing comment parameter"),
					http.StatusBadRequest,
				)
			}

			nextVersion, err := semver.NextVersionForComment(
				ctx,
				nextRequest.Version,
				nextRequest.Comment,
			)
			if err != nil {
				return libhttp.WrapWithStatusCode(
					errors.Wrap(ctx, err, "compute next version"),
					http.StatusUnprocessableEntity,
				)
			}

			resp.Header().Set("Content-Type", "application/json")
			return json.NewEncoder(resp).Encode(NextResponse{Version: nextVersion})
		},
	)
}
