// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	libhttp "github.com/bborbe/http"

	"github.com/bborbe/commit-semver/pkg/message"
)

// NewRouter creates the HTTP router with all API endpoints.
func NewRouter(messageManager message.Manager) http.Handler {
	router := http.NewServeMux()
	router.Handle("/health", libhttp.NewErrorHandler(NewHealthHandler()))
	router.Handle("/api/v1/classify", libhttp.NewErrorHandler(NewClassifyHandler()))
	router.Handle("/api/v1/next", libhttp.NewErrorHandler(NewNextHandler()))
	router.Handle("/api/v1/pending", NewPendingHandler(messageManager))
	return router
}
