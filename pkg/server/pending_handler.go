// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"github.com/bborbe/commit-semver/pkg/message"
)

// PendingMessage represents a single pending message file.
type PendingMessage struct {
	File string `json:"file"`
}

// NewPendingHandler creates a handler for the /api/v1/pending endpoint.
func NewPendingHandler(messageManager message.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		pending, err := messageManager.ListPending(ctx)
		if err != nil {
			log.Printf("commit-semver: failed to list pending messages: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		result := make([]PendingMessage, 0, len(pending))
		for _, msg := range pending {
			result = append(result, PendingMessage{File: filepath.Base(msg.Path)})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Printf("commit-semver: failed to encode pending messages: %v", err)
		}
	}
}
