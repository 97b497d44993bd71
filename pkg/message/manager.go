// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package message

import (
	"context"
)

// Manager manages commit message files in the messages directory.
//
//counterfeiter:generate -o ../../mocks/message-manager.go --fake-name MessageManager . Manager
type Manager interface {
	ListPending(ctx context.Context) ([]Message, error)
	Subject(ctx context.Context, path string) (string, error)
	SetStatus(ctx context.Context, path string, status Status) error
	SetVersion(ctx context.Context, path string, version string) error
	SetClassifiedAt(ctx context.Context, path string, classifiedAt string) error
	MoveToCompleted(ctx context.Context, path string) error
}

// manager implements Manager.
type manager struct {
	messagesDir  string
	completedDir string
}

// NewManager creates a Manager for the given directories.
func NewManager(messagesDir string, completedDir string) Manager {
	return &manager{
		messagesDir:  messagesDir,
		completedDir: completedDir,
	}
}

// ListPending lists message files awaiting classification.
func (m *manager) ListPending(ctx context.Context) ([]Message, error) {
	return ListPending(ctx, m.messagesDir)
}

// Subject returns the commit comment of a message file.
func (m *manager) Subject(ctx context.Context, path string) (string, error) {
	return Subject(ctx, path)
}

// SetStatus updates the status field of a message file.
func (m *manager) SetStatus(ctx context.Context, path string, status Status) error {
	return SetStatus(ctx, path, status)
}

// SetVersion updates the version field of a message file.
func (m *manager) SetVersion(ctx context.Context, path string, version string) error {
	return SetVersion(ctx, path, version)
}

// SetClassifiedAt updates the classifiedAt field of a message file.
func (m *manager) SetClassifiedAt(ctx context.Context, path string, classifiedAt string) error {
	return SetClassifiedAt(ctx, path, classifiedAt)
}

// MoveToCompleted moves a classified message file to the completed directory.
func (m *manager) MoveToCompleted(ctx context.Context, path string) error {
	return MoveToCompleted(ctx, path, m.completedDir)
}
