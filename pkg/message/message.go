// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package message

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// ErrEmptyMessage is returned when a message file is empty or contains only whitespace.
var ErrEmptyMessage = stderrors.New("message file is empty")

// Message statuses.
const (
	StatusPending    Status = "pending"
	StatusClassified Status = "classified"
	StatusRejected   Status = "rejected"
)

// Status is a string-based enum for message file states.
type Status string

func (s Status) String() string {
	return string(s)
}

// Message represents a commit message file with YAML frontmatter.
type Message struct {
	Path   string
	Status Status
}

// Frontmatter represents the YAML frontmatter in a message file.
type Frontmatter struct {
	Status       string `yaml:"status"`
	Version      string `yaml:"version,omitempty"`
	ClassifiedAt string `yaml:"classifiedAt,omitempty"`
}

// ListPending scans a directory for .msg files that still need classification.
// Files are picked up UNLESS they have an explicit terminal status
// (classified, rejected). Sorted alphabetically by filename.
func ListPending(ctx context.Context, dir string) ([]Message, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "read directory")
	}

	var pending []Message
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".msg") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fm, err := readFrontmatter(ctx, path)
		if err != nil {
			// Skip files with read errors
			continue
		}

		if fm.Status == string(StatusClassified) || fm.Status == string(StatusRejected) {
			continue
		}
		pending = append(pending, Message{
			Path:   path,
			Status: StatusPending,
		})
	}

	// Sort alphabetically by filename
	sort.Slice(pending, func(i, j int) bool {
		return filepath.Base(pending[i].Path) < filepath.Base(pending[j].Path)
	})

	return pending, nil
}

// Subject returns the commit comment of a message file: the first
// non-empty line of the body below the frontmatter.
// Returns ErrEmptyMessage if the body is empty or contains only whitespace.
func Subject(ctx context.Context, path string) (string, error) {
	// #nosec G304 -- path is from ListPending which scans the messages directory
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(ctx, err, "open file")
	}
	defer func() { _ = file.Close() }()

	var fm Frontmatter
	body, err := frontmatter.Parse(file, &fm)
	if err != nil {
		return "", errors.Wrap(ctx, err, "parse frontmatter")
	}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(ctx, err, "scan body")
	}

	return "", ErrEmptyMessage
}

// readFrontmatter reads the frontmatter of a message file. A file without
// a frontmatter block yields the zero Frontmatter.
func readFrontmatter(ctx context.Context, path string) (*Frontmatter, error) {
	// #nosec G304 -- path is from ListPending which scans the messages directory
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "open file")
	}
	defer func() { _ = file.Close() }()

	var fm Frontmatter
	if _, err := frontmatter.Parse(file, &fm); err != nil {
		return nil, errors.Wrap(ctx, err, "parse frontmatter")
	}
	return &fm, nil
}

// SetStatus updates the status field in a message file's frontmatter.
// If the file has no frontmatter, adds frontmatter with the status field.
func SetStatus(ctx context.Context, path string, status Status) error {
	return setField(ctx, path, func(fm *Frontmatter) {
		fm.Status = string(status)
	})
}

// SetVersion updates the version field in a message file's frontmatter.
func SetVersion(ctx context.Context, path string, version string) error {
	return setField(ctx, path, func(fm *Frontmatter) {
		fm.Version = version
	})
}

// SetClassifiedAt updates the classifiedAt field in a message file's frontmatter.
func SetClassifiedAt(ctx context.Context, path string, classifiedAt string) error {
	return setField(ctx, path, func(fm *Frontmatter) {
		fm.ClassifiedAt = classifiedAt
	})
}

// setField updates a field in a message file's frontmatter using the provided setter function.
// If the file has no frontmatter, adds frontmatter with the field.
func setField(ctx context.Context, path string, setter func(*Frontmatter)) error {
	// #nosec G304 -- path is from ListPending which scans the messages directory
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(ctx, err, "read file")
	}

	// Split frontmatter from content
	yamlBytes, body, hasFM := splitFrontmatter(content)

	var fm Frontmatter
	if hasFM {
		if err := yaml.Unmarshal(yamlBytes, &fm); err != nil {
			return errors.Wrap(ctx, err, "parse frontmatter")
		}
	} else {
		body = content
	}

	setter(&fm)

	yamlData, err := yaml.Marshal(&fm)
	if err != nil {
		return errors.Wrap(ctx, err, "marshal frontmatter")
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlData)
	buf.WriteString("---\n")
	buf.Write(body)

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return errors.Wrap(ctx, err, "write file")
	}

	return nil
}

// MoveToCompleted sets status to "classified" and moves a message file to completedDir.
// This ensures files in completedDir always carry the terminal status.
func MoveToCompleted(ctx context.Context, path string, completedDir string) error {
	if err := SetStatus(ctx, path, StatusClassified); err != nil {
		return errors.Wrap(ctx, err, "set classified status")
	}

	if err := os.MkdirAll(completedDir, 0750); err != nil {
		return errors.Wrap(ctx, err, "create completed directory")
	}

	dest := filepath.Join(completedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return errors.Wrap(ctx, err, "move file")
	}

	return nil
}

// splitFrontmatter splits file content into frontmatter YAML and body.
// Returns (yamlBytes, body, hasFrontmatter).
// Frontmatter must start with "---\n" at the very beginning of the file
// and end with "\n---\n" on its own line.
func splitFrontmatter(content []byte) ([]byte, []byte, bool) {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, false
	}

	rest := content[4:] // skip opening "---\n"
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx >= 0 {
		// The body starts after the full 5 byte closing marker, otherwise
		// every rewrite would prepend the marker's newline to the body.
		return rest[:idx], rest[idx+5:], true
	}

	// Check for "---" at end of file (no trailing newline)
	if bytes.HasSuffix(rest, []byte("\n---")) {
		return rest[:len(rest)-4], nil, true
	}

	return nil, content, false
}
