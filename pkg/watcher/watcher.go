// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bborbe/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches the messages directory and signals the processor
// when message files change.
//
//counterfeiter:generate -o ../../mocks/watcher.go --fake-name Watcher . Watcher
type Watcher interface {
	Watch(ctx context.Context) error
}

// watcher implements Watcher.
type watcher struct {
	messagesDir string
	ready       chan<- struct{}
	debounce    time.Duration
}

// NewWatcher creates a new Watcher with the specified debounce duration.
func NewWatcher(
	messagesDir string,
	ready chan<- struct{},
	debounce time.Duration,
) Watcher {
	return &watcher{
		messagesDir: messagesDir,
		ready:       ready,
		debounce:    debounce,
	}
}

// Watch starts watching the messages directory for file changes.
// Events are debounced per file and collapsed into a single ready signal.
func (w *watcher) Watch(ctx context.Context) error {
	// Set up file watcher
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(ctx, err, "create watcher")
	}
	defer fsWatcher.Close()

	// Get absolute path for messages directory
	absMessagesDir := w.getMessagesDir()

	// Watch the messages directory
	if err := fsWatcher.Add(absMessagesDir); err != nil {
		return errors.Wrap(ctx, err, "add watch path")
	}

	log.Printf("commit-semver: watcher started on %s", absMessagesDir)

	// Debounce map: file path -> timer (protected by mutex)
	var debounceMu sync.Mutex
	debounceTimers := make(map[string]*time.Timer)

	// Stop outstanding timers on exit so no callback fires after shutdown
	defer func() {
		debounceMu.Lock()
		for _, timer := range debounceTimers {
			timer.Stop()
		}
		debounceMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Printf("commit-semver: watcher shutting down")
			return nil

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return errors.Errorf(ctx, "watcher error channel closed")
			}
			log.Printf("commit-semver: watcher error: %v", err)
			return errors.Wrap(ctx, err, "watcher error")

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return errors.Errorf(ctx, "watcher events channel closed")
			}

			w.handleWatchEvent(event, &debounceMu, debounceTimers)
		}
	}
}

// handleWatchEvent processes a file system event with debouncing.
func (w *watcher) handleWatchEvent(
	event fsnotify.Event,
	debounceMu *sync.Mutex,
	debounceTimers map[string]*time.Timer,
) {
	// Only process .msg files on Write or Create events
	if !strings.HasSuffix(event.Name, ".msg") {
		return
	}
	if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 &&
		event.Op&fsnotify.Chmod == 0 {
		return
	}

	// Debounce: cancel existing timer for this file
	debounceMu.Lock()
	if timer, exists := debounceTimers[event.Name]; exists {
		timer.Stop()
	}

	// Set new timer
	eventName := event.Name // Capture for closure
	debounceTimers[eventName] = time.AfterFunc(w.debounce, func() {
		debounceMu.Lock()
		delete(debounceTimers, eventName)
		debounceMu.Unlock()
		w.signalReady()
	})
	debounceMu.Unlock()
}

// signalReady notifies the processor without blocking. A pending signal
// already covers the change.
func (w *watcher) signalReady() {
	select {
	case w.ready <- struct{}{}:
	default:
	}
}

// getMessagesDir returns the absolute messages directory.
func (w *watcher) getMessagesDir() string {
	if filepath.IsAbs(w.messagesDir) {
		return w.messagesDir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return w.messagesDir
	}
	return filepath.Join(cwd, w.messagesDir)
}
