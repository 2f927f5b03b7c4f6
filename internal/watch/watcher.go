// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch reports changes to a single file, debounced and rate
// limited, for the CLI's watch command.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultDebounce is used when a non-positive debounce is configured.
const DefaultDebounce = 250 * time.Millisecond

// pollInterval is how often pending changes are checked against the debounce.
const pollInterval = 50 * time.Millisecond

// =============================================================================
// FILE WATCHER
// =============================================================================

// FileWatcher watches one file. The parent directory is watched so that
// editors that save by rename are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	limiter  *rate.Limiter
	watcher  *fsnotify.Watcher
	log      zerolog.Logger

	mu      sync.Mutex
	pending time.Time // zero when nothing is pending
}

// New creates a watcher for path. Changes are reported at most once per
// debounce interval, after the file has been quiet for debounce.
func New(path string, debounce time.Duration, log zerolog.Logger) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Every(debounce), 1),
		watcher:  w,
		log:      log.With().Str("component", "watch").Str("file", abs).Logger(),
	}, nil
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Run blocks until ctx is done, calling onChange for each settled change.
// onChange runs on the Run goroutine, so calls never overlap.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	defer fw.watcher.Close()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn().Err(err).Msg("watcher error")

		case now := <-ticker.C:
			if fw.ready(now) {
				onChange(fw.path)
			}
		}
	}
}

// handleEvent marks the file pending on write, create or rename-into-place.
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != fw.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		fw.log.Debug().Str("op", event.Op.String()).Msg("ignored event")
		return
	}

	fw.mu.Lock()
	fw.pending = time.Now()
	fw.mu.Unlock()
	fw.log.Debug().Str("op", event.Op.String()).Msg("change pending")
}

// ready reports whether a pending change has settled and the rate limit
// allows reporting it. A reported change is cleared.
func (fw *FileWatcher) ready(now time.Time) bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.pending.IsZero() || now.Sub(fw.pending) < fw.debounce {
		return false
	}
	if !fw.limiter.AllowN(now, 1) {
		return false
	}
	fw.pending = time.Time{}
	return true
}

// Close releases the underlying watcher. Run also closes it on return.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
