// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatcher(t *testing.T, debounce time.Duration) (*FileWatcher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0644))

	fw, err := New(path, debounce, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })
	return fw, path
}

func TestNew_DefaultDebounce(t *testing.T) {
	fw, path := newWatcher(t, 0)
	assert.Equal(t, DefaultDebounce, fw.debounce)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, fw.Path())
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "doc.json"), time.Second, zerolog.Nop())
	assert.Error(t, err)
}

func TestHandleEvent_FiltersOtherFilesAndOps(t *testing.T) {
	fw, _ := newWatcher(t, time.Second)

	fw.handleEvent(fsnotify.Event{Name: filepath.Join(filepath.Dir(fw.path), "other.json"), Op: fsnotify.Write})
	assert.True(t, fw.pending.IsZero())

	fw.handleEvent(fsnotify.Event{Name: fw.path, Op: fsnotify.Chmod})
	assert.True(t, fw.pending.IsZero())

	fw.handleEvent(fsnotify.Event{Name: fw.path, Op: fsnotify.Write})
	assert.False(t, fw.pending.IsZero())
}

func TestReady_WaitsForDebounce(t *testing.T) {
	fw, _ := newWatcher(t, 100*time.Millisecond)

	start := time.Now()
	fw.pending = start

	assert.False(t, fw.ready(start.Add(50*time.Millisecond)), "still settling")
	assert.True(t, fw.ready(start.Add(150*time.Millisecond)))
	assert.True(t, fw.pending.IsZero(), "reported change is cleared")
	assert.False(t, fw.ready(start.Add(200*time.Millisecond)), "nothing pending")
}

func TestReady_RateLimited(t *testing.T) {
	fw, _ := newWatcher(t, 100*time.Millisecond)

	start := time.Now()
	fw.pending = start
	require.True(t, fw.ready(start.Add(100*time.Millisecond)))

	// A second change has already settled but the limiter allows one
	// report per interval.
	fw.pending = start
	assert.False(t, fw.ready(start.Add(150*time.Millisecond)))
	assert.False(t, fw.pending.IsZero(), "limited change stays pending")
	assert.True(t, fw.ready(start.Add(250*time.Millisecond)))
}

func TestRun_ReportsWrite(t *testing.T) {
	fw, path := newWatcher(t, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(p string) { changed <- p })
	}()

	// Give the watcher a moment to start draining events.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"a":2}`), 0644))

	select {
	case got := <-changed:
		assert.Equal(t, fw.Path(), got)
	case <-ctx.Done():
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
