package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a callback whenever a watched file is written. Rapid
// event bursts from editors that truncate and rewrite are coalesced by a
// debounce interval.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	callback func(string)
	path     string
	timer    *time.Timer
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{fsw: fsw, debounce: debounce}, nil
}

// Watch registers the file and the callback invoked on each change.
// The parent directory is watched rather than the file itself, so
// rename-and-replace saves keep triggering.
func (w *Watcher) Watch(path string, callback func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.path = absPath
	w.callback = callback
	w.mu.Unlock()
	return nil
}

// Start begins delivering change events until the watcher is closed
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.handleChange(event.Name)
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}()
}

func (w *Watcher) handleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.callback == nil || path != w.path {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	callback, watched := w.callback, w.path
	w.timer = time.AfterFunc(w.debounce, func() {
		callback(watched)
	})
}

// Close stops the watcher and releases its resources
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
