// Package watcher delivers debounced change notifications for a single
// file.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the event bursts editors produce on save
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches one file and triggers a callback after changes
// settle. The parent directory is watched instead of the file itself,
// so editors that replace the file on save keep triggering events.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(string)
	onError  func(error)

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given file. onChange receives the
// watched path after each debounced change; onError may be nil.
func New(path string, debounce time.Duration, onChange func(string), onError func(error)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
	}, nil
}

// Path returns the absolute path of the watched file
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Start begins delivering change events until the watcher is closed
func (fw *FileWatcher) Start() {
	go fw.loop()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != fw.path {
				continue
			}
			// Write for in-place saves, Create for rename-replace saves
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.scheduleCallback()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if fw.onError != nil {
				fw.onError(err)
			}
		}
	}
}

// scheduleCallback restarts the debounce timer, so only the last event
// of a burst fires the callback
func (fw *FileWatcher) scheduleCallback() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.onChange(fw.path)
	})
}

// Close stops the watcher and any pending callback
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
