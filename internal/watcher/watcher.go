// Package watcher re-runs the comparison when a watched stub file changes.
package watcher

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StubWatcher watches a fixed set of files and fires a callback after a
// quiet period. Parent directories are watched rather than the files
// themselves, so editors that replace files on save are still seen.
type StubWatcher struct {
	watcher       *fsnotify.Watcher
	files         map[string]bool // absolute paths being watched
	debounceTime  time.Duration
	callback      func()
	ctx           context.Context
	cancel        context.CancelFunc
	debounceTimer *time.Timer
	timerMu       sync.Mutex
	stopOnce      sync.Once
	doneCh        chan struct{}
}

// New creates a watcher for the given files.
func New(files []string) (*StubWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fileSet := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsWatcher.Close()
			return nil, err
		}
		fileSet[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}

	return &StubWatcher{
		watcher:      fsWatcher,
		files:        fileSet,
		debounceTime: 500 * time.Millisecond,
		doneCh:       make(chan struct{}),
	}, nil
}

// Start begins watching. The callback fires once per debounced burst of
// changes to any watched file.
func (w *StubWatcher) Start(ctx context.Context, callback func()) error {
	if callback == nil {
		return nil
	}

	w.callback = callback
	w.ctx, w.cancel = context.WithCancel(ctx)

	go w.watch()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *StubWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.doneCh
		} else {
			close(w.doneCh)
		}
		err = w.watcher.Close()
	})
	return err
}

// watch is the main event loop.
func (w *StubWatcher) watch() {
	defer close(w.doneCh)

	fireCh := make(chan struct{}, 1)

	for {
		select {
		case <-w.ctx.Done():
			w.stopDebounceTimer()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldProcessEvent(event) {
				continue
			}
			w.resetDebounceTimer(fireCh)

		case <-fireCh:
			w.callback()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Stub watcher error: %v", err)
		}
	}
}

// shouldProcessEvent keeps only write/create/rename events on watched files.
func (w *StubWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// resetDebounceTimer resets the debounce timer, properly stopping the old one.
func (w *StubWatcher) resetDebounceTimer(fireCh chan struct{}) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		if !w.debounceTimer.Stop() {
			select {
			case <-w.debounceTimer.C:
			default:
			}
		}
	}

	w.debounceTimer = time.AfterFunc(w.debounceTime, func() {
		select {
		case fireCh <- struct{}{}:
		default:
		}
	})
}

func (w *StubWatcher) stopDebounceTimer() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
}
