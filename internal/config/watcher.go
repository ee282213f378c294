package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the default debounce interval for config file
// events.
const DefaultWatchDebounce = 500 * time.Millisecond

// Watcher reloads a dashboard configuration when its file changes.
// It watches the containing directory rather than the file itself, so
// editors that save through an atomic rename still trigger a reload.
type Watcher struct {
	watcher   *fsnotify.Watcher
	filePath  string
	debounce  time.Duration
	onReload  func() error
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// NewWatcher creates a watcher for the config file at path. onReload runs
// after each debounced change; onError receives reload and watch errors.
func NewWatcher(path string, debounce time.Duration, onReload func() error, onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:   fsw,
		filePath:  path,
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.watchLoop()
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	absPath, _ := filepath.Abs(w.filePath)
	baseName := filepath.Base(w.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			eventBase := filepath.Base(event.Name)
			eventAbs, _ := filepath.Abs(event.Name)
			if eventBase != baseName && eventAbs != absPath {
				continue
			}

			// Write, create, and rename cover both in-place saves and
			// atomic replacement.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if w.onReload != nil {
				if err := w.onReload(); err != nil && w.onError != nil {
					w.onError(err)
				}
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
