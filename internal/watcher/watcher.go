// Package watcher re-runs the menu analysis when menu files change.
//
// Each change triggers a fresh one-shot batch analysis over the whole
// directory; nothing is updated incrementally. Editors typically produce
// bursts of filesystem events per save, so events are debounced before the
// callback fires.
package watcher

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last filesystem
// event before re-running the analysis.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a menu directory and invokes a callback after changes
// settle.
type Watcher struct {
	dir      string
	onChange func()
	debounce time.Duration

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a watcher for dir. onChange runs on the watcher goroutine
// after each debounced burst of changes.
func New(dir string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat menu directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	return &Watcher{
		dir:      dir,
		onChange: onChange,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce interval. Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.run()

	return nil
}

// run is the event loop. A timer restarts on every relevant event; the
// callback fires only when the timer is allowed to expire.
func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)

		case <-timer.C:
			pending = false
			w.onChange()

		case <-w.stopCh:
			if pending && !timer.Stop() {
				<-timer.C
			}
			return
		}
	}
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close filesystem watcher: %w", err)
	}
	return nil
}
