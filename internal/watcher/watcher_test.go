package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresAfterChange(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := New(dir, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "napoli.txt")
	if err := os.WriteFile(path, []byte("Margherita: tomato\n"), 0644); err != nil {
		t.Fatalf("failed to write menu file: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire after file change")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 16)
	w, err := New(dir, func() { fired <- struct{}{} })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.SetDebounce(200 * time.Millisecond)

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// A burst of writes inside the debounce window.
	path := filepath.Join(dir, "roma.txt")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("Diavola: salami\n"), 0644); err != nil {
			t.Fatalf("failed to write menu file: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not fire after burst")
	}

	// The burst must have collapsed into a single callback.
	select {
	case <-fired:
		t.Errorf("watcher fired more than once for a single burst")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherRejectsMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope"), func() {}); err == nil {
		t.Errorf("expected error for missing directory")
	}
}

func TestWatcherRejectsNilCallback(t *testing.T) {
	if _, err := New(t.TempDir(), nil); err == nil {
		t.Errorf("expected error for nil callback")
	}
}

func TestWatcherStopIsClean(t *testing.T) {
	w, err := New(t.TempDir(), func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}
