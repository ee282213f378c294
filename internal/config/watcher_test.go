package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.lua")
	if err := os.WriteFile(path, []byte("dashboard.config = {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func() error {
		select {
		case reloaded <- struct{}{}:
		default:
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("dashboard.config = { width = 640 }"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never fired")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.lua")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func() error {
		reloaded <- struct{}{}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	other := filepath.Join(dir, "unrelated.txt")
	if err := os.WriteFile(other, []byte("noise"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.lua")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func() error {
		select {
		case reloaded <- struct{}{}:
		default:
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	// Save the way vim does: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, "dashboard.lua.tmp")
	if err := os.WriteFile(tmp, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("atomic rename did not trigger a reload")
	}
}

func TestWatcherErrorsOnMissingDir(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/dir/x.lua", 0, nil, nil); err == nil {
		t.Error("missing directory should fail watcher creation")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.lua")

	w, err := NewWatcher(path, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	w.Stop()
	w.Stop()
}
