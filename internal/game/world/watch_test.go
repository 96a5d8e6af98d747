package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.yaml")
	if err := os.WriteFile(path, []byte(smallMap), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// Writes to neighbours are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(smallMap+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "map.yaml" {
			t.Errorf("event for %s, want map.yaml", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the map")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(smallMap), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events still open after Close")
	}
	if w.Changed() {
		t.Error("Changed() = true after Close")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "map.yaml")); err == nil {
		t.Error("NewWatcher() should fail when the directory does not exist")
	}
}

func TestWatcherDrainErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(smallMap), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := w.DrainErrors(); len(got) != 0 {
		t.Errorf("DrainErrors() = %v, want none", got)
	}

	overflow := errors.New("event queue overflow")
	w.Errors <- overflow
	got := w.DrainErrors()
	if len(got) != 1 || !errors.Is(got[0], overflow) {
		t.Errorf("DrainErrors() = %v, want [%v]", got, overflow)
	}
	if got := w.DrainErrors(); len(got) != 0 {
		t.Errorf("second DrainErrors() = %v, want none", got)
	}

	w.Close()
	if got := w.DrainErrors(); len(got) != 0 {
		t.Errorf("DrainErrors() after Close = %v, want none", got)
	}
}
