package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsAfterProfileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("show_separators: true\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte("show_separators: false\n"), 0o644); err != nil {
		t.Fatalf("rewrite profile: %v", err)
	}

	select {
	case evt := <-w.Events():
		if evt.Group != Group {
			t.Fatalf("unexpected group %q", evt.Group)
		}
		if evt.Err != nil {
			t.Fatalf("unexpected event error: %v", evt.Err)
		}
		if evt.Organizer.ShowSeparators {
			t.Fatalf("reloaded profile not reflected in event")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for profile event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %+v", evt)
	case <-time.After(250 * time.Millisecond):
	}
}
