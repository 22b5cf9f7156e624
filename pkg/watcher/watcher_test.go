package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.txt")
	if err := os.WriteFile(path, []byte("one"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 1)
	fw, err := New(path, 50*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	if err := os.WriteFile(path, []byte("two"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case p := <-changed:
		if p != fw.Path() {
			t.Errorf("callback path failed: expected %s, got %s", fw.Path(), p)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within 3s")
	}
}

func TestWatcherTriggersOnRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.txt")
	if err := os.WriteFile(path, []byte("one"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 1)
	fw, err := New(path, 50*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	// Simulate an editor save: write a temp file, rename it over the
	// watched file.
	tmp := filepath.Join(dir, "payload.txt.tmp")
	if err := os.WriteFile(tmp, []byte("two"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within 3s")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.txt")
	if err := os.WriteFile(path, []byte("one"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 1)
	fw, err := New(path, 20*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-changed:
		t.Error("sibling file change should not trigger the callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.txt")
	if err := os.WriteFile(path, []byte("0"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	calls := make(chan struct{}, 16)
	fw, err := New(path, 150*time.Millisecond, func(string) {
		calls <- struct{}{}
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	// A burst of writes inside the debounce window collapses into one
	// callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('0' + i)}, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within 3s")
	}

	select {
	case <-calls:
		t.Error("burst should collapse into a single callback")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "payload.txt"),
		DefaultDebounce, func(string) {}, nil)
	if err == nil {
		t.Error("New should fail when the parent directory does not exist")
	}
}
