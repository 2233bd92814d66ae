package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "history.json")
	fs := NewFileStore(path)
	s := New(fs, testOptions(0))
	if _, err := s.AddSearch("golang", "google"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddSearch("bubbletea", "bing"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := fs.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := NewFileStore(path)
	t.Cleanup(func() { reopened.Close() })
	loaded, err := Open(reopened, testOptions(0))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	items := loaded.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Query != "bubbletea" || items[0].Engine != "bing" {
		t.Fatalf("unexpected newest item %+v", items[0])
	}
	if items[1].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to survive round trip")
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	t.Cleanup(func() { fs.Close() })
	items, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestFileStoreCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileStore(path)
	t.Cleanup(func() { fs.Close() })
	if _, err := fs.Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFileStoreSaveAfterCloseIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	fs := NewFileStore(path)
	if err := fs.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	fs.Save([]Item{{ID: "x", Query: "late", Timestamp: time.Now()}})
	if err := fs.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err %v", err)
	}
}
