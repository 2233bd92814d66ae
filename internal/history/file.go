package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
)

// FileStore persists history as a JSON array. Writes happen on a background
// goroutine; snapshots queued while a write is in flight are coalesced so
// only the newest one reaches disk.
type FileStore struct {
	path string

	mu      sync.Mutex
	pending []Item
	dirty   bool
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewFileStore starts the writer for path.
func NewFileStore(path string) *FileStore {
	f := &FileStore{
		path: path,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go f.run()
	return f
}

// Path returns the backing file.
func (f *FileStore) Path() string { return f.path }

// Load reads the history file. A missing file yields an empty history.
func (f *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", f.path, err)
	}
	return items, nil
}

// Save queues items for writing and returns immediately.
func (f *FileStore) Save(items []Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.pending = items
	f.dirty = true
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// Close flushes any queued snapshot and stops the writer.
func (f *FileStore) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		<-f.done
		return nil
	}
	f.closed = true
	close(f.wake)
	f.mu.Unlock()
	<-f.done
	return nil
}

func (f *FileStore) run() {
	defer close(f.done)
	for range f.wake {
		f.flush()
	}
	f.flush()
}

func (f *FileStore) flush() {
	f.mu.Lock()
	if !f.dirty {
		f.mu.Unlock()
		return
	}
	items := f.pending
	f.pending = nil
	f.dirty = false
	f.mu.Unlock()

	if err := f.write(items); err != nil {
		events.History.SaveError(err)
		logging.Error(err)
	}
}

func (f *FileStore) write(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create history temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close history temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
