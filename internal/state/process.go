package state

import (
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/process"
)

// ProcessStore holds the latest process snapshot delivered by the backend.
type ProcessStore interface {
	Entries() []process.Process
	SetEntries([]process.Process)
	Updated() time.Time
	Err() error
	SetErr(error)
}

type processStore struct {
	mu      sync.RWMutex
	entries []process.Process
	updated time.Time
	err     error
	now     func() time.Time
}

func NewProcessStore() ProcessStore {
	return &processStore{now: time.Now}
}

func (s *processStore) Entries() []process.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProcesses(s.entries)
}

func (s *processStore) SetEntries(entries []process.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = cloneProcesses(entries)
	s.updated = s.now()
	s.err = nil
}

func (s *processStore) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

func (s *processStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *processStore) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func cloneProcesses(entries []process.Process) []process.Process {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]process.Process, len(entries))
	copy(dup, entries)
	return dup
}
