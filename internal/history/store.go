package history

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"github.com/google/uuid"
)

const (
	// DefaultMaxItems is the number of searches retained before the oldest
	// entries are evicted.
	DefaultMaxItems = 100
	// DefaultDisplayLimit is the number of matches controllers show.
	DefaultDisplayLimit = 10
)

// ErrEmptyQuery is returned by AddSearch for blank queries.
var ErrEmptyQuery = errors.New("search query is empty")

// Persister loads and stores the history. Save must not block the caller;
// failures are the persister's to report.
type Persister interface {
	Load() ([]Item, error)
	Save(items []Item)
}

// Options tune a Store. Zero values select the defaults.
type Options struct {
	MaxItems     int
	DisplayLimit int
	Now          func() time.Time
	NewID        func() string
}

// Store is the bounded search history shared by controllers. Items are kept
// oldest first; once MaxItems is exceeded the oldest entries are evicted.
type Store struct {
	mu        sync.Mutex
	items     []Item
	maxItems  int
	display   int
	now       func() time.Time
	newID     func() string
	persister Persister
}

// New returns an empty store backed by p. p may be nil.
func New(p Persister, opts Options) *Store {
	s := &Store{
		maxItems:  opts.MaxItems,
		display:   opts.DisplayLimit,
		now:       opts.Now,
		newID:     opts.NewID,
		persister: p,
	}
	if s.maxItems <= 0 {
		s.maxItems = DefaultMaxItems
	}
	if s.display <= 0 {
		s.display = DefaultDisplayLimit
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Open returns a store populated from p.
func Open(p Persister, opts Options) (*Store, error) {
	s := New(p, opts)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Load replaces the in-memory history with the persisted one. Rows with a
// blank query are dropped and the result is trimmed to MaxItems.
func (s *Store) Load() error {
	if s.persister == nil {
		return nil
	}
	loaded, err := s.persister.Load()
	if err != nil {
		return err
	}
	valid := make([]Item, 0, len(loaded))
	for _, item := range loaded {
		item.Query = strings.TrimSpace(item.Query)
		if item.Query == "" {
			continue
		}
		if item.ID == "" {
			item.ID = s.newID()
		}
		valid = append(valid, item)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp.Before(valid[j].Timestamp)
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = valid
	s.evictLocked()
	events.History.Load(len(loaded), len(s.items))
	return nil
}

// AddSearch records a search and returns the stored item.
func (s *Store) AddSearch(query, engine string) (Item, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Item{}, ErrEmptyQuery
	}
	item := Item{
		ID:        s.newID(),
		Query:     trimmed,
		Engine:    engine,
		Timestamp: s.now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.evictLocked()
	events.History.Add(item.ID, item.Query, item.Engine)
	s.saveLocked()
	return item, nil
}

// Matching returns up to limit items whose query contains query, compared
// case-insensitively, most recent first. An empty query matches everything.
func (s *Store) Matching(query string, limit int) []Item {
	if limit <= 0 {
		return []Item{}
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, 0, min(limit, len(s.items)))
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		item := s.items[i]
		if needle != "" && !strings.Contains(strings.ToLower(item.Query), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Remove deletes the item with id and reports whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		events.History.Remove(id)
		s.saveLocked()
		return true
	}
	return false
}

// Clear deletes every item.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	events.History.Clear()
	s.saveLocked()
}

// Items returns all items, most recent first.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}
	return out
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// MaxItems returns the retention cap.
func (s *Store) MaxItems() int { return s.maxItems }

// DisplayLimit returns the number of matches controllers should request.
func (s *Store) DisplayLimit() int { return s.display }

func (s *Store) evictLocked() {
	overflow := len(s.items) - s.maxItems
	if overflow <= 0 {
		return
	}
	evicted := make([]Item, len(s.items)-overflow)
	copy(evicted, s.items[overflow:])
	s.items = evicted
	events.History.Evict(overflow)
}

func (s *Store) saveLocked() {
	if s.persister == nil {
		return
	}
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	s.persister.Save(snapshot)
}
