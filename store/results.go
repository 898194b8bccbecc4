package store

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/midisolo/model"
)

type entry struct {
	result    *model.Result
	createdAt time.Time
}

// Results keeps processed archives in memory until they expire. Expired
// entries are swept shortly after the last insert.
type Results struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	sweep   func(f func())
}

func NewResults(ttl time.Duration) *Results {
	return &Results{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
		sweep:   debounce.New(time.Second),
	}
}

func (s *Results) Put(res *model.Result) string {
	id := uuid.New().String()

	s.mu.Lock()
	s.entries[id] = entry{result: res, createdAt: s.now()}
	s.mu.Unlock()

	s.sweep(func() { s.Sweep() })
	return id
}

func (s *Results) Get(id string) (*model.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return nil, false
	}
	return e.result, true
}

func (s *Results) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops expired entries and returns how many were removed.
func (s *Results) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Results) expired(e entry) bool {
	return s.now().Sub(e.createdAt) > s.ttl
}
