package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DraftStore keeps in-progress booking drafts in memory with a TTL, the same
// way the reset-token cache works. A draft that is neither confirmed nor
// touched within the TTL is treated as abandoned.
type DraftStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]draftEntry
	ttl  time.Duration
}

type draftEntry struct {
	draft     *Draft
	expiresAt time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DraftStore{
		data: make(map[uuid.UUID]draftEntry),
		ttl:  ttl,
	}
}

func (s *DraftStore) Put(d *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[d.ID] = draftEntry{
		draft:     d,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns the draft and refreshes its expiry; an expired entry is
// removed and reported as missing.
func (s *DraftStore) Get(id uuid.UUID) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.draft, true
}

func (s *DraftStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
