package idsession

import (
	"sync"
	"time"
)

// MemoryStore is the in-process Store implementation: a mutex-guarded map
// of session values. Sessions are deliberately not persisted across
// restarts; a restart invalidates all outstanding verification attempts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore returns an empty store ready for concurrent use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Put stores sess under its ID, replacing any existing entry.
func (s *MemoryStore) Put(sess Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

// Get returns a copy of the stored session, or false when absent.
func (s *MemoryStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

// Update applies fn to the stored session under the write lock and
// returns the updated copy. Readers observe either the state before or
// after fn, never a partial write.
func (s *MemoryStore) Update(id string, fn func(*Session)) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	fn(&sess)
	s.sessions[id] = sess
	return sess, true
}

// PurgeExpired removes every session created before cutoff and returns
// the number removed.
func (s *MemoryStore) PurgeExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
