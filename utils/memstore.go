package utils

import (
	"sync"
	"time"
)

// ttlSet is a process-local stand-in for Redis keys with expiry. It backs the
// single-use and lock stores when no Redis server is reachable, which only
// works for a single instance.
type ttlSet struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newTTLSet() *ttlSet {
	return &ttlSet{entries: map[string]time.Time{}}
}

// Put records key with an expiry of now+ttl, replacing any previous entry.
func (s *ttlSet) Put(key string, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = time.Now().Add(ttl)
	s.mu.Unlock()
}

// PutNX records key only when it is absent or already expired and reports
// whether it was stored.
func (s *ttlSet) PutNX(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until, ok := s.entries[key]; ok && time.Now().Before(until) {
		return false
	}
	s.entries[key] = time.Now().Add(ttl)
	return true
}

// Has reports whether key exists and has not expired. Expired entries are
// removed on the way out.
func (s *ttlSet) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.entries[key]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(s.entries, key)
		return false
	}
	return true
}

// Take removes key and reports whether it existed unexpired, making the
// entry single-use.
func (s *ttlSet) Take(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	return ok && time.Now().Before(until)
}

// Drop removes key unconditionally.
func (s *ttlSet) Drop(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}
