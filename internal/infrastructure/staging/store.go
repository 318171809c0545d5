// Package staging holds in-memory upload sessions for the two-phase
// final-result flow. Sessions that are not finalized within the TTL are
// swept by a background janitor.
package staging

import (
	"log/slog"
	"sync"
	"time"

	"obeserver/internal/domain/repositories"
)

// Store is a TTL keyed store for staging sessions. The zero value is not
// usable; construct with NewStore.
type Store struct {
	ttl   time.Duration
	data  map[string]*entry
	mutex sync.RWMutex

	stopOnce sync.Once
	stop     chan struct{}
}

type entry struct {
	session   *repositories.StagingSession
	timestamp time.Time
}

// NewStore creates a store whose entries expire after ttl. When
// sweepInterval is positive a janitor goroutine removes expired entries
// periodically; expired entries are also dropped lazily on Get either way.
func NewStore(ttl, sweepInterval time.Duration) *Store {
	s := &Store{
		ttl:  ttl,
		data: make(map[string]*entry),
		stop: make(chan struct{}),
	}

	if sweepInterval > 0 {
		go s.startJanitor(sweepInterval)
	}

	return s
}

// Get returns the session for id, or (nil, false) when it is absent or
// has passed its TTL. Expired entries are removed on access.
func (s *Store) Get(id string) (*repositories.StagingSession, bool) {
	s.mutex.RLock()
	e, exists := s.data[id]
	s.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(e.timestamp) > s.ttl {
		s.mutex.Lock()
		// Re-check under the write lock; a concurrent Put may have
		// refreshed the entry.
		if cur, ok := s.data[id]; ok && time.Since(cur.timestamp) > s.ttl {
			delete(s.data, id)
		}
		s.mutex.Unlock()
		return nil, false
	}

	return e.session, true
}

// Put stores the session under its SessionID, resetting its expiry clock.
func (s *Store) Put(session *repositories.StagingSession) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[session.SessionID] = &entry{
		session:   session,
		timestamp: time.Now(),
	}
}

// Delete removes the session and reports whether it was present and
// unexpired. At most one concurrent caller observes true per entry.
func (s *Store) Delete(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, exists := s.data[id]
	if !exists {
		return false
	}

	delete(s.data, id)
	return time.Since(e.timestamp) <= s.ttl
}

// Len reports the number of entries, including any not yet swept.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.data)
}

// Close stops the janitor goroutine. Safe to call multiple times.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 {
				slog.Debug("swept expired staging sessions", "removed", removed)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *Store) sweep() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range s.data {
		if now.Sub(e.timestamp) > s.ttl {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
