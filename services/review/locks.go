package review

import "sync"

// slugLocks holds one mutex per vendor slug so aggregate recomputation is
// serialized per vendor. Without this, two interleaved creates on the same
// vendor can each read the pre-update review set and write a stale aggregate.
type slugLocks struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

// get returns the mutex for a slug, creating one if it doesn't exist.
func (s *slugLocks) get(slug string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := s.locks[slug]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[slug] = lock
	}
	return lock
}
