package booking

import "sync"

// propertyLockStore holds a mutex per property. Availability check and
// insert must be atomic with respect to other booking attempts on the same
// property; this store serializes them in-process, and the repository's
// transactional create guards against writers in other processes.
type propertyLockStore struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

var lockStore = &propertyLockStore{
	locks: make(map[string]*sync.Mutex),
}

// getLock returns the mutex for a given property, creating one if it doesn't exist.
func (s *propertyLockStore) getLock(propertyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[propertyID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[propertyID] = lock
	}
	return lock
}

// lockProperty acquires the per-property mutex and returns its unlock func.
func lockProperty(propertyID string) func() {
	lock := lockStore.getLock(propertyID)
	lock.Lock()
	return lock.Unlock
}
