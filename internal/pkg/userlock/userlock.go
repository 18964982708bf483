// internal/pkg/userlock/userlock.go
package userlock

import "sync"

// Keyed hands out one mutex per key so that read-modify-write sequences
// against a user's stored state are serialized. The storage substrate has no
// transactions, so cart merges and weekly rollovers depend on this.
//
// Mutexes are retained for the life of the process; the population is
// bounded by the number of active (user, entity) pairs.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty keyed lock set
func New() *Keyed {
	return &Keyed{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
//
//	unlock := locks.Lock(userID)
//	defer unlock()
func (k *Keyed) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
