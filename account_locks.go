package curauth

import "sync"

// accountLocks serializes per-account mutations. Concurrent logins for one
// account must not race past the lockout check, so every read-check-write
// sequence on an account runs under its ID's mutex. Unrelated accounts never
// share a lock.
//
// Entries are never removed; the map is bounded by the number of distinct
// accounts touched by this process.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for id and returns its unlock function.
func (l *accountLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
