package catalog

import (
	"places/pkg/domain"
	"sync"
)

// keyLock serializes read-modify-write cycles per place id so that two
// concurrent mutations of the same place cannot lose each other's writes.
// Entries are reference-counted and removed once the last holder releases,
// keeping the map bounded by the number of in-flight operations.
//
// The exclusion scope is this process only; writers in other processes still
// race on the store's last-write-wins semantics.
type keyLock struct {
	mu    sync.Mutex
	locks map[domain.PlaceID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: map[domain.PlaceID]*lockEntry{}}
}

// lock acquires the mutex for the given place id and returns the release
// function. The release function must be called on every exit path.
func (l *keyLock) lock(id domain.PlaceID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
