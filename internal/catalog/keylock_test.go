package catalog

import (
	"sync"
	"testing"

	"places/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	t.Parallel()

	locks := newKeyLock()
	id := domain.PlaceID(uuid.New())

	const workers = 64
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()

			unlock := locks.lock(id)
			defer unlock()

			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)
}

func TestKeyLockReleasesEntries(t *testing.T) {
	t.Parallel()

	locks := newKeyLock()

	first := domain.PlaceID(uuid.New())
	second := domain.PlaceID(uuid.New())

	unlockFirst := locks.lock(first)
	unlockSecond := locks.lock(second)

	locks.mu.Lock()
	require.Len(t, locks.locks, 2)
	locks.mu.Unlock()

	unlockFirst()
	unlockSecond()

	locks.mu.Lock()
	require.Empty(t, locks.locks)
	locks.mu.Unlock()
}

func TestKeyLockIndependentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	locks := newKeyLock()

	unlockFirst := locks.lock(domain.PlaceID(uuid.New()))
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		unlock := locks.lock(domain.PlaceID(uuid.New()))
		unlock()
		close(done)
	}()

	<-done
}
