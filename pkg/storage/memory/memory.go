// Package memory provides a map-backed implementation of storage.Storage.
// It is used by service-level tests and by the demo seed path when no
// database is available. All data is lost when the process exits.
package memory

import (
	"context"
	"sync"
	"time"

	"places/pkg/domain"
	"places/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// Memory implements storage.Storage over in-process maps guarded by a RWMutex.
// Records are deep-copied on the way in and out so callers can never alias the
// stored rating ledgers.
type Memory struct {
	mu     sync.RWMutex
	places map[domain.PlaceID]domain.Place
	users  map[domain.UserID]domain.User
	jobs   []river.JobArgs
}

// New creates an empty in-memory storage.
func New() *Memory {
	return &Memory{
		places: map[domain.PlaceID]domain.Place{},
		users:  map[domain.UserID]domain.User{},
	}
}

func clonePlace(p domain.Place) domain.Place {
	out := p
	out.Ratings = make(domain.Ratings, len(p.Ratings))
	for userID, rating := range p.Ratings {
		out.Ratings[userID] = rating
	}

	return out
}

// Close releases nothing; it exists to satisfy storage.Storage.
func (m *Memory) Close() error { return nil }

// Begin returns a handle operating on the same maps. The in-memory backend has
// no transaction isolation: Commit is a no-op and Rollback cannot undo writes.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	return &memTx{Memory: m}, nil
}

// WithTx invokes the callback directly against this storage. Errors are passed
// through; writes performed before a failure are not undone.
func (m *Memory) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(m)
}

type memTx struct {
	*Memory
}

func (t *memTx) Commit() error   { return nil }
func (t *memTx) Rollback() error { return nil }

func (m *Memory) StorePlace(_ context.Context, place domain.Place) (*domain.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	place.ID = domain.PlaceID(uuid.New())
	place.CreatedAt = time.Now().UTC()
	stored := clonePlace(place)
	m.places[stored.ID] = stored

	out := clonePlace(stored)

	return &out, nil
}

func (m *Memory) PlaceByID(_ context.Context, id domain.PlaceID) (*domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	place, ok := m.places[id]
	if !ok {
		return nil, nil
	}
	out := clonePlace(place)

	return &out, nil
}

func (m *Memory) Places(_ context.Context) ([]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Place, 0, len(m.places))
	for _, place := range m.places {
		out = append(out, clonePlace(place))
	}

	return out, nil
}

func (m *Memory) PlacesByStatuses(_ context.Context,
	statuses []domain.ValidationStatus) ([]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := make(map[domain.ValidationStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var out []domain.Place
	for _, place := range m.places {
		if wanted[place.Status] {
			out = append(out, clonePlace(place))
		}
	}

	return out, nil
}

func (m *Memory) UpdatePlace(_ context.Context, place domain.Place) (*domain.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.places[place.ID]
	if !ok {
		return nil, nil
	}

	place.CreatedAt = existing.CreatedAt
	place.UpdatedAt = time.Now().UTC()
	stored := clonePlace(place)
	m.places[stored.ID] = stored

	out := clonePlace(stored)

	return &out, nil
}

func (m *Memory) DeletePlace(_ context.Context, id domain.PlaceID) (*domain.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	place, ok := m.places[id]
	if !ok {
		return nil, nil
	}
	delete(m.places, id)
	out := clonePlace(place)

	return &out, nil
}

func (m *Memory) StoreUser(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return nil, storage.ErrDuplicateUsername
		}
	}

	user.ID = domain.UserID(uuid.New())
	user.CreatedAt = time.Now().UTC()
	m.users[user.ID] = user
	out := user

	return &out, nil
}

func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	out := user

	return &out, nil
}

func (m *Memory) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			out := user

			return &out, nil
		}
	}

	return nil, nil
}

func (m *Memory) DeleteUser(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	delete(m.users, id)
	out := user

	return &out, nil
}

// AddJob records the job args instead of enqueueing them; tests inspect the
// recorded jobs through Jobs.
func (m *Memory) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, args)

	return true, nil
}

// Jobs returns the job args recorded by AddJob in insertion order.
func (m *Memory) Jobs() []river.JobArgs {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]river.JobArgs, len(m.jobs))
	copy(out, m.jobs)

	return out
}
