package events

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Event
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Event)}
}

// List returns all events ordered by date, then name.
func (r *MemoryRepo) List(ctx context.Context) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Event, 0, len(r.data))
	for _, e := range r.data {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// GetByID returns the event with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.data[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

// Create stores a new event.
func (r *MemoryRepo) Create(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == event.Name {
			return ErrDuplicateName
		}
	}
	r.data[event.ID] = event
	return nil
}

// Update replaces an existing event.
func (r *MemoryRepo) Update(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[event.ID]; !ok {
		return ErrNotFound
	}
	r.data[event.ID] = event
	return nil
}

// Delete removes an event.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// IncrementRegistrations bumps the registration counter.
func (r *MemoryRepo) IncrementRegistrations(ctx context.Context, id string) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.data[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	if e.MaxParticipants > 0 && e.Registrations >= e.MaxParticipants {
		return Event{}, ErrFull
	}
	e.Registrations++
	e.UpdatedAt = time.Now().UTC()
	r.data[id] = e
	return e, nil
}
