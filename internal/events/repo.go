package events

import "context"

// Repo defines persistence operations for the event catalog.
type Repo interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, event Event) error
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) error
	// IncrementRegistrations bumps the counter by one and returns the
	// updated event. ErrFull when the cap is set and already reached.
	IncrementRegistrations(ctx context.Context, id string) (Event, error)
}
