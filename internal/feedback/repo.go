package feedback

import "context"

// Store is a read-only view over the historical feedback corpus. All
// implementations are safe for concurrent readers; nothing mutates the
// corpus after load.
type Store interface {
	// ListByEvent returns every record whose event name matches exactly.
	// A zero-match result is ErrNotFound, not an empty slice.
	ListByEvent(ctx context.Context, eventName string) ([]Record, error)
	// ListByStudent returns every record for the given student id.
	ListByStudent(ctx context.Context, studentID string) ([]Record, error)
	// EventNames returns the distinct event names present in the corpus.
	EventNames(ctx context.Context) ([]string, error)
	// Count reports the total number of records.
	Count(ctx context.Context) (int, error)
}
