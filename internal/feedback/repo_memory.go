package feedback

import (
	"context"
	"sort"
)

// MemoryStore holds the corpus in memory, indexed by event name. It is
// built once and never mutated, so concurrent reads need no locking.
type MemoryStore struct {
	records   []Record
	byEvent   map[string][]Record
	byStudent map[string][]Record
}

// NewMemoryStore indexes the given records into a MemoryStore.
func NewMemoryStore(records []Record) *MemoryStore {
	s := &MemoryStore{
		records:   records,
		byEvent:   make(map[string][]Record),
		byStudent: make(map[string][]Record),
	}
	for _, r := range records {
		s.byEvent[r.EventName] = append(s.byEvent[r.EventName], r)
		s.byStudent[r.StudentID] = append(s.byStudent[r.StudentID], r)
	}
	return s
}

// ListByEvent returns all records for the exact event name.
func (s *MemoryStore) ListByEvent(ctx context.Context, eventName string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, ok := s.byEvent[eventName]
	if !ok || len(records) == 0 {
		return nil, ErrNotFound
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// ListByStudent returns all records for the given student id.
func (s *MemoryStore) ListByStudent(ctx context.Context, studentID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, ok := s.byStudent[studentID]
	if !ok || len(records) == 0 {
		return nil, ErrNotFound
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// EventNames returns the distinct event names, sorted.
func (s *MemoryStore) EventNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.byEvent))
	for name := range s.byEvent {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Count reports the total number of records.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(s.records), nil
}

var _ Store = (*MemoryStore)(nil)
