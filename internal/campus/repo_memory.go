package campus

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	problems map[string][]Problem
	wisdom   map[string][]WisdomTip
	alerts   map[string][]Alert
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		problems: make(map[string][]Problem),
		wisdom:   make(map[string][]WisdomTip),
		alerts:   make(map[string][]Alert),
	}
}

// ListProblems returns a college's problems, optionally filtered by
// category.
func (r *MemoryRepo) ListProblems(ctx context.Context, collegeID, category string) ([]Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Problem
	for _, p := range r.problems[collegeID] {
		if filterMatches(category, p.Category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateProblem appends a new problem.
func (r *MemoryRepo) CreateProblem(ctx context.Context, p Problem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[p.CollegeID] = append(r.problems[p.CollegeID], p)
	return nil
}

// UpdateProblem replaces an existing problem in place.
func (r *MemoryRepo) UpdateProblem(ctx context.Context, p Problem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.problems[p.CollegeID]
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProblem removes a problem. Deleting an absent id is a no-op.
func (r *MemoryRepo) DeleteProblem(ctx context.Context, collegeID, problemID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.problems[collegeID]
	out := list[:0]
	for _, p := range list {
		if p.ID != problemID {
			out = append(out, p)
		}
	}
	r.problems[collegeID] = out
	return nil
}

// ListWisdom returns a college's wisdom tips, optionally filtered by
// category.
func (r *MemoryRepo) ListWisdom(ctx context.Context, collegeID, category string) ([]WisdomTip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []WisdomTip
	for _, w := range r.wisdom[collegeID] {
		if filterMatches(category, w.Category) {
			out = append(out, w)
		}
	}
	return out, nil
}

// CreateWisdom appends a new wisdom tip.
func (r *MemoryRepo) CreateWisdom(ctx context.Context, w WisdomTip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wisdom[w.CollegeID] = append(r.wisdom[w.CollegeID], w)
	return nil
}

// ListAlerts returns a college's alerts.
func (r *MemoryRepo) ListAlerts(ctx context.Context, collegeID string) ([]Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Alert(nil), r.alerts[collegeID]...), nil
}

// CreateAlert appends a new alert.
func (r *MemoryRepo) CreateAlert(ctx context.Context, a Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[a.CollegeID] = append(r.alerts[a.CollegeID], a)
	return nil
}
