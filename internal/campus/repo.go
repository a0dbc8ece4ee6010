package campus

import (
	"context"
	"errors"
)

// ErrNotFound indicates the campus record does not exist.
var ErrNotFound = errors.New("campus record not found")

// Repo defines persistence operations for campus memory records.
// Category filters are optional; "" and "all" mean no filter.
type Repo interface {
	ListProblems(ctx context.Context, collegeID, category string) ([]Problem, error)
	CreateProblem(ctx context.Context, p Problem) error
	UpdateProblem(ctx context.Context, p Problem) error
	DeleteProblem(ctx context.Context, collegeID, problemID string) error

	ListWisdom(ctx context.Context, collegeID, category string) ([]WisdomTip, error)
	CreateWisdom(ctx context.Context, w WisdomTip) error

	ListAlerts(ctx context.Context, collegeID string) ([]Alert, error)
	CreateAlert(ctx context.Context, a Alert) error
}

func filterMatches(filter, category string) bool {
	return filter == "" || filter == "all" || filter == category
}
