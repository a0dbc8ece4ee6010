package feedback

import "errors"

// ErrNotFound is returned when no historical records exist for an event.
// An empty cohort is distinct from a cohort with no issues, so callers
// always receive this error rather than an empty aggregate.
var ErrNotFound = errors.New("no feedback records found")
