package campus

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for campus memory records.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// ListProblems returns a college's problems.
func (s *Service) ListProblems(ctx context.Context, collegeID, category string) ([]Problem, error) {
	return s.Repo.ListProblems(ctx, collegeID, category)
}

// ReportProblem validates and stores a new problem.
func (s *Service) ReportProblem(ctx context.Context, p Problem) (Problem, error) {
	if p.Title == "" || p.Category == "" {
		return Problem{}, errors.New("title and category are required")
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = "Open"
	}
	if p.ReportedDate == "" {
		p.ReportedDate = now.Format("2006-01-02")
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Repo.CreateProblem(ctx, p); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// UpdateProblem replaces an existing problem, keeping its id.
func (s *Service) UpdateProblem(ctx context.Context, p Problem) (Problem, error) {
	if p.ID == "" {
		return Problem{}, errors.New("problem id is required")
	}
	if p.Title == "" || p.Category == "" {
		return Problem{}, errors.New("title and category are required")
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpdateProblem(ctx, p); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// DeleteProblem removes a problem.
func (s *Service) DeleteProblem(ctx context.Context, collegeID, problemID string) error {
	return s.Repo.DeleteProblem(ctx, collegeID, problemID)
}

// ListWisdom returns a college's wisdom tips.
func (s *Service) ListWisdom(ctx context.Context, collegeID, category string) ([]WisdomTip, error) {
	return s.Repo.ListWisdom(ctx, collegeID, category)
}

// ShareWisdom validates and stores a new wisdom tip.
func (s *Service) ShareWisdom(ctx context.Context, w WisdomTip) (WisdomTip, error) {
	if w.Title == "" || w.Category == "" {
		return WisdomTip{}, errors.New("title and category are required")
	}
	now := time.Now().UTC()
	w.ID = uuid.NewString()
	if w.Date == "" {
		w.Date = now.Format("2006-01-02")
	}
	w.CreatedAt = now
	if err := s.Repo.CreateWisdom(ctx, w); err != nil {
		return WisdomTip{}, err
	}
	return w, nil
}

// ListAlerts returns a college's alerts.
func (s *Service) ListAlerts(ctx context.Context, collegeID string) ([]Alert, error) {
	return s.Repo.ListAlerts(ctx, collegeID)
}

// CreateAlert validates and stores a new alert.
func (s *Service) CreateAlert(ctx context.Context, a Alert) (Alert, error) {
	if a.Title == "" {
		return Alert{}, errors.New("title is required")
	}
	a.ID = uuid.NewString()
	if a.Confidence == 0 {
		a.Confidence = 0.85
	}
	a.CreatedAt = time.Now().UTC()
	if err := s.Repo.CreateAlert(ctx, a); err != nil {
		return Alert{}, err
	}
	return a, nil
}

// Analytics computes the per-college rollup.
func (s *Service) Analytics(ctx context.Context, collegeID string) (Analytics, error) {
	problems, err := s.Repo.ListProblems(ctx, collegeID, "")
	if err != nil {
		return Analytics{}, err
	}
	wisdom, err := s.Repo.ListWisdom(ctx, collegeID, "")
	if err != nil {
		return Analytics{}, err
	}
	alerts, err := s.Repo.ListAlerts(ctx, collegeID)
	if err != nil {
		return Analytics{}, err
	}

	out := Analytics{
		TotalProblems:      len(problems),
		TotalWisdom:        len(wisdom),
		TotalAlerts:        len(alerts),
		ProblemsByCategory: make(map[string]int),
		ProblemsByStatus:   make(map[string]int),
		WisdomByCategory:   make(map[string]int),
	}
	for _, p := range problems {
		out.ProblemsByCategory[p.Category]++
		out.ProblemsByStatus[p.Status]++
	}
	for _, w := range wisdom {
		out.WisdomByCategory[w.Category]++
	}
	return out, nil
}
