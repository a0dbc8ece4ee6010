package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
	"campus-backend/internal/guidance"
	"campus-backend/internal/queue"
	"campus-backend/internal/shared/telemetry"
)

// Service contains business logic for the event catalog.
type Service struct {
	Repo     Repo
	Queue    queue.Client
	Feedback feedback.Store
}

// NewService constructs a Service.
func NewService(repo Repo, q queue.Client, store feedback.Store) *Service {
	return &Service{Repo: repo, Queue: q, Feedback: store}
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.Repo.List(ctx)
}

// Get returns one event by id.
func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates and stores a new event.
func (s *Service) Create(ctx context.Context, event Event) (Event, error) {
	if err := validateEvent(event); err != nil {
		return Event{}, err
	}
	now := time.Now().UTC()
	event.ID = uuid.NewString()
	event.Registrations = 0
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.Repo.Create(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Update validates and replaces an existing event.
func (s *Service) Update(ctx context.Context, event Event) (Event, error) {
	if event.ID == "" {
		return Event{}, errors.New("event id is required")
	}
	if err := validateEvent(event); err != nil {
		return Event{}, err
	}
	current, err := s.Repo.GetByID(ctx, event.ID)
	if err != nil {
		return Event{}, err
	}
	event.Registrations = current.Registrations
	event.CreatedAt = current.CreatedAt
	event.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Delete removes an event.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Stats computes the catalog rollup.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{
		TotalEvents: len(all),
		ByType:      make(map[string]int),
		ByLevel:     make(map[string]int),
	}
	for _, e := range all {
		stats.TotalRegistrations += e.Registrations
		stats.ByType[e.Type]++
		stats.ByLevel[e.Level]++
	}
	return stats, nil
}

// Registration is the outcome of registering a student for an event.
type Registration struct {
	Event    Event                    `json:"event"`
	Guidance *guidance.GuidanceReport `json:"guidance,omitempty"`
}

// Register bumps the registration counter, publishes a queue message
// and, when historical data exists for the event, attaches a guidance
// report. A guidance failure never fails the registration.
func (s *Service) Register(ctx context.Context, eventID, studentID, requestID string, student features.StudentProfile) (Registration, error) {
	event, err := s.Repo.IncrementRegistrations(ctx, eventID)
	if err != nil {
		return Registration{}, err
	}

	if s.Queue != nil {
		msg := queue.Message{
			EventID:    event.ID,
			EventName:  event.Name,
			StudentID:  studentID,
			RequestID:  requestID,
			EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
			Version:    1,
		}
		if err := s.Queue.Send(ctx, msg); err != nil {
			telemetry.Error("events.registration_enqueue_failed", map[string]any{
				"event_id": event.ID,
				"error":    err.Error(),
			})
		}
	}

	reg := Registration{Event: event}
	if s.Feedback != nil {
		report, err := guidance.Guide(ctx, s.Feedback, student, event.Name)
		switch {
		case err == nil:
			reg.Guidance = &report
		case errors.Is(err, feedback.ErrNotFound):
			// First edition of the event, nothing to mine yet.
		default:
			telemetry.Error("events.registration_guidance_failed", map[string]any{
				"event_name": event.Name,
				"error":      err.Error(),
			})
		}
	}
	return reg, nil
}

func validateEvent(event Event) error {
	switch {
	case event.Name == "":
		return fmt.Errorf("event name is required")
	case event.Type == "":
		return fmt.Errorf("event type is required")
	case event.Level == "":
		return fmt.Errorf("event level is required")
	case event.DurationDays < 1:
		return fmt.Errorf("event duration must be at least one day")
	case event.MaxParticipants < 0:
		return fmt.Errorf("max participants cannot be negative")
	}
	return nil
}
