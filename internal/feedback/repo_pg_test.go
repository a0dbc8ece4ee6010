package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var recordColumnNames = []string{
	"student_id", "event_name", "event_type", "event_level", "event_duration_days", "event_date",
	"student_branch", "student_year", "student_age", "gender", "previous_participation", "skill_level",
	"team_size", "participated_alone", "achievement",
	"venue_rating", "organization_rating", "content_quality", "mentor_support", "food_quality",
	"prize_satisfaction", "networking_opportunities", "time_management", "infrastructure",
	"registration_process", "learning_outcome",
	"overall_satisfaction", "would_recommend", "attend_similar_event",
	"sentiment", "feedback_length", "issues_faced", "suggestions_given",
}

func addRecordRow(rows *sqlmock.Rows, r Record) {
	rows.AddRow(
		r.StudentID, r.EventName, r.EventType, r.EventLevel, r.EventDurationDays, r.EventDate,
		r.StudentBranch, r.StudentYear, r.StudentAge, r.Gender, r.PreviousParticipation, r.SkillLevel,
		r.TeamSize, boolToInt(r.ParticipatedAlone), r.Achievement,
		r.VenueRating, r.OrganizationRating, r.ContentQuality, r.MentorSupport, r.FoodQuality,
		r.PrizeSatisfaction, r.NetworkingOpportunities, r.TimeManagement, r.Infrastructure,
		r.RegistrationProcess, r.LearningOutcome,
		r.OverallSatisfaction, boolToInt(r.WouldRecommend), r.AttendSimilarEvent,
		r.Sentiment, r.FeedbackLength, r.IssuesFaced, boolToInt(r.SuggestionsGiven),
	)
}

func TestPGStoreListByEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rec := ratedRecord(7.5)
	rec.StudentID = "S001"
	rec.EventName = "Hacksetu"
	rec.EventType = "Hackathon"
	rec.EventLevel = "National"
	rec.EventDurationDays = 2
	rec.EventDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	rec.StudentBranch = "CSE"
	rec.StudentYear = 2
	rec.StudentAge = 20
	rec.Gender = "Male"
	rec.PreviousParticipation = "Low"
	rec.SkillLevel = "Intermediate"
	rec.TeamSize = 3
	rec.Achievement = "Participation"
	rec.Sentiment = "Positive"
	rec.FeedbackLength = 180
	rec.Normalize()

	rows := sqlmock.NewRows(recordColumnNames)
	addRecordRow(rows, rec)

	mock.ExpectQuery("SELECT .* FROM feedback_records WHERE event_name").
		WithArgs("Hacksetu").
		WillReturnRows(rows)

	store := &PGStore{DB: db}
	records, err := store.ListByEvent(context.Background(), "Hacksetu")
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.StudentID != "S001" || got.EventName != "Hacksetu" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.WouldRecommend {
		t.Fatalf("expected would recommend to round-trip as true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreListByEventNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT .* FROM feedback_records WHERE event_name").
		WithArgs("NoSuchEvent").
		WillReturnRows(sqlmock.NewRows(recordColumnNames))

	store := &PGStore{DB: db}
	if _, err := store.ListByEvent(context.Background(), "NoSuchEvent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStoreCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	store := &PGStore{DB: db}
	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 42 {
		t.Fatalf("count = %d, want 42", count)
	}
}
