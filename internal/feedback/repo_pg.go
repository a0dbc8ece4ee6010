package feedback

import (
	"context"
	"database/sql"
	"fmt"
)

// PGStore reads the feedback corpus from Postgres.
type PGStore struct {
	DB *sql.DB
}

const recordColumns = `
student_id, event_name, event_type, event_level, event_duration_days, event_date,
student_branch, student_year, student_age, gender, previous_participation, skill_level,
team_size, participated_alone, achievement,
venue_rating, organization_rating, content_quality, mentor_support, food_quality,
prize_satisfaction, networking_opportunities, time_management, infrastructure,
registration_process, learning_outcome,
overall_satisfaction, would_recommend, attend_similar_event,
sentiment, feedback_length, issues_faced, suggestions_given`

// ListByEvent returns all records for the exact event name.
func (s *PGStore) ListByEvent(ctx context.Context, eventName string) ([]Record, error) {
	query := `SELECT ` + recordColumns + ` FROM feedback_records WHERE event_name = $1`
	return s.list(ctx, query, eventName)
}

// ListByStudent returns all records for the given student id.
func (s *PGStore) ListByStudent(ctx context.Context, studentID string) ([]Record, error) {
	query := `SELECT ` + recordColumns + ` FROM feedback_records WHERE student_id = $1`
	return s.list(ctx, query, studentID)
}

// EventNames returns the distinct event names, sorted.
func (s *PGStore) EventNames(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT DISTINCT event_name FROM feedback_records ORDER BY event_name`)
	if err != nil {
		return nil, fmt.Errorf("query event names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Count reports the total number of records.
func (s *PGStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM feedback_records`).Scan(&count)
	return count, err
}

// InsertBatch stores records; used by the seed command to load the corpus.
func (s *PGStore) InsertBatch(ctx context.Context, records []Record) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
INSERT INTO feedback_records (` + recordColumnsInsert + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
        $21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.StudentID, r.EventName, r.EventType, r.EventLevel, r.EventDurationDays, r.EventDate,
			r.StudentBranch, r.StudentYear, r.StudentAge, r.Gender, r.PreviousParticipation, r.SkillLevel,
			r.TeamSize, boolToInt(r.ParticipatedAlone), r.Achievement,
			r.VenueRating, r.OrganizationRating, r.ContentQuality, r.MentorSupport, r.FoodQuality,
			r.PrizeSatisfaction, r.NetworkingOpportunities, r.TimeManagement, r.Infrastructure,
			r.RegistrationProcess, r.LearningOutcome,
			r.OverallSatisfaction, boolToInt(r.WouldRecommend), r.AttendSimilarEvent,
			r.Sentiment, r.FeedbackLength, r.IssuesFaced, boolToInt(r.SuggestionsGiven),
		); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return tx.Commit()
}

const recordColumnsInsert = `
student_id, event_name, event_type, event_level, event_duration_days, event_date,
student_branch, student_year, student_age, gender, previous_participation, skill_level,
team_size, participated_alone, achievement,
venue_rating, organization_rating, content_quality, mentor_support, food_quality,
prize_satisfaction, networking_opportunities, time_management, infrastructure,
registration_process, learning_outcome,
overall_satisfaction, would_recommend, attend_similar_event,
sentiment, feedback_length, issues_faced, suggestions_given`

func (s *PGStore) list(ctx context.Context, query string, arg any) ([]Record, error) {
	rows, err := s.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var eventDate sql.NullTime
		var issuesFaced sql.NullString
		var participatedAlone, wouldRecommend, suggestionsGiven int
		if err := rows.Scan(
			&r.StudentID, &r.EventName, &r.EventType, &r.EventLevel, &r.EventDurationDays, &eventDate,
			&r.StudentBranch, &r.StudentYear, &r.StudentAge, &r.Gender, &r.PreviousParticipation, &r.SkillLevel,
			&r.TeamSize, &participatedAlone, &r.Achievement,
			&r.VenueRating, &r.OrganizationRating, &r.ContentQuality, &r.MentorSupport, &r.FoodQuality,
			&r.PrizeSatisfaction, &r.NetworkingOpportunities, &r.TimeManagement, &r.Infrastructure,
			&r.RegistrationProcess, &r.LearningOutcome,
			&r.OverallSatisfaction, &wouldRecommend, &r.AttendSimilarEvent,
			&r.Sentiment, &r.FeedbackLength, &issuesFaced, &suggestionsGiven,
		); err != nil {
			return nil, err
		}
		if eventDate.Valid {
			r.EventDate = eventDate.Time
		}
		if issuesFaced.Valid {
			r.IssuesFaced = issuesFaced.String
		}
		r.ParticipatedAlone = participatedAlone == 1
		r.WouldRecommend = wouldRecommend == 1
		r.SuggestionsGiven = suggestionsGiven == 1
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Store = (*PGStore)(nil)
