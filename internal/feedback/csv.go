package feedback

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ReadCSV parses the historical feedback corpus from its CSV form.
// Columns are resolved by header name, each record is normalized
// (ratings clamped, derived fields recomputed) before being returned.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"student_id", "event_name", "event_type", "overall_satisfaction"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", required)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		line++

		get := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		rec := Record{
			StudentID:             get("student_id"),
			EventName:             get("event_name"),
			EventType:             get("event_type"),
			EventLevel:            get("event_level"),
			EventDurationDays:     atoi(get("event_duration_days")),
			StudentBranch:         get("student_branch"),
			StudentYear:           atoi(get("student_year")),
			StudentAge:            atoi(get("student_age")),
			Gender:                get("gender"),
			PreviousParticipation: get("previous_participation"),
			SkillLevel:            get("skill_level"),
			TeamSize:              atoi(get("team_size")),
			ParticipatedAlone:     get("participated_alone") == "1",
			Achievement:           get("achievement"),

			VenueRating:             atof(get("venue_rating")),
			OrganizationRating:      atof(get("organization_rating")),
			ContentQuality:          atof(get("content_quality")),
			MentorSupport:           atof(get("mentor_support")),
			FoodQuality:             atof(get("food_quality")),
			PrizeSatisfaction:       atof(get("prize_satisfaction")),
			NetworkingOpportunities: atof(get("networking_opportunities")),
			TimeManagement:          atof(get("time_management")),
			Infrastructure:          atof(get("infrastructure")),
			RegistrationProcess:     atof(get("registration_process")),
			LearningOutcome:         atof(get("learning_outcome")),

			AttendSimilarEvent: atof(get("attend_similar_event")),
			Sentiment:          get("sentiment"),
			FeedbackLength:     atoi(get("feedback_length")),
			IssuesFaced:        get("issues_faced"),
			SuggestionsGiven:   get("suggestions_given") == "1",
		}
		if raw := get("event_date"); raw != "" {
			if parsed, err := time.Parse("2006-01-02", raw); err == nil {
				rec.EventDate = parsed
			}
		}
		rec.Normalize()
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv contains no records")
	}
	return records, nil
}

func atoi(raw string) int {
	v, _ := strconv.Atoi(raw)
	return v
}

func atof(raw string) float64 {
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}
