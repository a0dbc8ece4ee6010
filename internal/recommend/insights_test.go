package recommend

import (
	"math"
	"testing"

	"campus-backend/internal/feedback"
)

func historyRecord(eventName, eventType string, satisfaction float64, recommend bool) feedback.Record {
	return feedback.Record{
		EventName:           eventName,
		EventType:           eventType,
		OverallSatisfaction: satisfaction,
		WouldRecommend:      recommend,
		VenueRating:         7, OrganizationRating: 7, ContentQuality: 7,
		MentorSupport: 7, FoodQuality: 7, Infrastructure: 7,
	}
}

func TestInsightsEmptyHistory(t *testing.T) {
	got := InsightsFromHistory(nil)
	if got.TotalEventsAttended != 0 {
		t.Fatalf("total attended = %d, want 0", got.TotalEventsAttended)
	}
	if got.AreasOfConcern == nil || len(got.AreasOfConcern) != 0 {
		t.Fatalf("areas of concern = %v, want empty slice", got.AreasOfConcern)
	}
	if got.PreferredEventType != "" || got.BestEvent != "" {
		t.Fatalf("expected zero insights, got %+v", got)
	}
}

func TestInsightsSummarizesHistory(t *testing.T) {
	history := []feedback.Record{
		historyRecord("Hacksetu", "Hackathon", 8.2, true),
		historyRecord("Code Sprint", "Technical", 7.4, true),
		historyRecord("Tech Fest", "Cultural", 5.4, false),
		historyRecord("Smart India Hackathon", "Hackathon", 9.0, true),
	}

	got := InsightsFromHistory(history)
	if got.TotalEventsAttended != 4 {
		t.Fatalf("total attended = %d, want 4", got.TotalEventsAttended)
	}
	wantAvg := (8.2 + 7.4 + 5.4 + 9.0) / 4
	if math.Abs(got.AverageSatisfaction-wantAvg) > 1e-9 {
		t.Fatalf("average satisfaction = %v, want %v", got.AverageSatisfaction, wantAvg)
	}
	if got.RecommendationRate != 0.75 {
		t.Fatalf("recommendation rate = %v, want 0.75", got.RecommendationRate)
	}
	if got.PreferredEventType != "Hackathon" {
		t.Fatalf("preferred type = %q, want Hackathon", got.PreferredEventType)
	}
	if got.BestEvent != "Smart India Hackathon" {
		t.Fatalf("best event = %q, want Smart India Hackathon", got.BestEvent)
	}
	if len(got.AreasOfConcern) != 0 {
		t.Fatalf("unexpected concerns: %v", got.AreasOfConcern)
	}
}

func TestInsightsModalTieBreaksAlphabetically(t *testing.T) {
	history := []feedback.Record{
		historyRecord("Hacksetu", "Hackathon", 8, true),
		historyRecord("Code Sprint", "Technical", 7, true),
	}
	got := InsightsFromHistory(history)
	if got.PreferredEventType != "Hackathon" {
		t.Fatalf("preferred type = %q, want alphabetical first on tie", got.PreferredEventType)
	}
}

func TestInsightsFlagsLowDimensions(t *testing.T) {
	low := historyRecord("Tech Fest", "Cultural", 5.0, false)
	low.FoodQuality = 4.0
	low.VenueRating = 5.5
	history := []feedback.Record{low}

	got := InsightsFromHistory(history)
	if len(got.AreasOfConcern) != 2 {
		t.Fatalf("concerns = %v, want venue and food only", got.AreasOfConcern)
	}
	if got.AreasOfConcern[0].Area != "Venue Rating" || got.AreasOfConcern[0].AverageRating != 5.5 {
		t.Fatalf("first concern = %+v", got.AreasOfConcern[0])
	}
	if got.AreasOfConcern[1].Area != "Food Quality" || got.AreasOfConcern[1].AverageRating != 4.0 {
		t.Fatalf("second concern = %+v", got.AreasOfConcern[1])
	}
}
