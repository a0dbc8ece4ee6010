package feedback

import (
	"math"
	"testing"
)

func ratedRecord(v float64) Record {
	return Record{
		VenueRating:             v,
		OrganizationRating:      v,
		ContentQuality:          v,
		MentorSupport:           v,
		FoodQuality:             v,
		PrizeSatisfaction:       v,
		NetworkingOpportunities: v,
		TimeManagement:          v,
		Infrastructure:          v,
		RegistrationProcess:     v,
		LearningOutcome:         v,
	}
}

func TestNormalizeDerivesSatisfactionAndRecommend(t *testing.T) {
	tests := []struct {
		name          string
		rating        float64
		wantOverall   float64
		wantRecommend bool
	}{
		{"all nines", 9.0, 9.0, true},
		{"all sevens", 7.0, 7.0, true},
		{"threshold boundary", 6.5, 6.5, true},
		{"all fives", 5.0, 5.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ratedRecord(tt.rating)
			rec.Normalize()
			if math.Abs(rec.OverallSatisfaction-tt.wantOverall) > 1e-9 {
				t.Fatalf("overall satisfaction = %v, want %v", rec.OverallSatisfaction, tt.wantOverall)
			}
			if rec.WouldRecommend != tt.wantRecommend {
				t.Fatalf("would recommend = %v, want %v", rec.WouldRecommend, tt.wantRecommend)
			}
		})
	}
}

func TestNormalizeClampsRatings(t *testing.T) {
	rec := ratedRecord(5)
	rec.VenueRating = 15
	rec.FoodQuality = -3
	rec.Normalize()

	if rec.VenueRating != 10 {
		t.Fatalf("venue rating = %v, want clamped to 10", rec.VenueRating)
	}
	if rec.FoodQuality != 1 {
		t.Fatalf("food quality = %v, want clamped to 1", rec.FoodQuality)
	}
	if rec.OverallSatisfaction < 1 || rec.OverallSatisfaction > 10 {
		t.Fatalf("overall satisfaction %v out of [1,10]", rec.OverallSatisfaction)
	}
}

func TestSatisfactionMatchesWeights(t *testing.T) {
	rec := Record{
		OrganizationRating:      8,
		ContentQuality:          6,
		MentorSupport:           7,
		VenueRating:             9,
		FoodQuality:             5,
		PrizeSatisfaction:       7,
		NetworkingOpportunities: 8,
		Infrastructure:          6,
	}
	want := 8*0.2 + 6*0.25 + 7*0.15 + 9*0.1 + 5*0.05 + 7*0.1 + 8*0.1 + 6*0.05
	got := OverallSatisfactionOf(rec)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("overall satisfaction = %v, want %v", got, want)
	}
}

func TestIssuesSplitsAndFilters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"none token", "None", nil},
		{"single", "Long Queues", []string{"Long Queues"}},
		{"multiple with spaces", "Long Queues, Poor WiFi ,None", []string{"Long Queues", "Poor WiFi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record{IssuesFaced: tt.raw}.Issues()
			if len(got) != len(tt.want) {
				t.Fatalf("issues = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("issues[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
