package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"campus-backend/internal/features"
	"campus-backend/internal/predict"
)

type stubScore struct {
	label        bool
	probability  float64
	satisfaction float64
}

// stubPredictor resolves scores by the event-name encoding at index 0 of
// the feature vector.
type stubPredictor struct {
	scores map[float64]stubScore
	err    error
}

func (s *stubPredictor) PredictRecommend(ctx context.Context, v features.Vector) (bool, float64, error) {
	if s.err != nil {
		return false, 0, s.err
	}
	score, ok := s.scores[v[0]]
	if !ok {
		return false, 0, predict.ErrUnavailable
	}
	return score.label, score.probability, nil
}

func (s *stubPredictor) PredictSatisfaction(ctx context.Context, v features.Vector) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	score, ok := s.scores[v[0]]
	if !ok {
		return 0, predict.ErrUnavailable
	}
	return score.satisfaction, nil
}

func rankerStudent() features.StudentProfile {
	return features.StudentProfile{Branch: "CSE", Year: 2, Gender: "Female", SkillLevel: "Intermediate"}
}

func rankerPrior() *features.PriorRatings {
	return &features.PriorRatings{
		VenueRating: 7, OrganizationRating: 7, ContentQuality: 7, MentorSupport: 7,
		FoodQuality: 7, PrizeSatisfaction: 7, NetworkingOpportunities: 7,
		TimeManagement: 7, Infrastructure: 7, RegistrationProcess: 8, LearningOutcome: 7,
	}
}

func candidate(name, typ string) features.EventDescriptor {
	return features.EventDescriptor{Name: name, Type: typ, Level: "National", DurationDays: 2}
}

// Event-name encodings in the default vocabulary.
const (
	codeSprintCode = 2.0
	hacksetuCode   = 5.0
	techFestCode   = 9.0
)

func newTestRanker(p predict.Predictor) *Ranker {
	builder := features.NewBuilder(features.DefaultVocabulary(), rand.New(rand.NewSource(1)))
	return NewRanker(builder, p)
}

func TestRankOrdersByConfidenceThenSatisfaction(t *testing.T) {
	predictor := &stubPredictor{scores: map[float64]stubScore{
		codeSprintCode: {label: true, probability: 0.6, satisfaction: 8.5},
		hacksetuCode:   {label: true, probability: 0.9, satisfaction: 7.0},
		techFestCode:   {label: true, probability: 0.6, satisfaction: 6.0},
	}}
	r := newTestRanker(predictor)

	candidates := []features.EventDescriptor{
		candidate("Tech Fest", "Cultural"),
		candidate("Code Sprint", "Technical"),
		candidate("Hacksetu", "Hackathon"),
	}
	ranked, err := r.Rank(context.Background(), rankerStudent(), candidates, rankerPrior(), 5)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	wantOrder := []string{"Hacksetu", "Code Sprint", "Tech Fest"}
	for i, want := range wantOrder {
		if ranked[i].Event.Name != want {
			t.Fatalf("position %d = %q, want %q", i, ranked[i].Event.Name, want)
		}
	}
}

func TestRankStableOnFullTies(t *testing.T) {
	predictor := &stubPredictor{scores: map[float64]stubScore{
		codeSprintCode: {label: true, probability: 0.7, satisfaction: 7.5},
		hacksetuCode:   {label: true, probability: 0.7, satisfaction: 7.5},
		techFestCode:   {label: true, probability: 0.7, satisfaction: 7.5},
	}}
	r := newTestRanker(predictor)

	candidates := []features.EventDescriptor{
		candidate("Tech Fest", "Cultural"),
		candidate("Hacksetu", "Hackathon"),
		candidate("Code Sprint", "Technical"),
	}
	ranked, err := r.Rank(context.Background(), rankerStudent(), candidates, rankerPrior(), 5)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i, want := range []string{"Tech Fest", "Hacksetu", "Code Sprint"} {
		if ranked[i].Event.Name != want {
			t.Fatalf("tie broke input order: position %d = %q, want %q", i, ranked[i].Event.Name, want)
		}
	}
}

func TestRankTopN(t *testing.T) {
	predictor := &stubPredictor{scores: map[float64]stubScore{
		codeSprintCode: {label: true, probability: 0.8, satisfaction: 8},
		hacksetuCode:   {label: true, probability: 0.7, satisfaction: 7},
		techFestCode:   {label: false, probability: 0.3, satisfaction: 5},
	}}
	r := newTestRanker(predictor)

	all := []features.EventDescriptor{
		candidate("Code Sprint", "Technical"),
		candidate("Hacksetu", "Hackathon"),
		candidate("Tech Fest", "Cultural"),
	}
	tests := []struct {
		name       string
		candidates []features.EventDescriptor
		topN       int
		wantLen    int
	}{
		{"zero topN", all, 0, 0},
		{"negative topN", all, -1, 0},
		{"no candidates", nil, 5, 0},
		{"truncates", all, 2, 2},
		{"topN beyond candidates", all, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, err := r.Rank(context.Background(), rankerStudent(), tt.candidates, rankerPrior(), tt.topN)
			if err != nil {
				t.Fatalf("Rank: %v", err)
			}
			if ranked == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(ranked) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(ranked), tt.wantLen)
			}
		})
	}
}

func TestRankAbortsWhenAnyPredictionFails(t *testing.T) {
	predictor := &stubPredictor{scores: map[float64]stubScore{
		hacksetuCode: {label: true, probability: 0.9, satisfaction: 8},
		// Code Sprint intentionally missing, so its prediction fails.
	}}
	r := newTestRanker(predictor)

	candidates := []features.EventDescriptor{
		candidate("Hacksetu", "Hackathon"),
		candidate("Code Sprint", "Technical"),
	}
	ranked, err := r.Rank(context.Background(), rankerStudent(), candidates, rankerPrior(), 5)
	if !errors.Is(err, predict.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if ranked != nil {
		t.Fatalf("expected no partial ranking, got %v", ranked)
	}
}

func TestRankRejectsUnknownCandidate(t *testing.T) {
	r := newTestRanker(&stubPredictor{scores: map[float64]stubScore{}})

	candidates := []features.EventDescriptor{candidate("Robo Wars", "Technical")}
	_, err := r.Rank(context.Background(), rankerStudent(), candidates, rankerPrior(), 5)
	var unknown *features.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
}

func TestRecommendationText(t *testing.T) {
	tests := []struct {
		name        string
		label       bool
		probability float64
		want        string
	}{
		{"high confidence", true, 0.8, "Highly Recommended"},
		{"high confidence negative label", false, 0.8, "Highly Recommended"},
		{"boundary stays label-driven", true, 0.75, "Recommended"},
		{"positive label", true, 0.6, "Recommended"},
		{"negative label", false, 0.3, "Not Recommended"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor := &stubPredictor{scores: map[float64]stubScore{
				hacksetuCode: {label: tt.label, probability: tt.probability, satisfaction: 7},
			}}
			r := newTestRanker(predictor)

			p, err := r.PredictOne(context.Background(), rankerStudent(), candidate("Hacksetu", "Hackathon"), rankerPrior())
			if err != nil {
				t.Fatalf("PredictOne: %v", err)
			}
			if p.RecommendationText != tt.want {
				t.Fatalf("recommendation text = %q, want %q", p.RecommendationText, tt.want)
			}
		})
	}
}
