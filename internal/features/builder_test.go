package features

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func testStudent() StudentProfile {
	return StudentProfile{
		Branch:     "CSE",
		Year:       2,
		Gender:     "Male",
		SkillLevel: "Intermediate",
	}
}

func testEvent() EventDescriptor {
	return EventDescriptor{
		Name:         "Hacksetu",
		Type:         "Hackathon",
		Level:        "National",
		DurationDays: 2,
	}
}

func fullPrior() *PriorRatings {
	return &PriorRatings{
		VenueRating:             7.5,
		OrganizationRating:      6.2,
		ContentQuality:          8.0,
		MentorSupport:           6.8,
		FoodQuality:             5.5,
		PrizeSatisfaction:       7.0,
		NetworkingOpportunities: 8.2,
		TimeManagement:          6.4,
		Infrastructure:          6.9,
		RegistrationProcess:     8.1,
		LearningOutcome:         7.8,
	}
}

func TestBuildDeterministicWithPriorRatings(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	first, err := b.Build(testStudent(), testEvent(), fullPrior())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := b.Build(testStudent(), testEvent(), fullPrior())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("prior-ratings path must be deterministic:\n%v\n%v", first, second)
	}
	if len(first) != len(FeatureColumns) {
		t.Fatalf("vector length = %d, want %d", len(first), len(FeatureColumns))
	}
}

func TestBuildEncodesCategoricals(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	vec, err := b.Build(testStudent(), testEvent(), fullPrior())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Hacksetu is index 5, Hackathon index 4, National index 1 in the
	// frozen vocabularies.
	if vec[0] != 5 {
		t.Fatalf("event name encoding = %v, want 5", vec[0])
	}
	if vec[1] != 4 {
		t.Fatalf("event type encoding = %v, want 4", vec[1])
	}
	if vec[2] != 1 {
		t.Fatalf("event level encoding = %v, want 1", vec[2])
	}
}

func TestBuildAppliesProfileDefaults(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	vec, err := b.Build(testStudent(), testEvent(), fullPrior())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if vec[6] != 20 { // age defaults to 18 + year
		t.Fatalf("age = %v, want 20", vec[6])
	}
	if vec[10] != 3 { // team size defaults to 3
		t.Fatalf("team size = %v, want 3", vec[10])
	}
	if vec[11] != 0 { // participated alone defaults to false
		t.Fatalf("participated alone = %v, want 0", vec[11])
	}
}

func TestBuildMissingPriorRatingDefaults(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	prior := fullPrior()
	prior.VenueRating = 0
	prior.RegistrationProcess = 0

	vec, err := b.Build(testStudent(), testEvent(), prior)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if vec[13] != 7.0 {
		t.Fatalf("missing venue rating = %v, want default 7.0", vec[13])
	}
	if vec[22] != 8.0 {
		t.Fatalf("missing registration process = %v, want default 8.0", vec[22])
	}
}

func TestBuildSynthesizedRatingsStayInRange(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(42)))

	student := testStudent()
	student.SkillLevel = "Expert"

	vec, err := b.Build(student, testEvent(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Synthesized ratings are base 7.0 (Expert) with jitter in [-0.5,0.5];
	// food is always 6.5 based, registration is pinned at 8.0.
	for i := 13; i <= 23; i++ {
		if vec[i] < 6.0 || vec[i] > 8.0 {
			t.Fatalf("synthesized rating %s = %v out of expected range", FeatureColumns[i], vec[i])
		}
	}
	if vec[22] != 8.0 {
		t.Fatalf("registration process = %v, want pinned 8.0", vec[22])
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	event := testEvent()
	event.Type = "Webinar"

	_, err := b.Build(testStudent(), event, fullPrior())
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if unknown.Field != "event_type" || unknown.Value != "Webinar" {
		t.Fatalf("unexpected error detail: %+v", unknown)
	}
}

func TestBuildValidation(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	tests := []struct {
		name    string
		mutate  func(*StudentProfile, *EventDescriptor)
		wantErr bool
	}{
		{"valid", func(s *StudentProfile, e *EventDescriptor) {}, false},
		{"missing branch", func(s *StudentProfile, e *EventDescriptor) { s.Branch = "" }, true},
		{"year out of range", func(s *StudentProfile, e *EventDescriptor) { s.Year = 5 }, true},
		{"missing skill level", func(s *StudentProfile, e *EventDescriptor) { s.SkillLevel = "" }, true},
		{"zero duration", func(s *StudentProfile, e *EventDescriptor) { e.DurationDays = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := testStudent()
			event := testEvent()
			tt.mutate(&student, &event)

			_, err := b.Build(student, event, fullPrior())
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCompositeScores(t *testing.T) {
	b := NewBuilder(DefaultVocabulary(), rand.New(rand.NewSource(1)))

	vec, err := b.Build(testStudent(), testEvent(), fullPrior())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantExperience := (7.5 + 6.2 + 8.0 + 6.8) / 4
	wantFacility := (5.5 + 6.9 + 8.1) / 3
	wantEngagement := (8.2 + 6.4 + 7.8) / 3

	if diff := vec[24] - wantExperience; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("experience score = %v, want %v", vec[24], wantExperience)
	}
	if diff := vec[25] - wantFacility; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("facility score = %v, want %v", vec[25], wantFacility)
	}
	if diff := vec[26] - wantEngagement; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("engagement score = %v, want %v", vec[26], wantEngagement)
	}

	// Experience just above 7.0, so sentiment is Positive (index 2).
	if vec[27] != 2 {
		t.Fatalf("sentiment encoding = %v, want 2 (Positive)", vec[27])
	}
}
