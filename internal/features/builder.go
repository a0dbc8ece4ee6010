package features

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ErrValidation marks a student profile or event descriptor missing
// required fields.
var ErrValidation = errors.New("validation failed")

// FeatureColumns is the frozen column order the predictive model was
// trained against. It is fixed configuration, not derived.
var FeatureColumns = []string{
	"event_name_encoded", "event_type_encoded", "event_level_encoded",
	"event_duration_days", "student_branch_encoded", "student_year", "student_age",
	"gender_encoded", "previous_participation_encoded", "skill_level_encoded",
	"team_size", "participated_alone", "achievement_encoded",
	"venue_rating", "organization_rating", "content_quality", "mentor_support",
	"food_quality", "prize_satisfaction", "networking_opportunities",
	"time_management", "infrastructure", "registration_process", "learning_outcome",
	"total_experience_score", "facility_score", "engagement_score",
	"sentiment_encoded", "feedback_length", "suggestions_given",
}

// Vector is an ordered feature encoding of a (student, event) pair.
// Values align index-for-index with FeatureColumns.
type Vector []float64

// StudentProfile describes the student a prediction is requested for.
// Branch, Year, Gender and SkillLevel are required; the remaining fields
// default when zero (age to 18+year, previous participation to "Low",
// team size to 3, achievement to "Participation").
type StudentProfile struct {
	Branch                string
	Year                  int
	Gender                string
	SkillLevel            string
	Age                   int
	PreviousParticipation string
	TeamSize              int
	ParticipatedAlone     bool
	Achievement           string
}

// EventDescriptor describes a candidate event.
type EventDescriptor struct {
	Name         string
	Type         string
	Level        string
	DurationDays int
	Description  string
	Date         string
}

// PriorRatings is an optional snapshot of the eleven rating dimensions,
// typically the mean of a cohort of similar historical students. Zero
// fields are treated as missing and default to 7.0, except registration
// process which defaults to 8.0.
type PriorRatings struct {
	VenueRating             float64
	OrganizationRating      float64
	ContentQuality          float64
	MentorSupport           float64
	FoodQuality             float64
	PrizeSatisfaction       float64
	NetworkingOpportunities float64
	TimeManagement          float64
	Infrastructure          float64
	RegistrationProcess     float64
	LearningOutcome         float64
}

// Builder converts (student, event, prior ratings) triples into model
// feature vectors. The random source feeds the estimated-ratings
// fallback only; callers needing determinism supply prior ratings.
type Builder struct {
	vocab Vocabulary

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder constructs a Builder. A nil rng gets a time-seeded source.
func NewBuilder(vocab Vocabulary, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{vocab: vocab, rng: rng}
}

// Build validates the inputs and produces the ordered feature vector.
func (b *Builder) Build(student StudentProfile, event EventDescriptor, prior *PriorRatings) (Vector, error) {
	if err := validate(student, event); err != nil {
		return nil, err
	}
	student = applyDefaults(student)

	eventName, err := encode("event_name", b.vocab.EventNames, event.Name)
	if err != nil {
		return nil, err
	}
	eventType, err := encode("event_type", b.vocab.EventTypes, event.Type)
	if err != nil {
		return nil, err
	}
	eventLevel, err := encode("event_level", b.vocab.EventLevels, event.Level)
	if err != nil {
		return nil, err
	}
	branch, err := encode("student_branch", b.vocab.Branches, student.Branch)
	if err != nil {
		return nil, err
	}
	gender, err := encode("gender", b.vocab.Genders, student.Gender)
	if err != nil {
		return nil, err
	}
	prevPart, err := encode("previous_participation", b.vocab.PreviousParticipation, student.PreviousParticipation)
	if err != nil {
		return nil, err
	}
	skill, err := encode("skill_level", b.vocab.SkillLevels, student.SkillLevel)
	if err != nil {
		return nil, err
	}
	achievement, err := encode("achievement", b.vocab.Achievements, student.Achievement)
	if err != nil {
		return nil, err
	}

	ratings := b.ratings(student, prior)

	experienceScore := (ratings.VenueRating + ratings.OrganizationRating +
		ratings.ContentQuality + ratings.MentorSupport) / 4
	facilityScore := (ratings.FoodQuality + ratings.Infrastructure +
		ratings.RegistrationProcess) / 3
	engagementScore := (ratings.NetworkingOpportunities + ratings.TimeManagement +
		ratings.LearningOutcome) / 3

	sentimentLabel := "Neutral"
	if experienceScore >= 7 {
		sentimentLabel = "Positive"
	}
	sentiment, err := encode("sentiment", b.vocab.Sentiments, sentimentLabel)
	if err != nil {
		return nil, err
	}

	participatedAlone := 0.0
	if student.ParticipatedAlone {
		participatedAlone = 1.0
	}

	return Vector{
		eventName, eventType, eventLevel,
		float64(event.DurationDays), branch, float64(student.Year), float64(student.Age),
		gender, prevPart, skill,
		float64(student.TeamSize), participatedAlone, achievement,
		ratings.VenueRating, ratings.OrganizationRating, ratings.ContentQuality, ratings.MentorSupport,
		ratings.FoodQuality, ratings.PrizeSatisfaction, ratings.NetworkingOpportunities,
		ratings.TimeManagement, ratings.Infrastructure, ratings.RegistrationProcess, ratings.LearningOutcome,
		experienceScore, facilityScore, engagementScore,
		sentiment, defaultFeedbackLength, 1,
	}, nil
}

// defaultFeedbackLength is the fixed placeholder the model was trained
// to expect for prospective (not-yet-written) feedback.
const defaultFeedbackLength = 150

func (b *Builder) ratings(student StudentProfile, prior *PriorRatings) PriorRatings {
	if prior != nil {
		return PriorRatings{
			VenueRating:             orDefault(prior.VenueRating, 7.0),
			OrganizationRating:      orDefault(prior.OrganizationRating, 7.0),
			ContentQuality:          orDefault(prior.ContentQuality, 7.0),
			MentorSupport:           orDefault(prior.MentorSupport, 7.0),
			FoodQuality:             orDefault(prior.FoodQuality, 7.0),
			PrizeSatisfaction:       orDefault(prior.PrizeSatisfaction, 7.0),
			NetworkingOpportunities: orDefault(prior.NetworkingOpportunities, 7.0),
			TimeManagement:          orDefault(prior.TimeManagement, 7.0),
			Infrastructure:          orDefault(prior.Infrastructure, 7.0),
			RegistrationProcess:     orDefault(prior.RegistrationProcess, 8.0),
			LearningOutcome:         orDefault(prior.LearningOutcome, 7.0),
		}
	}

	// No history: estimate from skill level with a small perturbation so
	// the model still sees plausible spread. Non-deterministic on purpose.
	base := 6.5
	if student.SkillLevel == "Advanced" || student.SkillLevel == "Expert" {
		base = 7.0
	}
	return PriorRatings{
		VenueRating:             base + b.jitter(),
		OrganizationRating:      base + b.jitter(),
		ContentQuality:          base + b.jitter(),
		MentorSupport:           base + b.jitter(),
		FoodQuality:             6.5 + b.jitter(),
		PrizeSatisfaction:       base + b.jitter(),
		NetworkingOpportunities: base + b.jitter(),
		TimeManagement:          base + b.jitter(),
		Infrastructure:          base + b.jitter(),
		RegistrationProcess:     8.0,
		LearningOutcome:         base + b.jitter(),
	}
}

func (b *Builder) jitter() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.Float64() - 0.5
}

func validate(student StudentProfile, event EventDescriptor) error {
	switch {
	case student.Branch == "":
		return fmt.Errorf("%w: student branch is required", ErrValidation)
	case student.Year < 1 || student.Year > 4:
		return fmt.Errorf("%w: student year must be between 1 and 4", ErrValidation)
	case student.Gender == "":
		return fmt.Errorf("%w: student gender is required", ErrValidation)
	case student.SkillLevel == "":
		return fmt.Errorf("%w: student skill level is required", ErrValidation)
	case event.Name == "":
		return fmt.Errorf("%w: event name is required", ErrValidation)
	case event.Type == "":
		return fmt.Errorf("%w: event type is required", ErrValidation)
	case event.Level == "":
		return fmt.Errorf("%w: event level is required", ErrValidation)
	case event.DurationDays < 1:
		return fmt.Errorf("%w: event duration must be at least one day", ErrValidation)
	}
	return nil
}

func applyDefaults(student StudentProfile) StudentProfile {
	if student.Age == 0 {
		student.Age = 18 + student.Year
	}
	if student.PreviousParticipation == "" {
		student.PreviousParticipation = "Low"
	}
	if student.TeamSize == 0 {
		student.TeamSize = 3
	}
	if student.Achievement == "" {
		student.Achievement = "Participation"
	}
	return student
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
