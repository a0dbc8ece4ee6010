package features

import "fmt"

// Vocabulary holds the closed categorical vocabularies the predictive
// model was trained against. Each list mirrors the frozen label-encoder
// classes from the model metadata; order is part of the model contract
// and must not be re-derived.
type Vocabulary struct {
	EventNames            []string
	EventTypes            []string
	EventLevels           []string
	Branches              []string
	Genders               []string
	PreviousParticipation []string
	SkillLevels           []string
	Achievements          []string
	Sentiments            []string
}

// DefaultVocabulary returns the vocabularies of the shipped model artifact.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		EventNames: []string{
			"Ami Chroma", "Anveshan", "Code Sprint", "Convocation",
			"Gaming Tournament", "Hacksetu", "Init Maths", "Project Expo",
			"Smart India Hackathon", "Tech Fest", "Workshop AI/ML",
		},
		EventTypes: []string{
			"Ceremony", "Cultural", "Exhibition", "Gaming",
			"Hackathon", "Technical", "Training", "Workshop",
		},
		EventLevels: []string{"Department", "National", "University"},
		Branches: []string{
			"B.Tech", "BBA", "BCA", "CSE", "Civil",
			"ECE", "IT", "MBA", "Mechanical",
		},
		Genders:               []string{"Female", "Male", "Other"},
		PreviousParticipation: []string{"High", "Low", "Medium", "None"},
		SkillLevels:           []string{"Advanced", "Beginner", "Expert", "Intermediate"},
		Achievements: []string{
			"No Award", "Participation", "Runner Up", "Special Mention", "Won Prize",
		},
		Sentiments: []string{"Negative", "Neutral", "Positive", "Very Positive"},
	}
}

// UnknownCategoryError reports a categorical value outside the model's
// trained vocabulary. It is not retryable; the caller must correct the
// input.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q", e.Field, e.Value)
}

func encode(field string, classes []string, value string) (float64, error) {
	for i, class := range classes {
		if class == value {
			return float64(i), nil
		}
	}
	return 0, &UnknownCategoryError{Field: field, Value: value}
}
