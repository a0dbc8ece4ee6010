package recommend

import "campus-backend/internal/features"

// Ranked is one scored candidate in a ranking result.
type Ranked struct {
	Event                 features.EventDescriptor `json:"event"`
	Confidence            float64                  `json:"confidence"`
	PredictedSatisfaction float64                  `json:"predictedSatisfaction"`
	RecommendLabel        bool                     `json:"recommendLabel"`
	RecommendationText    string                   `json:"recommendationText"`
}

// Prediction is the outcome of scoring a single (student, event) pair.
type Prediction struct {
	Event                 features.EventDescriptor `json:"event"`
	Confidence            float64                  `json:"confidence"`
	PredictedSatisfaction float64                  `json:"predictedSatisfaction"`
	RecommendLabel        bool                     `json:"recommendLabel"`
	RecommendationText    string                   `json:"recommendationText"`
}

// ConcernArea is a rating dimension a student consistently scored low.
type ConcernArea struct {
	Area          string  `json:"area"`
	AverageRating float64 `json:"averageRating"`
}

// Insights summarizes one student's event history.
type Insights struct {
	TotalEventsAttended int           `json:"totalEventsAttended"`
	AverageSatisfaction float64       `json:"averageSatisfaction"`
	RecommendationRate  float64       `json:"recommendationRate"`
	PreferredEventType  string        `json:"preferredEventType"`
	BestEvent           string        `json:"bestEvent"`
	AreasOfConcern      []ConcernArea `json:"areasOfConcern"`
}
