package guidance

// IssueCount is one issue label with how many past attendees reported it.
type IssueCount struct {
	Issue      string  `json:"issue"`
	ReportedBy int     `json:"reportedBy"`
	Percentage float64 `json:"percentage"`
}

// Concern is a rating dimension that averaged below the concern cutoff.
type Concern struct {
	Area          string  `json:"area"`
	AverageRating float64 `json:"averageRating"`
	Severity      string  `json:"severity"`
}

// Strength is a rating dimension that averaged at or above the strength
// cutoff.
type Strength struct {
	Area          string  `json:"area"`
	AverageRating float64 `json:"averageRating"`
}

// Expectations summarizes the satisfaction distribution of past
// attendees.
type Expectations struct {
	SatisfactionMin          float64  `json:"satisfactionMin"`
	SatisfactionMax          float64  `json:"satisfactionMax"`
	SatisfactionAverage      float64  `json:"satisfactionAverage"`
	LikelyOutcome            string   `json:"likelyOutcome"`
	RecommendationLikelihood float64  `json:"recommendationLikelihood"`
	SimilarStudents          *float64 `json:"similarStudentsSatisfaction,omitempty"`
}

// EventAggregate is the per-event statistical summary of the
// historical corpus.
type EventAggregate struct {
	EventName           string       `json:"eventName"`
	EventType           string       `json:"eventType"`
	EventDurationDays   int          `json:"eventDurationDays"`
	TotalAttendees      int          `json:"totalAttendees"`
	OverallSatisfaction float64      `json:"overallSatisfaction"`
	RecommendationRate  float64      `json:"recommendationRate"`
	CommonIssues        []IssueCount `json:"commonIssues"`
	AreasOfConcern      []Concern    `json:"areasOfConcern"`
	Strengths           []Strength   `json:"strengths"`
	Expectations        Expectations `json:"expectations"`
}

// Advice is one prioritized recommendation in a guidance report.
type Advice struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
	Priority string `json:"priority"`
}

// ChecklistItem is one entry of the preparation checklist.
type ChecklistItem struct {
	Item        string `json:"item"`
	Description string `json:"description"`
}

// GuidanceReport is the full pre-registration guidance for one
// (student, event) pair.
type GuidanceReport struct {
	EventName               string          `json:"eventName"`
	EventType               string          `json:"eventType"`
	TotalPastAttendees      int             `json:"totalPastAttendees"`
	SimilarProfileAttendees int             `json:"similarProfileAttendees"`
	OverallSatisfaction     float64         `json:"overallSatisfaction"`
	RecommendationRate      float64         `json:"recommendationRate"`
	CommonIssues            []IssueCount    `json:"commonIssues"`
	AreasOfConcern          []Concern       `json:"areasOfConcern"`
	Strengths               []Strength      `json:"strengths"`
	Recommendations         []Advice        `json:"recommendations"`
	SuccessTips             []string        `json:"successTips"`
	Expectations            Expectations    `json:"expectations"`
	Preparation             []ChecklistItem `json:"preparation"`
}
