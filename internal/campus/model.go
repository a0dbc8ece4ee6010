package campus

import "time"

// Problem is a reported campus issue, visible to the whole college.
type Problem struct {
	ID           string    `json:"id"`
	CollegeID    string    `json:"college"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Severity     string    `json:"severity"`
	Status       string    `json:"status"`
	ReportedBy   string    `json:"reportedBy"`
	ReportedDate string    `json:"reportedDate"`
	Upvotes      int       `json:"upvotes"`
	Anonymous    bool      `json:"anonymous"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// WisdomTip is advice shared by a student for future cohorts.
type WisdomTip struct {
	ID        string    `json:"id"`
	CollegeID string    `json:"college"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Upvotes   int       `json:"upvotes"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"createdAt"`
}

// Alert is a predicted or announced campus-wide notice.
type Alert struct {
	ID            string    `json:"id"`
	CollegeID     string    `json:"college"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Severity      string    `json:"severity"`
	Category      string    `json:"category"`
	PredictedDate string    `json:"predictedDate"`
	CreatedBy     string    `json:"createdBy"`
	Confidence    float64   `json:"confidence"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Analytics is the per-college rollup of problems, wisdom and alerts.
type Analytics struct {
	TotalProblems      int            `json:"totalProblems"`
	TotalWisdom        int            `json:"totalWisdom"`
	TotalAlerts        int            `json:"totalAlerts"`
	ProblemsByCategory map[string]int `json:"problemsByCategory"`
	ProblemsByStatus   map[string]int `json:"problemsByStatus"`
	WisdomByCategory   map[string]int `json:"wisdomByCategory"`
}
