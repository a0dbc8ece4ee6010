package feedback

import (
	"strings"
	"time"
)

// RecommendThreshold is the overall-satisfaction cutoff above which a
// past attendee is considered to recommend the event.
const RecommendThreshold = 6.5

// Record is one historical student/event interaction. Records are
// immutable once loaded; the store is read-only for the process lifetime.
type Record struct {
	StudentID         string
	EventName         string
	EventType         string
	EventLevel        string
	EventDurationDays int
	EventDate         time.Time

	StudentBranch         string
	StudentYear           int
	StudentAge            int
	Gender                string
	PreviousParticipation string
	SkillLevel            string
	TeamSize              int
	ParticipatedAlone     bool
	Achievement           string

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

	OverallSatisfaction float64
	WouldRecommend      bool
	AttendSimilarEvent  float64
	Sentiment           string
	FeedbackLength      int
	IssuesFaced         string
	SuggestionsGiven    bool
}

// OverallSatisfactionOf computes the weighted overall satisfaction from
// the individual rating dimensions. The weights are fixed; overall
// satisfaction is never independently mutable.
func OverallSatisfactionOf(r Record) float64 {
	return r.OrganizationRating*0.2 +
		r.ContentQuality*0.25 +
		r.MentorSupport*0.15 +
		r.VenueRating*0.1 +
		r.FoodQuality*0.05 +
		r.PrizeSatisfaction*0.1 +
		r.NetworkingOpportunities*0.1 +
		r.Infrastructure*0.05
}

// Normalize clamps all rating dimensions to [1,10] and rederives the
// overall satisfaction and would-recommend fields from them.
func (r *Record) Normalize() {
	for _, f := range []*float64{
		&r.VenueRating, &r.OrganizationRating, &r.ContentQuality,
		&r.MentorSupport, &r.FoodQuality, &r.PrizeSatisfaction,
		&r.NetworkingOpportunities, &r.TimeManagement, &r.Infrastructure,
		&r.RegistrationProcess, &r.LearningOutcome,
	} {
		*f = clampRating(*f)
	}
	r.OverallSatisfaction = OverallSatisfactionOf(*r)
	r.WouldRecommend = r.OverallSatisfaction >= RecommendThreshold
}

// Issues splits the issues-faced field into trimmed issue labels,
// discarding empty and "None" tokens.
func (r Record) Issues() []string {
	raw := strings.TrimSpace(r.IssuesFaced)
	if raw == "" || raw == "None" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || trimmed == "None" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func clampRating(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
