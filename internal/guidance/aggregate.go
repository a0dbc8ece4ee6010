package guidance

import (
	"context"
	"math"
	"sort"

	"campus-backend/internal/feedback"
)

const (
	concernCutoff      = 7.0
	highSeverityCutoff = 6.0
	strengthCutoff     = 7.5
	topIssues          = 5
)

type dimension struct {
	label string
	value func(feedback.Record) float64
}

// The two dimension sets are fixed; concerns and strengths deliberately
// disagree on which columns they watch.
var concernDimensions = []dimension{
	{"Venue Quality", func(r feedback.Record) float64 { return r.VenueRating }},
	{"Organization & Coordination", func(r feedback.Record) float64 { return r.OrganizationRating }},
	{"Content Quality", func(r feedback.Record) float64 { return r.ContentQuality }},
	{"Mentor Support", func(r feedback.Record) float64 { return r.MentorSupport }},
	{"Food & Refreshments", func(r feedback.Record) float64 { return r.FoodQuality }},
	{"Infrastructure & Facilities", func(r feedback.Record) float64 { return r.Infrastructure }},
	{"Time Management", func(r feedback.Record) float64 { return r.TimeManagement }},
	{"Registration Process", func(r feedback.Record) float64 { return r.RegistrationProcess }},
}

var strengthDimensions = []dimension{
	{"Venue Quality", func(r feedback.Record) float64 { return r.VenueRating }},
	{"Organization & Coordination", func(r feedback.Record) float64 { return r.OrganizationRating }},
	{"Content Quality", func(r feedback.Record) float64 { return r.ContentQuality }},
	{"Mentor Support", func(r feedback.Record) float64 { return r.MentorSupport }},
	{"Networking Opportunities", func(r feedback.Record) float64 { return r.NetworkingOpportunities }},
	{"Learning Outcome", func(r feedback.Record) float64 { return r.LearningOutcome }},
	{"Infrastructure", func(r feedback.Record) float64 { return r.Infrastructure }},
}

// Aggregate loads the event's records from the store and summarizes
// them. Zero matching rows surfaces feedback.ErrNotFound unchanged: an
// unknown event is distinct from an event with no issues.
func Aggregate(ctx context.Context, store feedback.Store, eventName string) (EventAggregate, error) {
	records, err := store.ListByEvent(ctx, eventName)
	if err != nil {
		return EventAggregate{}, err
	}
	return AggregateRecords(eventName, records), nil
}

// AggregateRecords summarizes an already-filtered, non-empty record set.
func AggregateRecords(eventName string, records []feedback.Record) EventAggregate {
	satisfactionMean := mean(records, func(r feedback.Record) float64 { return r.OverallSatisfaction })
	recommendRate := recommendRate(records)

	likely := "Mixed"
	if satisfactionMean >= 7.0 {
		likely = "Positive"
	}

	return EventAggregate{
		EventName:           eventName,
		EventType:           records[0].EventType,
		EventDurationDays:   records[0].EventDurationDays,
		TotalAttendees:      len(records),
		OverallSatisfaction: satisfactionMean,
		RecommendationRate:  recommendRate,
		CommonIssues:        commonIssues(records),
		AreasOfConcern:      areasOfConcern(records),
		Strengths:           strengths(records),
		Expectations: Expectations{
			SatisfactionMin:          quantile(records, 0.25),
			SatisfactionMax:          quantile(records, 0.75),
			SatisfactionAverage:      satisfactionMean,
			LikelyOutcome:            likely,
			RecommendationLikelihood: recommendRate,
		},
	}
}

func commonIssues(records []feedback.Record) []IssueCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		for _, issue := range rec.Issues() {
			if counts[issue] == 0 {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}

	// Count descending, ties by first appearance in the corpus.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topIssues {
		order = order[:topIssues]
	}

	total := float64(len(records))
	issues := make([]IssueCount, 0, len(order))
	for _, issue := range order {
		issues = append(issues, IssueCount{
			Issue:      issue,
			ReportedBy: counts[issue],
			Percentage: float64(counts[issue]) / total * 100,
		})
	}
	return issues
}

func areasOfConcern(records []feedback.Record) []Concern {
	var concerns []Concern
	for _, dim := range concernDimensions {
		avg := mean(records, dim.value)
		if avg >= concernCutoff {
			continue
		}
		severity := "Medium"
		if avg < highSeverityCutoff {
			severity = "High"
		}
		concerns = append(concerns, Concern{Area: dim.label, AverageRating: avg, Severity: severity})
	}
	sort.SliceStable(concerns, func(i, j int) bool {
		return concerns[i].AverageRating < concerns[j].AverageRating
	})
	return concerns
}

func strengths(records []feedback.Record) []Strength {
	var out []Strength
	for _, dim := range strengthDimensions {
		avg := mean(records, dim.value)
		if avg < strengthCutoff {
			continue
		}
		out = append(out, Strength{Area: dim.label, AverageRating: avg})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	return out
}

func mean(records []feedback.Record, value func(feedback.Record) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range records {
		sum += value(rec)
	}
	return sum / float64(len(records))
}

func recommendRate(records []feedback.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var count float64
	for _, rec := range records {
		if rec.WouldRecommend {
			count++
		}
	}
	return count / float64(len(records)) * 100
}

// quantile computes the q-th quantile of overall satisfaction with
// linear interpolation between order statistics.
func quantile(records []feedback.Record, q float64) float64 {
	values := make([]float64, len(records))
	for i, rec := range records {
		values[i] = rec.OverallSatisfaction
	}
	sort.Float64s(values)

	if len(values) == 1 {
		return values[0]
	}
	pos := q * float64(len(values)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return values[lower]
	}
	frac := pos - float64(lower)
	return values[lower]*(1-frac) + values[upper]*frac
}
