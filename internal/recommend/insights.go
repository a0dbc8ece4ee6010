package recommend

import (
	"sort"

	"campus-backend/internal/feedback"
)

// InsightsFromHistory summarizes a student's past feedback records:
// attendance totals, satisfaction averages, the preferred event type
// (modal, ties resolved alphabetically), the best-rated event, and any
// rating dimension the student averaged below 6.0.
func InsightsFromHistory(history []feedback.Record) Insights {
	insights := Insights{
		TotalEventsAttended: len(history),
		AreasOfConcern:      []ConcernArea{},
	}
	if len(history) == 0 {
		return insights
	}

	typeCounts := make(map[string]int)
	var satisfactionSum, recommendSum float64
	best := history[0]
	for _, rec := range history {
		typeCounts[rec.EventType]++
		satisfactionSum += rec.OverallSatisfaction
		if rec.WouldRecommend {
			recommendSum++
		}
		if rec.OverallSatisfaction > best.OverallSatisfaction {
			best = rec
		}
	}

	n := float64(len(history))
	insights.AverageSatisfaction = satisfactionSum / n
	insights.RecommendationRate = recommendSum / n
	insights.BestEvent = best.EventName
	insights.PreferredEventType = modalType(typeCounts)

	dims := []struct {
		label string
		value func(feedback.Record) float64
	}{
		{"Venue Rating", func(r feedback.Record) float64 { return r.VenueRating }},
		{"Organization Rating", func(r feedback.Record) float64 { return r.OrganizationRating }},
		{"Content Quality", func(r feedback.Record) float64 { return r.ContentQuality }},
		{"Mentor Support", func(r feedback.Record) float64 { return r.MentorSupport }},
		{"Food Quality", func(r feedback.Record) float64 { return r.FoodQuality }},
		{"Infrastructure", func(r feedback.Record) float64 { return r.Infrastructure }},
	}
	for _, dim := range dims {
		var sum float64
		for _, rec := range history {
			sum += dim.value(rec)
		}
		avg := sum / n
		if avg < 6.0 {
			insights.AreasOfConcern = append(insights.AreasOfConcern, ConcernArea{
				Area:          dim.label,
				AverageRating: avg,
			})
		}
	}
	return insights
}

func modalType(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var modal string
	max := -1
	for _, name := range names {
		if counts[name] > max {
			modal = name
			max = counts[name]
		}
	}
	return modal
}
