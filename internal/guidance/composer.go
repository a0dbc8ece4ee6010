package guidance

import (
	"context"
	"fmt"
	"sort"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
)

// Guide produces the full guidance report for a student and event. It
// aggregates the event's history and composes advice in one pass;
// either the whole report is returned or the error is, never a report
// with holes.
func Guide(ctx context.Context, store feedback.Store, student features.StudentProfile, eventName string) (GuidanceReport, error) {
	records, err := store.ListByEvent(ctx, eventName)
	if err != nil {
		return GuidanceReport{}, err
	}
	agg := AggregateRecords(eventName, records)
	return Compose(student, agg, records), nil
}

// Compose merges the event aggregate with profile-specific rules. The
// records slice must be the same set the aggregate was computed from.
func Compose(student features.StudentProfile, agg EventAggregate, records []feedback.Record) GuidanceReport {
	similar := similarProfile(student, records)
	if len(similar) == 0 {
		similar = records
	}

	expectations := agg.Expectations
	similarMean := mean(similar, func(r feedback.Record) float64 { return r.OverallSatisfaction })
	expectations.SimilarStudents = &similarMean

	in := ruleInput{
		records:            records,
		student:            student,
		organizationMean:   mean(records, func(r feedback.Record) float64 { return r.OrganizationRating }),
		mentorSupportMean:  mean(records, func(r feedback.Record) float64 { return r.MentorSupport }),
		foodQualityMean:    mean(records, func(r feedback.Record) float64 { return r.FoodQuality }),
		infrastructureMean: mean(records, func(r feedback.Record) float64 { return r.Infrastructure }),
		timeManagementMean: mean(records, func(r feedback.Record) float64 { return r.TimeManagement }),
		eventType:          agg.EventType,
	}

	return GuidanceReport{
		EventName:               agg.EventName,
		EventType:               agg.EventType,
		TotalPastAttendees:      agg.TotalAttendees,
		SimilarProfileAttendees: len(similar),
		OverallSatisfaction:     agg.OverallSatisfaction,
		RecommendationRate:      agg.RecommendationRate,
		CommonIssues:            agg.CommonIssues,
		AreasOfConcern:          agg.AreasOfConcern,
		Strengths:               agg.Strengths,
		Recommendations:         applyRules(in),
		SuccessTips:             successTips(records),
		Expectations:            expectations,
		Preparation:             preparationChecklist(agg, in.mentorSupportMean),
	}
}

// similarProfile keeps records matching the student on branch OR year
// OR skill level. The deliberately loose OR widening keeps small events
// from producing empty cohorts.
func similarProfile(student features.StudentProfile, records []feedback.Record) []feedback.Record {
	var out []feedback.Record
	for _, rec := range records {
		if rec.StudentBranch == student.Branch ||
			rec.StudentYear == student.Year ||
			rec.SkillLevel == student.SkillLevel {
			out = append(out, rec)
		}
	}
	return out
}

// successTips derives tips from the successful sub-cohort: satisfaction
// at least 8.0 and a would-recommend verdict.
func successTips(records []feedback.Record) []string {
	var successful []feedback.Record
	for _, rec := range records {
		if rec.OverallSatisfaction >= 8.0 && rec.WouldRecommend {
			successful = append(successful, rec)
		}
	}
	if len(successful) == 0 {
		return []string{}
	}

	tips := []string{}

	solo := 0
	for _, rec := range successful {
		if rec.ParticipatedAlone {
			solo++
		}
	}
	if float64(solo)/float64(len(successful))*100 < 20 {
		tips = append(tips, "Most successful participants came with teams. Teamwork is key!")
	}

	var winnerLearning float64
	winners := 0
	for _, rec := range successful {
		if rec.Achievement == "Won Prize" || rec.Achievement == "Runner Up" {
			winnerLearning += rec.LearningOutcome
			winners++
		}
	}
	if winners > 0 {
		tips = append(tips, fmt.Sprintf("Prize winners had average learning outcome of %.1f/10. Focus on learning!", winnerLearning/float64(winners)))
	}

	if modal := modalSkillLevel(successful); modal != "" {
		tips = append(tips, fmt.Sprintf("Successful participants were mostly %s level. Set realistic expectations.", modal))
	}

	if mean(successful, func(r feedback.Record) float64 { return r.ContentQuality }) >= 8.0 {
		tips = append(tips, "High content engagement correlates with success. Participate actively in all sessions.")
	}
	if mean(successful, func(r feedback.Record) float64 { return r.NetworkingOpportunities }) >= 8.0 {
		tips = append(tips, "Successful participants leveraged networking. Don't hesitate to connect with others.")
	}

	return tips
}

func modalSkillLevel(records []feedback.Record) string {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.SkillLevel]++
	}
	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	var modal string
	max := -1
	for _, level := range levels {
		if counts[level] > max {
			modal = level
			max = counts[level]
		}
	}
	return modal
}

func preparationChecklist(agg EventAggregate, mentorSupportMean float64) []ChecklistItem {
	checklist := []ChecklistItem{
		{Item: "Registration Confirmation", Description: "Keep your registration email and ID ready"},
	}

	if agg.EventType == "Hackathon" || agg.EventType == "Technical" {
		checklist = append(checklist,
			ChecklistItem{Item: "Laptop & Charger", Description: "Ensure laptop is fully charged with all necessary software installed"},
			ChecklistItem{Item: "Power Bank", Description: "Backup power source for long coding sessions"},
			ChecklistItem{Item: "Internet Backup", Description: "Mobile hotspot as backup if WiFi fails"},
		)
	}
	if agg.EventDurationDays > 1 {
		checklist = append(checklist, ChecklistItem{Item: "Snacks & Water", Description: "Keep yourself energized throughout the event"})
	}
	if agg.EventType == "Hackathon" {
		checklist = append(checklist,
			ChecklistItem{Item: "Team Formation", Description: "Form your team and discuss ideas beforehand"},
			ChecklistItem{Item: "Idea Preparation", Description: "Have 2-3 project ideas ready to pitch"},
		)
	}
	if mentorSupportMean < 7.0 {
		checklist = append(checklist, ChecklistItem{Item: "Questions List", Description: "Write down questions to ask mentors when available"})
	}

	checklist = append(checklist, ChecklistItem{Item: "Emergency Contacts", Description: "Save organizer contacts and venue information"})
	return checklist
}
