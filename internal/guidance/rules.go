package guidance

import (
	"fmt"
	"sort"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
)

// ruleInput is everything an advice rule may look at: the full event
// cohort, its per-dimension means, and the requesting student.
type ruleInput struct {
	records []feedback.Record
	student features.StudentProfile

	organizationMean   float64
	mentorSupportMean  float64
	foodQualityMean    float64
	infrastructureMean float64
	timeManagementMean float64
	eventType          string
}

// adviceRule fires independently of every other rule; the advice text
// may depend on the input (team-size rule).
type adviceRule struct {
	category string
	priority string
	apply    func(in ruleInput) (string, bool)
}

var adviceRules = []adviceRule{
	{
		category: "Organization",
		priority: "High",
		apply: func(in ruleInput) (string, bool) {
			if in.organizationMean >= 7.0 {
				return "", false
			}
			return "Past attendees reported coordination issues. Arrive early, keep emergency contacts handy, and be patient with organizers.", true
		},
	},
	{
		category: "Mentorship",
		priority: "High",
		apply: func(in ruleInput) (string, bool) {
			if in.mentorSupportMean >= 7.0 {
				return "", false
			}
			return "Mentor availability was limited. Prepare your questions in advance and try to connect with mentors early.", true
		},
	},
	{
		category: "Food",
		priority: "Medium",
		apply: func(in ruleInput) (string, bool) {
			if in.foodQualityMean >= 6.5 {
				return "", false
			}
			return "Food quality received low ratings. Consider bringing your own snacks and water.", true
		},
	},
	{
		category: "Technical Setup",
		priority: "High",
		apply: func(in ruleInput) (string, bool) {
			if in.infrastructureMean >= 7.0 {
				return "", false
			}
			return "Infrastructure issues were common. Bring backup chargers, power banks, and essential equipment.", true
		},
	},
	{
		category: "Time Management",
		priority: "Medium",
		apply: func(in ruleInput) (string, bool) {
			if in.timeManagementMean >= 7.0 {
				return "", false
			}
			return "Timing issues were reported. Plan your schedule with buffer time and prioritize tasks.", true
		},
	},
	{
		category: "Team Formation",
		priority: "High",
		apply: func(in ruleInput) (string, bool) {
			if in.eventType != "Hackathon" {
				return "", false
			}
			size, ok := bestTeamSize(in.records)
			if !ok {
				return "", false
			}
			return fmt.Sprintf("Data shows teams of %d members had highest satisfaction. Form your team before the event.", size), true
		},
	},
	{
		category: "Skill Level",
		priority: "Medium",
		apply: func(in ruleInput) (string, bool) {
			if in.student.SkillLevel != "Beginner" {
				return "", false
			}
			return "As a beginner, focus on learning rather than winning. Connect with experienced participants.", true
		},
	},
}

func applyRules(in ruleInput) []Advice {
	out := make([]Advice, 0, len(adviceRules))
	for _, rule := range adviceRules {
		if text, ok := rule.apply(in); ok {
			out = append(out, Advice{Category: rule.category, Advice: text, Priority: rule.priority})
		}
	}
	return out
}

// bestTeamSize finds the team size with the highest mean overall
// satisfaction among the event's records, ties resolved toward the
// smaller size.
func bestTeamSize(records []feedback.Record) (int, bool) {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, rec := range records {
		sums[rec.TeamSize] += rec.OverallSatisfaction
		counts[rec.TeamSize]++
	}
	if len(counts) == 0 {
		return 0, false
	}

	sizes := make([]int, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	best := sizes[0]
	bestMean := sums[best] / float64(counts[best])
	for _, size := range sizes[1:] {
		m := sums[size] / float64(counts[size])
		if m > bestMean {
			best = size
			bestMean = m
		}
	}
	return best, true
}
