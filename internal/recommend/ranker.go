package recommend

import (
	"context"
	"fmt"
	"sort"

	"campus-backend/internal/features"
	"campus-backend/internal/predict"
)

// Ranker scores candidate events for one student and orders them by
// model confidence, then predicted satisfaction.
type Ranker struct {
	Builder   *features.Builder
	Predictor predict.Predictor
}

// NewRanker constructs a Ranker.
func NewRanker(builder *features.Builder, predictor predict.Predictor) *Ranker {
	return &Ranker{Builder: builder, Predictor: predictor}
}

// PredictOne scores a single candidate event.
func (r *Ranker) PredictOne(ctx context.Context, student features.StudentProfile, event features.EventDescriptor, prior *features.PriorRatings) (Prediction, error) {
	vec, err := r.Builder.Build(student, event, prior)
	if err != nil {
		return Prediction{}, err
	}
	label, probability, err := r.Predictor.PredictRecommend(ctx, vec)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict recommend for %q: %w", event.Name, err)
	}
	satisfaction, err := r.Predictor.PredictSatisfaction(ctx, vec)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict satisfaction for %q: %w", event.Name, err)
	}
	return Prediction{
		Event:                 event,
		Confidence:            probability,
		PredictedSatisfaction: satisfaction,
		RecommendLabel:        label,
		RecommendationText:    recommendationText(label, probability),
	}, nil
}

// Rank scores every candidate and returns at most topN results ordered
// by confidence descending, then predicted satisfaction descending,
// ties broken by input order. A failure on any candidate aborts the
// whole call; callers never see a partial ranking.
func (r *Ranker) Rank(ctx context.Context, student features.StudentProfile, candidates []features.EventDescriptor, prior *features.PriorRatings, topN int) ([]Ranked, error) {
	if topN <= 0 || len(candidates) == 0 {
		return []Ranked{}, nil
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, event := range candidates {
		p, err := r.PredictOne(ctx, student, event, prior)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Ranked(p))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].PredictedSatisfaction > ranked[j].PredictedSatisfaction
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

func recommendationText(label bool, probability float64) string {
	switch {
	case probability > 0.75:
		return "Highly Recommended"
	case label:
		return "Recommended"
	default:
		return "Not Recommended"
	}
}
