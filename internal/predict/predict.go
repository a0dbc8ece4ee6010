package predict

import (
	"context"
	"errors"

	"campus-backend/internal/features"
)

// Predictor abstracts the frozen predictive model pair: a
// would-recommend classifier and a satisfaction regressor. The model is
// external; the core never fabricates a prediction when it fails.
type Predictor interface {
	// PredictRecommend returns the would-recommend label and its probability.
	PredictRecommend(ctx context.Context, v features.Vector) (label bool, probability float64, err error)
	// PredictSatisfaction returns the predicted satisfaction score,
	// expected (but not guaranteed) in [1,10].
	PredictSatisfaction(ctx context.Context, v features.Vector) (float64, error)
}

// ErrUnavailable is returned when the external model failed or timed out.
// Callers may retry once; they must never default the result.
var ErrUnavailable = errors.New("prediction unavailable")

// ErrNotConfigured is returned by the placeholder predictor.
var ErrNotConfigured = errors.New("predictive model not configured")

// Placeholder is a stub predictor used when no model endpoint is wired.
type Placeholder struct{}

// PredictRecommend returns ErrNotConfigured.
func (Placeholder) PredictRecommend(ctx context.Context, v features.Vector) (bool, float64, error) {
	_ = ctx
	_ = v
	return false, 0, ErrNotConfigured
}

// PredictSatisfaction returns ErrNotConfigured.
func (Placeholder) PredictSatisfaction(ctx context.Context, v features.Vector) (float64, error) {
	_ = ctx
	_ = v
	return 0, ErrNotConfigured
}
