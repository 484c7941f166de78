package repository

import (
	"context"

	"stock-predictor/internal/entity"
)

// PredictionRepository produces a prediction for a validated form submission.
// Every failure wraps entity.ErrPredictionFailed.
type PredictionRepository interface {
	Predict(ctx context.Context, input entity.PredictionInput) (*entity.PredictionRecord, error)
}
