package dto

import (
	"time"
)

// PredictionRequest is the prediction form submission.
type PredictionRequest struct {
	SessionID  string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Symbol     string `json:"symbol" yaml:"symbol" validate:"required,symbol" example:"AAPL"`
	ClosePrice string `json:"close_price" yaml:"close_price" validate:"required,price" example:"168.00"`
	Date       string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02" example:"2024-03-15"`
}

// InsightsResponse holds the technical insights of a prediction.
type InsightsResponse struct {
	Volatility                float64 `json:"volatility" yaml:"volatility"`
	SupportLevel              float64 `json:"support_level" yaml:"support_level"`
	ResistanceLevel           float64 `json:"resistance_level" yaml:"resistance_level"`
	PositionRelativeToAverage string  `json:"position_relative_to_average" yaml:"position_relative_to_average"`
}

// PredictionRecordResponse is a fabricated forecast as returned by the API.
type PredictionRecordResponse struct {
	Symbol         string           `json:"symbol" yaml:"symbol"`
	InputDate      string           `json:"input_date" yaml:"input_date"`
	PredictionDate string           `json:"prediction_date" yaml:"prediction_date"`
	NextDayDate    string           `json:"next_day_date" yaml:"next_day_date"`
	InputClose     float64          `json:"input_close" yaml:"input_close"`
	PredictedPrice float64          `json:"predicted_price" yaml:"predicted_price"`
	PriceChange    float64          `json:"price_change" yaml:"price_change"`
	PercentChange  float64          `json:"percent_change" yaml:"percent_change"`
	Confidence     float64          `json:"confidence" yaml:"confidence"`
	ModelUsed      string           `json:"model_used" yaml:"model_used"`
	Recommendation string           `json:"recommendation" yaml:"recommendation"`
	Insights       InsightsResponse `json:"insights" yaml:"insights"`
}

// PredictionSessionResponse is the state of a prediction form session.
type PredictionSessionResponse struct {
	SessionID  string                    `json:"session_id" yaml:"session_id"`
	RequestID  string                    `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Status     string                    `json:"status" yaml:"status"`
	Prediction *PredictionRecordResponse `json:"prediction,omitempty" yaml:"prediction,omitempty"`
	Error      string                    `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt  time.Time                 `json:"updated_at" yaml:"updated_at"`
}
