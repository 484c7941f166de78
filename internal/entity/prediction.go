package entity

import (
	"fmt"
	"regexp"
	"time"

	"stock-predictor/pkg/common"
)

var upperSymbolPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

type Recommendation string

const (
	RecommendationBuy  Recommendation = common.RecommendationBuy
	RecommendationSell Recommendation = common.RecommendationSell
)

// PredictionInput is an already validated form submission.
type PredictionInput struct {
	Symbol     string
	ClosePrice float64
	Date       time.Time
}

type Insights struct {
	Volatility                float64
	SupportLevel              float64
	ResistanceLevel           float64
	PositionRelativeToAverage string
}

// PredictionRecord is one fabricated forecast. Build it with NewPredictionRecord.
type PredictionRecord struct {
	Symbol         string
	InputDate      time.Time
	PredictionDate time.Time
	NextDayDate    time.Time
	InputClose     float64
	PredictedPrice float64
	PriceChange    float64
	PercentChange  float64
	Confidence     float64
	ModelUsed      string
	Recommendation Recommendation
	Insights       Insights
	CreatedAt      time.Time
}

// NewPredictionRecord returns a copy of r after checking every record invariant.
func NewPredictionRecord(r PredictionRecord) (*PredictionRecord, error) {
	if !upperSymbolPattern.MatchString(r.Symbol) {
		return nil, fmt.Errorf("%w: symbol %q must be 1-5 uppercase letters", ErrInvalidRecord, r.Symbol)
	}
	if r.InputClose <= 0 || r.PredictedPrice <= 0 {
		return nil, fmt.Errorf("%w: prices must be positive", ErrInvalidRecord)
	}
	if r.InputDate.IsZero() {
		return nil, fmt.Errorf("%w: input date is required", ErrInvalidRecord)
	}
	if !r.NextDayDate.Equal(r.InputDate.AddDate(0, 0, 1)) {
		return nil, fmt.Errorf("%w: next day date must follow the input date", ErrInvalidRecord)
	}
	if r.Confidence < 0.7 || r.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %.3f outside [0.7, 1.0]", ErrInvalidRecord, r.Confidence)
	}
	if r.Recommendation != RecommendationBuy && r.Recommendation != RecommendationSell {
		return nil, fmt.Errorf("%w: unknown recommendation %q", ErrInvalidRecord, r.Recommendation)
	}
	if r.Insights.Volatility < 0 || r.Insights.Volatility > 3 {
		return nil, fmt.Errorf("%w: volatility %.2f outside [0, 3]", ErrInvalidRecord, r.Insights.Volatility)
	}
	switch r.Insights.PositionRelativeToAverage {
	case common.AboveFiftyDayMA, common.BelowFiftyDayMA:
	default:
		return nil, fmt.Errorf("%w: unknown moving average position %q", ErrInvalidRecord, r.Insights.PositionRelativeToAverage)
	}
	if r.PredictionDate.IsZero() {
		r.PredictionDate = r.InputDate
	}
	if r.ModelUsed == "" {
		r.ModelUsed = common.DefaultModelLabel
	}
	return &r, nil
}
