package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/config"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/utils"
)

type simulatedPredictionRepository struct {
	cfg config.Simulator
	log *logger.Logger
	src ohlcv.Source
	now func() time.Time
}

// NewSimulatedPredictionRepository returns a provider that fabricates predictions locally after cfg.Latency.
func NewSimulatedPredictionRepository(cfg config.Simulator, log *logger.Logger, src ohlcv.Source) PredictionRepository {
	return &simulatedPredictionRepository{
		cfg: cfg,
		log: log,
		src: src,
		now: time.Now,
	}
}

func (r *simulatedPredictionRepository) Predict(ctx context.Context, input entity.PredictionInput) (*entity.PredictionRecord, error) {
	if err := r.wait(ctx); err != nil {
		r.log.WarnContext(ctx, "Simulated prediction interrupted", logger.ErrorField(err), logger.StringField("symbol", input.Symbol))
		return nil, fmt.Errorf("%w: %w", entity.ErrPredictionFailed, err)
	}

	if r.cfg.FailureRate > 0 && r.src.Float64() < r.cfg.FailureRate {
		r.log.WarnContext(ctx, "Simulated prediction failure", logger.StringField("symbol", input.Symbol))
		return nil, fmt.Errorf("%w: simulated upstream error", entity.ErrPredictionFailed)
	}

	closePrice := input.ClosePrice
	predicted := max(utils.Round2(closePrice*(1+ohlcv.Uniform(r.src, -0.05, 0.05))), ohlcv.MinPrice)

	var priceChange, percentChange float64
	switch r.cfg.ChangeMode {
	case config.ChangeModeIndependent:
		priceChange = utils.Round2(ohlcv.Uniform(r.src, -5, 5))
		percentChange = utils.Round2(ohlcv.Uniform(r.src, -2.5, 2.5))
	default:
		priceChange = utils.Round2(predicted - closePrice)
		percentChange = utils.PercentChange(closePrice, predicted)
	}

	recommendation := entity.RecommendationSell
	if r.src.Float64() > 0.5 {
		recommendation = entity.RecommendationBuy
	}
	position := common.BelowFiftyDayMA
	if r.src.Float64() > 0.5 {
		position = common.AboveFiftyDayMA
	}

	record, err := entity.NewPredictionRecord(entity.PredictionRecord{
		Symbol:         strings.ToUpper(input.Symbol),
		InputDate:      input.Date,
		PredictionDate: input.Date,
		NextDayDate:    input.Date.AddDate(0, 0, 1),
		InputClose:     closePrice,
		PredictedPrice: predicted,
		PriceChange:    priceChange,
		PercentChange:  percentChange,
		Confidence:     utils.Round(0.7+r.src.Float64()*0.3, 3),
		ModelUsed:      r.cfg.ModelLabel,
		Recommendation: recommendation,
		Insights: entity.Insights{
			Volatility:                utils.Round2(r.src.Float64() * 3),
			SupportLevel:              utils.MulRound2(closePrice, 0.95),
			ResistanceLevel:           utils.MulRound2(closePrice, 1.05),
			PositionRelativeToAverage: position,
		},
		CreatedAt: r.now(),
	})
	if err != nil {
		r.log.ErrorContext(ctx, "Simulated prediction produced an invalid record", logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %w", entity.ErrPredictionFailed, err)
	}

	r.log.DebugContext(ctx, "Simulated prediction generated",
		logger.StringField("symbol", record.Symbol),
		logger.FloatField("input_close", record.InputClose),
		logger.FloatField("predicted_price", record.PredictedPrice))
	return record, nil
}

func (r *simulatedPredictionRepository) wait(ctx context.Context) error {
	if r.cfg.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.cfg.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
