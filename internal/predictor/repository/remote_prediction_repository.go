package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/config"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type remotePredictRequest struct {
	Symbol     string `json:"symbol"`
	ClosePrice string `json:"close_price"`
	Date       string `json:"date"`
}

type remotePredictResponse struct {
	Data struct {
		Symbol         string  `json:"symbol"`
		InputDate      string  `json:"input_date"`
		InputClose     float64 `json:"input_close"`
		PredictedPrice float64 `json:"predicted_price,string"`
		PriceChange    float64 `json:"price_change,string"`
		PercentChange  float64 `json:"percent_change,string"`
		NextDayDate    string  `json:"next_day_date"`
		Confidence     float64 `json:"confidence,string"`
		ModelUsed      string  `json:"model_used"`
		Recommendation string  `json:"recommendation"`
		Insights       struct {
			Volatility                float64 `json:"volatility,string"`
			SupportLevel              float64 `json:"support_level,string"`
			ResistanceLevel           float64 `json:"resistance_level,string"`
			PositionRelativeToAverage string  `json:"position_relative_to_average"`
		} `json:"insights"`
	} `json:"data"`
}

type remotePredictionRepository struct {
	cfg            config.RemoteProvider
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewRemotePredictionRepository returns a provider that calls a prediction service over HTTP.
// The service answers POST {base_url}/predict with the record under "data", numeric fields as strings.
func NewRemotePredictionRepository(cfg config.RemoteProvider, log *logger.Logger) PredictionRepository {
	perRequest := time.Minute / time.Duration(max(cfg.MaxRequestPerMinute, 1))
	return &remotePredictionRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		requestLimiter: rate.NewLimiter(rate.Every(perRequest), 1),
	}
}

func (r *remotePredictionRepository) Predict(ctx context.Context, input entity.PredictionInput) (*entity.PredictionRecord, error) {
	payload, err := json.Marshal(remotePredictRequest{
		Symbol:     strings.ToUpper(input.Symbol),
		ClosePrice: strconv.FormatFloat(input.ClosePrice, 'f', 2, 64),
		Date:       utils.FormatDate(input.Date),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrPredictionFailed, err)
	}

	body, err := r.sendRequest(ctx, http.MethodPost, strings.TrimRight(r.cfg.BaseURL, "/")+"/predict", payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrPredictionFailed, err)
	}

	var resp remotePredictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode prediction service response", logger.ErrorField(err))
		return nil, fmt.Errorf("%w: decode response: %w", entity.ErrPredictionFailed, err)
	}

	d := resp.Data
	record, err := entity.NewPredictionRecord(entity.PredictionRecord{
		Symbol:         d.Symbol,
		InputDate:      input.Date,
		PredictionDate: input.Date,
		NextDayDate:    input.Date.AddDate(0, 0, 1),
		InputClose:     input.ClosePrice,
		PredictedPrice: d.PredictedPrice,
		PriceChange:    d.PriceChange,
		PercentChange:  d.PercentChange,
		Confidence:     d.Confidence,
		ModelUsed:      d.ModelUsed,
		Recommendation: entity.Recommendation(d.Recommendation),
		Insights: entity.Insights{
			Volatility:                d.Insights.Volatility,
			SupportLevel:              d.Insights.SupportLevel,
			ResistanceLevel:           d.Insights.ResistanceLevel,
			PositionRelativeToAverage: d.Insights.PositionRelativeToAverage,
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		r.log.ErrorContext(ctx, "Prediction service returned an invalid record", logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %w", entity.ErrPredictionFailed, err)
	}
	return record, nil
}

func (r *remotePredictionRepository) sendRequest(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("max_request_per_minute", r.cfg.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to prediction service", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from prediction service", fields...)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from prediction service", fields...)
		return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	return body, nil
}
