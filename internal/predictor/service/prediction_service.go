package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/config"
	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/repository"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/utils"
	"stock-predictor/pkg/validator"

	"github.com/google/uuid"
)

// PredictionService drives the prediction form: validation, request lifecycle and the provider call.
type PredictionService interface {
	// Submit validates req and runs one prediction for the session. An empty
	// sessionID starts a new session. Validation failures return *validator.ValidationError
	// without touching the session or the provider.
	Submit(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error)
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(cfg *config.Config, predictionRepo repository.PredictionRepository, sessionRepo repository.SessionRepository, validate *validator.Validator, log *logger.Logger) PredictionService {
	return &predictionService{
		predictionRepo: predictionRepo,
		sessionRepo:    sessionRepo,
		validate:       validate,
		logger:         log,
		timeout:        cfg.Prediction.Timeout,
		location:       utils.LoadLocation(cfg.App.TimeZone),
		newID:          uuid.NewString,
		now:            time.Now,
	}
}

type predictionService struct {
	predictionRepo repository.PredictionRepository
	sessionRepo    repository.SessionRepository
	validate       *validator.Validator
	logger         *logger.Logger
	timeout        time.Duration
	location       *time.Location
	newID          func() string
	now            func() time.Time
}

func (s *predictionService) Submit(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		s.logger.DebugContext(ctx, "Rejected prediction form", logger.ErrorField(err))
		return nil, err
	}
	input, err := s.toInput(req)
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = s.newID()
	}
	requestID := s.newID()

	if _, err := s.sessionRepo.Update(ctx, sessionID, func(session *entity.PredictionSession) error {
		return session.Begin(requestID, s.now())
	}); err != nil {
		s.logger.WarnContext(ctx, "Prediction submission rejected", logger.ErrorField(err), logger.StringField("session_id", sessionID))
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	record, predictErr := s.predictionRepo.Predict(callCtx, input)
	if predictErr != nil && !errors.Is(predictErr, entity.ErrPredictionFailed) {
		predictErr = fmt.Errorf("%w: %w", entity.ErrPredictionFailed, predictErr)
	}

	// Use a fresh context so that a cancelled request still releases the session.
	session, err := s.sessionRepo.Update(context.WithoutCancel(ctx), sessionID, func(session *entity.PredictionSession) error {
		if predictErr != nil {
			return session.Fail(requestID, predictErr, s.now())
		}
		return session.Complete(requestID, record, s.now())
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Discarded prediction result", logger.ErrorField(err),
			logger.StringField("session_id", sessionID), logger.StringField("request_id", requestID))
		return nil, err
	}

	if predictErr != nil {
		s.logger.ErrorContext(ctx, "Prediction failed", logger.ErrorField(predictErr),
			logger.StringField("session_id", sessionID), logger.StringField("symbol", input.Symbol))
		return mapToSessionResponse(session), predictErr
	}

	s.logger.InfoContext(ctx, "Prediction generated",
		logger.StringField("session_id", sessionID),
		logger.StringField("request_id", requestID),
		logger.StringField("symbol", record.Symbol),
		logger.StringField("recommendation", string(record.Recommendation)))
	return mapToSessionResponse(session), nil
}

func (s *predictionService) GetSession(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return mapToSessionResponse(session), nil
}

func (s *predictionService) Reset(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
	if _, err := s.sessionRepo.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.Update(ctx, sessionID, func(session *entity.PredictionSession) error {
		session.Reset(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Prediction session reset", logger.StringField("session_id", sessionID))
	return mapToSessionResponse(session), nil
}

func (s *predictionService) toInput(req *dto.PredictionRequest) (entity.PredictionInput, error) {
	closePrice, err := strconv.ParseFloat(req.ClosePrice, 64)
	if err != nil {
		return entity.PredictionInput{}, &validator.ValidationError{Fields: []validator.FieldError{{Field: "close_price", Message: err.Error()}}}
	}
	date, err := utils.ParseDate(req.Date, s.location)
	if err != nil {
		return entity.PredictionInput{}, &validator.ValidationError{Fields: []validator.FieldError{{Field: "date", Message: err.Error()}}}
	}
	return entity.PredictionInput{
		Symbol:     strings.ToUpper(req.Symbol),
		ClosePrice: closePrice,
		Date:       date,
	}, nil
}

func mapToSessionResponse(session *entity.PredictionSession) *dto.PredictionSessionResponse {
	resp := &dto.PredictionSessionResponse{
		SessionID: session.ID,
		RequestID: session.RequestID,
		Status:    string(session.Status),
		UpdatedAt: session.UpdatedAt,
	}
	// the provider's cause stays in the logs
	if session.Status == entity.SessionFailed {
		resp.Error = common.PredictionFailedMessage
	}
	if session.Record != nil {
		resp.Prediction = mapToRecordResponse(session.Record)
	}
	return resp
}

func mapToRecordResponse(r *entity.PredictionRecord) *dto.PredictionRecordResponse {
	return &dto.PredictionRecordResponse{
		Symbol:         r.Symbol,
		InputDate:      utils.FormatDate(r.InputDate),
		PredictionDate: utils.FormatDate(r.PredictionDate),
		NextDayDate:    utils.FormatDate(r.NextDayDate),
		InputClose:     r.InputClose,
		PredictedPrice: r.PredictedPrice,
		PriceChange:    r.PriceChange,
		PercentChange:  r.PercentChange,
		Confidence:     r.Confidence,
		ModelUsed:      r.ModelUsed,
		Recommendation: string(r.Recommendation),
		Insights: dto.InsightsResponse{
			Volatility:                r.Insights.Volatility,
			SupportLevel:              r.Insights.SupportLevel,
			ResistanceLevel:           r.Insights.ResistanceLevel,
			PositionRelativeToAverage: r.Insights.PositionRelativeToAverage,
		},
	}
}
