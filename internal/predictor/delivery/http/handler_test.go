package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/config"
	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/repository"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/validator"
)

type fakePredictionService struct {
	submit     func(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error)
	getSession func(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error)
	reset      func(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error)
}

func (f *fakePredictionService) Submit(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
	return f.submit(ctx, sessionID, req)
}

func (f *fakePredictionService) GetSession(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
	return f.getSession(ctx, sessionID)
}

func (f *fakePredictionService) Reset(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
	return f.reset(ctx, sessionID)
}

type fakeSeriesService struct {
	generate  func(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error)
	dashboard func(ctx context.Context) (*dto.DashboardResponse, error)
}

func (f *fakeSeriesService) Generate(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error) {
	return f.generate(ctx, req)
}

func (f *fakeSeriesService) Profiles(ctx context.Context) []dto.ProfileResponse {
	return []dto.ProfileResponse{{Name: common.ProfileChart, BasePrice: 150, Default: true}}
}

func (f *fakeSeriesService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	return f.dashboard(ctx)
}

func (f *fakeSeriesService) Start(ctx context.Context) error { return nil }

var (
	_ service.PredictionService = (*fakePredictionService)(nil)
	_ service.SeriesService     = (*fakeSeriesService)(nil)
)

func newTestServer(p *fakePredictionService, s *fakeSeriesService) http.Handler {
	log := logger.NewNop()
	return NewRouter(NewPredictionHandler(p, log), NewSeriesHandler(s, log), validator.New(), log)
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(&fakePredictionService{}, &fakeSeriesService{}), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(common.HeaderRequestID))
}

func TestSubmit_UsesSessionHeader(t *testing.T) {
	p := &fakePredictionService{submit: func(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
		assert.Equal(t, "header-session", sessionID)
		assert.Equal(t, "AAPL", req.Symbol)
		assert.Equal(t, "168.00", req.ClosePrice)
		return &dto.PredictionSessionResponse{
			SessionID: sessionID,
			Status:    string(entity.SessionSucceeded),
			Prediction: &dto.PredictionRecordResponse{
				Symbol:         "AAPL",
				NextDayDate:    "2024-03-16",
				Recommendation: common.RecommendationBuy,
			},
		}, nil
	}}
	h := newTestServer(p, &fakeSeriesService{})

	rec := do(t, h, http.MethodPost, "/api/v1/predictions",
		`{"session_id":"body-session","symbol":"AAPL","close_price":"168.00","date":"2024-03-15"}`,
		map[string]string{common.HeaderSessionID: "header-session"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "header-session", rec.Header().Get(common.HeaderSessionID))

	resp := decode[dto.PredictionSessionResponse](t, rec)
	assert.Equal(t, string(entity.SessionSucceeded), resp.Status)
	require.NotNil(t, resp.Prediction)
	assert.Equal(t, "2024-03-16", resp.Prediction.NextDayDate)
}

func TestSubmit_FallsBackToBodySession(t *testing.T) {
	p := &fakePredictionService{submit: func(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
		return &dto.PredictionSessionResponse{SessionID: sessionID}, nil
	}}
	rec := do(t, newTestServer(p, &fakeSeriesService{}), http.MethodPost, "/api/v1/predictions",
		`{"session_id":"body-session","symbol":"AAPL","close_price":"1","date":"2024-03-15"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body-session", rec.Header().Get(common.HeaderSessionID))
}

func TestSubmit_MalformedBody(t *testing.T) {
	rec := do(t, newTestServer(&fakePredictionService{}, &fakeSeriesService{}), http.MethodPost, "/api/v1/predictions", `{"symbol":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     &validator.ValidationError{Fields: []validator.FieldError{{Field: "symbol", Message: "must be 1 to 5 letters"}}},
			status:  http.StatusBadRequest,
			message: "Invalid request",
		},
		{name: "in progress", err: entity.ErrSubmissionInProgress, status: http.StatusConflict},
		{name: "stale", err: entity.ErrStaleRequest, status: http.StatusConflict},
		{name: "provider", err: fmt.Errorf("%w: boom", entity.ErrPredictionFailed), status: http.StatusBadGateway, message: common.PredictionFailedMessage},
		{name: "timeout", err: fmt.Errorf("%w: %w", entity.ErrPredictionFailed, context.DeadlineExceeded), status: http.StatusGatewayTimeout, message: common.PredictionFailedMessage},
		{name: "unexpected", err: fmt.Errorf("disk on fire"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePredictionService{submit: func(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
				return nil, tt.err
			}}
			rec := do(t, newTestServer(p, &fakeSeriesService{}), http.MethodPost, "/api/v1/predictions",
				`{"symbol":"goog!","close_price":"168.00","date":"2024-03-15"}`, nil)
			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decode[dto.ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestSubmit_FailedSessionCanBeReadAndReset(t *testing.T) {
	cfg := config.Default()
	cfg.Simulator.Latency = 0
	cfg.Simulator.FailureRate = 1
	log := logger.NewNop()
	predictionSvc := service.NewPredictionService(cfg,
		repository.NewSimulatedPredictionRepository(cfg.Simulator, log, ohlcv.NewSource(1)),
		repository.NewSessionRepository(time.Minute, time.Minute),
		validator.New(), log)
	h := NewRouter(NewPredictionHandler(predictionSvc, log), NewSeriesHandler(&fakeSeriesService{}, log), validator.New(), log)

	rec := do(t, h, http.MethodPost, "/api/v1/predictions",
		`{"symbol":"AAPL","close_price":"168.00","date":"2024-03-15"}`, nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	sessionID := rec.Header().Get(common.HeaderSessionID)
	require.NotEmpty(t, sessionID)
	failed := decode[dto.PredictionSessionResponse](t, rec)
	assert.Equal(t, sessionID, failed.SessionID)
	assert.Equal(t, string(entity.SessionFailed), failed.Status)
	assert.Equal(t, common.PredictionFailedMessage, failed.Error)
	assert.Nil(t, failed.Prediction)

	rec = do(t, h, http.MethodGet, "/api/v1/predictions/sessions/"+sessionID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.SessionFailed), decode[dto.PredictionSessionResponse](t, rec).Status)

	rec = do(t, h, http.MethodDelete, "/api/v1/predictions/sessions/"+sessionID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.SessionIdle), decode[dto.PredictionSessionResponse](t, rec).Status)
}

func TestSubmit_ValidationFields(t *testing.T) {
	p := &fakePredictionService{submit: func(ctx context.Context, sessionID string, req *dto.PredictionRequest) (*dto.PredictionSessionResponse, error) {
		return nil, validator.New().Validate(req)
	}}
	rec := do(t, newTestServer(p, &fakeSeriesService{}), http.MethodPost, "/api/v1/predictions",
		`{"symbol":"goog!","close_price":"1.234","date":"2024-03-15"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[dto.ValidationErrorResponse](t, rec)
	fields := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"symbol", "close_price"}, fields)
}

func TestSessionRoutes(t *testing.T) {
	p := &fakePredictionService{
		getSession: func(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
			if sessionID != "known" {
				return nil, entity.ErrSessionNotFound
			}
			return &dto.PredictionSessionResponse{SessionID: sessionID, Status: string(entity.SessionFailed)}, nil
		},
		reset: func(ctx context.Context, sessionID string) (*dto.PredictionSessionResponse, error) {
			if sessionID != "known" {
				return nil, entity.ErrSessionNotFound
			}
			return &dto.PredictionSessionResponse{SessionID: sessionID, Status: string(entity.SessionIdle), UpdatedAt: time.Now()}, nil
		},
	}
	h := newTestServer(p, &fakeSeriesService{})

	rec := do(t, h, http.MethodGet, "/api/v1/predictions/sessions/known", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.SessionFailed), decode[dto.PredictionSessionResponse](t, rec).Status)

	rec = do(t, h, http.MethodDelete, "/api/v1/predictions/sessions/known", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.SessionIdle), decode[dto.PredictionSessionResponse](t, rec).Status)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/predictions/sessions/missing", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/v1/predictions/sessions/missing", "", nil).Code)
}

func TestGetSeries_BindsQuery(t *testing.T) {
	s := &fakeSeriesService{generate: func(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error) {
		assert.Equal(t, common.ProfileDashboard, req.Profile)
		require.NotNil(t, req.Days)
		assert.Equal(t, 5, *req.Days)
		assert.Equal(t, 42.5, req.BasePrice)
		assert.Equal(t, "2024-01-02", req.EndDate)
		return &dto.SeriesResponse{Profile: req.Profile, Days: *req.Days, Bars: make([]dto.BarResponse, *req.Days+1)}, nil
	}}
	rec := do(t, newTestServer(&fakePredictionService{}, s), http.MethodGet,
		"/api/v1/series?profile=dashboard&days=5&base_price=42.5&end_date=2024-01-02", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.SeriesResponse](t, rec).Bars, 6)
}

func TestGetSeries_Errors(t *testing.T) {
	s := &fakeSeriesService{generate: func(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error) {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownProfile, req.Profile)
	}}
	h := newTestServer(&fakePredictionService{}, s)

	rec := do(t, h, http.MethodGet, "/api/v1/series?days=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "days", decode[dto.ValidationErrorResponse](t, rec).Fields[0].Field)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/series?profile=weekly", "", nil).Code)
}

func TestGetProfiles(t *testing.T) {
	rec := do(t, newTestServer(&fakePredictionService{}, &fakeSeriesService{}), http.MethodGet, "/api/v1/series/profiles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	profiles := decode[[]dto.ProfileResponse](t, rec)
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].Default)
}

func TestGetDashboard(t *testing.T) {
	s := &fakeSeriesService{dashboard: func(ctx context.Context) (*dto.DashboardResponse, error) {
		return &dto.DashboardResponse{Symbol: "AAPL", Price: 165.2, Recent: make([]dto.BarResponse, 5)}, nil
	}}
	rec := do(t, newTestServer(&fakePredictionService{}, s), http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.DashboardResponse](t, rec)
	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Len(t, resp.Recent, 5)
}
