package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/config"
	"stock-predictor/pkg/logger"
)

const remoteBody = `{
  "data": {
    "symbol": "AAPL",
    "input_date": "2024-03-15",
    "input_close": 168,
    "predicted_price": "170.12",
    "price_change": "2.12",
    "percent_change": "1.26",
    "next_day_date": "2024-03-16",
    "confidence": "0.812",
    "model_used": "Logistic Regression (News-Augmented)",
    "recommendation": "BUY",
    "insights": {
      "volatility": "1.40",
      "support_level": "159.60",
      "resistance_level": "176.40",
      "position_relative_to_average": "Above 50-Day MA"
    }
  }
}`

func remoteConfig(url string) config.RemoteProvider {
	return config.RemoteProvider{BaseURL: url, Timeout: time.Second, MaxRequestPerMinute: 6000}
}

func TestRemotePrediction_Success(t *testing.T) {
	var got remotePredictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remoteBody))
	}))
	defer srv.Close()

	repo := NewRemotePredictionRepository(remoteConfig(srv.URL+"/"), logger.NewNop())
	rec, err := repo.Predict(context.Background(), entity.PredictionInput{Symbol: "aapl", ClosePrice: 168, Date: marchFifteenth})
	require.NoError(t, err)

	assert.Equal(t, remotePredictRequest{Symbol: "AAPL", ClosePrice: "168.00", Date: "2024-03-15"}, got)
	assert.Equal(t, 170.12, rec.PredictedPrice)
	assert.Equal(t, 0.812, rec.Confidence)
	assert.Equal(t, entity.RecommendationBuy, rec.Recommendation)
	assert.Equal(t, 159.6, rec.Insights.SupportLevel)
	assert.Equal(t, marchFifteenth.AddDate(0, 0, 1), rec.NextDayDate)
}

func TestRemotePrediction_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":`))
			},
		},
		{
			name: "invalid record",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"symbol":"AAPL","predicted_price":"1","price_change":"0","percent_change":"0","confidence":"0.2","recommendation":"HOLD","insights":{"volatility":"1","support_level":"1","resistance_level":"1","position_relative_to_average":"Above 50-Day MA"}}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			repo := NewRemotePredictionRepository(remoteConfig(srv.URL), logger.NewNop())
			_, err := repo.Predict(context.Background(), entity.PredictionInput{Symbol: "AAPL", ClosePrice: 168, Date: marchFifteenth})
			assert.ErrorIs(t, err, entity.ErrPredictionFailed)
		})
	}
}

func TestRemotePrediction_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := NewRemotePredictionRepository(remoteConfig(url), logger.NewNop())
	_, err := repo.Predict(context.Background(), entity.PredictionInput{Symbol: "AAPL", ClosePrice: 168, Date: marchFifteenth})
	assert.ErrorIs(t, err, entity.ErrPredictionFailed)
}
