package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-predictor/internal/predictor/config"
	"stock-predictor/internal/predictor/dto"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/utils"
	"stock-predictor/pkg/validator"
)

func newTestSeriesService(cfg *config.Config) *seriesService {
	svc := NewSeriesService(cfg, ohlcv.NewGenerator(ohlcv.NewSource(21)), validator.New(), logger.NewNop()).(*seriesService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	resp, err := svc.Generate(context.Background(), &dto.SeriesRequest{})
	require.NoError(t, err)
	assert.Equal(t, common.ProfileChart, resp.Profile)
	assert.Equal(t, 30, resp.Days)
	require.Len(t, resp.Bars, 31)
	assert.Equal(t, 150.0, resp.Bars[0].Open)
	assert.Equal(t, "2024-02-14", resp.Bars[0].Date)
	assert.Equal(t, "2024-03-15", resp.Bars[30].Date)
}

func TestGenerate_Overrides(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	resp, err := svc.Generate(context.Background(), &dto.SeriesRequest{
		Profile:   common.ProfileDashboard,
		Days:      utils.ToPointer(0),
		BasePrice: 42.5,
		EndDate:   "2024-01-02",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bars, 1)
	assert.Equal(t, 42.5, resp.Bars[0].Open)
	assert.Equal(t, "2024-01-02", resp.Bars[0].Date)
	assert.GreaterOrEqual(t, resp.Bars[0].Volume, int64(3_000_000))
}

func TestGenerate_Rejects(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	_, err := svc.Generate(context.Background(), &dto.SeriesRequest{Profile: "weekly"})
	assert.ErrorIs(t, err, ErrUnknownProfile)

	var verr *validator.ValidationError
	_, err = svc.Generate(context.Background(), &dto.SeriesRequest{Days: utils.ToPointer(-1)})
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Generate(context.Background(), &dto.SeriesRequest{Days: utils.ToPointer(10_000)})
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Generate(context.Background(), &dto.SeriesRequest{BasePrice: -3})
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Generate(context.Background(), &dto.SeriesRequest{EndDate: "15/03/2024"})
	assert.True(t, errors.As(err, &verr))
}

func TestProfiles(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	profiles := svc.Profiles(context.Background())
	require.Len(t, profiles, 2)
	assert.Equal(t, common.ProfileChart, profiles[0].Name)
	assert.True(t, profiles[0].Default)
	assert.Nil(t, profiles[0].Volatility)
	assert.Equal(t, common.ProfileDashboard, profiles[1].Name)
	require.NotNil(t, profiles[1].Volatility)
	assert.Equal(t, 4.5, profiles[1].Volatility.Max)
}

func TestDashboard_IsCachedUntilRefreshed(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	first, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAPL", first.Symbol)
	require.Len(t, first.Bars, 16)
	require.Len(t, first.Recent, 5)
	assert.Equal(t, first.Bars[15], first.Recent[4])
	assert.Equal(t, first.Bars[15].Close, first.Price)
	assert.Equal(t, 165.0, first.Bars[0].Open)

	second, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	refreshed, err := svc.refreshDashboard(context.Background())
	require.NoError(t, err)
	third, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Same(t, refreshed, third)
}

func TestStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newTestSeriesService(config.Default())
	require.NoError(t, svc.Start(ctx))
	_, ok := svc.snapshots.Get(common.CacheKeyDashboardSnapshot)
	assert.True(t, ok)

	cfg := config.Default()
	cfg.Series.Dashboard.RefreshCron = "every now and then"
	assert.Error(t, newTestSeriesService(cfg).Start(ctx))
}

func TestGenerate_ReportsRoundedBasePrice(t *testing.T) {
	svc := newTestSeriesService(config.Default())

	resp, err := svc.Generate(context.Background(), &dto.SeriesRequest{Days: utils.ToPointer(3), BasePrice: 42.555})
	require.NoError(t, err)
	assert.Equal(t, 42.56, resp.BasePrice)
	assert.Equal(t, resp.BasePrice, resp.Bars[0].Open)

	resp, err = svc.Generate(context.Background(), &dto.SeriesRequest{BasePrice: 0.001})
	require.NoError(t, err)
	assert.Equal(t, ohlcv.MinPrice, resp.BasePrice)
	assert.Equal(t, resp.BasePrice, resp.Bars[0].Open)
}

func TestDashboard_NonPositiveRecent(t *testing.T) {
	for _, recent := range []int{-3, 0, 100} {
		cfg := config.Default()
		cfg.Series.Dashboard.Recent = recent
		svc := newTestSeriesService(cfg)

		snap, err := svc.Dashboard(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, snap.Recent)
		assert.LessOrEqual(t, len(snap.Recent), len(snap.Bars))
		assert.Equal(t, snap.Bars[len(snap.Bars)-1], snap.Recent[len(snap.Recent)-1])
	}
}
