package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"stock-predictor/internal/predictor/config"
	"stock-predictor/internal/predictor/dto"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/utils"
	"stock-predictor/pkg/validator"

	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
)

var ErrUnknownProfile = errors.New("unknown series profile")

// SeriesService generates synthetic OHLCV series from named profiles.
type SeriesService interface {
	Generate(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error)
	Profiles(ctx context.Context) []dto.ProfileResponse
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// Start regenerates the dashboard snapshot now and then on the configured cron schedule until ctx is done.
	Start(ctx context.Context) error
}

// NewSeriesService creates a new series service.
func NewSeriesService(cfg *config.Config, generator *ohlcv.Generator, validate *validator.Validator, log *logger.Logger) SeriesService {
	return &seriesService{
		cfg:       cfg.Series,
		generator: generator,
		validate:  validate,
		logger:    log,
		location:  utils.LoadLocation(cfg.App.TimeZone),
		snapshots: cache.New(cache.NoExpiration, 0),
		now:       time.Now,
	}
}

type seriesService struct {
	cfg       config.Series
	generator *ohlcv.Generator
	validate  *validator.Validator
	logger    *logger.Logger
	location  *time.Location
	snapshots *cache.Cache
	now       func() time.Time
}

func (s *seriesService) Generate(ctx context.Context, req *dto.SeriesRequest) (*dto.SeriesResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	name := req.Profile
	if name == "" {
		name = s.cfg.DefaultProfile
	}
	profile, ok := s.cfg.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	days := s.cfg.DefaultDays
	if req.Days != nil {
		days = *req.Days
	}
	if days > s.cfg.MaxDays {
		return nil, &validator.ValidationError{Fields: []validator.FieldError{{
			Field:   "days",
			Message: fmt.Sprintf("must be at most %d", s.cfg.MaxDays),
		}}}
	}

	end := utils.StartOfDay(s.now().In(s.location))
	if req.EndDate != "" {
		d, err := utils.ParseDate(req.EndDate, s.location)
		if err != nil {
			return nil, &validator.ValidationError{Fields: []validator.FieldError{{Field: "end_date", Message: err.Error()}}}
		}
		end = d
	}

	params := toParams(profile, days, end)
	if req.BasePrice > 0 {
		params.BasePrice = req.BasePrice
	}
	// report the open the first bar actually starts from
	if params.BasePrice > 0 {
		params.BasePrice = max(utils.Round2(params.BasePrice), ohlcv.MinPrice)
	}
	if err := params.Validate(); err != nil {
		s.logger.ErrorContext(ctx, "Series profile is misconfigured", logger.ErrorField(err), logger.StringField("profile", name))
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	bars := s.generator.Series(params)
	s.logger.DebugContext(ctx, "Series generated",
		logger.StringField("profile", name),
		logger.IntField("days", days),
		logger.IntField("bars", len(bars)))

	return &dto.SeriesResponse{
		Profile:   name,
		Days:      max(days, 0),
		BasePrice: params.BasePrice,
		Bars:      dto.NewBarResponses(bars),
	}, nil
}

func (s *seriesService) Profiles(ctx context.Context) []dto.ProfileResponse {
	names := make([]string, 0, len(s.cfg.Profiles))
	for name := range s.cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dto.ProfileResponse, 0, len(names))
	for _, name := range names {
		p := s.cfg.Profiles[name]
		resp := dto.ProfileResponse{
			Name:         name,
			BasePrice:    p.BasePrice,
			MaxMove:      p.MaxMove,
			MaxExcursion: p.MaxExcursion,
			Volume:       p.Volume,
			Default:      name == s.cfg.DefaultProfile,
		}
		if !p.Volatility.IsZero() {
			resp.Volatility = utils.ToPointer(p.Volatility)
		}
		out = append(out, resp)
	}
	return out
}

func (s *seriesService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if v, ok := s.snapshots.Get(common.CacheKeyDashboardSnapshot); ok {
		if snap, ok := v.(*dto.DashboardResponse); ok {
			return snap, nil
		}
	}
	return s.refreshDashboard(ctx)
}

func (s *seriesService) Start(ctx context.Context) error {
	if _, err := s.refreshDashboard(ctx); err != nil {
		return err
	}

	c := cron.New(cron.WithLocation(s.location))
	if _, err := c.AddFunc(s.cfg.Dashboard.RefreshCron, func() {
		if _, err := s.refreshDashboard(ctx); err != nil {
			s.logger.Error("Failed to refresh dashboard snapshot", logger.ErrorField(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid dashboard refresh schedule %q: %w", s.cfg.Dashboard.RefreshCron, err)
	}

	c.Start()
	s.logger.Info("Dashboard refresher started", logger.StringField("schedule", s.cfg.Dashboard.RefreshCron))
	utils.GoSafe(func() {
		<-ctx.Done()
		<-c.Stop().Done()
		s.logger.Info("Dashboard refresher stopped")
	})
	return nil
}

func (s *seriesService) refreshDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	d := s.cfg.Dashboard
	profile, ok := s.cfg.Profiles[d.Profile]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, d.Profile)
	}

	now := s.now().In(s.location)
	params := toParams(profile, d.Days, utils.StartOfDay(now))
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("dashboard profile %q: %w", d.Profile, err)
	}

	bars := s.generator.Series(params)
	last := bars[len(bars)-1]
	recent := bars[len(bars)-min(max(d.Recent, 1), len(bars)):]

	snap := &dto.DashboardResponse{
		Symbol:        d.Symbol,
		Price:         last.Close,
		Change:        last.Change,
		ChangePercent: last.ChangePercent,
		Volume:        last.Volume,
		Bars:          dto.NewBarResponses(bars),
		Recent:        dto.NewBarResponses(recent),
		GeneratedAt:   now.Format(time.RFC3339),
	}
	s.snapshots.Set(common.CacheKeyDashboardSnapshot, snap, cache.NoExpiration)
	s.logger.InfoContext(ctx, "Dashboard snapshot regenerated", logger.StringField("symbol", d.Symbol), logger.IntField("bars", len(bars)))
	return snap, nil
}

func toParams(p config.Profile, days int, end time.Time) ohlcv.Params {
	return ohlcv.Params{
		Days:         days,
		BasePrice:    p.BasePrice,
		MaxMove:      p.MaxMove,
		Volatility:   p.Volatility,
		MaxExcursion: p.MaxExcursion,
		Volume:       p.Volume,
		End:          end,
	}
}
