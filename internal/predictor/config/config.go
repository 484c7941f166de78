package config

import (
	"time"

	"stock-predictor/pkg/common"
	"stock-predictor/pkg/config"
	"stock-predictor/pkg/ohlcv"
)

// Change modes for the price_change and percent_change fields of a prediction.
const (
	ChangeModeDerived     = "derived"
	ChangeModeIndependent = "independent"
)

// Simulator holds the simulated prediction provider configuration.
type Simulator struct {
	Latency     time.Duration `mapstructure:"latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
	ChangeMode  string        `mapstructure:"change_mode"`
	ModelLabel  string        `mapstructure:"model_label"`
	Seed        uint64        `mapstructure:"seed"`
}

// RemoteProvider holds the configuration of a real prediction service.
type RemoteProvider struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Provider selects where predictions come from.
type Provider struct {
	Name   string         `mapstructure:"name"`
	Remote RemoteProvider `mapstructure:"remote"`
}

// Prediction holds the form service configuration.
type Prediction struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Profile is a named set of series generator knobs.
type Profile struct {
	BasePrice    float64           `mapstructure:"base_price"`
	MaxMove      float64           `mapstructure:"max_move"`
	Volatility   ohlcv.Range       `mapstructure:"volatility"`
	MaxExcursion float64           `mapstructure:"max_excursion"`
	Volume       ohlcv.VolumeRange `mapstructure:"volume"`
}

// Dashboard configures the regenerated dashboard snapshot.
type Dashboard struct {
	Symbol      string `mapstructure:"symbol"`
	Profile     string `mapstructure:"profile"`
	Days        int    `mapstructure:"days"`
	Recent      int    `mapstructure:"recent"`
	RefreshCron string `mapstructure:"refresh_cron"`
}

// Series holds series generation configuration.
type Series struct {
	DefaultProfile string             `mapstructure:"default_profile"`
	DefaultDays    int                `mapstructure:"default_days"`
	MaxDays        int                `mapstructure:"max_days"`
	Seed           uint64             `mapstructure:"seed"`
	Profiles       map[string]Profile `mapstructure:"profiles"`
	Dashboard      Dashboard          `mapstructure:"dashboard"`
}

// Config holds the full configuration for the prediction service.
type Config struct {
	App        config.App    `mapstructure:"app"`
	Logger     config.Logger `mapstructure:"logger"`
	API        config.API    `mapstructure:"api"`
	Provider   Provider      `mapstructure:"provider"`
	Simulator  Simulator     `mapstructure:"simulator"`
	Prediction Prediction    `mapstructure:"prediction"`
	Series     Series        `mapstructure:"series"`
}

// Load loads the prediction service configuration from the given path and fills unset values with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := config.Load(path, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultProfiles mirrors the two chart call sites of the product: the price chart and the dashboard.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		common.ProfileChart: {
			BasePrice:    150,
			MaxMove:      5,
			MaxExcursion: 5,
			Volume:       ohlcv.VolumeRange{Min: 500_000, Max: 1_500_000},
		},
		common.ProfileDashboard: {
			BasePrice:    165,
			Volatility:   ohlcv.Range{Min: 1.5, Max: 4.5},
			MaxExcursion: 2,
			Volume:       ohlcv.VolumeRange{Min: 3_000_000, Max: 8_000_000},
		},
	}
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "stock-predictor"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = "json"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Provider.Name == "" {
		c.Provider.Name = "simulated"
	}
	if c.Provider.Remote.Timeout == 0 {
		c.Provider.Remote.Timeout = 10 * time.Second
	}
	if c.Provider.Remote.MaxRequestPerMinute == 0 {
		c.Provider.Remote.MaxRequestPerMinute = 60
	}
	if c.Simulator.Latency == 0 {
		c.Simulator.Latency = 1500 * time.Millisecond
	}
	if c.Simulator.ChangeMode == "" {
		c.Simulator.ChangeMode = ChangeModeDerived
	}
	if c.Simulator.ModelLabel == "" {
		c.Simulator.ModelLabel = common.DefaultModelLabel
	}
	if c.Prediction.Timeout == 0 {
		c.Prediction.Timeout = 5 * time.Second
	}
	if c.Prediction.SessionTTL == 0 {
		c.Prediction.SessionTTL = 30 * time.Minute
	}
	if c.Prediction.CleanupInterval == 0 {
		c.Prediction.CleanupInterval = 10 * time.Minute
	}
	if len(c.Series.Profiles) == 0 {
		c.Series.Profiles = DefaultProfiles()
	}
	if c.Series.DefaultProfile == "" {
		c.Series.DefaultProfile = common.ProfileChart
	}
	if c.Series.DefaultDays == 0 {
		c.Series.DefaultDays = 30
	}
	if c.Series.MaxDays == 0 {
		c.Series.MaxDays = 365
	}
	if c.Series.Dashboard.Symbol == "" {
		c.Series.Dashboard.Symbol = "AAPL"
	}
	if c.Series.Dashboard.Profile == "" {
		c.Series.Dashboard.Profile = common.ProfileDashboard
	}
	if c.Series.Dashboard.Days == 0 {
		c.Series.Dashboard.Days = 15
	}
	if c.Series.Dashboard.Recent <= 0 {
		c.Series.Dashboard.Recent = 5
	}
	if c.Series.Dashboard.RefreshCron == "" {
		c.Series.Dashboard.RefreshCron = "@midnight"
	}
}
