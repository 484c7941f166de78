package dto

import (
	"stock-predictor/pkg/ohlcv"
)

// SeriesRequest asks for a synthetic OHLCV series.
type SeriesRequest struct {
	Profile   string  `query:"profile" json:"profile" yaml:"profile"`
	Days      *int    `query:"-" json:"days" yaml:"days" validate:"omitempty,min=0"`
	BasePrice float64 `query:"base_price" json:"base_price" yaml:"base_price" validate:"omitempty,gt=0"`
	EndDate   string  `query:"end_date" json:"end_date" yaml:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// BarResponse is one bar of a series.
type BarResponse struct {
	Date          string  `json:"date" yaml:"date"`
	Open          float64 `json:"open" yaml:"open"`
	High          float64 `json:"high" yaml:"high"`
	Low           float64 `json:"low" yaml:"low"`
	Close         float64 `json:"close" yaml:"close"`
	Volume        int64   `json:"volume" yaml:"volume"`
	Change        float64 `json:"change" yaml:"change"`
	ChangePercent float64 `json:"change_percent" yaml:"change_percent"`
}

// SeriesResponse is a generated series, oldest bar first.
type SeriesResponse struct {
	Profile   string        `json:"profile" yaml:"profile"`
	Days      int           `json:"days" yaml:"days"`
	BasePrice float64       `json:"base_price" yaml:"base_price"`
	Bars      []BarResponse `json:"bars" yaml:"bars"`
}

// ProfileResponse describes a named generator profile.
type ProfileResponse struct {
	Name         string            `json:"name" yaml:"name"`
	BasePrice    float64           `json:"base_price" yaml:"base_price"`
	MaxMove      float64           `json:"max_move,omitempty" yaml:"max_move,omitempty"`
	Volatility   *ohlcv.Range      `json:"volatility,omitempty" yaml:"volatility,omitempty"`
	MaxExcursion float64           `json:"max_excursion" yaml:"max_excursion"`
	Volume       ohlcv.VolumeRange `json:"volume" yaml:"volume"`
	Default      bool              `json:"default" yaml:"default"`
}

// DashboardResponse is the regenerated dashboard snapshot.
type DashboardResponse struct {
	Symbol        string        `json:"symbol" yaml:"symbol"`
	Price         float64       `json:"price" yaml:"price"`
	Change        float64       `json:"change" yaml:"change"`
	ChangePercent float64       `json:"change_percent" yaml:"change_percent"`
	Volume        int64         `json:"volume" yaml:"volume"`
	Bars          []BarResponse `json:"bars" yaml:"bars"`
	Recent        []BarResponse `json:"recent" yaml:"recent"`
	GeneratedAt   string        `json:"generated_at" yaml:"generated_at"`
}

// NewBarResponses maps generator bars to their API form.
func NewBarResponses(bars []ohlcv.Bar) []BarResponse {
	out := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, BarResponse{
			Date:          b.Date.Format("2006-01-02"),
			Open:          b.Open,
			High:          b.High,
			Low:           b.Low,
			Close:         b.Close,
			Volume:        b.Volume,
			Change:        b.Change,
			ChangePercent: b.ChangePercent,
		})
	}
	return out
}
