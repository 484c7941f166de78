package ohlcv

import (
	"time"
)

// Bar is one synthetic trading day.
type Bar struct {
	Date          time.Time `json:"date" yaml:"date"`
	Open          float64   `json:"open" yaml:"open"`
	High          float64   `json:"high" yaml:"high"`
	Low           float64   `json:"low" yaml:"low"`
	Close         float64   `json:"close" yaml:"close"`
	Volume        int64     `json:"volume" yaml:"volume"`
	Change        float64   `json:"change" yaml:"change"`
	ChangePercent float64   `json:"change_percent" yaml:"change_percent"`
}

