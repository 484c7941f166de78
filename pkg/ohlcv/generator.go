package ohlcv

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"time"

	"stock-predictor/pkg/utils"
)

// MinPrice is the floor applied to generated prices.
const MinPrice = 0.01

// Range is a closed numeric interval.
type Range struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// VolumeRange bounds the generated volume, both ends inclusive.
type VolumeRange struct {
	Min int64 `mapstructure:"min" json:"min"`
	Max int64 `mapstructure:"max" json:"max"`
}

// Params configures one generated series.
type Params struct {
	// Days before End; the series has Days+1 bars. Values <= 0 give a single bar.
	Days      int
	BasePrice float64
	// MaxMove bounds the daily open-to-close move when Volatility is unset.
	MaxMove float64
	// Volatility, when set, draws a per-bar bound v from the range and moves by at most v/2.
	Volatility   Range
	MaxExcursion float64
	Volume       VolumeRange
	// End is the date of the newest bar. Zero means today in UTC.
	End time.Time
}

var (
	ErrInvalidBasePrice = errors.New("base price must be positive")
	ErrInvalidMove      = errors.New("move bounds must be non-negative")
	ErrInvalidVolume    = errors.New("volume range must be positive and ordered")
)

// Validate checks the parameters a caller is expected to guarantee.
func (p Params) Validate() error {
	if p.BasePrice <= 0 || math.IsNaN(p.BasePrice) || math.IsInf(p.BasePrice, 0) {
		return ErrInvalidBasePrice
	}
	if p.MaxMove < 0 || p.MaxExcursion < 0 || p.Volatility.Min < 0 || p.Volatility.Max < p.Volatility.Min {
		return ErrInvalidMove
	}
	if p.Volume.Min <= 0 || p.Volume.Max < p.Volume.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidVolume, p.Volume.Min, p.Volume.Max)
	}
	return nil
}

// Generator produces synthetic OHLCV series from a random source.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Bars lazily yields Days+1 bars ending at p.End, oldest first.
// Each bar opens at the previous close; the first opens at the base price.
func (g *Generator) Bars(p Params) iter.Seq[Bar] {
	return func(yield func(Bar) bool) {
		days := max(p.Days, 0)
		end := p.End
		if end.IsZero() {
			end = time.Now().UTC()
		}
		end = utils.StartOfDay(end)

		open := floor(utils.Round2(p.BasePrice))
		for i := days; i >= 0; i-- {
			bar := g.next(p, open)
			bar.Date = end.AddDate(0, 0, -i)
			if !yield(bar) {
				return
			}
			open = bar.Close
		}
	}
}

// Series collects Bars into a slice.
func (g *Generator) Series(p Params) []Bar {
	return slices.Collect(g.Bars(p))
}

func (g *Generator) next(p Params, open float64) Bar {
	bound := p.MaxMove
	if !p.Volatility.IsZero() {
		bound = Uniform(g.src, p.Volatility.Min, p.Volatility.Max) / 2
	}
	delta := Uniform(g.src, -bound, bound)

	closePrice := floor(utils.Round2(open + delta))
	high := utils.Round2(math.Max(open, closePrice) + g.src.Float64()*p.MaxExcursion)
	low := floor(utils.Round2(math.Min(open, closePrice) - g.src.Float64()*p.MaxExcursion))

	return Bar{
		Open:          open,
		High:          high,
		Low:           low,
		Close:         closePrice,
		Volume:        g.volume(p.Volume),
		Change:        utils.Round2(closePrice - open),
		ChangePercent: utils.PercentChange(open, closePrice),
	}
}

func (g *Generator) volume(r VolumeRange) int64 {
	if r.Max <= r.Min {
		return max(r.Min, 1)
	}
	return r.Min + int64(g.src.IntN(int(r.Max-r.Min+1)))
}

func floor(v float64) float64 {
	return math.Max(v, MinPrice)
}
