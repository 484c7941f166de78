package utils

import "github.com/shopspring/decimal"

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Round2 rounds v to cents.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// MulRound2 multiplies in decimal arithmetic and rounds the product to cents,
// so 168.00 * 0.95 is exactly 159.60.
func MulRound2(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// PercentChange returns (to - from) / from * 100 rounded to cents. Zero when from is zero.
func PercentChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	d := decimal.NewFromFloat(to).Sub(decimal.NewFromFloat(from))
	f, _ := d.Div(decimal.NewFromFloat(from)).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return f
}

func ToPointer[T any](v T) *T {
	return &v
}
