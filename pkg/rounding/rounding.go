// Package rounding holds the fixed-precision rounding rules used for scores,
// rates and currency amounts.
package rounding

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	ScorePlaces    int32 = 4
	RatePlaces     int32 = 6
	CurrencyPlaces int32 = 2
)

var half = decimal.NewFromFloat(0.5)

// Round scales by 10^places in float64, rounds half up to an integer and
// scales back. Halves therefore follow the scaled binary value:
// 1.005 scales to 100.49999999999999 and rounds to 1.00.
func Round(v float64, places int32) float64 {
	scale := math.Pow10(int(places))
	return decimal.NewFromFloat(v * scale).Add(half).Floor().
		Div(decimal.NewFromFloat(scale)).InexactFloat64()
}

func Score(v float64) float64 {
	return Round(v, ScorePlaces)
}

func Rate(v float64) float64 {
	return Round(v, RatePlaces)
}

func Currency(v float64) float64 {
	return Round(v, CurrencyPlaces)
}
