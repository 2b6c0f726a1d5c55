package papertrade

import (
	"fmt"

	"github.com/rkaranam/papertrade/date"
)

// fixedPrices is a PriceLookup over fixed fixtures, so the bookkeeping
// core is tested deterministically without any I/O.
type fixedPrices struct {
	latest map[string]float64
	series map[string][]float64 // daily closes, one per day from seriesStart
}

var seriesStart = date.MustParse("2025-01-01")

func (f *fixedPrices) LatestClose(symbol string) (Money, error) {
	price, ok := f.latest[symbol]
	if !ok {
		return Money{}, fmt.Errorf("%w for %s", ErrPriceUnavailable, symbol)
	}
	return M(price), nil
}

func (f *fixedPrices) DailyCloses(symbol string, lookback Period) (*date.History[float64], error) {
	history := &date.History[float64]{}
	for i, close := range f.series[symbol] {
		history.Append(seriesStart.Add(i), close)
	}
	return history, nil
}

// closesOf builds a history from a plain slice of closes.
func closesOf(closes ...float64) *date.History[float64] {
	history := &date.History[float64]{}
	for i, close := range closes {
		history.Append(seriesStart.Add(i), close)
	}
	return history
}
