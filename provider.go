package papertrade

import "github.com/rkaranam/papertrade/date"

// Period selects the lookback window of a price-history request.
type Period string

const (
	// OneDay is enough to resolve the latest close.
	OneDay Period = "1d"
	// OneYear is the window the performance metrics are computed over.
	OneYear Period = "1y"
)

// PriceLookup resolves market prices for symbols. The bookkeeping core
// consumes this interface and never performs I/O itself, so tests inject
// fixed fixtures.
type PriceLookup interface {
	// LatestClose returns the most recent closing price for symbol.
	// It fails with ErrPriceUnavailable when no price can be resolved.
	LatestClose(symbol string) (Money, error)

	// DailyCloses returns the chronological daily closing prices of
	// symbol over the lookback period. A symbol with no data yields an
	// empty history, not an error: metrics skip it, while TotalValue
	// fails through LatestClose instead.
	DailyCloses(symbol string, lookback Period) (*date.History[float64], error)
}
