package papertrade

import (
	"math"

	"github.com/rkaranam/papertrade/date"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the annualization convention: the number of trading days
// in a year. It is a design constant, not configurable.
const TradingDays = 252

// ReturnMetric is the derived performance of one held symbol. It is
// computed from a daily close-price series and never persisted.
type ReturnMetric struct {
	Symbol string
	// AnnualizedReturn is mean(daily returns) × 252, as a ratio.
	AnnualizedReturn float64
	// AnnualizedVolatility is stddev(daily returns) × √252, as a ratio.
	AnnualizedVolatility float64
}

// ReturnPercent returns the annualized return in percent points.
func (m ReturnMetric) ReturnPercent() Percent { return Percent(m.AnnualizedReturn * 100) }

// VolatilityPercent returns the annualized volatility in percent points.
func (m ReturnMetric) VolatilityPercent() Percent { return Percent(m.AnnualizedVolatility * 100) }

// dailyReturns converts a close-price history into its day-over-day
// percentage change series. Days whose previous close is zero are skipped.
func dailyReturns(closes *date.History[float64]) []float64 {
	var returns []float64
	prev := math.NaN()
	for _, close := range closes.Values() {
		if !math.IsNaN(prev) && prev != 0 {
			returns = append(returns, (close-prev)/prev)
		}
		prev = close
	}
	return returns
}

// metricFromCloses computes the metric for one symbol. It reports false
// when the history is too short to produce any daily return.
func metricFromCloses(symbol string, closes *date.History[float64]) (ReturnMetric, bool) {
	returns := dailyReturns(closes)
	if len(returns) == 0 {
		return ReturnMetric{}, false
	}
	return ReturnMetric{
		Symbol:               symbol,
		AnnualizedReturn:     stat.Mean(returns, nil) * TradingDays,
		AnnualizedVolatility: stat.StdDev(returns, nil) * math.Sqrt(TradingDays),
	}, true
}
