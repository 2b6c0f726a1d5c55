package papertrade

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rkaranam/papertrade/date"
)

// YahooProvider implements PriceLookup over the Yahoo Finance chart API.
//
// Responses are cached on disk with a daily expiry, so repeated lookups
// of the same symbol within a session hit the network only once.
type YahooProvider struct {
	client *http.Client
	base   string
}

// NewYahooProvider creates a provider against the public Yahoo endpoint.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{client: dailyClient(), base: "https://query1.finance.yahoo.com"}
}

// chart fetches the raw chart object for a symbol over a lookback window.
func (y *YahooProvider) chart(symbol string, lookback Period) (any, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		y.base, url.PathEscape(symbol), lookback)
	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	return jobj, nil
}

// LatestClose implements PriceLookup.
func (y *YahooProvider) LatestClose(symbol string) (Money, error) {
	jobj, err := y.chart(symbol, OneDay)
	if err != nil {
		return Money{}, fmt.Errorf("%w for %s: %v", ErrPriceUnavailable, symbol, err)
	}
	closes, err := chartSeries(jobj)
	if err != nil {
		return Money{}, fmt.Errorf("%w for %s: %v", ErrPriceUnavailable, symbol, err)
	}
	if closes.Len() == 0 {
		return Money{}, fmt.Errorf("%w for %s: no data", ErrPriceUnavailable, symbol)
	}
	_, close := closes.Latest()
	return M(close), nil
}

// DailyCloses implements PriceLookup. A symbol Yahoo knows nothing about
// yields an empty history.
func (y *YahooProvider) DailyCloses(symbol string, lookback Period) (*date.History[float64], error) {
	jobj, err := y.chart(symbol, lookback)
	if err != nil {
		return nil, err
	}
	return chartSeries(jobj)
}

// chartSeries extracts the daily close series from a chart response.
//
// The chart object nests the series under result[0]: parallel arrays of
// unix timestamps and close quotes, where individual quotes can be null
// on non-trading days. A response carrying no result at all (unknown
// symbol) extracts as an empty history.
func chartSeries(jobj any) (*date.History[float64], error) {
	history := &date.History[float64]{}

	jtimes, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		// no result array: the symbol has no data
		return history, nil
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return history, nil
	}

	times, ok := jtimes.([]any)
	if !ok {
		return nil, fmt.Errorf("chart timestamps are %T, not a list", jtimes)
	}
	closes, ok := jcloses.([]any)
	if !ok {
		return nil, fmt.Errorf("chart closes are %T, not a list", jcloses)
	}

	for i, jts := range times {
		if i >= len(closes) {
			break
		}
		ts, ok := jts.(float64)
		if !ok {
			return nil, fmt.Errorf("chart timestamp %v is %T, not a number", jts, jts)
		}
		close, ok := closes[i].(float64)
		if !ok {
			continue // null quote on a non-trading day
		}
		day := date.FromTime(time.Unix(int64(ts), 0).UTC())
		history.Append(day, close)
	}
	return history, nil
}
