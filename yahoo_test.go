package papertrade

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chartFixture mimics the Yahoo chart payload for one symbol: three
// trading days where the middle close is null (a non-trading day).
const chartFixture = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "RELIANCE.NS", "currency": "INR"},
      "timestamp": [1748822400, 1748908800, 1748995200],
      "indicators": {"quote": [{"close": [2850.5, null, 2901.0]}]}
    }],
    "error": null
  }
}`

const emptyChartFixture = `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`

func yahooTestServer(t *testing.T) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v8/finance/chart/RELIANCE.NS":
			fmt.Fprint(w, chartFixture)
		default:
			fmt.Fprint(w, emptyChartFixture)
		}
	}))
	t.Cleanup(srv.Close)
	return &YahooProvider{client: srv.Client(), base: srv.URL}
}

func TestYahooProvider_DailyCloses(t *testing.T) {
	provider := yahooTestServer(t)

	closes, err := provider.DailyCloses("RELIANCE.NS", OneYear)
	if err != nil {
		t.Fatal(err)
	}
	// the null quote is dropped, not zero-filled
	if closes.Len() != 2 {
		t.Fatalf("got %d closes, want 2", closes.Len())
	}
	_, latest := closes.Latest()
	if latest != 2901.0 {
		t.Errorf("latest close = %v, want 2901.0", latest)
	}
}

func TestYahooProvider_DailyCloses_UnknownSymbol(t *testing.T) {
	provider := yahooTestServer(t)

	closes, err := provider.DailyCloses("NOPE.NS", OneYear)
	if err != nil {
		t.Fatal(err)
	}
	// absence of data is an empty series, not an error: metrics skip it
	if closes.Len() != 0 {
		t.Errorf("got %d closes for an unknown symbol, want 0", closes.Len())
	}
}

func TestYahooProvider_LatestClose(t *testing.T) {
	provider := yahooTestServer(t)

	price, err := provider.LatestClose("RELIANCE.NS")
	if err != nil {
		t.Fatal(err)
	}
	if want := M(2901.0); !price.Equal(want) {
		t.Errorf("LatestClose = %v, want %v", price, want)
	}
}

func TestYahooProvider_LatestClose_UnknownSymbol(t *testing.T) {
	provider := yahooTestServer(t)

	_, err := provider.LatestClose("NOPE.NS")
	if !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("LatestClose for unknown symbol: error = %v, want ErrPriceUnavailable", err)
	}
}
