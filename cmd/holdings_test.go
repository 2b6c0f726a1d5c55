package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rkaranam/papertrade"
	"github.com/rkaranam/papertrade/date"
)

// fixedPrices is a PriceLookup over fixed fixtures for command tests.
type fixedPrices map[string]float64

func (f fixedPrices) LatestClose(symbol string) (papertrade.Money, error) {
	return papertrade.M(f[symbol]), nil
}

func (f fixedPrices) DailyCloses(symbol string, lookback papertrade.Period) (*date.History[float64], error) {
	return &date.History[float64]{}, nil
}

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	*usersFile = filepath.Join(dir, "users.json")
	*tradesDir = dir

	defer func(saved papertrade.PriceLookup) { prices = saved }(prices)
	prices = fixedPrices{"RELIANCE.NS": 2850}

	user, err := papertrade.NewUser("alice", "s3cret", papertrade.BcryptHasher{})
	if err != nil {
		t.Fatal(err)
	}
	price, _ := prices.LatestClose("RELIANCE.NS")
	if err := user.Portfolio.Buy("RELIANCE.NS", 10, price); err != nil {
		t.Fatal(err)
	}
	if err := tradeLog().Append("alice", papertrade.TradeRecord{
		Symbol: "RELIANCE.NS", Side: papertrade.Buy, Price: price, Quantity: 10, Time: time.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	report, err := buildReport(user)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Positions) != 1 || report.Positions[0].Symbol != "RELIANCE.NS" {
		t.Fatalf("positions = %+v", report.Positions)
	}
	if want := papertrade.M(28500); !report.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %v, want %v", report.TotalValue, want)
	}
	// the ledger holds one open buy, so the net realized value is its cost
	if want := papertrade.M(-28500); !report.NetRealized.Equal(want) {
		t.Errorf("NetRealized = %v, want %v", report.NetRealized, want)
	}
	// no price history in the fixtures: no metrics rows
	if len(report.Metrics) != 0 {
		t.Errorf("metrics = %+v, want none", report.Metrics)
	}
}
