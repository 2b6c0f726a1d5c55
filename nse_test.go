package papertrade

import (
	"testing"
	"time"
)

func TestIsNSESymbol(t *testing.T) {
	testCases := []struct {
		symbol string
		want   bool
	}{
		{"RELIANCE.NS", true},
		{"reliance.ns", true},
		{"AAPL", false},
		{"TCS.BO", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsNSESymbol(tc.symbol); got != tc.want {
			t.Errorf("IsNSESymbol(%q) = %v, want %v", tc.symbol, got, tc.want)
		}
	}
}

func TestMarketOpen(t *testing.T) {
	day := func(weekday time.Weekday, hour, min int) time.Time {
		// 2025-06-02 is a Monday
		t := time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
		return t.AddDate(0, 0, int(weekday-time.Monday))
	}

	testCases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday mid-session", day(time.Monday, 11, 0), true},
		{"opening bell", day(time.Tuesday, 9, 15), true},
		{"just before open", day(time.Tuesday, 9, 14), false},
		{"closing bell", day(time.Friday, 15, 30), true},
		{"just after close", day(time.Friday, 15, 31), false},
		{"saturday", day(time.Saturday, 11, 0), false},
		{"sunday", day(time.Sunday, 11, 0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MarketOpen(tc.at); got != tc.want {
				t.Errorf("MarketOpen(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestChartURL(t *testing.T) {
	if got := ChartURL("reliance.ns"); got != "https://finance.yahoo.com/chart/RELIANCE.NS" {
		t.Errorf("ChartURL = %q", got)
	}
}
