package papertrade

import (
	"strings"
	"time"
)

// The simulator trades NSE-listed symbols only, during the NSE session.

// IsNSESymbol reports whether symbol carries the NSE listing suffix ".NS".
func IsNSESymbol(symbol string) bool {
	return strings.HasSuffix(strings.ToUpper(symbol), ".NS")
}

// MarketOpen reports whether the NSE trading session is open at t:
// Monday to Friday, 09:15 to 15:30 inclusive, in t's location.
func MarketOpen(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= 9*60+15 && minute <= 15*60+30
}

// ChartURL returns the Yahoo Finance chart page for a symbol.
func ChartURL(symbol string) string {
	return "https://finance.yahoo.com/chart/" + strings.ToUpper(symbol)
}
