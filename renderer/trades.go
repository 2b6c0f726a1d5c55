package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rkaranam/papertrade"
)

// Trades renders the trade ledger as a markdown table, in append order.
func Trades(records []papertrade.TradeRecord) string {
	if len(records) == 0 {
		return "_No trade data available._\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Trades\n\n")
	fmt.Fprintln(&b, "| Time | Symbol | Side | Quantity | Price | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, rec := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			rec.Time.Format(time.DateTime),
			rec.Symbol,
			rec.Side,
			rec.Quantity,
			rec.Price,
			rec.Price.MulInt(rec.Quantity),
		)
	}
	return b.String()
}
