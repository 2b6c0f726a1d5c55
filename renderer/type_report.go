package renderer

import (
	"github.com/rkaranam/papertrade"
	"github.com/rkaranam/papertrade/date"
)

// PortfolioReport is the data behind the rendered portfolio report.
// Values keep their exact types (Money, Percent) so the templates reuse
// their own renderers.
type PortfolioReport struct {
	// Username of the portfolio owner.
	Username string
	// Date of the report.
	Date date.Date
	// Positions lists all holdings with their latest price and value.
	Positions []Position
	// Metrics lists the per-symbol annualized performance, in symbol order.
	Metrics []Metric
	// TotalValue is the mark-to-market value of all holdings.
	TotalValue papertrade.Money
	// NetRealized is the ledger's net cash flow (sells minus buys).
	NetRealized papertrade.Money
}

// Position is one holding row of the report.
type Position struct {
	Symbol   string
	Quantity int64
	Price    papertrade.Money
	Value    papertrade.Money
}

// Metric is one performance row of the report.
type Metric struct {
	Symbol     string
	Return     papertrade.Percent
	Volatility papertrade.Percent
}
