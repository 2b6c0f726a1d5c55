package papertrade

import (
	"fmt"
	"iter"
	"time"
)

// Side indicates the direction of an executed trade.
type Side int

const (
	// Buy is an acquisition of shares against cash.
	Buy Side = iota
	// Sell is a disposal of shares for cash.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// TradeRecord is a single executed trade. Records are immutable once
// written; the ledger they belong to is append-only, ordered by append
// time, and scoped per user.
type TradeRecord struct {
	Symbol   string
	Side     Side
	Price    Money
	Quantity int64
	Time     time.Time
}

// Ledger holds the chronological trade records of a single user.
type Ledger struct {
	records []TradeRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]TradeRecord, 0)}
}

// Append adds a record at the end of the ledger.
func (l *Ledger) Append(rec TradeRecord) {
	l.records = append(l.records, rec)
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns an iterator over all records in append order.
func (l *Ledger) Records() iter.Seq[TradeRecord] {
	return func(yield func(TradeRecord) bool) {
		for _, rec := range l.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// NetRealizedValue reconciles a trade sequence into its net cash flow:
// the sum of sell proceeds minus the sum of buy cost.
//
// This is explicitly a cash-flow measure, not mark-to-market: it knows
// nothing about currently-held quantities or current prices, so it is
// negative for a portfolio whose cash outflow exceeds realized inflow,
// even while the holdings retain unrealized value. An empty sequence
// yields zero.
func NetRealizedValue(records []TradeRecord) Money {
	net := M(0)
	for _, rec := range records {
		value := rec.Price.MulInt(rec.Quantity)
		switch rec.Side {
		case Sell:
			net = net.Add(value)
		case Buy:
			net = net.Sub(value)
		}
	}
	return net
}
