package papertrade

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Portfolio is the full set of a user's holdings, keyed by symbol.
//
// Symbols are stored as given: callers normalize case (the CLI uppercases
// them). The portfolio owns its holdings exclusively.
type Portfolio struct {
	holdings map[string]*Holding
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]*Holding)}
}

// Len returns the number of held symbols.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Quantity returns the held quantity for a symbol, zero if not held.
func (p *Portfolio) Quantity(symbol string) int64 {
	h, ok := p.holdings[symbol]
	if !ok {
		return 0
	}
	return h.Quantity
}

// Holdings returns an iterator over copies of all holdings, in symbol order.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, symbol := range slices.Sorted(maps.Keys(p.holdings)) {
			if !yield(*p.holdings[symbol]) {
				return
			}
		}
	}
}

// Buy adds quantity shares of symbol, creating the holding on first buy.
//
// The quantity must be positive; a zero or negative quantity fails with
// ErrInvalidQuantity. The price is accepted for caller symmetry (it is
// what the caller records in the trade ledger) but takes no part in the
// bookkeeping itself.
func (p *Portfolio) Buy(symbol string, quantity int64, price Money) error {
	if quantity <= 0 {
		return fmt.Errorf("buy %s: quantity must be positive, got %d: %w",
			symbol, quantity, ErrInvalidQuantity)
	}
	if h, ok := p.holdings[symbol]; ok {
		return h.UpdateQuantity(quantity)
	}
	p.holdings[symbol] = &Holding{Symbol: symbol, Quantity: quantity}
	return nil
}

// Sell removes quantity shares of symbol. A holding whose quantity reaches
// exactly zero is removed from the portfolio.
//
// The quantity must be positive, like for Buy: a zero or negative
// quantity fails with ErrInvalidQuantity. The other failures are
// reported, not fatal: selling an unheld symbol fails with
// ErrSymbolNotHeld, selling more than held with ErrInsufficientHoldings.
// On any failure the portfolio is left unchanged (no partial debit).
func (p *Portfolio) Sell(symbol string, quantity int64, price Money) error {
	if quantity <= 0 {
		return fmt.Errorf("sell %s: quantity must be positive, got %d: %w",
			symbol, quantity, ErrInvalidQuantity)
	}
	h, ok := p.holdings[symbol]
	if !ok {
		return fmt.Errorf("sell %s: %w", symbol, ErrSymbolNotHeld)
	}
	if h.Quantity < quantity {
		return fmt.Errorf("sell %d shares of %s, only %d held: %w",
			quantity, symbol, h.Quantity, ErrInsufficientHoldings)
	}
	if err := h.UpdateQuantity(-quantity); err != nil {
		return err
	}
	if h.Quantity == 0 {
		delete(p.holdings, symbol)
	}
	return nil
}

// Reset clears all holdings unconditionally. Irreversible; any
// confirmation step belongs to the caller.
func (p *Portfolio) Reset() {
	p.holdings = make(map[string]*Holding)
}

// TotalValue sums the current value of all holdings at their latest close.
//
// The policy is fail-fast: any symbol whose price cannot be resolved fails
// the whole call, wrapping ErrPriceUnavailable. Unresolvable symbols are
// never silently skipped.
func (p *Portfolio) TotalValue(prices PriceLookup) (Money, error) {
	total := M(0)
	for h := range p.Holdings() {
		price, err := prices.LatestClose(h.Symbol)
		if err != nil {
			return Money{}, fmt.Errorf("valuing %s: %w", h.Symbol, err)
		}
		total = total.Add(h.CurrentValue(price))
	}
	return total, nil
}

// Metrics computes the annualized return and volatility of every held
// symbol from one year of daily closes.
//
// Symbols whose history is too short to produce a daily-return series are
// skipped, without an entry and without an error.
func (p *Portfolio) Metrics(prices PriceLookup) (map[string]ReturnMetric, error) {
	metrics := make(map[string]ReturnMetric)
	for h := range p.Holdings() {
		closes, err := prices.DailyCloses(h.Symbol, OneYear)
		if err != nil {
			return nil, fmt.Errorf("history for %s: %w", h.Symbol, err)
		}
		if m, ok := metricFromCloses(h.Symbol, closes); ok {
			metrics[h.Symbol] = m
		}
	}
	return metrics, nil
}

// HoldingSnapshot is the persisted form of a single holding.
type HoldingSnapshot struct {
	Quantity int64 `json:"quantity"`
}

// PortfolioSnapshot is the persisted form of a portfolio: symbol → holding.
type PortfolioSnapshot map[string]HoldingSnapshot

// Snapshot returns the persisted form of the portfolio. Snapshot and
// PortfolioFromSnapshot are exact inverses at the semantic level: the key
// set and quantities round-trip unchanged.
func (p *Portfolio) Snapshot() PortfolioSnapshot {
	s := make(PortfolioSnapshot, len(p.holdings))
	for symbol, h := range p.holdings {
		s[symbol] = HoldingSnapshot{Quantity: h.Quantity}
	}
	return s
}

// PortfolioFromSnapshot restores a portfolio from its persisted form.
//
// A negative quantity fails with ErrMalformedSnapshot. A zero quantity is
// dropped on load, so that the "zero removes the holding" invariant holds
// for snapshots written by other tools as well.
func PortfolioFromSnapshot(s PortfolioSnapshot) (*Portfolio, error) {
	p := NewPortfolio()
	for symbol, h := range s {
		if h.Quantity < 0 {
			return nil, fmt.Errorf("snapshot quantity %d for %s: %w",
				h.Quantity, symbol, ErrMalformedSnapshot)
		}
		if h.Quantity == 0 {
			continue
		}
		p.holdings[symbol] = &Holding{Symbol: symbol, Quantity: h.Quantity}
	}
	return p, nil
}
