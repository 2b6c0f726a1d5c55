package papertrade

import "fmt"

// Holding is the owned quantity of a single tradable symbol.
//
// Quantity is never negative at any observable time; a holding whose
// quantity reaches exactly zero is removed from its owning Portfolio.
type Holding struct {
	Symbol   string
	Quantity int64
}

// UpdateQuantity applies a signed share delta. It fails with
// ErrInvalidQuantity when the result would be negative, leaving the
// holding unchanged.
func (h *Holding) UpdateQuantity(delta int64) error {
	if h.Quantity+delta < 0 {
		return fmt.Errorf("cannot remove %d shares of %s, only %d held: %w",
			-delta, h.Symbol, h.Quantity, ErrInvalidQuantity)
	}
	h.Quantity += delta
	return nil
}

// CurrentValue returns quantity × price. The price is caller-supplied
// and not validated here.
func (h *Holding) CurrentValue(price Money) Money {
	return price.MulInt(h.Quantity)
}
