package papertrade

import "errors"

// Sentinel errors reported by the bookkeeping core. None of them is
// process-fatal: each is scoped to the single operation that returned it,
// and the caller decides whether to retry, prompt, or abort.
var (
	// ErrInvalidQuantity reports an operation that would drive a holding
	// negative, or a non-positive trade quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientHoldings reports a sell that exceeds the owned quantity.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrSymbolNotHeld reports an operation on a symbol the portfolio does not hold.
	ErrSymbolNotHeld = errors.New("symbol not held")

	// ErrPriceUnavailable reports that a collaborator could not resolve a price.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrMalformedSnapshot reports structurally invalid persisted data.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
