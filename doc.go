// Package papertrade provides the types and functions for tracking a
// simulated equity portfolio. It is designed to be local-first and
// deterministic: all market data and persistence cross well-defined
// collaborator interfaces, so the bookkeeping core never performs I/O
// of its own.
//
// The core functionalities include:
//   - Portfolio Bookkeeping: holdings of whole-share quantities per
//     symbol, with buy, sell and reset operations that keep quantities
//     non-negative at all observable times.
//   - Trade Ledger: an immutable, chronological, append-only record of
//     executed trades per user, reconciled into a net realized value
//     (sell proceeds minus buy cost, ignoring mark-to-market).
//   - Performance Metrics: annualized return and volatility per held
//     symbol, derived from a daily close-price history.
//   - User Records: binding a bcrypt credential hash to one portfolio,
//     with stable snapshot round-trips for persistence.
//   - Market Data Integration: a price-lookup interface with a Yahoo
//     Finance implementation for latest closes and daily history.
//
// This package serves as the foundational logic for the `papertrade`
// command-line tool.
package papertrade
