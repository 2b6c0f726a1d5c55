package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rkaranam/papertrade"
)

// tradeCmd implements both the buy and sell subcommands: the flow only
// differs in the portfolio operation and the recorded side.
type tradeCmd struct {
	side     papertrade.Side
	username string
	quantity int64
	force    bool
}

func newBuyCmd() *tradeCmd  { return &tradeCmd{side: papertrade.Buy} }
func newSellCmd() *tradeCmd { return &tradeCmd{side: papertrade.Sell} }

func (c *tradeCmd) Name() string {
	return strings.ToLower(c.side.String())
}

func (c *tradeCmd) Synopsis() string {
	if c.side == papertrade.Buy {
		return "buy shares at the latest market close"
	}
	return "sell shares at the latest market close"
}

func (c *tradeCmd) Usage() string {
	name := c.Name()
	return `papertrade ` + name + ` -u <username> -q <quantity> <SYMBOL>

  Executes a simulated ` + name + ` of an NSE-listed symbol (".NS" suffix)
  at its latest closing price, appends the trade to the user's ledger and
  persists the updated portfolio. Trading is gated to the NSE session
  (Monday to Friday, 9:15 to 15:30); -force overrides the clock.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username to trade as")
	f.Int64Var(&c.quantity, "q", 0, "number of shares")
	f.BoolVar(&c.force, "force", false, "trade even while the market session is closed")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := strings.ToUpper(f.Arg(0))
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: missing <SYMBOL> argument.")
		return subcommands.ExitUsageError
	}
	if !papertrade.IsNSESymbol(symbol) {
		fmt.Fprintf(os.Stderr, "%s is not listed on the NSE (expected a \".NS\" symbol).\n", symbol)
		return subcommands.ExitFailure
	}
	if !c.force && !papertrade.MarketOpen(time.Now()) {
		fmt.Fprintln(os.Stderr, "Market is closed. Trading is allowed Monday to Friday, 9:15 to 15:30.")
		return subcommands.ExitFailure
	}

	user, users, err := login(c.username)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price, err := prices.LatestClose(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No data found for %s. It may not be a valid stock symbol.\n", symbol)
		return subcommands.ExitFailure
	}

	switch c.side {
	case papertrade.Buy:
		err = user.Portfolio.Buy(symbol, c.quantity, price)
	case papertrade.Sell:
		err = user.Portfolio.Sell(symbol, c.quantity, price)
	}
	switch {
	case errors.Is(err, papertrade.ErrSymbolNotHeld):
		fmt.Fprintf(os.Stderr, "You don't own any shares of %s to sell.\n", symbol)
		return subcommands.ExitFailure
	case errors.Is(err, papertrade.ErrInsufficientHoldings):
		fmt.Fprintf(os.Stderr, "You don't own enough shares of %s to sell.\n", symbol)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec := papertrade.TradeRecord{
		Symbol:   symbol,
		Side:     c.side,
		Price:    price,
		Quantity: c.quantity,
		Time:     time.Now(),
	}
	if err := tradeLog().Append(user.Username, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveUser(user, users); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	past := "Bought"
	if c.side == papertrade.Sell {
		past = "Sold"
	}
	fmt.Printf("%s %d shares of %s at %s per share.\n", past, c.quantity, symbol, price)
	return subcommands.ExitSuccess
}
