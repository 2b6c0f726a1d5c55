package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rkaranam/papertrade"
	"github.com/rkaranam/papertrade/date"
	"github.com/rkaranam/papertrade/renderer"
)

type holdingsCmd struct {
	username string
}

func (*holdingsCmd) Name() string { return "holdings" }
func (*holdingsCmd) Synopsis() string {
	return "display the portfolio with prices, metrics and totals"
}
func (*holdingsCmd) Usage() string {
	return `papertrade holdings -u <username>

  Displays the current portfolio: each holding with its latest close and
  value, the annualized return and volatility per symbol, the total
  portfolio value and the net realized value from the trade ledger.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username to report on")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, _, err := login(c.username)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := buildReport(user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Report(report))
	return subcommands.ExitSuccess
}

// buildReport values every holding at its latest close and computes the
// performance metrics and ledger reconciliation.
func buildReport(user *papertrade.User) (*renderer.PortfolioReport, error) {
	report := &renderer.PortfolioReport{
		Username:   user.Username,
		Date:       date.Today(),
		TotalValue: papertrade.M(0),
	}

	for h := range user.Portfolio.Holdings() {
		price, err := prices.LatestClose(h.Symbol)
		if err != nil {
			return nil, fmt.Errorf("valuing %s: %w", h.Symbol, err)
		}
		value := h.CurrentValue(price)
		report.Positions = append(report.Positions, renderer.Position{
			Symbol:   h.Symbol,
			Quantity: h.Quantity,
			Price:    price,
			Value:    value,
		})
		report.TotalValue = report.TotalValue.Add(value)
	}

	metrics, err := user.Portfolio.Metrics(prices)
	if err != nil {
		return nil, err
	}
	for h := range user.Portfolio.Holdings() {
		m, ok := metrics[h.Symbol]
		if !ok {
			continue
		}
		report.Metrics = append(report.Metrics, renderer.Metric{
			Symbol:     m.Symbol,
			Return:     m.ReturnPercent(),
			Volatility: m.VolatilityPercent(),
		})
	}

	records, err := tradeLog().Records(user.Username)
	if err != nil {
		return nil, err
	}
	report.NetRealized = papertrade.NetRealizedValue(records)
	return report, nil
}
