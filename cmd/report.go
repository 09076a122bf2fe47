package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kverel/pnl"
	"github.com/kverel/pnl/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	fxRevaluation  float64
	provisions     float64
	marketMaking   float64
	hedging        float64
	proprietary    float64
	overheadCosts  float64
	capitalCharges float64
	allocations    float64
	priceChange    float64
	volChange      float64
	rateDiff       float64
	holdingPeriod  float64
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute every PnL decomposition of the book" }
func (*reportCmd) Usage() string {
	return `plc report [adjustment flags]

  Loads the datasets file, computes all PnL decompositions with the
  given adjustment scalars, and displays the full report.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.fxRevaluation, "fx-revaluation", 0, "FX revaluation adjustment for the general ledger view")
	f.Float64Var(&c.provisions, "provisions", 0, "Provision adjustment for the general ledger view")
	f.Float64Var(&c.marketMaking, "market-making", 0, "Externally computed market-making PnL (Volcker)")
	f.Float64Var(&c.hedging, "hedging", 0, "Externally computed hedging PnL (Volcker)")
	f.Float64Var(&c.proprietary, "proprietary", 0, "Externally computed proprietary PnL (Volcker, subtracted)")
	f.Float64Var(&c.overheadCosts, "overhead-costs", 0, "Overhead cost adjustment for the finance view")
	f.Float64Var(&c.capitalCharges, "capital-charges", 0, "Capital charge adjustment for the finance view")
	f.Float64Var(&c.allocations, "allocations", 0, "Allocation adjustment for the finance view")
	f.Float64Var(&c.priceChange, "price-change", 0, "Price shift for the greek scenario")
	f.Float64Var(&c.volChange, "vol-change", 0, "Volatility shift for the greek scenario")
	f.Float64Var(&c.rateDiff, "rate-diff", 0, "Interest rate differential for the carry accrual")
	f.Float64Var(&c.holdingPeriod, "holding-period", 0, "Holding period for the carry accrual")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := LoadEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
		return subcommands.ExitFailure
	}

	adj := pnl.Adjustments{
		FXRevaluation:    money(c.fxRevaluation),
		Provisions:       money(c.provisions),
		MarketMaking:     money(c.marketMaking),
		Hedging:          money(c.hedging),
		Proprietary:      money(c.proprietary),
		OverheadCosts:    money(c.overheadCosts),
		CapitalCharges:   money(c.capitalCharges),
		Allocations:      money(c.allocations),
		PriceChange:      pnl.R(c.priceChange),
		VolatilityChange: pnl.R(c.volChange),
		RateDiff:         pnl.R(c.rateDiff),
		HoldingPeriod:    pnl.Q(c.holdingPeriod),
	}

	report, err := engine.NewDecompositionReport(adj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(report))

	return subcommands.ExitSuccess
}
