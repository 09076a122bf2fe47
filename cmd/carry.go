package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kverel/pnl"
)

// carryCmd holds the flags for the 'carry' subcommand.
type carryCmd struct {
	rateDiff      float64
	holdingPeriod float64
}

func (*carryCmd) Name() string     { return "carry" }
func (*carryCmd) Synopsis() string { return "accrue the carry PnL of the open positions" }
func (*carryCmd) Usage() string {
	return `plc carry -rate-diff <rate> -holding-period <period>

  Accrues the interest rate differential over each position's notional
  for the holding period and prints the total.
`
}

func (c *carryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rateDiff, "rate-diff", 0, "Interest rate differential to accrue")
	f.Float64Var(&c.holdingPeriod, "holding-period", 0, "Holding period, in the same unit the rate is quoted for")
}

func (c *carryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := LoadEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
		return subcommands.ExitFailure
	}

	result := engine.CarryPnL(pnl.R(c.rateDiff), pnl.Q(c.holdingPeriod))
	fmt.Printf("Carry PnL: %s\n", result)

	return subcommands.ExitSuccess
}
