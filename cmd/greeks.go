package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kverel/pnl"
)

// greeksCmd holds the flags for the 'greeks' subcommand.
type greeksCmd struct {
	priceChange float64
	volChange   float64
}

func (*greeksCmd) Name() string     { return "greeks" }
func (*greeksCmd) Synopsis() string { return "approximate the PnL of a price and volatility shift" }
func (*greeksCmd) Usage() string {
	return `plc greeks -price-change <dp> [-vol-change <dv>]

  Computes the second-order greek approximation of the book's PnL for
  the given price and volatility shifts, using the delta, gamma and
  vega sensitivities supplied as global flags.
`
}

func (c *greeksCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.priceChange, "price-change", 0, "Price shift to evaluate")
	f.Float64Var(&c.volChange, "vol-change", 0, "Volatility shift to evaluate")
}

func (c *greeksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := LoadEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
		return subcommands.ExitFailure
	}

	result := engine.GreekPnL(pnl.R(c.priceChange), pnl.R(c.volChange))
	fmt.Printf("Greek PnL: %s\n", result)

	return subcommands.ExitSuccess
}
