package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/kverel/pnl"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	inflows  string
	outflows string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "net a list of cash inflows against outflows" }
func (*cashflowCmd) Usage() string {
	return `plc cashflow -in <amounts> -out <amounts>

  Computes total inflows minus total outflows. Amounts are
  comma-separated numbers in the reporting currency.

Usage Examples:
$ plc cashflow -in 100,200 -out 50,30

`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inflows, "in", "", "Comma-separated cash inflows")
	f.StringVar(&c.outflows, "out", "", "Comma-separated cash outflows")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inflows, err := parseAmounts(c.inflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing inflows: %v\n", err)
		return subcommands.ExitUsageError
	}
	outflows, err := parseAmounts(c.outflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing outflows: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine, err := LoadEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
		return subcommands.ExitFailure
	}

	result := engine.CashFlowPnL(inflows, outflows)
	fmt.Printf("Cash Flow PnL: %s\n", result)

	return subcommands.ExitSuccess
}

// parseAmounts parses a comma-separated list of amounts in the
// reporting currency. An empty list is fine and yields no amounts.
func parseAmounts(list string) ([]pnl.Money, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var amounts []pnl.Money
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", field, err)
		}
		amounts = append(amounts, money(v))
	}
	return amounts, nil
}
