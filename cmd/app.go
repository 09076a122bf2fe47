// Package cmd implements the CLI application to compute PnL decompositions.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kverel/pnl"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&greeksCmd{}, "reports")
	c.Register(&carryCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")

	c.Register(&extractCmd{}, "datasets")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datasetsFile = flag.String("datasets-file", "datasets.jsonl", "Path to the datasets file containing trade, position and mark records (JSONL format)")
var currency = flag.String("currency", "USD", "Reporting currency for computed PnL amounts")
var fundingRate = flag.Float64("funding-rate", 0, "Flat funding rate applied to the book's total notional")
var delta = flag.Float64("delta", 0, "Aggregate delta sensitivity of the book")
var gamma = flag.Float64("gamma", 0, "Aggregate gamma sensitivity of the book")
var vega = flag.Float64("vega", 0, "Aggregate vega sensitivity of the book")

// LoadEngine decodes the datasets file and builds an engine from it and
// the risk parameter flags.
func LoadEngine() (*pnl.Engine, error) {
	f, err := os.Open(*datasetsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open datasets file %q: %w", *datasetsFile, err)
	}
	defer f.Close()

	trades, book, market, err := pnl.DecodeDatasets(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode datasets file %q: %w", *datasetsFile, err)
	}

	greeks := pnl.GreekSet{Delta: pnl.R(*delta), Gamma: pnl.R(*gamma), Vega: pnl.R(*vega)}
	return pnl.NewEngine(trades, book, market, pnl.R(*fundingRate), greeks, *currency)
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "dark")
	if err != nil {
		// fall back to the raw document
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// money builds an amount in the reporting currency from a float flag.
func money(v float64) pnl.Money { return pnl.M(v, *currency) }
