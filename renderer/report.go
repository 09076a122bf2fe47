// Package renderer turns pnl report structs into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/kverel/pnl"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a full decomposition report to a markdown string.
func ReportMarkdown(r *pnl.DecompositionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("PnL Decomposition on %s", r.AsOf.Format("2006-01-02 15:04")))
	if r.ReportingCurrency != "" {
		doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.ReportingCurrency))
	}

	doc.H2("Components")
	table := md.TableSet{
		Header: []string{"Component", "PnL"},
		Rows: [][]string{
			{"Clean", r.Clean.SignedString()},
			{"Hypothetical", r.Hypothetical.SignedString()},
			{"Books", r.Books.SignedString()},
			{"General Ledger", r.GeneralLedger.SignedString()},
			{"Volcker", r.Volcker.SignedString()},
			{"Finance", r.Finance.SignedString()},
			{"Funding Cost", r.FundingCost.SignedString()},
			{"Greek", r.Greek.SignedString()},
			{"Carry", r.Carry.SignedString()},
			{"Cash Flow", r.CashFlow.SignedString()},
			{"Mark-to-Market", r.MarkToMarket.SignedString()},
			{"Mark-to-Model", r.MarkToModel.SignedString()},
			{"Aggregate Greeks", r.AggregateGreeks.SignedString()},
		},
	}
	doc.Table(table)

	doc.H2("Scenario")
	adj := r.Adjustments
	scenario := md.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Price change", adj.PriceChange.String()},
			{"Volatility change", adj.VolatilityChange.String()},
			{"Rate differential", adj.RateDiff.Percent()},
			{"Holding period", adj.HoldingPeriod.String()},
		},
	}
	doc.Table(scenario)

	return doc.String()
}
