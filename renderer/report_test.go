package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/kverel/pnl"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

func refReport(t *testing.T) *pnl.DecompositionReport {
	t.Helper()

	trades := pnl.NewTradeLedger(
		pnl.Trade{BuyPrice: pnl.M(100, "USD"), SellPrice: pnl.M(110, "USD"), Quantity: pnl.Q(10), Cost: pnl.M(1, "USD")},
	)
	book := pnl.NewPositionBook(
		pnl.Position{Quantity: pnl.Q(10), PriceChange: pnl.M(0.5, "USD"), Notional: pnl.M(1000, "USD")},
	)
	market := pnl.NewMarketData(
		pnl.MarkRow{Current: pnl.M(110, "USD"), Previous: pnl.M(105, "USD"), Model: pnl.M(109, "USD"), PreviousModel: pnl.M(104, "USD")},
	)
	greeks := pnl.GreekSet{Delta: pnl.R(1.2), Gamma: pnl.R(0.5), Vega: pnl.R(0.3)}

	engine, err := pnl.NewEngine(trades, book, market, pnl.R(0.02), greeks, "USD")
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	report, err := engine.NewDecompositionReport(pnl.Adjustments{
		PriceChange:      pnl.R(2),
		VolatilityChange: pnl.R(0.1),
		RateDiff:         pnl.R(0.01),
		HoldingPeriod:    pnl.Q(30),
	})
	if err != nil {
		t.Fatalf("NewDecompositionReport() error = %v", err)
	}
	report.AsOf = time.Date(2026, time.August, 30, 17, 0, 0, 0, time.UTC)
	return report
}

func TestReportMarkdown_Structure(t *testing.T) {
	doc := ReportMarkdown(refReport(t))

	// The document must be well-formed markdown with a title, the two
	// section headings, and a table per section.
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	source := []byte(doc)
	root := md.Parser().Parse(text.NewReader(source))

	var headings []string
	tables := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for c := v.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			headings = append(headings, b.String())
		}
		if n.Kind().String() == "Table" {
			tables++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}

	if len(headings) != 3 || !strings.HasPrefix(headings[0], "PnL Decomposition on 2026-08-30") {
		t.Errorf("headings = %q, want title plus Components and Scenario", headings)
	}
	if tables != 2 {
		t.Errorf("found %d tables, want 2", tables)
	}
}

func TestReportMarkdown_Content(t *testing.T) {
	doc := ReportMarkdown(refReport(t))

	for _, want := range []string{
		"Reporting currency: USD",
		"Clean",
		"Volcker",
		"Mark-to-Model",
		"Aggregate Greeks",
		"+$99.00",  // clean: (110-100)*10-1
		"+$5.00",   // hypothetical: 10*0.5
		"+$20.00",  // funding: 0.02*1000
		"+$300.00", // carry: 0.01*1000*30
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered report does not contain %q:\n%s", want, doc)
		}
	}
}
