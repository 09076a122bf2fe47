package pnl

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FeedSpec maps the four mark prices to jsonpath expressions inside a
// provider's JSON document. It lets marks be lifted from any feed shape
// without writing a decoder per provider; fetching the document is the
// caller's business.
type FeedSpec struct {
	Current       string
	Previous      string
	Model         string
	PreviousModel string
	Currency      string
}

// ExtractMark applies the spec to an unmarshalled JSON document (as
// returned by json.Unmarshal into any) and builds one mark row.
func (s FeedSpec) ExtractMark(doc any) (MarkRow, error) {
	current, err := extractPrice(doc, s.Current)
	if err != nil {
		return MarkRow{}, fmt.Errorf("current price: %w", err)
	}
	previous, err := extractPrice(doc, s.Previous)
	if err != nil {
		return MarkRow{}, fmt.Errorf("previous price: %w", err)
	}
	model, err := extractPrice(doc, s.Model)
	if err != nil {
		return MarkRow{}, fmt.Errorf("model price: %w", err)
	}
	previousModel, err := extractPrice(doc, s.PreviousModel)
	if err != nil {
		return MarkRow{}, fmt.Errorf("previous model price: %w", err)
	}
	return MarkRow{
		Current:       M(current, s.Currency),
		Previous:      M(previous, s.Currency),
		Model:         M(model, s.Currency),
		PreviousModel: M(previousModel, s.Currency),
	}, nil
}

func extractPrice(doc any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
	return decimal.NewFromFloat(val), nil
}
