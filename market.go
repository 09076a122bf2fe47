package pnl

import "iter"

// MarkRow carries the quoted and modeled prices for one line of the
// position book: current and previous market quotes, and current and
// previous model prices.
type MarkRow struct {
	Current       Money
	Previous      Money
	Model         Money
	PreviousModel Money
}

// MarketData is an ordered collection of mark rows.
//
// Row i is assumed to describe row i of the PositionBook it is used
// with. That alignment is a caller contract, checked only by the two
// mark-to-X computations that combine the collections.
type MarketData struct {
	rows []MarkRow
}

// NewMarketData creates a market data collection holding the given rows.
func NewMarketData(rows ...MarkRow) *MarketData {
	m := &MarketData{rows: make([]MarkRow, 0, len(rows))}
	m.Append(rows...)
	return m
}

// Append adds rows at the end of the collection.
func (m *MarketData) Append(rows ...MarkRow) {
	m.rows = append(m.rows, rows...)
}

func (m *MarketData) Len() int { return len(m.rows) }

// Row returns the i-th mark row.
func (m *MarketData) Row(i int) MarkRow { return m.rows[i] }

// Rows returns an iterator that yields each mark row in its original order.
func (m *MarketData) Rows() iter.Seq[MarkRow] {
	return func(yield func(MarkRow) bool) {
		for _, r := range m.rows {
			if !yield(r) {
				return
			}
		}
	}
}
