package pnl

import "iter"

// Trade is a single executed round trip: bought at BuyPrice, sold at
// SellPrice, for Quantity units, paying Cost in fees.
type Trade struct {
	BuyPrice  Money
	SellPrice Money
	Quantity  Quantity
	Cost      Money
}

// TradeLedger is the ordered record of executed trades.
//
// A ledger is append-only: computations never mutate it.
type TradeLedger struct {
	trades []Trade
}

// NewTradeLedger creates a ledger holding the given trades.
func NewTradeLedger(trades ...Trade) *TradeLedger {
	l := &TradeLedger{trades: make([]Trade, 0, len(trades))}
	l.Append(trades...)
	return l
}

// Append adds trades at the end of the ledger.
func (l *TradeLedger) Append(trades ...Trade) {
	l.trades = append(l.trades, trades...)
}

func (l *TradeLedger) Len() int { return len(l.trades) }

// Trades returns an iterator that yields each trade in its original order.
func (l *TradeLedger) Trades() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.trades {
			if !yield(t) {
				return
			}
		}
	}
}
