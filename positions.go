package pnl

import "iter"

// Position is one currently held line of the book: a signed size, the
// price move since the reference time, and the position's notional.
// Sign conventions on Quantity and Notional are the caller's contract,
// the engine never checks them.
type Position struct {
	Quantity    Quantity
	PriceChange Money
	Notional    Money
}

// PositionBook is the snapshot of currently open positions.
type PositionBook struct {
	positions []Position
}

// NewPositionBook creates a book holding the given positions.
func NewPositionBook(positions ...Position) *PositionBook {
	b := &PositionBook{positions: make([]Position, 0, len(positions))}
	b.Append(positions...)
	return b
}

// Append adds positions at the end of the book.
func (b *PositionBook) Append(positions ...Position) {
	b.positions = append(b.positions, positions...)
}

func (b *PositionBook) Len() int { return len(b.positions) }

// Positions returns an iterator that yields each position in its original order.
func (b *PositionBook) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range b.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// TotalNotional sums the signed notional over the whole book.
// An empty book sums to zero.
func (b *PositionBook) TotalNotional() Money {
	var total Money
	for p := range b.Positions() {
		total = total.Add(p.Notional)
	}
	return total
}
