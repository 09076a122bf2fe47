package pnl

// helpers to trim the test code.

func USD(v float64) Money { return M(v, "USD") }

// refTrades is the reference trade ledger used across engine tests.
func refTrades() *TradeLedger {
	return NewTradeLedger(
		Trade{BuyPrice: USD(100), SellPrice: USD(110), Quantity: Q(10), Cost: USD(1)},
		Trade{BuyPrice: USD(105), SellPrice: USD(108), Quantity: Q(5), Cost: USD(1)},
	)
}

// refBook is the reference position book used across engine tests.
func refBook() *PositionBook {
	return NewPositionBook(
		Position{Quantity: Q(10), PriceChange: USD(0.5), Notional: USD(1000)},
		Position{Quantity: Q(15), PriceChange: USD(-0.2), Notional: USD(2000)},
	)
}

// refMarket is the reference market data, row-aligned with refBook.
func refMarket() *MarketData {
	return NewMarketData(
		MarkRow{Current: USD(110), Previous: USD(105), Model: USD(109), PreviousModel: USD(104)},
		MarkRow{Current: USD(108), Previous: USD(107), Model: USD(107), PreviousModel: USD(106)},
	)
}

func refGreeks() GreekSet {
	return GreekSet{Delta: R(1.2), Gamma: R(0.5), Vega: R(0.3)}
}

// refEngine builds the reference engine: funding rate 0.02, the
// reference datasets and greeks, USD reporting.
func refEngine() *Engine {
	e, err := NewEngine(refTrades(), refBook(), refMarket(), R(0.02), refGreeks(), "USD")
	if err != nil {
		panic(err)
	}
	return e
}
